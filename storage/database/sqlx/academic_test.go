package sqlxrepos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_whereBuilder(t *testing.T) {
	w := &whereBuilder{}
	assert.Equal(t, "", w.clause())

	w.add("name ILIKE '%'||$?||'%'", "kin")
	w.add("is_active = $?", true)
	// one arg may feed several placeholders in the same condition
	w.add("(created_at >= $? OR updated_at >= $?)", "2024-09-01")

	assert.Equal(t,
		" WHERE name ILIKE '%'||$1||'%' AND is_active = $2 AND (created_at >= $3 OR updated_at >= $3)",
		w.clause())
	assert.Equal(t, []interface{}{"kin", true, "2024-09-01"}, w.args)
}

func Test_orderBy(t *testing.T) {
	allowed := map[string]string{"name": "course.name", "code": "course.code"}
	def := " ORDER BY course.name ASC"

	tests := []struct {
		name     string
		ordering string
		want     string
	}{
		{name: "empty falls back", ordering: "", want: def},
		{name: "whitelisted", ordering: "code", want: " ORDER BY course.code ASC"},
		{name: "descending", ordering: "-code", want: " ORDER BY course.code DESC"},
		{name: "unknown falls back", ordering: "credits", want: def},
		{name: "injection attempt falls back", ordering: "name; DROP TABLE course", want: def},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, orderBy(tt.ordering, allowed, def))
		})
	}
}
