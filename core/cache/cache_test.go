package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/somohq/somo/core/cache"
)

func Test_Key(t *testing.T) {
	base := cache.NewKey("faculties")
	child := base.Append("u1")

	// Append does not mutate the receiver
	assert.Equal(t, cache.NewKey("faculties"), base)
	assert.Equal(t, cache.NewKey("faculties", "u1"), child)

	// structural equality
	assert.True(t, child.Equal(cache.NewKey("faculties", "u1")))
	assert.False(t, child.Equal(base))
	assert.False(t, base.Equal(child))

	// prefixes
	assert.True(t, child.HasPrefix(base))
	assert.True(t, child.HasPrefix(child))
	assert.False(t, base.HasPrefix(child))
	assert.True(t, child.HasPrefix(cache.Key{}))
}

func Test_Key_String(t *testing.T) {
	tests := []struct {
		name string
		key  cache.Key
		want string
	}{
		{name: "empty", key: cache.Key{}, want: ""},
		{name: "single", key: cache.NewKey("faculties"), want: "faculties"},
		{name: "joined", key: cache.NewKey("faculties", "u1"), want: "faculties/u1"},
		{name: "separator in segment is escaped", key: cache.NewKey("a/b", "c"), want: `a\/b/c`},
		{name: "backslash in segment is escaped", key: cache.NewKey(`a\b`), want: `a\\b`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.key.String())
		})
	}

	// distinct keys never collide after encoding
	assert.NotEqual(t, cache.NewKey("a/b", "c").String(), cache.NewKey("a", "b/c").String())
	assert.NotEqual(t, cache.NewKey("a/b").String(), cache.NewKey("a", "b").String())
}
