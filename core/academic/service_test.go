package academic_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/somohq/somo/core"
	"github.com/somohq/somo/core/academic"
	inmemdb "github.com/somohq/somo/storage/database/inmem"
	testutil "github.com/somohq/somo/tests"
)

func setup(t *testing.T) (*academic.Service, academic.Repository) {
	t.Helper()
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	repo := inmemdb.NewRepository(db)
	return academic.NewService(repo), repo
}

func Test_Service_universityCRUD(t *testing.T) {
	svc, _ := setup(t)
	validate, _ := testutil.NewValidator()
	ctx := context.Background()

	data := academic.NewUniversity{Name: " University of Kinshasa ", Code: "UNIKIN", Website: "https://www.unikin.ac.cd"}
	if err := data.Validate(ctx, validate, svc); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	uni, err := svc.CreateUniversity(ctx, data)
	if err != nil {
		t.Fatalf("CreateUniversity() failed: %v", err)
	}
	assert.NotEmpty(t, uni.ID)
	assert.Equal(t, "University of Kinshasa", uni.Name) // cleaned
	assert.True(t, uni.IsActive)
	assert.Equal(t, "https://www.unikin.ac.cd", uni.Website.String)

	got, err := svc.GetUniversity(ctx, uni.ID)
	assert.NoError(t, err)
	assert.Equal(t, uni, got)

	// duplicate code is rejected at validation
	dup := academic.NewUniversity{Name: "Other", Code: "UNIKIN"}
	err = dup.Validate(ctx, validate, svc)
	if assert.Error(t, err) {
		var vErr *core.ValidationError
		if assert.ErrorAs(t, err, &vErr) {
			assert.Equal(t, "code", vErr.Fields[0].Field)
		}
	}

	// partial update: empty fields keep their previous value
	upd := academic.UpdateUniversity{Name: "UNIKIN Renamed"}
	if err = upd.Validate(ctx, validate, svc, uni); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	uni, err = svc.UpdateUniversity(ctx, uni.ID, upd)
	assert.NoError(t, err)
	assert.Equal(t, "UNIKIN Renamed", uni.Name)
	assert.Equal(t, "UNIKIN", uni.Code)

	// deactivate
	inactive := false
	uni, err = svc.UpdateUniversity(ctx, uni.ID, academic.UpdateUniversity{IsActive: &inactive})
	assert.NoError(t, err)
	assert.False(t, uni.IsActive)

	assert.NoError(t, svc.DeleteUniversities(ctx, uni.ID))
	_, err = svc.GetUniversity(ctx, uni.ID)
	assert.Equal(t, academic.ErrNotFound, err)
}

func Test_Service_facultyCodeScopedPerUniversity(t *testing.T) {
	svc, repo := setup(t)
	validate, _ := testutil.NewValidator()
	ctx := context.Background()

	unikin := testutil.CreateUniversity(t, repo, "UNIKIN", "UNIKIN", true)
	unilu := testutil.CreateUniversity(t, repo, "UNILU", "UNILU", true)
	testutil.CreateFaculty(t, repo, unikin.ID, "Polytechnic", "POLY", true)

	// same code under another university is fine
	ok := academic.NewFaculty{UniversityID: unilu.ID, Name: "Polytechnic", Code: "POLY"}
	assert.NoError(t, ok.Validate(ctx, validate, svc))

	// same code under the same university is not
	dup := academic.NewFaculty{UniversityID: unikin.ID, Name: "Other", Code: "POLY"}
	assert.Error(t, dup.Validate(ctx, validate, svc))

	// unknown university is rejected
	orphan := academic.NewFaculty{UniversityID: "nope", Name: "X", Code: "X"}
	assert.Error(t, orphan.Validate(ctx, validate, svc))
}

func Test_Service_courseParentChecks(t *testing.T) {
	svc, repo := setup(t)
	validate, _ := testutil.NewValidator()
	ctx := context.Background()

	uni := testutil.CreateUniversity(t, repo, "UNIKIN", "UNIKIN", true)
	fac := testutil.CreateFaculty(t, repo, uni.ID, "Polytechnic", "POLY", true)
	prog := testutil.CreateProgram(t, repo, "Computer Science", "BSc", true)

	data := academic.NewCourse{FacultyID: fac.ID, ProgramID: prog.ID, Name: "Algorithms", Code: "CS-201", Credits: 6}
	assert.NoError(t, data.Validate(ctx, validate, svc))
	course, err := svc.CreateCourse(ctx, data)
	assert.NoError(t, err)
	assert.Equal(t, prog.ID, course.ProgramID.String)
	assert.Equal(t, 6, course.Credits.Int)

	// unknown program
	bad := academic.NewCourse{FacultyID: fac.ID, ProgramID: "nope", Name: "X", Code: "CS-999"}
	assert.Error(t, bad.Validate(ctx, validate, svc))

	// lowercase code fails the code tag
	badCode := academic.NewCourse{FacultyID: fac.ID, Name: "X", Code: "cs-101"}
	assert.Error(t, badCode.Validate(ctx, validate, svc))
}

func Test_Service_queryPagination(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()

	for _, name := range []string{"Alpha", "Beta", "Gamma", "Delta"} {
		testutil.CreateUniversity(t, repo, name, "U-"+name, true)
	}

	filter := academic.UniversityFilter{ListParams: core.ListParams{Page: 1, PageSize: 3, Ordering: "name"}}
	unis, count, err := svc.QueryUniversities(ctx, filter)
	assert.NoError(t, err)
	assert.Equal(t, 4, count)
	if assert.Len(t, unis, 3) {
		assert.Equal(t, "Alpha", unis[0].Name)
		assert.Equal(t, "Beta", unis[1].Name)
		assert.Equal(t, "Delta", unis[2].Name)
	}

	filter.Page = 2
	unis, count, err = svc.QueryUniversities(ctx, filter)
	assert.NoError(t, err)
	assert.Equal(t, 4, count)
	if assert.Len(t, unis, 1) {
		assert.Equal(t, "Gamma", unis[0].Name)
	}

	// descending ordering
	filter = academic.UniversityFilter{ListParams: core.ListParams{Ordering: "-name"}}
	unis, _, err = svc.QueryUniversities(ctx, filter)
	assert.NoError(t, err)
	assert.Equal(t, "Gamma", unis[0].Name)
}

func Test_Service_querySearchAndDateRange(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()

	now := time.Now().UTC()
	old := testutil.CreateUniversity(t, repo, "Old One", "OLD", true, now.Add(-48*time.Hour))
	recent := testutil.CreateUniversity(t, repo, "Recent One", "NEW", true, now)

	unis, _, err := svc.QueryUniversities(ctx, academic.UniversityFilter{Search: "recent"})
	assert.NoError(t, err)
	if assert.Len(t, unis, 1) {
		assert.Equal(t, recent.ID, unis[0].ID)
	}

	unis, _, err = svc.QueryUniversities(ctx, academic.UniversityFilter{CreatedTo: now.Add(-time.Hour)})
	assert.NoError(t, err)
	if assert.Len(t, unis, 1) {
		assert.Equal(t, old.ID, unis[0].ID)
	}
}
