package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"github.com/somohq/somo/core"
	"github.com/somohq/somo/core/academic"
)

// NewValidator returns a ready validator + translator pair with the app's
// custom tags registered.
func NewValidator() (*validator.Validate, ut.Translator) {
	validate := validator.New()
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	core.InitValidators(validate, translator)
	return validate, translator
}

func CreateAcademicYear(
	t *testing.T,
	repo academic.AcademicYearRepository,
	name string,
	start, end time.Time,
	isCurrent bool,
) academic.AcademicYear {
	t.Helper()

	now := time.Now().UTC()
	year, err := repo.CreateAcademicYear(context.Background(), academic.AcademicYear{
		ID:        uuid.New().String(),
		Name:      name,
		StartDate: start.UTC(),
		EndDate:   end.UTC(),
		IsCurrent: isCurrent,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateAcademicYear() failed: %v", err)
	}
	return year
}

func CreateProgram(
	t *testing.T,
	repo academic.ProgramRepository,
	name, degree string,
	isActive bool,
) academic.Program {
	t.Helper()

	now := time.Now().UTC()
	prog, err := repo.CreateProgram(context.Background(), academic.Program{
		ID:        uuid.New().String(),
		Name:      name,
		Degree:    degree,
		IsActive:  isActive,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateProgram() failed: %v", err)
	}
	return prog
}

func CreateUniversity(
	t *testing.T,
	repo academic.UniversityRepository,
	name, code string,
	isActive bool,
	createdAt ...time.Time,
) academic.University {
	t.Helper()

	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	uni, err := repo.CreateUniversity(context.Background(), academic.University{
		ID:        uuid.New().String(),
		Name:      name,
		Code:      code,
		IsActive:  isActive,
		CreatedAt: tstamp,
		UpdatedAt: tstamp,
	})
	if err != nil {
		t.Fatalf("CreateUniversity() failed: %v", err)
	}
	return uni
}

func CreateFaculty(
	t *testing.T,
	repo academic.FacultyRepository,
	universityID, name, code string,
	isActive bool,
) academic.Faculty {
	t.Helper()

	now := time.Now().UTC()
	fac, err := repo.CreateFaculty(context.Background(), academic.Faculty{
		ID:           uuid.New().String(),
		UniversityID: universityID,
		Name:         name,
		Code:         code,
		IsActive:     isActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("CreateFaculty() failed: %v", err)
	}
	return fac
}

func CreateCourse(
	t *testing.T,
	repo academic.CourseRepository,
	facultyID, name, code string,
	credits int,
	isActive bool,
) academic.Course {
	t.Helper()

	now := time.Now().UTC()
	course, err := repo.CreateCourse(context.Background(), academic.Course{
		ID:        uuid.New().String(),
		FacultyID: facultyID,
		Name:      name,
		Code:      code,
		Credits:   null.NewInt(credits, credits > 0),
		IsActive:  isActive,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateCourse() failed: %v", err)
	}
	return course
}
