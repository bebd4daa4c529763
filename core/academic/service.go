package academic

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/somohq/somo/core"
)

var (
	// errors
	ErrNotFound   = errors.New("record not found")
	ErrCodeExists = errors.New("a record with this code already exists")
)

type (
	AcademicYearRepository interface {
		CreateAcademicYear(ctx context.Context, year AcademicYear) (AcademicYear, error)
		QueryAcademicYears(ctx context.Context, filter AcademicYearFilter) ([]AcademicYear, int, error)
		GetAcademicYearByID(ctx context.Context, id string) (AcademicYear, error)
		UpdateAcademicYear(ctx context.Context, year AcademicYear, isCurrent *bool) (AcademicYear, error)
		DeleteAcademicYearsByID(ctx context.Context, ids ...string) error
	}

	ProgramRepository interface {
		CreateProgram(ctx context.Context, prog Program) (Program, error)
		QueryPrograms(ctx context.Context, filter ProgramFilter) ([]Program, int, error)
		GetProgramByID(ctx context.Context, id string) (Program, error)
		UpdateProgram(ctx context.Context, prog Program, isActive *bool) (Program, error)
		DeleteProgramsByID(ctx context.Context, ids ...string) error
	}

	UniversityRepository interface {
		CheckUniversityCode(ctx context.Context, code string, excluded ...University) error
		CreateUniversity(ctx context.Context, uni University) (University, error)
		QueryUniversities(ctx context.Context, filter UniversityFilter) ([]University, int, error)
		GetUniversityByID(ctx context.Context, id string) (University, error)
		UpdateUniversity(ctx context.Context, uni University, isActive *bool) (University, error)
		DeleteUniversitiesByID(ctx context.Context, ids ...string) error
	}

	FacultyRepository interface {
		CheckFacultyCode(ctx context.Context, universityID, code string, excluded ...Faculty) error
		CreateFaculty(ctx context.Context, fac Faculty) (Faculty, error)
		QueryFaculties(ctx context.Context, filter FacultyFilter) ([]Faculty, int, error)
		GetFacultyByID(ctx context.Context, id string) (Faculty, error)
		UpdateFaculty(ctx context.Context, fac Faculty, isActive *bool) (Faculty, error)
		DeleteFacultiesByID(ctx context.Context, ids ...string) error
	}

	CourseRepository interface {
		CheckCourseCode(ctx context.Context, facultyID, code string, excluded ...Course) error
		CreateCourse(ctx context.Context, course Course) (Course, error)
		QueryCourses(ctx context.Context, filter CourseFilter) ([]Course, int, error)
		GetCourseByID(ctx context.Context, id string) (Course, error)
		UpdateCourse(ctx context.Context, course Course, isActive *bool) (Course, error)
		DeleteCoursesByID(ctx context.Context, ids ...string) error
	}

	Repository interface {
		AcademicYearRepository
		ProgramRepository
		UniversityRepository
		FacultyRepository
		CourseRepository
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func codeValidationError(err error, field string) error {
	if errors.Cause(err) == ErrCodeExists {
		return core.NewValidationError(err, core.FieldError{Field: field, Error: err.Error()})
	}
	return err
}

// Academic years

func (svc *Service) CreateAcademicYear(ctx context.Context, ny NewAcademicYear) (AcademicYear, error) {
	now := time.Now().UTC()
	year := AcademicYear{
		ID:        uuid.New().String(),
		Name:      ny.Name,
		StartDate: ny.StartDate.UTC(),
		EndDate:   ny.EndDate.UTC(),
		IsCurrent: ny.IsCurrent,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return svc.repo.CreateAcademicYear(ctx, year)
}

func (svc *Service) QueryAcademicYears(ctx context.Context, filter AcademicYearFilter) ([]AcademicYear, int, error) {
	filter.Search = core.CleanString(filter.Search)
	filter.Normalize()
	return svc.repo.QueryAcademicYears(ctx, filter)
}

func (svc *Service) GetAcademicYear(ctx context.Context, id string) (AcademicYear, error) {
	return svc.repo.GetAcademicYearByID(ctx, id)
}

func (svc *Service) UpdateAcademicYear(ctx context.Context, id string, uy UpdateAcademicYear) (AcademicYear, error) {
	year := AcademicYear{
		ID:        id,
		Name:      uy.Name,
		UpdatedAt: time.Now().UTC(),
	}
	if uy.StartDate != nil {
		year.StartDate = uy.StartDate.UTC()
	}
	if uy.EndDate != nil {
		year.EndDate = uy.EndDate.UTC()
	}
	return svc.repo.UpdateAcademicYear(ctx, year, uy.IsCurrent)
}

func (svc *Service) DeleteAcademicYears(ctx context.Context, ids ...string) error {
	return svc.repo.DeleteAcademicYearsByID(ctx, ids...)
}

// Programs

func (svc *Service) CreateProgram(ctx context.Context, np NewProgram) (Program, error) {
	now := time.Now().UTC()
	prog := Program{
		ID:        uuid.New().String(),
		Name:      np.Name,
		Degree:    np.Degree,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return svc.repo.CreateProgram(ctx, prog)
}

func (svc *Service) QueryPrograms(ctx context.Context, filter ProgramFilter) ([]Program, int, error) {
	filter.Search = core.CleanString(filter.Search)
	filter.Normalize()
	return svc.repo.QueryPrograms(ctx, filter)
}

func (svc *Service) GetProgram(ctx context.Context, id string) (Program, error) {
	return svc.repo.GetProgramByID(ctx, id)
}

func (svc *Service) UpdateProgram(ctx context.Context, id string, up UpdateProgram) (Program, error) {
	prog := Program{
		ID:        id,
		Name:      up.Name,
		Degree:    up.Degree,
		UpdatedAt: time.Now().UTC(),
	}
	return svc.repo.UpdateProgram(ctx, prog, up.IsActive)
}

func (svc *Service) DeletePrograms(ctx context.Context, ids ...string) error {
	return svc.repo.DeleteProgramsByID(ctx, ids...)
}

// Universities

func (svc *Service) checkUniversityCode(ctx context.Context, code string, excluded ...University) error {
	return codeValidationError(svc.repo.CheckUniversityCode(ctx, code, excluded...), "code")
}

func (svc *Service) CreateUniversity(ctx context.Context, nu NewUniversity) (University, error) {
	now := time.Now().UTC()
	uni := University{
		ID:        uuid.New().String(),
		Name:      nu.Name,
		Code:      nu.Code,
		Website:   null.NewString(nu.Website, nu.Website != ""),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return svc.repo.CreateUniversity(ctx, uni)
}

func (svc *Service) QueryUniversities(ctx context.Context, filter UniversityFilter) ([]University, int, error) {
	filter.Search = core.CleanString(filter.Search)
	filter.Normalize()
	return svc.repo.QueryUniversities(ctx, filter)
}

func (svc *Service) GetUniversity(ctx context.Context, id string) (University, error) {
	return svc.repo.GetUniversityByID(ctx, id)
}

func (svc *Service) UpdateUniversity(ctx context.Context, id string, uu UpdateUniversity) (University, error) {
	uni := University{
		ID:        id,
		Name:      uu.Name,
		Code:      uu.Code,
		Website:   null.NewString(uu.Website, uu.Website != ""),
		UpdatedAt: time.Now().UTC(),
	}
	return svc.repo.UpdateUniversity(ctx, uni, uu.IsActive)
}

func (svc *Service) DeleteUniversities(ctx context.Context, ids ...string) error {
	return svc.repo.DeleteUniversitiesByID(ctx, ids...)
}

// Faculties

func (svc *Service) checkFacultyCode(ctx context.Context, universityID, code string, excluded ...Faculty) error {
	return codeValidationError(svc.repo.CheckFacultyCode(ctx, universityID, code, excluded...), "code")
}

func (svc *Service) CreateFaculty(ctx context.Context, nf NewFaculty) (Faculty, error) {
	now := time.Now().UTC()
	fac := Faculty{
		ID:           uuid.New().String(),
		UniversityID: nf.UniversityID,
		Name:         nf.Name,
		Code:         nf.Code,
		Dean:         null.NewString(nf.Dean, nf.Dean != ""),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return svc.repo.CreateFaculty(ctx, fac)
}

func (svc *Service) QueryFaculties(ctx context.Context, filter FacultyFilter) ([]Faculty, int, error) {
	filter.Search = core.CleanString(filter.Search)
	filter.Normalize()
	return svc.repo.QueryFaculties(ctx, filter)
}

func (svc *Service) GetFaculty(ctx context.Context, id string) (Faculty, error) {
	return svc.repo.GetFacultyByID(ctx, id)
}

func (svc *Service) UpdateFaculty(ctx context.Context, id string, uf UpdateFaculty) (Faculty, error) {
	fac := Faculty{
		ID:        id,
		Name:      uf.Name,
		Code:      uf.Code,
		Dean:      null.NewString(uf.Dean, uf.Dean != ""),
		UpdatedAt: time.Now().UTC(),
	}
	return svc.repo.UpdateFaculty(ctx, fac, uf.IsActive)
}

func (svc *Service) DeleteFaculties(ctx context.Context, ids ...string) error {
	return svc.repo.DeleteFacultiesByID(ctx, ids...)
}

// Courses

func (svc *Service) checkCourseCode(ctx context.Context, facultyID, code string, excluded ...Course) error {
	return codeValidationError(svc.repo.CheckCourseCode(ctx, facultyID, code, excluded...), "code")
}

func (svc *Service) CreateCourse(ctx context.Context, nc NewCourse) (Course, error) {
	now := time.Now().UTC()
	course := Course{
		ID:             uuid.New().String(),
		FacultyID:      nc.FacultyID,
		ProgramID:      null.NewString(nc.ProgramID, nc.ProgramID != ""),
		AcademicYearID: null.NewString(nc.AcademicYearID, nc.AcademicYearID != ""),
		Name:           nc.Name,
		Code:           nc.Code,
		Credits:        null.NewInt(nc.Credits, nc.Credits > 0),
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return svc.repo.CreateCourse(ctx, course)
}

func (svc *Service) QueryCourses(ctx context.Context, filter CourseFilter) ([]Course, int, error) {
	filter.Search = core.CleanString(filter.Search)
	filter.Normalize()
	return svc.repo.QueryCourses(ctx, filter)
}

func (svc *Service) GetCourse(ctx context.Context, id string) (Course, error) {
	return svc.repo.GetCourseByID(ctx, id)
}

func (svc *Service) UpdateCourse(ctx context.Context, id string, uc UpdateCourse) (Course, error) {
	course := Course{
		ID:        id,
		Name:      uc.Name,
		Code:      uc.Code,
		UpdatedAt: time.Now().UTC(),
	}
	if uc.Credits != nil {
		course.Credits = null.IntFrom(*uc.Credits)
	}
	return svc.repo.UpdateCourse(ctx, course, uc.IsActive)
}

func (svc *Service) DeleteCourses(ctx context.Context, ids ...string) error {
	return svc.repo.DeleteCoursesByID(ctx, ids...)
}
