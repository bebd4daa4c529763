// Package academic holds the domain model of the admin console: academic
// years, programs, universities, faculties and courses.
package academic

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/somohq/somo/core"
)

type AcademicYear struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"` // e.g. "2023/2024"
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	IsCurrent bool      `json:"is_current"`
	CreatedAt time.Time `json:"created_at"` // UTC
	UpdatedAt time.Time `json:"updated_at"` // UTC
}

type Program struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Degree    string    `json:"degree"` // e.g. "BSc", "MSc"
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"` // UTC
	UpdatedAt time.Time `json:"updated_at"` // UTC
}

type University struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Code      string      `json:"code"`
	Website   null.String `json:"website"`
	IsActive  bool        `json:"is_active"`
	CreatedAt time.Time   `json:"created_at"` // UTC
	UpdatedAt time.Time   `json:"updated_at"` // UTC
}

type Faculty struct {
	ID           string      `json:"id"`
	UniversityID string      `json:"university_id"`
	Name         string      `json:"name"`
	Code         string      `json:"code"`
	Dean         null.String `json:"dean"`
	IsActive     bool        `json:"is_active"`
	CreatedAt    time.Time   `json:"created_at"` // UTC
	UpdatedAt    time.Time   `json:"updated_at"` // UTC
}

type Course struct {
	ID             string      `json:"id"`
	FacultyID      string      `json:"faculty_id"`
	ProgramID      null.String `json:"program_id"`
	AcademicYearID null.String `json:"academic_year_id"`
	Name           string      `json:"name"`
	Code           string      `json:"code"`
	Credits        null.Int    `json:"credits"`
	IsActive       bool        `json:"is_active"`
	CreatedAt      time.Time   `json:"created_at"` // UTC
	UpdatedAt      time.Time   `json:"updated_at"` // UTC
}

// Payloads

// NewAcademicYear contains information needed to create a new AcademicYear.
type NewAcademicYear struct {
	Name      string    `json:"name" validate:"required"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required,gtfield=StartDate"`
	IsCurrent bool      `json:"is_current"`
}

func (ny *NewAcademicYear) Validate(validate *validator.Validate) error {
	ny.Name = core.CleanString(ny.Name)
	return validate.Struct(ny)
}

// UpdateAcademicYear defines what information may be provided to modify an
// existing AcademicYear. Empty fields keep their previous value.
type UpdateAcademicYear struct {
	Name      string     `json:"name"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	IsCurrent *bool      `json:"is_current"`
}

func (uy *UpdateAcademicYear) Validate(validate *validator.Validate) error {
	uy.Name = core.CleanString(uy.Name)
	return validate.Struct(uy)
}

type NewProgram struct {
	Name   string `json:"name" validate:"required"`
	Degree string `json:"degree" validate:"required"`
}

func (np *NewProgram) Validate(validate *validator.Validate) error {
	np.Name = core.CleanString(np.Name)
	np.Degree = core.CleanString(np.Degree)
	return validate.Struct(np)
}

type UpdateProgram struct {
	Name     string `json:"name"`
	Degree   string `json:"degree"`
	IsActive *bool  `json:"is_active"`
}

func (up *UpdateProgram) Validate(validate *validator.Validate) error {
	up.Name = core.CleanString(up.Name)
	up.Degree = core.CleanString(up.Degree)
	return validate.Struct(up)
}

type NewUniversity struct {
	Name    string `json:"name" validate:"required"`
	Code    string `json:"code" validate:"required,code"`
	Website string `json:"website" validate:"omitempty,url"`
}

func (nu *NewUniversity) Validate(ctx context.Context, validate *validator.Validate, svc *Service) error {
	nu.Name = core.CleanString(nu.Name)
	nu.Code = core.CleanString(nu.Code)
	if err := validate.Struct(nu); err != nil {
		return err
	}
	return svc.checkUniversityCode(ctx, nu.Code)
}

type UpdateUniversity struct {
	Name     string `json:"name"`
	Code     string `json:"code" validate:"omitempty,code"`
	Website  string `json:"website" validate:"omitempty,url"`
	IsActive *bool  `json:"is_active"`
}

func (uu *UpdateUniversity) Validate(ctx context.Context, validate *validator.Validate, svc *Service, orig University) error {
	uu.Name = core.CleanString(uu.Name)
	uu.Code = core.CleanString(uu.Code)
	if err := validate.Struct(uu); err != nil {
		return err
	}
	if uu.Code != "" && uu.Code != orig.Code {
		return svc.checkUniversityCode(ctx, uu.Code, orig)
	}
	return nil
}

type NewFaculty struct {
	UniversityID string `json:"university_id" validate:"required"`
	Name         string `json:"name" validate:"required"`
	Code         string `json:"code" validate:"required,code"`
	Dean         string `json:"dean"`
}

func (nf *NewFaculty) Validate(ctx context.Context, validate *validator.Validate, svc *Service) error {
	nf.Name = core.CleanString(nf.Name)
	nf.Code = core.CleanString(nf.Code)
	nf.Dean = core.CleanString(nf.Dean)
	if err := validate.Struct(nf); err != nil {
		return err
	}
	if _, err := svc.GetUniversity(ctx, nf.UniversityID); err != nil {
		return core.NewValidationError(err, core.FieldError{Field: "university_id", Error: "university not found"})
	}
	return svc.checkFacultyCode(ctx, nf.UniversityID, nf.Code)
}

type UpdateFaculty struct {
	Name     string `json:"name"`
	Code     string `json:"code" validate:"omitempty,code"`
	Dean     string `json:"dean"`
	IsActive *bool  `json:"is_active"`
}

func (uf *UpdateFaculty) Validate(ctx context.Context, validate *validator.Validate, svc *Service, orig Faculty) error {
	uf.Name = core.CleanString(uf.Name)
	uf.Code = core.CleanString(uf.Code)
	uf.Dean = core.CleanString(uf.Dean)
	if err := validate.Struct(uf); err != nil {
		return err
	}
	if uf.Code != "" && uf.Code != orig.Code {
		return svc.checkFacultyCode(ctx, orig.UniversityID, uf.Code, orig)
	}
	return nil
}

type NewCourse struct {
	FacultyID      string `json:"faculty_id" validate:"required"`
	ProgramID      string `json:"program_id"`
	AcademicYearID string `json:"academic_year_id"`
	Name           string `json:"name" validate:"required"`
	Code           string `json:"code" validate:"required,code"`
	Credits        int    `json:"credits" validate:"omitempty,gte=0,lte=60"`
}

func (nc *NewCourse) Validate(ctx context.Context, validate *validator.Validate, svc *Service) error {
	nc.Name = core.CleanString(nc.Name)
	nc.Code = core.CleanString(nc.Code)
	if err := validate.Struct(nc); err != nil {
		return err
	}
	if _, err := svc.GetFaculty(ctx, nc.FacultyID); err != nil {
		return core.NewValidationError(err, core.FieldError{Field: "faculty_id", Error: "faculty not found"})
	}
	if nc.ProgramID != "" {
		if _, err := svc.GetProgram(ctx, nc.ProgramID); err != nil {
			return core.NewValidationError(err, core.FieldError{Field: "program_id", Error: "program not found"})
		}
	}
	if nc.AcademicYearID != "" {
		if _, err := svc.GetAcademicYear(ctx, nc.AcademicYearID); err != nil {
			return core.NewValidationError(err, core.FieldError{Field: "academic_year_id", Error: "academic year not found"})
		}
	}
	return svc.checkCourseCode(ctx, nc.FacultyID, nc.Code)
}

type UpdateCourse struct {
	Name     string `json:"name"`
	Code     string `json:"code" validate:"omitempty,code"`
	Credits  *int   `json:"credits" validate:"omitempty,gte=0,lte=60"`
	IsActive *bool  `json:"is_active"`
}

func (uc *UpdateCourse) Validate(ctx context.Context, validate *validator.Validate, svc *Service, orig Course) error {
	uc.Name = core.CleanString(uc.Name)
	uc.Code = core.CleanString(uc.Code)
	if err := validate.Struct(uc); err != nil {
		return err
	}
	if uc.Code != "" && uc.Code != orig.Code {
		return svc.checkCourseCode(ctx, orig.FacultyID, uc.Code, orig)
	}
	return nil
}

// Query filters. Search does a case-insensitive match on name/code fields;
// all other set fields are ANDed together.

type AcademicYearFilter struct {
	Search    string `query:"search"`
	IsCurrent *bool  `query:"is_current"`
	core.ListParams
}

type ProgramFilter struct {
	Search   string `query:"search"`
	Degree   string `query:"degree"`
	IsActive *bool  `query:"is_active"`
	core.ListParams
}

type UniversityFilter struct {
	Search      string    `query:"search"`
	IsActive    *bool     `query:"is_active"`
	CreatedFrom time.Time `query:"created_from"`
	CreatedTo   time.Time `query:"created_to"`
	core.ListParams
}

type FacultyFilter struct {
	Search       string `query:"search"`
	UniversityID string `query:"university_id"`
	IsActive     *bool  `query:"is_active"`
	core.ListParams
}

type CourseFilter struct {
	Search         string    `query:"search"`
	UniversityID   string    `query:"university_id"`
	FacultyID      string    `query:"faculty_id"`
	ProgramID      string    `query:"program_id"`
	AcademicYearID string    `query:"academic_year_id"`
	IsActive       *bool     `query:"is_active"`
	CreatedFrom    time.Time `query:"created_from"`
	CreatedTo      time.Time `query:"created_to"`
	core.ListParams
}
