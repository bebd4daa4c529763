// Package sqlxrepos implements the academic repositories over Postgres.
package sqlxrepos

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/somohq/somo/core/academic"
)

type Repository struct {
	db *sqlx.DB
}

var _ academic.Repository = (*Repository)(nil) // interface compliance check

func NewRepository(db *sql.DB, engine string) *Repository {
	return &Repository{db: sqlx.NewDb(db, engine)}
}

// whereBuilder accumulates positional WHERE conditions.
type whereBuilder struct {
	conds []string
	args  []interface{}
}

// add appends a condition; `cond` must contain one "$%d" verb per use of the arg.
func (w *whereBuilder) add(cond string, arg interface{}) {
	w.args = append(w.args, arg)
	n := len(w.args)
	w.conds = append(w.conds, strings.ReplaceAll(cond, "$?", fmt.Sprintf("$%d", n)))
}

func (w *whereBuilder) clause() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// orderBy resolves the requested ordering against a whitelist; unknown fields
// fall back to the default.
func orderBy(ordering string, allowed map[string]string, def string) string {
	dir := "ASC"
	field := ordering
	if strings.HasPrefix(field, "-") {
		dir = "DESC"
		field = field[1:]
	}
	col, ok := allowed[field]
	if !ok {
		return def
	}
	return fmt.Sprintf(" ORDER BY %s %s", col, dir)
}

func (repo *Repository) count(ctx context.Context, table string, w *whereBuilder) (int, error) {
	var count int
	q := "SELECT COUNT(*) FROM " + table + w.clause()
	if err := repo.db.GetContext(ctx, &count, q, w.args...); err != nil {
		return 0, errors.Wrapf(err, "counting %s", table)
	}
	return count, nil
}

func notFound(err error) error {
	if errors.Cause(err) == sql.ErrNoRows {
		return academic.ErrNotFound
	}
	return err
}

// Academic years

type academicYearRow struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
	IsCurrent bool      `db:"is_current"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r academicYearRow) toDomain() academic.AcademicYear {
	return academic.AcademicYear{
		ID:        r.ID,
		Name:      r.Name,
		StartDate: r.StartDate.UTC(),
		EndDate:   r.EndDate.UTC(),
		IsCurrent: r.IsCurrent,
		CreatedAt: r.CreatedAt.UTC(),
		UpdatedAt: r.UpdatedAt.UTC(),
	}
}

func (repo *Repository) CreateAcademicYear(ctx context.Context, year academic.AcademicYear) (academic.AcademicYear, error) {
	const q = `INSERT INTO academic_year (id, name, start_date, end_date, is_current, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := repo.db.ExecContext(ctx, q,
		year.ID, year.Name, year.StartDate, year.EndDate, year.IsCurrent, year.CreatedAt, year.UpdatedAt,
	); err != nil {
		return academic.AcademicYear{}, errors.Wrap(err, "creating academic year")
	}
	return year, nil
}

func (repo *Repository) QueryAcademicYears(ctx context.Context, filter academic.AcademicYearFilter) ([]academic.AcademicYear, int, error) {
	w := &whereBuilder{}
	if filter.Search != "" {
		w.add("name ILIKE '%'||$?||'%'", filter.Search)
	}
	if filter.IsCurrent != nil {
		w.add("is_current = $?", *filter.IsCurrent)
	}

	count, err := repo.count(ctx, "academic_year", w)
	if err != nil {
		return nil, 0, err
	}

	order := orderBy(filter.Ordering, map[string]string{
		"name": "name", "start_date": "start_date", "created_at": "created_at",
	}, " ORDER BY start_date DESC")
	q := "SELECT * FROM academic_year" + w.clause() + order +
		fmt.Sprintf(" LIMIT %d OFFSET %d", filter.Limit(), filter.Offset())

	var rows []academicYearRow
	if err = repo.db.SelectContext(ctx, &rows, q, w.args...); err != nil {
		return nil, 0, errors.Wrap(err, "querying academic years")
	}
	years := make([]academic.AcademicYear, 0, len(rows))
	for _, r := range rows {
		years = append(years, r.toDomain())
	}
	return years, count, nil
}

func (repo *Repository) GetAcademicYearByID(ctx context.Context, id string) (academic.AcademicYear, error) {
	var row academicYearRow
	if err := repo.db.GetContext(ctx, &row, "SELECT * FROM academic_year WHERE id = $1", id); err != nil {
		return academic.AcademicYear{}, notFound(err)
	}
	return row.toDomain(), nil
}

func (repo *Repository) UpdateAcademicYear(ctx context.Context, year academic.AcademicYear, isCurrent *bool) (academic.AcademicYear, error) {
	const q = `UPDATE academic_year SET
			name = COALESCE(NULLIF($2, ''), name),
			start_date = CASE WHEN $3::timestamptz IS NULL THEN start_date ELSE $3 END,
			end_date = CASE WHEN $4::timestamptz IS NULL THEN end_date ELSE $4 END,
			is_current = COALESCE($5, is_current),
			updated_at = $6
		WHERE id = $1
		RETURNING *`
	var row academicYearRow
	err := repo.db.GetContext(ctx, &row, q,
		year.ID, year.Name, null.NewTime(year.StartDate, !year.StartDate.IsZero()),
		null.NewTime(year.EndDate, !year.EndDate.IsZero()), null.BoolFromPtr(isCurrent), year.UpdatedAt,
	)
	if err != nil {
		return academic.AcademicYear{}, notFound(errors.Wrap(err, "updating academic year"))
	}
	return row.toDomain(), nil
}

func (repo *Repository) DeleteAcademicYearsByID(ctx context.Context, ids ...string) error {
	_, err := repo.db.ExecContext(ctx, "DELETE FROM academic_year WHERE id = ANY($1)", pq.Array(ids))
	return errors.Wrap(err, "deleting academic years")
}

// Programs

type programRow struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Degree    string    `db:"degree"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r programRow) toDomain() academic.Program {
	return academic.Program{
		ID:        r.ID,
		Name:      r.Name,
		Degree:    r.Degree,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt.UTC(),
		UpdatedAt: r.UpdatedAt.UTC(),
	}
}

func (repo *Repository) CreateProgram(ctx context.Context, prog academic.Program) (academic.Program, error) {
	const q = `INSERT INTO program (id, name, degree, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := repo.db.ExecContext(ctx, q,
		prog.ID, prog.Name, prog.Degree, prog.IsActive, prog.CreatedAt, prog.UpdatedAt,
	); err != nil {
		return academic.Program{}, errors.Wrap(err, "creating program")
	}
	return prog, nil
}

func (repo *Repository) QueryPrograms(ctx context.Context, filter academic.ProgramFilter) ([]academic.Program, int, error) {
	w := &whereBuilder{}
	if filter.Search != "" {
		w.add("name ILIKE '%'||$?||'%'", filter.Search)
	}
	if filter.Degree != "" {
		w.add("degree = $?", filter.Degree)
	}
	if filter.IsActive != nil {
		w.add("is_active = $?", *filter.IsActive)
	}

	count, err := repo.count(ctx, "program", w)
	if err != nil {
		return nil, 0, err
	}

	order := orderBy(filter.Ordering, map[string]string{
		"name": "name", "degree": "degree", "created_at": "created_at",
	}, " ORDER BY name ASC")
	q := "SELECT * FROM program" + w.clause() + order +
		fmt.Sprintf(" LIMIT %d OFFSET %d", filter.Limit(), filter.Offset())

	var rows []programRow
	if err = repo.db.SelectContext(ctx, &rows, q, w.args...); err != nil {
		return nil, 0, errors.Wrap(err, "querying programs")
	}
	progs := make([]academic.Program, 0, len(rows))
	for _, r := range rows {
		progs = append(progs, r.toDomain())
	}
	return progs, count, nil
}

func (repo *Repository) GetProgramByID(ctx context.Context, id string) (academic.Program, error) {
	var row programRow
	if err := repo.db.GetContext(ctx, &row, "SELECT * FROM program WHERE id = $1", id); err != nil {
		return academic.Program{}, notFound(err)
	}
	return row.toDomain(), nil
}

func (repo *Repository) UpdateProgram(ctx context.Context, prog academic.Program, isActive *bool) (academic.Program, error) {
	const q = `UPDATE program SET
			name = COALESCE(NULLIF($2, ''), name),
			degree = COALESCE(NULLIF($3, ''), degree),
			is_active = COALESCE($4, is_active),
			updated_at = $5
		WHERE id = $1
		RETURNING *`
	var row programRow
	err := repo.db.GetContext(ctx, &row, q, prog.ID, prog.Name, prog.Degree, null.BoolFromPtr(isActive), prog.UpdatedAt)
	if err != nil {
		return academic.Program{}, notFound(errors.Wrap(err, "updating program"))
	}
	return row.toDomain(), nil
}

func (repo *Repository) DeleteProgramsByID(ctx context.Context, ids ...string) error {
	_, err := repo.db.ExecContext(ctx, "DELETE FROM program WHERE id = ANY($1)", pq.Array(ids))
	return errors.Wrap(err, "deleting programs")
}

// Universities

type universityRow struct {
	ID        string      `db:"id"`
	Name      string      `db:"name"`
	Code      string      `db:"code"`
	Website   null.String `db:"website"`
	IsActive  bool        `db:"is_active"`
	CreatedAt time.Time   `db:"created_at"`
	UpdatedAt time.Time   `db:"updated_at"`
}

func (r universityRow) toDomain() academic.University {
	return academic.University{
		ID:        r.ID,
		Name:      r.Name,
		Code:      r.Code,
		Website:   r.Website,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt.UTC(),
		UpdatedAt: r.UpdatedAt.UTC(),
	}
}

func (repo *Repository) CheckUniversityCode(ctx context.Context, code string, excluded ...academic.University) error {
	ids := make([]string, 0, len(excluded))
	for _, uni := range excluded {
		ids = append(ids, uni.ID)
	}
	var exists bool
	const q = "SELECT EXISTS (SELECT 1 FROM university WHERE code = $1 AND id <> ALL($2))"
	if err := repo.db.GetContext(ctx, &exists, q, code, pq.Array(ids)); err != nil {
		return errors.Wrap(err, "checking university code")
	}
	if exists {
		return academic.ErrCodeExists
	}
	return nil
}

func (repo *Repository) CreateUniversity(ctx context.Context, uni academic.University) (academic.University, error) {
	const q = `INSERT INTO university (id, name, code, website, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := repo.db.ExecContext(ctx, q,
		uni.ID, uni.Name, uni.Code, uni.Website, uni.IsActive, uni.CreatedAt, uni.UpdatedAt,
	); err != nil {
		return academic.University{}, errors.Wrap(err, "creating university")
	}
	return uni, nil
}

func (repo *Repository) QueryUniversities(ctx context.Context, filter academic.UniversityFilter) ([]academic.University, int, error) {
	w := &whereBuilder{}
	if filter.Search != "" {
		w.add("(name ILIKE '%'||$?||'%' OR code ILIKE '%'||$?||'%')", filter.Search)
	}
	if filter.IsActive != nil {
		w.add("is_active = $?", *filter.IsActive)
	}
	if !filter.CreatedFrom.IsZero() {
		w.add("created_at >= $?", filter.CreatedFrom)
	}
	if !filter.CreatedTo.IsZero() {
		w.add("created_at <= $?", filter.CreatedTo)
	}

	count, err := repo.count(ctx, "university", w)
	if err != nil {
		return nil, 0, err
	}

	order := orderBy(filter.Ordering, map[string]string{
		"name": "name", "code": "code", "created_at": "created_at",
	}, " ORDER BY name ASC")
	q := "SELECT * FROM university" + w.clause() + order +
		fmt.Sprintf(" LIMIT %d OFFSET %d", filter.Limit(), filter.Offset())

	var rows []universityRow
	if err = repo.db.SelectContext(ctx, &rows, q, w.args...); err != nil {
		return nil, 0, errors.Wrap(err, "querying universities")
	}
	unis := make([]academic.University, 0, len(rows))
	for _, r := range rows {
		unis = append(unis, r.toDomain())
	}
	return unis, count, nil
}

func (repo *Repository) GetUniversityByID(ctx context.Context, id string) (academic.University, error) {
	var row universityRow
	if err := repo.db.GetContext(ctx, &row, "SELECT * FROM university WHERE id = $1", id); err != nil {
		return academic.University{}, notFound(err)
	}
	return row.toDomain(), nil
}

func (repo *Repository) UpdateUniversity(ctx context.Context, uni academic.University, isActive *bool) (academic.University, error) {
	const q = `UPDATE university SET
			name = COALESCE(NULLIF($2, ''), name),
			code = COALESCE(NULLIF($3, ''), code),
			website = COALESCE($4, website),
			is_active = COALESCE($5, is_active),
			updated_at = $6
		WHERE id = $1
		RETURNING *`
	var row universityRow
	err := repo.db.GetContext(ctx, &row, q,
		uni.ID, uni.Name, uni.Code, uni.Website, null.BoolFromPtr(isActive), uni.UpdatedAt,
	)
	if err != nil {
		return academic.University{}, notFound(errors.Wrap(err, "updating university"))
	}
	return row.toDomain(), nil
}

func (repo *Repository) DeleteUniversitiesByID(ctx context.Context, ids ...string) error {
	_, err := repo.db.ExecContext(ctx, "DELETE FROM university WHERE id = ANY($1)", pq.Array(ids))
	return errors.Wrap(err, "deleting universities")
}

// Faculties

type facultyRow struct {
	ID           string      `db:"id"`
	UniversityID string      `db:"university_id"`
	Name         string      `db:"name"`
	Code         string      `db:"code"`
	Dean         null.String `db:"dean"`
	IsActive     bool        `db:"is_active"`
	CreatedAt    time.Time   `db:"created_at"`
	UpdatedAt    time.Time   `db:"updated_at"`
}

func (r facultyRow) toDomain() academic.Faculty {
	return academic.Faculty{
		ID:           r.ID,
		UniversityID: r.UniversityID,
		Name:         r.Name,
		Code:         r.Code,
		Dean:         r.Dean,
		IsActive:     r.IsActive,
		CreatedAt:    r.CreatedAt.UTC(),
		UpdatedAt:    r.UpdatedAt.UTC(),
	}
}

func (repo *Repository) CheckFacultyCode(ctx context.Context, universityID, code string, excluded ...academic.Faculty) error {
	ids := make([]string, 0, len(excluded))
	for _, fac := range excluded {
		ids = append(ids, fac.ID)
	}
	var exists bool
	const q = "SELECT EXISTS (SELECT 1 FROM faculty WHERE university_id = $1 AND code = $2 AND id <> ALL($3))"
	if err := repo.db.GetContext(ctx, &exists, q, universityID, code, pq.Array(ids)); err != nil {
		return errors.Wrap(err, "checking faculty code")
	}
	if exists {
		return academic.ErrCodeExists
	}
	return nil
}

func (repo *Repository) CreateFaculty(ctx context.Context, fac academic.Faculty) (academic.Faculty, error) {
	const q = `INSERT INTO faculty (id, university_id, name, code, dean, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err := repo.db.ExecContext(ctx, q,
		fac.ID, fac.UniversityID, fac.Name, fac.Code, fac.Dean, fac.IsActive, fac.CreatedAt, fac.UpdatedAt,
	); err != nil {
		return academic.Faculty{}, errors.Wrap(err, "creating faculty")
	}
	return fac, nil
}

func (repo *Repository) QueryFaculties(ctx context.Context, filter academic.FacultyFilter) ([]academic.Faculty, int, error) {
	w := &whereBuilder{}
	if filter.Search != "" {
		w.add("(name ILIKE '%'||$?||'%' OR code ILIKE '%'||$?||'%')", filter.Search)
	}
	if filter.UniversityID != "" {
		w.add("university_id = $?", filter.UniversityID)
	}
	if filter.IsActive != nil {
		w.add("is_active = $?", *filter.IsActive)
	}

	count, err := repo.count(ctx, "faculty", w)
	if err != nil {
		return nil, 0, err
	}

	order := orderBy(filter.Ordering, map[string]string{
		"name": "name", "code": "code", "created_at": "created_at",
	}, " ORDER BY name ASC")
	q := "SELECT * FROM faculty" + w.clause() + order +
		fmt.Sprintf(" LIMIT %d OFFSET %d", filter.Limit(), filter.Offset())

	var rows []facultyRow
	if err = repo.db.SelectContext(ctx, &rows, q, w.args...); err != nil {
		return nil, 0, errors.Wrap(err, "querying faculties")
	}
	facs := make([]academic.Faculty, 0, len(rows))
	for _, r := range rows {
		facs = append(facs, r.toDomain())
	}
	return facs, count, nil
}

func (repo *Repository) GetFacultyByID(ctx context.Context, id string) (academic.Faculty, error) {
	var row facultyRow
	if err := repo.db.GetContext(ctx, &row, "SELECT * FROM faculty WHERE id = $1", id); err != nil {
		return academic.Faculty{}, notFound(err)
	}
	return row.toDomain(), nil
}

func (repo *Repository) UpdateFaculty(ctx context.Context, fac academic.Faculty, isActive *bool) (academic.Faculty, error) {
	const q = `UPDATE faculty SET
			name = COALESCE(NULLIF($2, ''), name),
			code = COALESCE(NULLIF($3, ''), code),
			dean = COALESCE($4, dean),
			is_active = COALESCE($5, is_active),
			updated_at = $6
		WHERE id = $1
		RETURNING *`
	var row facultyRow
	err := repo.db.GetContext(ctx, &row, q,
		fac.ID, fac.Name, fac.Code, fac.Dean, null.BoolFromPtr(isActive), fac.UpdatedAt,
	)
	if err != nil {
		return academic.Faculty{}, notFound(errors.Wrap(err, "updating faculty"))
	}
	return row.toDomain(), nil
}

func (repo *Repository) DeleteFacultiesByID(ctx context.Context, ids ...string) error {
	_, err := repo.db.ExecContext(ctx, "DELETE FROM faculty WHERE id = ANY($1)", pq.Array(ids))
	return errors.Wrap(err, "deleting faculties")
}

// Courses

type courseRow struct {
	ID             string      `db:"id"`
	FacultyID      string      `db:"faculty_id"`
	ProgramID      null.String `db:"program_id"`
	AcademicYearID null.String `db:"academic_year_id"`
	Name           string      `db:"name"`
	Code           string      `db:"code"`
	Credits        null.Int    `db:"credits"`
	IsActive       bool        `db:"is_active"`
	CreatedAt      time.Time   `db:"created_at"`
	UpdatedAt      time.Time   `db:"updated_at"`
}

func (r courseRow) toDomain() academic.Course {
	return academic.Course{
		ID:             r.ID,
		FacultyID:      r.FacultyID,
		ProgramID:      r.ProgramID,
		AcademicYearID: r.AcademicYearID,
		Name:           r.Name,
		Code:           r.Code,
		Credits:        r.Credits,
		IsActive:       r.IsActive,
		CreatedAt:      r.CreatedAt.UTC(),
		UpdatedAt:      r.UpdatedAt.UTC(),
	}
}

func (repo *Repository) CheckCourseCode(ctx context.Context, facultyID, code string, excluded ...academic.Course) error {
	ids := make([]string, 0, len(excluded))
	for _, course := range excluded {
		ids = append(ids, course.ID)
	}
	var exists bool
	const q = "SELECT EXISTS (SELECT 1 FROM course WHERE faculty_id = $1 AND code = $2 AND id <> ALL($3))"
	if err := repo.db.GetContext(ctx, &exists, q, facultyID, code, pq.Array(ids)); err != nil {
		return errors.Wrap(err, "checking course code")
	}
	if exists {
		return academic.ErrCodeExists
	}
	return nil
}

func (repo *Repository) CreateCourse(ctx context.Context, course academic.Course) (academic.Course, error) {
	const q = `INSERT INTO course (id, faculty_id, program_id, academic_year_id, name, code, credits, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	if _, err := repo.db.ExecContext(ctx, q,
		course.ID, course.FacultyID, course.ProgramID, course.AcademicYearID,
		course.Name, course.Code, course.Credits, course.IsActive, course.CreatedAt, course.UpdatedAt,
	); err != nil {
		return academic.Course{}, errors.Wrap(err, "creating course")
	}
	return course, nil
}

func (repo *Repository) QueryCourses(ctx context.Context, filter academic.CourseFilter) ([]academic.Course, int, error) {
	w := &whereBuilder{}
	if filter.Search != "" {
		w.add("(course.name ILIKE '%'||$?||'%' OR course.code ILIKE '%'||$?||'%')", filter.Search)
	}
	if filter.UniversityID != "" {
		w.add("faculty.university_id = $?", filter.UniversityID)
	}
	if filter.FacultyID != "" {
		w.add("course.faculty_id = $?", filter.FacultyID)
	}
	if filter.ProgramID != "" {
		w.add("course.program_id = $?", filter.ProgramID)
	}
	if filter.AcademicYearID != "" {
		w.add("course.academic_year_id = $?", filter.AcademicYearID)
	}
	if filter.IsActive != nil {
		w.add("course.is_active = $?", *filter.IsActive)
	}
	if !filter.CreatedFrom.IsZero() {
		w.add("course.created_at >= $?", filter.CreatedFrom)
	}
	if !filter.CreatedTo.IsZero() {
		w.add("course.created_at <= $?", filter.CreatedTo)
	}

	from := "course JOIN faculty ON faculty.id = course.faculty_id"

	var count int
	cq := "SELECT COUNT(*) FROM " + from + w.clause()
	if err := repo.db.GetContext(ctx, &count, cq, w.args...); err != nil {
		return nil, 0, errors.Wrap(err, "counting courses")
	}

	order := orderBy(filter.Ordering, map[string]string{
		"name": "course.name", "code": "course.code", "credits": "course.credits", "created_at": "course.created_at",
	}, " ORDER BY course.name ASC")
	q := "SELECT course.* FROM " + from + w.clause() + order +
		fmt.Sprintf(" LIMIT %d OFFSET %d", filter.Limit(), filter.Offset())

	var rows []courseRow
	if err := repo.db.SelectContext(ctx, &rows, q, w.args...); err != nil {
		return nil, 0, errors.Wrap(err, "querying courses")
	}
	courses := make([]academic.Course, 0, len(rows))
	for _, r := range rows {
		courses = append(courses, r.toDomain())
	}
	return courses, count, nil
}

func (repo *Repository) GetCourseByID(ctx context.Context, id string) (academic.Course, error) {
	var row courseRow
	if err := repo.db.GetContext(ctx, &row, "SELECT * FROM course WHERE id = $1", id); err != nil {
		return academic.Course{}, notFound(err)
	}
	return row.toDomain(), nil
}

func (repo *Repository) UpdateCourse(ctx context.Context, course academic.Course, isActive *bool) (academic.Course, error) {
	const q = `UPDATE course SET
			name = COALESCE(NULLIF($2, ''), name),
			code = COALESCE(NULLIF($3, ''), code),
			credits = COALESCE($4, credits),
			is_active = COALESCE($5, is_active),
			updated_at = $6
		WHERE id = $1
		RETURNING *`
	var row courseRow
	err := repo.db.GetContext(ctx, &row, q,
		course.ID, course.Name, course.Code, course.Credits, null.BoolFromPtr(isActive), course.UpdatedAt,
	)
	if err != nil {
		return academic.Course{}, notFound(errors.Wrap(err, "updating course"))
	}
	return row.toDomain(), nil
}

func (repo *Repository) DeleteCoursesByID(ctx context.Context, ids ...string) error {
	_, err := repo.db.ExecContext(ctx, "DELETE FROM course WHERE id = ANY($1)", pq.Array(ids))
	return errors.Wrap(err, "deleting courses")
}
