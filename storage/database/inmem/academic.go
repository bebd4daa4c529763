package inmemdb

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/somohq/somo/core/academic"
)

type Repository struct {
	db *DB
}

var _ academic.Repository = (*Repository)(nil) // interface compliance check

func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

func matches(search string, fields ...string) bool {
	if search == "" {
		return true
	}
	search = strings.ToLower(search)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), search) {
			return true
		}
	}
	return false
}

func inRange(t, from, to time.Time) bool {
	if !from.IsZero() && t.Before(from) {
		return false
	}
	if !to.IsZero() && t.After(to) {
		return false
	}
	return true
}

// paginate returns the [lo, hi) window of a result set of length n.
func paginate(n, limit, offset int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if offset >= n {
		return 0, 0
	}
	hi := offset + limit
	if limit <= 0 || hi > n {
		hi = n
	}
	return offset, hi
}

// ordering splits a "-field" style ordering spec into (field, descending).
func ordering(spec, def string) (string, bool) {
	if spec == "" {
		spec = def
	}
	if strings.HasPrefix(spec, "-") {
		return spec[1:], true
	}
	return spec, false
}

// Academic years

func (repo *Repository) queryAcademicYears() []academic.AcademicYear {
	years := make([]academic.AcademicYear, 0, len(repo.db.academicYears))
	for _, y := range repo.db.academicYears {
		years = append(years, *y)
	}
	return years
}

func (repo *Repository) CreateAcademicYear(_ context.Context, year academic.AcademicYear) (academic.AcademicYear, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()
	repo.db.academicYears[year.ID] = &year
	return year, nil
}

func (repo *Repository) QueryAcademicYears(_ context.Context, filter academic.AcademicYearFilter) ([]academic.AcademicYear, int, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	years := make([]academic.AcademicYear, 0)
	for _, y := range repo.queryAcademicYears() {
		if !matches(filter.Search, y.Name) {
			continue
		}
		if filter.IsCurrent != nil && y.IsCurrent != *filter.IsCurrent {
			continue
		}
		years = append(years, y)
	}

	field, desc := ordering(filter.Ordering, "-start_date")
	sort.Slice(years, func(i, j int) bool {
		var less bool
		switch field {
		case "name":
			less = years[i].Name < years[j].Name
		case "created_at":
			less = years[i].CreatedAt.Before(years[j].CreatedAt)
		default:
			less = years[i].StartDate.Before(years[j].StartDate)
		}
		if desc {
			return !less
		}
		return less
	})

	count := len(years)
	lo, hi := paginate(count, filter.Limit(), filter.Offset())
	return years[lo:hi], count, nil
}

func (repo *Repository) GetAcademicYearByID(_ context.Context, id string) (academic.AcademicYear, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if y, ok := repo.db.academicYears[id]; ok {
		return *y, nil
	}
	return academic.AcademicYear{}, academic.ErrNotFound
}

func (repo *Repository) UpdateAcademicYear(_ context.Context, year academic.AcademicYear, isCurrent *bool) (academic.AcademicYear, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	// only save set fields
	orig, ok := repo.db.academicYears[year.ID]
	if !ok {
		return academic.AcademicYear{}, academic.ErrNotFound
	}
	if year.Name != "" {
		orig.Name = year.Name
	}
	if !year.StartDate.IsZero() {
		orig.StartDate = year.StartDate
	}
	if !year.EndDate.IsZero() {
		orig.EndDate = year.EndDate
	}
	if isCurrent != nil {
		orig.IsCurrent = *isCurrent
	}
	orig.UpdatedAt = year.UpdatedAt
	return *orig, nil
}

func (repo *Repository) DeleteAcademicYearsByID(_ context.Context, ids ...string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()
	for _, id := range ids {
		delete(repo.db.academicYears, id)
	}
	return nil
}

// Programs

func (repo *Repository) queryPrograms() []academic.Program {
	progs := make([]academic.Program, 0, len(repo.db.programs))
	for _, p := range repo.db.programs {
		progs = append(progs, *p)
	}
	return progs
}

func (repo *Repository) CreateProgram(_ context.Context, prog academic.Program) (academic.Program, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()
	repo.db.programs[prog.ID] = &prog
	return prog, nil
}

func (repo *Repository) QueryPrograms(_ context.Context, filter academic.ProgramFilter) ([]academic.Program, int, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	progs := make([]academic.Program, 0)
	for _, p := range repo.queryPrograms() {
		if !matches(filter.Search, p.Name) {
			continue
		}
		if filter.Degree != "" && p.Degree != filter.Degree {
			continue
		}
		if filter.IsActive != nil && p.IsActive != *filter.IsActive {
			continue
		}
		progs = append(progs, p)
	}

	field, desc := ordering(filter.Ordering, "name")
	sort.Slice(progs, func(i, j int) bool {
		var less bool
		switch field {
		case "degree":
			less = progs[i].Degree < progs[j].Degree
		case "created_at":
			less = progs[i].CreatedAt.Before(progs[j].CreatedAt)
		default:
			less = progs[i].Name < progs[j].Name
		}
		if desc {
			return !less
		}
		return less
	})

	count := len(progs)
	lo, hi := paginate(count, filter.Limit(), filter.Offset())
	return progs[lo:hi], count, nil
}

func (repo *Repository) GetProgramByID(_ context.Context, id string) (academic.Program, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if p, ok := repo.db.programs[id]; ok {
		return *p, nil
	}
	return academic.Program{}, academic.ErrNotFound
}

func (repo *Repository) UpdateProgram(_ context.Context, prog academic.Program, isActive *bool) (academic.Program, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	orig, ok := repo.db.programs[prog.ID]
	if !ok {
		return academic.Program{}, academic.ErrNotFound
	}
	if prog.Name != "" {
		orig.Name = prog.Name
	}
	if prog.Degree != "" {
		orig.Degree = prog.Degree
	}
	if isActive != nil {
		orig.IsActive = *isActive
	}
	orig.UpdatedAt = prog.UpdatedAt
	return *orig, nil
}

func (repo *Repository) DeleteProgramsByID(_ context.Context, ids ...string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()
	for _, id := range ids {
		delete(repo.db.programs, id)
	}
	return nil
}

// Universities

func (repo *Repository) queryUniversities() []academic.University {
	unis := make([]academic.University, 0, len(repo.db.universities))
	for _, u := range repo.db.universities {
		unis = append(unis, *u)
	}
	return unis
}

func (repo *Repository) CheckUniversityCode(_ context.Context, code string, excluded ...academic.University) error {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	excl := make(map[string]struct{}, len(excluded))
	for _, uni := range excluded {
		excl[uni.ID] = struct{}{}
	}
	for _, uni := range repo.queryUniversities() {
		if _, skip := excl[uni.ID]; skip {
			continue
		}
		if uni.Code == code {
			return academic.ErrCodeExists
		}
	}
	return nil
}

func (repo *Repository) CreateUniversity(_ context.Context, uni academic.University) (academic.University, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()
	repo.db.universities[uni.ID] = &uni
	return uni, nil
}

func (repo *Repository) QueryUniversities(_ context.Context, filter academic.UniversityFilter) ([]academic.University, int, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	unis := make([]academic.University, 0)
	for _, u := range repo.queryUniversities() {
		if !matches(filter.Search, u.Name, u.Code) {
			continue
		}
		if filter.IsActive != nil && u.IsActive != *filter.IsActive {
			continue
		}
		if !inRange(u.CreatedAt, filter.CreatedFrom, filter.CreatedTo) {
			continue
		}
		unis = append(unis, u)
	}

	field, desc := ordering(filter.Ordering, "name")
	sort.Slice(unis, func(i, j int) bool {
		var less bool
		switch field {
		case "code":
			less = unis[i].Code < unis[j].Code
		case "created_at":
			less = unis[i].CreatedAt.Before(unis[j].CreatedAt)
		default:
			less = unis[i].Name < unis[j].Name
		}
		if desc {
			return !less
		}
		return less
	})

	count := len(unis)
	lo, hi := paginate(count, filter.Limit(), filter.Offset())
	return unis[lo:hi], count, nil
}

func (repo *Repository) GetUniversityByID(_ context.Context, id string) (academic.University, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if u, ok := repo.db.universities[id]; ok {
		return *u, nil
	}
	return academic.University{}, academic.ErrNotFound
}

func (repo *Repository) UpdateUniversity(_ context.Context, uni academic.University, isActive *bool) (academic.University, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	orig, ok := repo.db.universities[uni.ID]
	if !ok {
		return academic.University{}, academic.ErrNotFound
	}
	if uni.Name != "" {
		orig.Name = uni.Name
	}
	if uni.Code != "" {
		orig.Code = uni.Code
	}
	if uni.Website.Valid {
		orig.Website = uni.Website
	}
	if isActive != nil {
		orig.IsActive = *isActive
	}
	orig.UpdatedAt = uni.UpdatedAt
	return *orig, nil
}

func (repo *Repository) DeleteUniversitiesByID(_ context.Context, ids ...string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()
	for _, id := range ids {
		delete(repo.db.universities, id)
		for fid, fac := range repo.db.faculties {
			if fac.UniversityID == id {
				delete(repo.db.faculties, fid)
				for cid, course := range repo.db.courses {
					if course.FacultyID == fid {
						delete(repo.db.courses, cid)
					}
				}
			}
		}
	}
	return nil
}

// Faculties

func (repo *Repository) queryFaculties() []academic.Faculty {
	facs := make([]academic.Faculty, 0, len(repo.db.faculties))
	for _, f := range repo.db.faculties {
		facs = append(facs, *f)
	}
	return facs
}

func (repo *Repository) CheckFacultyCode(_ context.Context, universityID, code string, excluded ...academic.Faculty) error {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	excl := make(map[string]struct{}, len(excluded))
	for _, fac := range excluded {
		excl[fac.ID] = struct{}{}
	}
	for _, fac := range repo.queryFaculties() {
		if _, skip := excl[fac.ID]; skip {
			continue
		}
		if fac.UniversityID == universityID && fac.Code == code {
			return academic.ErrCodeExists
		}
	}
	return nil
}

func (repo *Repository) CreateFaculty(_ context.Context, fac academic.Faculty) (academic.Faculty, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()
	repo.db.faculties[fac.ID] = &fac
	return fac, nil
}

func (repo *Repository) QueryFaculties(_ context.Context, filter academic.FacultyFilter) ([]academic.Faculty, int, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	facs := make([]academic.Faculty, 0)
	for _, f := range repo.queryFaculties() {
		if !matches(filter.Search, f.Name, f.Code) {
			continue
		}
		if filter.UniversityID != "" && f.UniversityID != filter.UniversityID {
			continue
		}
		if filter.IsActive != nil && f.IsActive != *filter.IsActive {
			continue
		}
		facs = append(facs, f)
	}

	field, desc := ordering(filter.Ordering, "name")
	sort.Slice(facs, func(i, j int) bool {
		var less bool
		switch field {
		case "code":
			less = facs[i].Code < facs[j].Code
		case "created_at":
			less = facs[i].CreatedAt.Before(facs[j].CreatedAt)
		default:
			less = facs[i].Name < facs[j].Name
		}
		if desc {
			return !less
		}
		return less
	})

	count := len(facs)
	lo, hi := paginate(count, filter.Limit(), filter.Offset())
	return facs[lo:hi], count, nil
}

func (repo *Repository) GetFacultyByID(_ context.Context, id string) (academic.Faculty, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if f, ok := repo.db.faculties[id]; ok {
		return *f, nil
	}
	return academic.Faculty{}, academic.ErrNotFound
}

func (repo *Repository) UpdateFaculty(_ context.Context, fac academic.Faculty, isActive *bool) (academic.Faculty, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	orig, ok := repo.db.faculties[fac.ID]
	if !ok {
		return academic.Faculty{}, academic.ErrNotFound
	}
	if fac.Name != "" {
		orig.Name = fac.Name
	}
	if fac.Code != "" {
		orig.Code = fac.Code
	}
	if fac.Dean.Valid {
		orig.Dean = fac.Dean
	}
	if isActive != nil {
		orig.IsActive = *isActive
	}
	orig.UpdatedAt = fac.UpdatedAt
	return *orig, nil
}

func (repo *Repository) DeleteFacultiesByID(_ context.Context, ids ...string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()
	for _, id := range ids {
		delete(repo.db.faculties, id)
		for cid, course := range repo.db.courses {
			if course.FacultyID == id {
				delete(repo.db.courses, cid)
			}
		}
	}
	return nil
}

// Courses

func (repo *Repository) queryCourses() []academic.Course {
	courses := make([]academic.Course, 0, len(repo.db.courses))
	for _, c := range repo.db.courses {
		courses = append(courses, *c)
	}
	return courses
}

func (repo *Repository) CheckCourseCode(_ context.Context, facultyID, code string, excluded ...academic.Course) error {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	excl := make(map[string]struct{}, len(excluded))
	for _, course := range excluded {
		excl[course.ID] = struct{}{}
	}
	for _, course := range repo.queryCourses() {
		if _, skip := excl[course.ID]; skip {
			continue
		}
		if course.FacultyID == facultyID && course.Code == code {
			return academic.ErrCodeExists
		}
	}
	return nil
}

func (repo *Repository) CreateCourse(_ context.Context, course academic.Course) (academic.Course, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()
	repo.db.courses[course.ID] = &course
	return course, nil
}

func (repo *Repository) QueryCourses(_ context.Context, filter academic.CourseFilter) ([]academic.Course, int, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	courses := make([]academic.Course, 0)
	for _, c := range repo.queryCourses() {
		if !matches(filter.Search, c.Name, c.Code) {
			continue
		}
		if filter.UniversityID != "" {
			fac, ok := repo.db.faculties[c.FacultyID]
			if !ok || fac.UniversityID != filter.UniversityID {
				continue
			}
		}
		if filter.FacultyID != "" && c.FacultyID != filter.FacultyID {
			continue
		}
		if filter.ProgramID != "" && c.ProgramID.String != filter.ProgramID {
			continue
		}
		if filter.AcademicYearID != "" && c.AcademicYearID.String != filter.AcademicYearID {
			continue
		}
		if filter.IsActive != nil && c.IsActive != *filter.IsActive {
			continue
		}
		if !inRange(c.CreatedAt, filter.CreatedFrom, filter.CreatedTo) {
			continue
		}
		courses = append(courses, c)
	}

	field, desc := ordering(filter.Ordering, "name")
	sort.Slice(courses, func(i, j int) bool {
		var less bool
		switch field {
		case "code":
			less = courses[i].Code < courses[j].Code
		case "credits":
			less = courses[i].Credits.Int < courses[j].Credits.Int
		case "created_at":
			less = courses[i].CreatedAt.Before(courses[j].CreatedAt)
		default:
			less = courses[i].Name < courses[j].Name
		}
		if desc {
			return !less
		}
		return less
	})

	count := len(courses)
	lo, hi := paginate(count, filter.Limit(), filter.Offset())
	return courses[lo:hi], count, nil
}

func (repo *Repository) GetCourseByID(_ context.Context, id string) (academic.Course, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if c, ok := repo.db.courses[id]; ok {
		return *c, nil
	}
	return academic.Course{}, academic.ErrNotFound
}

func (repo *Repository) UpdateCourse(_ context.Context, course academic.Course, isActive *bool) (academic.Course, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	orig, ok := repo.db.courses[course.ID]
	if !ok {
		return academic.Course{}, academic.ErrNotFound
	}
	if course.Name != "" {
		orig.Name = course.Name
	}
	if course.Code != "" {
		orig.Code = course.Code
	}
	if course.Credits.Valid {
		orig.Credits = course.Credits
	}
	if isActive != nil {
		orig.IsActive = *isActive
	}
	orig.UpdatedAt = course.UpdatedAt
	return *orig, nil
}

func (repo *Repository) DeleteCoursesByID(_ context.Context, ids ...string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()
	for _, id := range ids {
		delete(repo.db.courses, id)
	}
	return nil
}
