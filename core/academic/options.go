package academic

import (
	"context"
	"fmt"

	"github.com/somohq/somo/core"
	"github.com/somohq/somo/core/cache"
	"github.com/somohq/somo/core/filter"
)

// Cache keys of the dropdown option lists. Parent lists live under the bare
// key; cascading children live under the parent-scoped key, e.g.
// {"faculties", "<universityID>"}.
var (
	KeyAcademicYears = cache.NewKey("academic-years")
	KeyPrograms      = cache.NewKey("programs")
	KeyUniversities  = cache.NewKey("universities")
	KeyFaculties     = cache.NewKey("faculties")
	KeyCourses       = cache.NewKey("courses")
)

func FacultyOptionsKey(universityID string) cache.Key {
	return KeyFaculties.Append(universityID)
}

func CourseOptionsKey(facultyID string) cache.Key {
	return KeyCourses.Append(facultyID)
}

// OptionsService feeds the filter screens' dropdowns. Option lists are read
// through the cache manager (fetched once, then served from the store) and
// parent->child fan-out is kept warm by the syncer: whenever the full faculty
// or course list lands in the cache, per-parent child entries are derived
// from it after the debounce window.
type OptionsService struct {
	svc    *Service
	cache  *cache.Manager
	syncer *cache.Syncer
	log    core.Logger
}

func NewOptionsService(svc *Service, store cache.Store, log core.Logger, opts ...cache.SyncOption) *OptionsService {
	o := &OptionsService{
		svc:   svc,
		cache: cache.NewManager(store, log),
		log:   log,
	}

	opts = append(opts, cache.WithSyncErrorHandler(func(err error) {
		log.Error(fmt.Sprintf("options: %v", err), err)
	}))
	o.syncer = cache.NewSyncer(store, []cache.SyncRule{
		{
			Source:    KeyFaculties,
			Targets:   o.facultyFanoutTargets,
			Transform: facultyFanout,
		},
		{
			Source:    KeyCourses,
			Targets:   o.courseFanoutTargets,
			Transform: courseFanout,
		},
	}, opts...)
	return o
}

// Manager exposes the cache manager for read paths and tests.
func (o *OptionsService) Manager() *cache.Manager { return o.cache }

// Syncer exposes the syncer so the app can stop it on shutdown.
func (o *OptionsService) Syncer() *cache.Syncer { return o.syncer }

func (o *OptionsService) facultyFanoutTargets() []cache.Key {
	faculties, ok := o.cache.Store().Get(KeyFaculties)
	if !ok {
		return nil
	}
	seen := make(map[string]bool)
	var targets []cache.Key
	for _, fac := range faculties.([]Faculty) {
		if !seen[fac.UniversityID] {
			seen[fac.UniversityID] = true
			targets = append(targets, FacultyOptionsKey(fac.UniversityID))
		}
	}
	return targets
}

func facultyFanout(entry interface{}, target cache.Key) interface{} {
	universityID := target[len(target)-1]
	items := []filter.Item{}
	for _, fac := range entry.([]Faculty) {
		if fac.UniversityID == universityID {
			items = append(items, filter.Item{ID: fac.ID, Value: fac.ID, Label: fac.Name})
		}
	}
	return items
}

func (o *OptionsService) courseFanoutTargets() []cache.Key {
	courses, ok := o.cache.Store().Get(KeyCourses)
	if !ok {
		return nil
	}
	seen := make(map[string]bool)
	var targets []cache.Key
	for _, course := range courses.([]Course) {
		if !seen[course.FacultyID] {
			seen[course.FacultyID] = true
			targets = append(targets, CourseOptionsKey(course.FacultyID))
		}
	}
	return targets
}

func courseFanout(entry interface{}, target cache.Key) interface{} {
	facultyID := target[len(target)-1]
	items := []filter.Item{}
	for _, course := range entry.([]Course) {
		if course.FacultyID == facultyID {
			items = append(items, filter.Item{ID: course.ID, Value: course.ID, Label: course.Name})
		}
	}
	return items
}

// AcademicYearOptions returns the academic-year dropdown items.
func (o *OptionsService) AcademicYearOptions(ctx context.Context) []filter.Item {
	data := o.cache.Prefetch(ctx, KeyAcademicYears, func(ctx context.Context) (interface{}, error) {
		years, _, err := o.svc.repo.QueryAcademicYears(ctx, AcademicYearFilter{ListParams: allRows()})
		if err != nil {
			return nil, err
		}
		items := make([]filter.Item, 0, len(years))
		for _, y := range years {
			items = append(items, filter.Item{ID: y.ID, Value: y.ID, Label: y.Name})
		}
		return items, nil
	})
	return asItems(data)
}

// ProgramOptions returns the program dropdown items.
func (o *OptionsService) ProgramOptions(ctx context.Context) []filter.Item {
	data := o.cache.Prefetch(ctx, KeyPrograms, func(ctx context.Context) (interface{}, error) {
		progs, _, err := o.svc.repo.QueryPrograms(ctx, ProgramFilter{ListParams: allRows()})
		if err != nil {
			return nil, err
		}
		items := make([]filter.Item, 0, len(progs))
		for _, p := range progs {
			items = append(items, filter.Item{ID: p.ID, Value: p.ID, Label: fmt.Sprintf("%s (%s)", p.Name, p.Degree)})
		}
		return items, nil
	})
	return asItems(data)
}

// UniversityOptions returns the university dropdown items.
func (o *OptionsService) UniversityOptions(ctx context.Context) []filter.Item {
	data := o.cache.Prefetch(ctx, KeyUniversities, func(ctx context.Context) (interface{}, error) {
		unis, _, err := o.svc.repo.QueryUniversities(ctx, UniversityFilter{ListParams: allRows()})
		if err != nil {
			return nil, err
		}
		items := make([]filter.Item, 0, len(unis))
		for _, u := range unis {
			items = append(items, filter.Item{ID: u.ID, Value: u.ID, Label: u.Name})
		}
		return items, nil
	})
	return asItems(data)
}

// FacultyOptions returns the faculty dropdown items for one university.
// On a cold cache the full faculty list is fetched once, the requested
// university is seeded immediately and the remaining fan-out is left to the
// debounced sync pass.
func (o *OptionsService) FacultyOptions(ctx context.Context, universityID string) []filter.Item {
	if universityID == "" {
		return []filter.Item{}
	}
	key := FacultyOptionsKey(universityID)
	if res := filter.ReadCache(o.cache.Store(), key, nil, true); res.IsAvailable {
		return res.Data
	}

	entry := o.cache.Prefetch(ctx, KeyFaculties, func(ctx context.Context) (interface{}, error) {
		faculties, _, err := o.svc.repo.QueryFaculties(ctx, FacultyFilter{ListParams: allRows()})
		if err != nil {
			return nil, err
		}
		return faculties, nil
	})
	if entry == nil {
		return []filter.Item{}
	}
	o.syncer.Request()

	items := facultyFanout(entry, key)
	o.cache.Set(key, items)
	return asItems(items)
}

// CourseOptions returns the course dropdown items for one faculty.
func (o *OptionsService) CourseOptions(ctx context.Context, facultyID string) []filter.Item {
	if facultyID == "" {
		return []filter.Item{}
	}
	key := CourseOptionsKey(facultyID)
	if res := filter.ReadCache(o.cache.Store(), key, nil, true); res.IsAvailable {
		return res.Data
	}

	entry := o.cache.Prefetch(ctx, KeyCourses, func(ctx context.Context) (interface{}, error) {
		courses, _, err := o.svc.repo.QueryCourses(ctx, CourseFilter{ListParams: allRows()})
		if err != nil {
			return nil, err
		}
		return courses, nil
	})
	if entry == nil {
		return []filter.Item{}
	}
	o.syncer.Request()

	items := courseFanout(entry, key)
	o.cache.Set(key, items)
	return asItems(items)
}

// Invalidation hooks, called after mutations. Invalidating a parent list key
// also drops its fanned-out children.

func (o *OptionsService) InvalidateAcademicYears() { o.cache.Invalidate(KeyAcademicYears) }
func (o *OptionsService) InvalidatePrograms()      { o.cache.Invalidate(KeyPrograms) }
func (o *OptionsService) InvalidateUniversities()  { o.cache.Invalidate(KeyUniversities) }
func (o *OptionsService) InvalidateFaculties()     { o.cache.Invalidate(KeyFaculties) }
func (o *OptionsService) InvalidateCourses()       { o.cache.Invalidate(KeyCourses) }

func asItems(entry interface{}) []filter.Item {
	items := filter.CoerceItems(entry)
	if items == nil {
		items = []filter.Item{}
	}
	return items
}

// allRows sidesteps the list-endpoint page cap; option lists are served whole.
func allRows() core.ListParams {
	return core.ListParams{Page: 1, PageSize: 1000}
}
