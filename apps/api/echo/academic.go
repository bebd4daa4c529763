package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/somohq/somo/core/academic"
)

type academicApi struct {
	svc      *academic.Service
	options  *academic.OptionsService
	validate *validator.Validate
}

func registerAcademicAPI(g *echo.Group, svc *academic.Service, options *academic.OptionsService, validate *validator.Validate) {
	api := academicApi{
		svc:      svc,
		options:  options,
		validate: validate,
	}

	yg := g.Group("/academic-years")
	yg.GET("", api.academicYearQuery)
	yg.POST("", api.academicYearCreate)
	yg.DELETE("", api.academicYearDestroyMultiple)
	yg.GET("/:id", api.academicYearRetrieve)
	yg.PUT("/:id", api.academicYearUpdate)
	yg.DELETE("/:id", api.academicYearDestroy)

	pg := g.Group("/programs")
	pg.GET("", api.programQuery)
	pg.POST("", api.programCreate)
	pg.DELETE("", api.programDestroyMultiple)
	pg.GET("/:id", api.programRetrieve)
	pg.PUT("/:id", api.programUpdate)
	pg.DELETE("/:id", api.programDestroy)

	ug := g.Group("/universities")
	ug.GET("", api.universityQuery)
	ug.POST("", api.universityCreate)
	ug.DELETE("", api.universityDestroyMultiple)
	ug.GET("/:id", api.universityRetrieve)
	ug.PUT("/:id", api.universityUpdate)
	ug.DELETE("/:id", api.universityDestroy)

	fg := g.Group("/faculties")
	fg.GET("", api.facultyQuery)
	fg.POST("", api.facultyCreate)
	fg.DELETE("", api.facultyDestroyMultiple)
	fg.GET("/:id", api.facultyRetrieve)
	fg.PUT("/:id", api.facultyUpdate)
	fg.DELETE("/:id", api.facultyDestroy)

	cg := g.Group("/courses")
	cg.GET("", api.courseQuery)
	cg.POST("", api.courseCreate)
	cg.DELETE("", api.courseDestroyMultiple)
	cg.POST("/import", api.courseImport)
	cg.GET("/export", api.courseExport)
	cg.GET("/:id", api.courseRetrieve)
	cg.PUT("/:id", api.courseUpdate)
	cg.DELETE("/:id", api.courseDestroy)
}

type (
	// ListResponse is the envelope of every paginated list endpoint.
	ListResponse struct {
		Count    int         `json:"count"`
		Page     int         `json:"page"`
		PageSize int         `json:"page_size"`
		Results  interface{} `json:"results"`
	}

	DestroyMultipleRequest struct {
		IDs []string `query:"id"`
	}
)

func listResponse(ctx echo.Context, results interface{}, count, page, pageSize int) error {
	return ctx.JSON(http.StatusOK, ListResponse{
		Count:    count,
		Page:     page,
		PageSize: pageSize,
		Results:  results,
	})
}

// Academic years

func (api *academicApi) academicYearQuery(ctx echo.Context) error {
	var filter academic.AcademicYearFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to AcademicYearFilter")
	}
	filter.Normalize()

	years, count, err := api.svc.QueryAcademicYears(ctx.Request().Context(), filter)
	if err != nil {
		return errors.Wrap(err, "querying academic years")
	}
	if years == nil {
		years = []academic.AcademicYear{}
	}
	return listResponse(ctx, years, count, filter.Page, filter.PageSize)
}

func (api *academicApi) academicYearCreate(ctx echo.Context) error {
	var data academic.NewAcademicYear
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAcademicYear")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	year, err := api.svc.CreateAcademicYear(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating academic year")
	}
	api.options.InvalidateAcademicYears()
	return ctx.JSON(http.StatusCreated, year)
}

func (api *academicApi) academicYearRetrieve(ctx echo.Context) error {
	year, err := api.svc.GetAcademicYear(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, year)
}

func (api *academicApi) academicYearUpdate(ctx echo.Context) error {
	var data academic.UpdateAcademicYear
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateAcademicYear")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	year, err := api.svc.UpdateAcademicYear(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return err
	}
	api.options.InvalidateAcademicYears()
	return ctx.JSON(http.StatusOK, year)
}

func (api *academicApi) academicYearDestroy(ctx echo.Context) error {
	if err := api.svc.DeleteAcademicYears(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting academic year")
	}
	api.options.InvalidateAcademicYears()
	return ctx.NoContent(http.StatusNoContent)
}

func (api *academicApi) academicYearDestroyMultiple(ctx echo.Context) error {
	var query DestroyMultipleRequest
	if err := ctx.Bind(&query); err != nil {
		return errors.Wrap(err, "binding to DestroyMultipleRequest")
	}
	if query.IDs == nil {
		return ctx.NoContent(http.StatusNoContent)
	}
	if err := api.svc.DeleteAcademicYears(ctx.Request().Context(), query.IDs...); err != nil {
		return errors.Wrap(err, "deleting academic years")
	}
	api.options.InvalidateAcademicYears()
	return ctx.NoContent(http.StatusNoContent)
}

// Programs

func (api *academicApi) programQuery(ctx echo.Context) error {
	var filter academic.ProgramFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to ProgramFilter")
	}
	filter.Normalize()

	progs, count, err := api.svc.QueryPrograms(ctx.Request().Context(), filter)
	if err != nil {
		return errors.Wrap(err, "querying programs")
	}
	if progs == nil {
		progs = []academic.Program{}
	}
	return listResponse(ctx, progs, count, filter.Page, filter.PageSize)
}

func (api *academicApi) programCreate(ctx echo.Context) error {
	var data academic.NewProgram
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewProgram")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	prog, err := api.svc.CreateProgram(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating program")
	}
	api.options.InvalidatePrograms()
	return ctx.JSON(http.StatusCreated, prog)
}

func (api *academicApi) programRetrieve(ctx echo.Context) error {
	prog, err := api.svc.GetProgram(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, prog)
}

func (api *academicApi) programUpdate(ctx echo.Context) error {
	var data academic.UpdateProgram
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateProgram")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	prog, err := api.svc.UpdateProgram(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return err
	}
	api.options.InvalidatePrograms()
	return ctx.JSON(http.StatusOK, prog)
}

func (api *academicApi) programDestroy(ctx echo.Context) error {
	if err := api.svc.DeletePrograms(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting program")
	}
	api.options.InvalidatePrograms()
	return ctx.NoContent(http.StatusNoContent)
}

func (api *academicApi) programDestroyMultiple(ctx echo.Context) error {
	var query DestroyMultipleRequest
	if err := ctx.Bind(&query); err != nil {
		return errors.Wrap(err, "binding to DestroyMultipleRequest")
	}
	if query.IDs == nil {
		return ctx.NoContent(http.StatusNoContent)
	}
	if err := api.svc.DeletePrograms(ctx.Request().Context(), query.IDs...); err != nil {
		return errors.Wrap(err, "deleting programs")
	}
	api.options.InvalidatePrograms()
	return ctx.NoContent(http.StatusNoContent)
}

// Universities

func (api *academicApi) universityQuery(ctx echo.Context) error {
	var filter academic.UniversityFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to UniversityFilter")
	}
	filter.Normalize()

	unis, count, err := api.svc.QueryUniversities(ctx.Request().Context(), filter)
	if err != nil {
		return errors.Wrap(err, "querying universities")
	}
	if unis == nil {
		unis = []academic.University{}
	}
	return listResponse(ctx, unis, count, filter.Page, filter.PageSize)
}

func (api *academicApi) universityCreate(ctx echo.Context) error {
	var data academic.NewUniversity
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewUniversity")
	}
	if err := data.Validate(ctx.Request().Context(), api.validate, api.svc); err != nil {
		return err
	}

	uni, err := api.svc.CreateUniversity(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating university")
	}
	api.options.InvalidateUniversities()
	return ctx.JSON(http.StatusCreated, uni)
}

func (api *academicApi) universityRetrieve(ctx echo.Context) error {
	uni, err := api.svc.GetUniversity(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, uni)
}

func (api *academicApi) universityUpdate(ctx echo.Context) error {
	orig, err := api.svc.GetUniversity(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}

	var data academic.UpdateUniversity
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateUniversity")
	}
	if err = data.Validate(ctx.Request().Context(), api.validate, api.svc, orig); err != nil {
		return err
	}

	uni, err := api.svc.UpdateUniversity(ctx.Request().Context(), orig.ID, data)
	if err != nil {
		return err
	}
	api.options.InvalidateUniversities()
	return ctx.JSON(http.StatusOK, uni)
}

func (api *academicApi) universityDestroy(ctx echo.Context) error {
	if err := api.svc.DeleteUniversities(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting university")
	}
	// faculties and courses cascade in the DB; drop their options too
	api.options.InvalidateUniversities()
	api.options.InvalidateFaculties()
	api.options.InvalidateCourses()
	return ctx.NoContent(http.StatusNoContent)
}

func (api *academicApi) universityDestroyMultiple(ctx echo.Context) error {
	var query DestroyMultipleRequest
	if err := ctx.Bind(&query); err != nil {
		return errors.Wrap(err, "binding to DestroyMultipleRequest")
	}
	if query.IDs == nil {
		return ctx.NoContent(http.StatusNoContent)
	}
	if err := api.svc.DeleteUniversities(ctx.Request().Context(), query.IDs...); err != nil {
		return errors.Wrap(err, "deleting universities")
	}
	api.options.InvalidateUniversities()
	api.options.InvalidateFaculties()
	api.options.InvalidateCourses()
	return ctx.NoContent(http.StatusNoContent)
}

// Faculties

func (api *academicApi) facultyQuery(ctx echo.Context) error {
	var filter academic.FacultyFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to FacultyFilter")
	}
	filter.Normalize()

	facs, count, err := api.svc.QueryFaculties(ctx.Request().Context(), filter)
	if err != nil {
		return errors.Wrap(err, "querying faculties")
	}
	if facs == nil {
		facs = []academic.Faculty{}
	}
	return listResponse(ctx, facs, count, filter.Page, filter.PageSize)
}

func (api *academicApi) facultyCreate(ctx echo.Context) error {
	var data academic.NewFaculty
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewFaculty")
	}
	if err := data.Validate(ctx.Request().Context(), api.validate, api.svc); err != nil {
		return err
	}

	fac, err := api.svc.CreateFaculty(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating faculty")
	}
	api.options.InvalidateFaculties()
	return ctx.JSON(http.StatusCreated, fac)
}

func (api *academicApi) facultyRetrieve(ctx echo.Context) error {
	fac, err := api.svc.GetFaculty(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, fac)
}

func (api *academicApi) facultyUpdate(ctx echo.Context) error {
	orig, err := api.svc.GetFaculty(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}

	var data academic.UpdateFaculty
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateFaculty")
	}
	if err = data.Validate(ctx.Request().Context(), api.validate, api.svc, orig); err != nil {
		return err
	}

	fac, err := api.svc.UpdateFaculty(ctx.Request().Context(), orig.ID, data)
	if err != nil {
		return err
	}
	api.options.InvalidateFaculties()
	return ctx.JSON(http.StatusOK, fac)
}

func (api *academicApi) facultyDestroy(ctx echo.Context) error {
	if err := api.svc.DeleteFaculties(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting faculty")
	}
	api.options.InvalidateFaculties()
	api.options.InvalidateCourses()
	return ctx.NoContent(http.StatusNoContent)
}

func (api *academicApi) facultyDestroyMultiple(ctx echo.Context) error {
	var query DestroyMultipleRequest
	if err := ctx.Bind(&query); err != nil {
		return errors.Wrap(err, "binding to DestroyMultipleRequest")
	}
	if query.IDs == nil {
		return ctx.NoContent(http.StatusNoContent)
	}
	if err := api.svc.DeleteFaculties(ctx.Request().Context(), query.IDs...); err != nil {
		return errors.Wrap(err, "deleting faculties")
	}
	api.options.InvalidateFaculties()
	api.options.InvalidateCourses()
	return ctx.NoContent(http.StatusNoContent)
}

// Courses

func (api *academicApi) courseQuery(ctx echo.Context) error {
	var filter academic.CourseFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to CourseFilter")
	}
	filter.Normalize()

	courses, count, err := api.svc.QueryCourses(ctx.Request().Context(), filter)
	if err != nil {
		return errors.Wrap(err, "querying courses")
	}
	if courses == nil {
		courses = []academic.Course{}
	}
	return listResponse(ctx, courses, count, filter.Page, filter.PageSize)
}

func (api *academicApi) courseCreate(ctx echo.Context) error {
	var data academic.NewCourse
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewCourse")
	}
	if err := data.Validate(ctx.Request().Context(), api.validate, api.svc); err != nil {
		return err
	}

	course, err := api.svc.CreateCourse(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating course")
	}
	api.options.InvalidateCourses()
	return ctx.JSON(http.StatusCreated, course)
}

func (api *academicApi) courseRetrieve(ctx echo.Context) error {
	course, err := api.svc.GetCourse(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, course)
}

func (api *academicApi) courseUpdate(ctx echo.Context) error {
	orig, err := api.svc.GetCourse(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}

	var data academic.UpdateCourse
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateCourse")
	}
	if err = data.Validate(ctx.Request().Context(), api.validate, api.svc, orig); err != nil {
		return err
	}

	course, err := api.svc.UpdateCourse(ctx.Request().Context(), orig.ID, data)
	if err != nil {
		return err
	}
	api.options.InvalidateCourses()
	return ctx.JSON(http.StatusOK, course)
}

func (api *academicApi) courseDestroy(ctx echo.Context) error {
	if err := api.svc.DeleteCourses(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting course")
	}
	api.options.InvalidateCourses()
	return ctx.NoContent(http.StatusNoContent)
}

func (api *academicApi) courseDestroyMultiple(ctx echo.Context) error {
	var query DestroyMultipleRequest
	if err := ctx.Bind(&query); err != nil {
		return errors.Wrap(err, "binding to DestroyMultipleRequest")
	}
	if query.IDs == nil {
		return ctx.NoContent(http.StatusNoContent)
	}
	if err := api.svc.DeleteCourses(ctx.Request().Context(), query.IDs...); err != nil {
		return errors.Wrap(err, "deleting courses")
	}
	api.options.InvalidateCourses()
	return ctx.NoContent(http.StatusNoContent)
}
