package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/somohq/somo/core/academic"
)

// Dropdown option endpoints. Lists are served through the options cache:
// fetched once, kept warm by the fan-out syncer, invalidated by mutations.

type optionsApi struct {
	options *academic.OptionsService
}

func registerOptionsAPI(g *echo.Group, options *academic.OptionsService) {
	api := optionsApi{options: options}

	og := g.Group("/options")
	og.GET("/academic-years", api.academicYears)
	og.GET("/programs", api.programs)
	og.GET("/universities", api.universities)
	og.GET("/faculties", api.faculties)
	og.GET("/courses", api.courses)
}

func (api *optionsApi) academicYears(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.options.AcademicYearOptions(ctx.Request().Context()))
}

func (api *optionsApi) programs(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.options.ProgramOptions(ctx.Request().Context()))
}

func (api *optionsApi) universities(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.options.UniversityOptions(ctx.Request().Context()))
}

func (api *optionsApi) faculties(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.options.FacultyOptions(ctx.Request().Context(), ctx.QueryParam("university_id")))
}

func (api *optionsApi) courses(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.options.CourseOptions(ctx.Request().Context(), ctx.QueryParam("faculty_id")))
}
