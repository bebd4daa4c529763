package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/somohq/somo/core/academic"
	"github.com/somohq/somo/core/cache"
	"github.com/somohq/somo/core/filter"
)

// Friendly-filter endpoints. The console posts a screen's raw filter model
// (and optionally the previous model) and gets back the cascade state of its
// dropdowns, the fields to clear after a parent change, and a human-readable
// {label, value} record for the filter chips.

type (
	filtersApi struct {
		options    *academic.OptionsService
		dateFormat string
		screens    map[string]*filterScreen
	}

	// filterScreen is the static configuration of one console screen.
	filterScreen struct {
		cascade   filter.CascadeConfig
		resolvers map[string]*filter.Descriptor
		builder   filter.Builder
		// warm pre-loads the cache entries the screen's cascade reads from.
		warm func(ctx echo.Context, model filter.Model)
	}

	FilterRequest struct {
		Model    filter.Model `json:"model"`
		Previous filter.Model `json:"previous_model"`
		// DateFormat overrides the configured display pattern, e.g. "DD/MM/YYYY".
		DateFormat string `json:"date_format"`
	}

	FilterResponse struct {
		Model      filter.Model                  `json:"model"`
		Resets     []string                      `json:"resets"`
		Fields     map[string]filter.FieldResult `json:"fields"`
		AnyLoading bool                          `json:"any_loading"`
		Friendly   filter.Record                 `json:"friendly"`
	}
)

func registerFiltersAPI(g *echo.Group, options *academic.OptionsService, dateFormat string) {
	api := &filtersApi{
		options:    options,
		dateFormat: dateFormat,
		screens:    consoleScreens(options),
	}
	for _, screen := range api.screens {
		if err := screen.cascade.Validate(); err != nil {
			panic(err) // static configuration, fails at startup
		}
	}

	g.POST("/filters/:screen", api.resolve)
}

func (api *filtersApi) resolve(ctx echo.Context) error {
	screen, ok := api.screens[ctx.Param("screen")]
	if !ok {
		return errHTTPNotFound
	}

	var req FilterRequest
	if err := ctx.Bind(&req); err != nil {
		return errors.Wrap(err, "binding to FilterRequest")
	}
	model := req.Model
	if model == nil {
		model = filter.Model{}
	}
	dateFormat := req.DateFormat
	if dateFormat == "" {
		dateFormat = api.dateFormat
	}

	// a parent change invalidates the submitted child values
	var resets []string
	if req.Previous != nil {
		resets = filter.CascadeResets(req.Previous, model, screen.cascade.Fields)
		model = filter.ApplyCascadeResets(req.Previous, model, screen.cascade.Fields)
	}
	if resets == nil {
		resets = []string{}
	}

	if screen.warm != nil {
		screen.warm(ctx, model)
	}

	cascade := filter.ResolveCascade(api.options.Manager().Store(), model, screen.cascade)
	record := screen.builder.Build(model, screen.resolvers, &cascade, dateFormat)

	return ctx.JSON(http.StatusOK, FilterResponse{
		Model:      model,
		Resets:     resets,
		Fields:     cascade.Fields,
		AnyLoading: cascade.AnyLoading,
		Friendly:   record,
	})
}

// consoleScreens wires the admin console's filter screens: which dropdowns
// cascade from which, where their data lives in the options cache, and how
// the remaining fields render.
func consoleScreens(options *academic.OptionsService) map[string]*filterScreen {
	universityField := filter.CascadingField{
		Name: "university_id",
		Key:  academic.KeyUniversities,
	}
	facultyField := filter.CascadingField{
		Name:        "faculty_id",
		ParentField: "university_id",
		BuildKey: func(parentValue interface{}) cache.Key {
			return academic.FacultyOptionsKey(filter.Stringify(parentValue))
		},
	}

	common := map[string]*filter.Descriptor{
		"search": {Type: filter.TypeString},
		"is_active": {
			Type:       filter.TypeBoolean,
			TrueLabel:  filter.ActiveLabel,
			FalseLabel: filter.InactiveLabel,
		},
		"created_from": {Type: filter.TypeDate},
		"created_to":   {Type: filter.TypeDate},
	}

	return map[string]*filterScreen{
		"universities": {
			resolvers: common,
		},
		"faculties": {
			cascade: filter.CascadeConfig{
				Fields: []filter.CascadingField{universityField},
			},
			resolvers: common,
			warm: func(ctx echo.Context, _ filter.Model) {
				options.UniversityOptions(ctx.Request().Context())
			},
		},
		"courses": {
			cascade: filter.CascadeConfig{
				Fields: []filter.CascadingField{
					universityField,
					facultyField,
					{Name: "program_id", Key: academic.KeyPrograms},
					{Name: "academic_year_id", Key: academic.KeyAcademicYears},
				},
			},
			resolvers: common,
			warm: func(ctx echo.Context, model filter.Model) {
				rctx := ctx.Request().Context()
				options.UniversityOptions(rctx)
				options.ProgramOptions(rctx)
				options.AcademicYearOptions(rctx)
				if uni := filter.Stringify(model["university_id"]); uni != "" {
					options.FacultyOptions(rctx, uni)
				}
			},
		},
	}
}
