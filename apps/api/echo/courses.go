package echoapi

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/somohq/somo/core"
	"github.com/somohq/somo/core/academic"
)

// Course bulk import/export.
//
// Import accepts an xlsx upload whose first sheet carries a header row:
// faculty_id, name, code and optionally program_id, academic_year_id, credits.
// Rows are validated independently; valid rows are created and invalid ones
// reported back with their row number.

type (
	ImportRowError struct {
		Row   int    `json:"row"`
		Error string `json:"error"`
	}

	ImportResponse struct {
		Created int              `json:"created"`
		Errors  []ImportRowError `json:"errors"`
	}
)

var errImportFileMissing = echo.NewHTTPError(http.StatusBadRequest, "missing upload; send the spreadsheet as form field \"file\"")

func (api *academicApi) courseImport(ctx echo.Context) error {
	fileHdr, err := ctx.FormFile("file")
	if err != nil {
		return errImportFileMissing
	}
	src, err := fileHdr.Open()
	if err != nil {
		return errors.Wrap(err, "opening upload")
	}
	defer src.Close()

	f, err := excelize.OpenReader(src)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is not a valid xlsx spreadsheet")
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "spreadsheet has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return errors.Wrap(err, "reading spreadsheet rows")
	}
	if len(rows) < 2 {
		return echo.NewHTTPError(http.StatusBadRequest, "spreadsheet has no data rows")
	}

	cols := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		cols[core.CleanString(h, true /* lower */)] = i
	}
	for _, required := range []string{"faculty_id", "name", "code"} {
		if _, ok := cols[required]; !ok {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("missing column %q", required))
		}
	}

	cell := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return core.CleanString(row[i])
	}

	resp := ImportResponse{Errors: []ImportRowError{}}
	for n, row := range rows[1:] {
		rowNum := n + 2 // 1-based, after the header

		data := academic.NewCourse{
			FacultyID:      cell(row, "faculty_id"),
			ProgramID:      cell(row, "program_id"),
			AcademicYearID: cell(row, "academic_year_id"),
			Name:           cell(row, "name"),
			Code:           strings.ToUpper(cell(row, "code")),
		}
		if raw := cell(row, "credits"); raw != "" {
			credits, convErr := strconv.Atoi(raw)
			if convErr != nil {
				resp.Errors = append(resp.Errors, ImportRowError{Row: rowNum, Error: "credits must be a number"})
				continue
			}
			data.Credits = credits
		}

		if err = data.Validate(ctx.Request().Context(), api.validate, api.svc); err != nil {
			resp.Errors = append(resp.Errors, ImportRowError{Row: rowNum, Error: err.Error()})
			continue
		}
		if _, err = api.svc.CreateCourse(ctx.Request().Context(), data); err != nil {
			resp.Errors = append(resp.Errors, ImportRowError{Row: rowNum, Error: err.Error()})
			continue
		}
		resp.Created++
	}

	if resp.Created > 0 {
		api.options.InvalidateCourses()
	}
	return ctx.JSON(http.StatusOK, resp)
}

// courseExport streams the filtered course list as CSV. The same query
// parameters as the list endpoint apply; pagination is ignored so the export
// covers the whole selection.
func (api *academicApi) courseExport(ctx echo.Context) error {
	var filter academic.CourseFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to CourseFilter")
	}
	filter.Page = 1
	filter.PageSize = 100 // batched, pagination params from the query are ignored

	// run the first query before committing the response so an early failure
	// still yields a proper error response instead of a truncated CSV
	courses, count, err := api.svc.QueryCourses(ctx.Request().Context(), filter)
	if err != nil {
		return errors.Wrap(err, "querying courses")
	}

	res := ctx.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv")
	res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="courses.csv"`)
	res.WriteHeader(http.StatusOK)

	w := csv.NewWriter(res)
	if err = w.Write([]string{"id", "faculty_id", "program_id", "academic_year_id", "name", "code", "credits", "is_active", "created_at"}); err != nil {
		return errors.Wrap(err, "writing csv header")
	}

	for {
		for _, c := range courses {
			credits := ""
			if c.Credits.Valid {
				credits = strconv.Itoa(c.Credits.Int)
			}
			record := []string{
				c.ID, c.FacultyID, c.ProgramID.String, c.AcademicYearID.String,
				c.Name, c.Code, credits, strconv.FormatBool(c.IsActive),
				c.CreatedAt.Format("2006-01-02 15:04:05"),
			}
			if err = w.Write(record); err != nil {
				return errors.Wrap(err, "writing csv record")
			}
		}
		if filter.Page*filter.PageSize >= count || len(courses) == 0 {
			break
		}
		filter.Page++

		if courses, count, err = api.svc.QueryCourses(ctx.Request().Context(), filter); err != nil {
			return errors.Wrap(err, "querying courses")
		}
	}
	w.Flush()
	return w.Error()
}
