package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/dev-toolbox/color-api/colorconv"
	"github.com/dev-toolbox/color-api/models"
	"github.com/dev-toolbox/color-api/palette"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// GET /
func (app *Application) home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "Color Toolbox API")
}

// POST /v1/colors/convert
func (app *Application) convertColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	req := &models.ConvertRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	values, err := colorconv.ConvertE(req.Value, req.Format, req.CurrentAlpha())
	if err != nil {
		app.invalidColor(w, r, err)
		return
	}

	if app.Config.DevMode {
		log.Printf("converted %q (%s) to %s alpha %s", req.Value, req.Format, values.Hex, colorconv.FormatAlpha(values.Alpha))
	}

	app.respondWithConversion(w, r, req.Value, req.Format, values)
}

// respondWithConversion records the color in the client's history and
// writes the full conversion.
func (app *Application) respondWithConversion(w http.ResponseWriter, r *http.Request, input string, format colorconv.Format, values colorconv.Values) {
	response := models.NewConversionResponse(input, format, values)

	recent, err := app.rememberColor(w, r, values.Hex)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	response.Recent = recent

	writeJSON(w, http.StatusOK, response)
}

// GET /v1/colors/detect?value=
func (app *Application) detectColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	value := r.URL.Query().Get("value")
	response := models.DetectResponse{Value: value}
	if f, ok := colorconv.Detect(value); ok {
		response.Format = f.String()
		response.Valid = true
	}

	writeJSON(w, http.StatusOK, response)
}

// GET /v1/colors/formats
func (app *Application) getFormats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}
	writeJSON(w, http.StatusOK, models.SupportedFormats())
}

// GET /v1/colors/random
func (app *Application) getRandomColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}
	app.convertExample(w, r, palette.Random(nil))
}

// GET /v1/colors/default
func (app *Application) getDefaultColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}
	app.convertExample(w, r, palette.Default)
}

func (app *Application) convertExample(w http.ResponseWriter, r *http.Request, hex string) {
	values, err := colorconv.ConvertE(hex, colorconv.FormatHex, 1)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	app.respondWithConversion(w, r, hex, colorconv.FormatHex, values)
}

// GET /v1/colors/daily
func (app *Application) getDailyColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}
	if app.Scheduler == nil {
		app.internalServerError(w, r, errors.New("daily color scheduler is not running"))
		return
	}

	dailyColor := app.Scheduler.Current()
	values, err := colorconv.ConvertE(dailyColor.Hex, colorconv.FormatHex, 1)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := models.DailyColorResponse{
		Date:      dailyColor.Date.Format("2006-01-02"),
		ColorName: dailyColor.ColorName,
		Values:    values,
	}
	writeJSON(w, http.StatusOK, response)
}

// GET, DELETE /v1/colors/history
func (app *Application) recentColors(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		recent := app.getRecentColors(r)
		if recent == nil {
			recent = models.RecentColors{}
		}
		writeJSON(w, http.StatusOK, map[string]models.RecentColors{"recent": recent})
	case http.MethodDelete:
		app.clearRecentColors(w)
		w.WriteHeader(http.StatusNoContent)
	default:
		app.methodNotAllowed(w, r, ErrGETOrDELETE, http.MethodGet, http.MethodDelete)
	}
}

// GET /v1/colors/report?value=&format=&alpha=
func (app *Application) downloadReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	query := r.URL.Query()
	format := colorconv.FormatHex
	if tag := query.Get("format"); tag != "" {
		f, err := colorconv.ParseFormat(tag)
		if err != nil {
			app.badRequest(w, r, err)
			return
		}
		format = f
	}

	alpha := 1.0
	if raw := query.Get("alpha"); raw != "" {
		a, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			app.badRequest(w, r, fmt.Errorf("invalid alpha %q: %w", raw, err))
			return
		}
		alpha = a
	}

	values, err := colorconv.ConvertE(query.Get("value"), format, alpha)
	if err != nil {
		app.invalidColor(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+models.ReportFileName)
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, models.BuildReport(values, time.Now()))
}
