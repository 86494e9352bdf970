package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/dev-toolbox/color-api/colorconv"
	"github.com/dev-toolbox/color-api/models"
	"github.com/dev-toolbox/color-api/palette"
	"github.com/dev-toolbox/color-api/scheduler"
	"github.com/google/go-cmp/cmp"
)

func newTestApp(t *testing.T) (*Application, http.Handler) {
	t.Helper()
	app, err := NewApplication(Config{
		HistorySecret:   "test-secret",
		HistoryDuration: 3600,
		HistorySize:     3,
		AllowedOrigins:  []string{"https://toolbox.example.com"},
	}, scheduler.NewScheduler())
	if err != nil {
		t.Fatal(err)
	}
	return app, app.BuildRoutes(http.NewServeMux())
}

func postConvert(t *testing.T, h http.Handler, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/colors/convert", strings.NewReader(body))
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func historyCookieFrom(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == models.JWT.HISTORY_COOKIE_NAME {
			return c
		}
	}
	t.Fatal("no history cookie set")
	return nil
}

func TestConvertColor(t *testing.T) {
	_, h := newTestApp(t)

	rec := postConvert(t, h, `{"value":"#FF5733","format":"hex"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body)
	}

	var resp models.ConversionResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	want := colorconv.Values{
		Hex:   "#FF5733",
		Hexa:  "#FF5733FF",
		RGB:   "255, 87, 51",
		RGBA:  "255, 87, 51, 1",
		HSL:   "11°, 100%, 60%",
		HSLA:  "11°, 100%, 60%, 1",
		CMYK:  "0%, 66%, 80%, 0%",
		Alpha: 1,
	}
	if d := cmp.Diff(want, resp.Values); d != "" {
		t.Errorf("values mismatch (-want +got):\n%s", d)
	}
	if resp.ID == "" || resp.Name.Value == "" {
		t.Errorf("missing id or name: %+v", resp)
	}
	if d := cmp.Diff([]string{"#FF5733"}, resp.Recent); d != "" {
		t.Errorf("recent mismatch (-want +got):\n%s", d)
	}
	historyCookieFrom(t, rec)
}

func TestConvertColorAlpha(t *testing.T) {
	_, h := newTestApp(t)

	rec := postConvert(t, h, `{"value":"255, 87, 51, 5.0","format":"rgba","alpha":0.2}`)
	var resp models.ConversionResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Values.Alpha != 1 {
		t.Errorf("alpha = %g, want 1", resp.Values.Alpha)
	}

	rec = postConvert(t, h, `{"value":"0%, 66%, 80%, 0%","format":"cmyk","alpha":0.5}`)
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Values.Hex != "#FF5733" || resp.Values.Hexa != "#FF573380" {
		t.Errorf("got %+v", resp.Values)
	}
}

func TestConvertColorErrors(t *testing.T) {
	_, h := newTestApp(t)

	cases := []struct {
		name    string
		method  string
		body    string
		status  int
		errName string
	}{
		{"invalid color", http.MethodPost, `{"value":"not a color","format":"hex"}`, http.StatusUnprocessableEntity, "Invalid Color Format"},
		{"unknown format", http.MethodPost, `{"value":"#FF5733","format":"lab"}`, http.StatusBadRequest, "Error Parsing JSON"},
		{"bad json", http.MethodPost, `{"value":`, http.StatusBadRequest, "Error Parsing JSON"},
		{"wrong method", http.MethodGet, "", http.StatusMethodNotAllowed, "Post Method Required"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(c.method, "/v1/colors/convert", strings.NewReader(c.body))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != c.status {
				t.Fatalf("status = %d, want %d", rec.Code, c.status)
			}
			var herr HandlerError
			if err := json.NewDecoder(rec.Body).Decode(&herr); err != nil {
				t.Fatal(err)
			}
			if herr.ErrorName != c.errName {
				t.Errorf("error = %q, want %q", herr.ErrorName, c.errName)
			}
			if c.status == http.StatusUnprocessableEntity && !strings.Contains(herr.PossibleSolution, "0%, 66%, 80%, 0%") {
				t.Errorf("solution does not list formats: %q", herr.PossibleSolution)
			}
		})
	}
}

func TestRecentColors(t *testing.T) {
	_, h := newTestApp(t)

	var cookie *http.Cookie
	for _, hex := range []string{"#FF5733", "#33FF57", "#3357FF", "#FF5733", "#000000"} {
		body := `{"value":"` + hex + `","format":"hex"}`
		var rec *httptest.ResponseRecorder
		if cookie == nil {
			rec = postConvert(t, h, body)
		} else {
			rec = postConvert(t, h, body, cookie)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("status %d", rec.Code)
		}
		cookie = historyCookieFrom(t, rec)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/colors/history", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var got map[string][]string
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	want := []string{"#000000", "#FF5733", "#3357FF"}
	if d := cmp.Diff(want, got["recent"]); d != "" {
		t.Errorf("recent mismatch (-want +got):\n%s", d)
	}

	req = httptest.NewRequest(http.MethodDelete, "/v1/colors/history", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Errorf("delete status = %d", rec.Code)
	}
	if c := historyCookieFrom(t, rec); c.MaxAge >= 0 {
		t.Errorf("cookie not expired: %+v", c)
	}
}

func TestRecentColorsIgnoresForgedCookie(t *testing.T) {
	_, h := newTestApp(t)
	forged, err := models.NewHistoryToken(models.RecentColors{"#123456"}, []byte("wrong"), time.Now().Add(time.Hour))
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/colors/history", nil)
	req.AddCookie(&http.Cookie{Name: models.JWT.HISTORY_COOKIE_NAME, Value: forged})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if strings.TrimSpace(rec.Body.String()) != `{"recent":[]}` {
		t.Errorf("body = %s", rec.Body)
	}
}

func TestDetectColor(t *testing.T) {
	_, h := newTestApp(t)
	cases := map[string]models.DetectResponse{
		"#F53":        {Value: "#F53", Format: "hex", Valid: true},
		"#F53F":       {Value: "#F53F", Format: "hexa", Valid: true},
		"11°, 1%, 6%": {Value: "11°, 1%, 6%", Format: "hsl", Valid: true},
		"not a color": {Value: "not a color"},
	}
	for value, want := range cases {
		req := httptest.NewRequest(http.MethodGet, "/v1/colors/detect?"+url.Values{"value": {value}}.Encode(), nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		var got models.DetectResponse
		if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(want, got); d != "" {
			t.Errorf("%q mismatch (-want +got):\n%s", value, d)
		}
	}
}

func TestExampleColors(t *testing.T) {
	_, h := newTestApp(t)

	for _, path := range []string{"/v1/colors/default", "/v1/colors/random"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status %d", path, rec.Code)
		}
		var resp models.ConversionResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatal(err)
		}
		found := false
		for _, hex := range palette.Examples {
			found = found || hex == resp.Values.Hex
		}
		if !found {
			t.Errorf("%s: %s is not an example color", path, resp.Values.Hex)
		}
		if path == "/v1/colors/default" && resp.Values.Hex != palette.Default {
			t.Errorf("default = %s", resp.Values.Hex)
		}
	}
}

func TestDailyColor(t *testing.T) {
	_, h := newTestApp(t)
	req := httptest.NewRequest(http.MethodGet, "/v1/colors/daily", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var resp models.DailyColorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Values.Hex == "" || resp.ColorName == "" || resp.Date == "" {
		t.Errorf("incomplete response %+v", resp)
	}
}

func TestFormats(t *testing.T) {
	_, h := newTestApp(t)
	req := httptest.NewRequest(http.MethodGet, "/v1/colors/formats", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var formats []models.FormatInfo
	if err := json.NewDecoder(rec.Body).Decode(&formats); err != nil {
		t.Fatal(err)
	}
	if len(formats) != len(colorconv.Formats) {
		t.Errorf("got %d formats", len(formats))
	}
}

func TestDownloadReport(t *testing.T) {
	_, h := newTestApp(t)

	q := url.Values{"value": {"255, 87, 51, 0.5"}, "format": {"rgba"}}
	req := httptest.NewRequest(http.MethodGet, "/v1/colors/report?"+q.Encode(), nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, models.ReportFileName) {
		t.Errorf("Content-Disposition = %q", cd)
	}
	body := rec.Body.String()
	for _, line := range []string{"HEX: #FF5733", "HEXA: #FF573380", "RGBA: 255, 87, 51, 0.5", "Generated at: "} {
		if !strings.Contains(body, line) {
			t.Errorf("report lacks %q:\n%s", line, body)
		}
	}

	for _, q := range []url.Values{
		{"value": {"#FF5733"}, "format": {"lab"}},
		{"value": {"#FF5733"}, "alpha": {"half"}},
	} {
		req := httptest.NewRequest(http.MethodGet, "/v1/colors/report?"+q.Encode(), nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%v: status %d", q, rec.Code)
		}
	}
}

func TestOrigins(t *testing.T) {
	_, h := newTestApp(t)
	cases := map[string]int{
		"https://toolbox.example.com": http.StatusOK,
		"http://localhost:5173":       http.StatusOK,
		"https://evil.example.com":    http.StatusForbidden,
	}
	for origin, want := range cases {
		req := httptest.NewRequest(http.MethodGet, "/v1/colors/formats", nil)
		req.Header.Set("Origin", origin)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != want {
			t.Errorf("%s: status %d, want %d", origin, rec.Code, want)
		}
	}
}
