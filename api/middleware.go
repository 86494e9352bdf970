package api

import (
	"net/http"
	"time"

	"github.com/dev-toolbox/color-api/models"
)

func handleCors(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, DELETE")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Headers", "Access-Control-Allow-Credentials, Access-Control-Allow-Origin, Accept, Content-Type, Content-Length, Accept-Encoding")
		if r.Method == "OPTIONS" {
			return
		}
		h.ServeHTTP(w, r)
	}
}

// getRecentColors reads the history cookie. A missing, tampered or expired
// cookie is an empty history.
func (app *Application) getRecentColors(r *http.Request) models.RecentColors {
	cookie, err := r.Cookie(models.JWT.HISTORY_COOKIE_NAME)
	if err != nil {
		return nil
	}
	claims, err := models.ValidateHistoryToken(cookie.Value, app.historyKey)
	if err != nil {
		return nil
	}
	return claims.Recent
}

// rememberColor puts hex at the front of the client's history and returns
// the new list.
func (app *Application) rememberColor(w http.ResponseWriter, r *http.Request, hex string) (models.RecentColors, error) {
	recent := app.getRecentColors(r).Push(hex, app.Config.HistorySize)

	expiry := time.Now().Add(time.Second * time.Duration(app.Config.HistoryDuration))
	token, err := models.NewHistoryToken(recent, app.historyKey, expiry)
	if err != nil {
		return nil, err
	}
	http.SetCookie(w, app.historyCookie(token, expiry))
	return recent, nil
}

func (app *Application) clearRecentColors(w http.ResponseWriter) {
	cookie := app.historyCookie("", time.Unix(0, 0))
	cookie.MaxAge = -1
	http.SetCookie(w, cookie)
}

func (app *Application) historyCookie(value string, expiry time.Time) *http.Cookie {
	sameSite := http.SameSiteStrictMode
	if app.Config.CookieDomain == "" {
		sameSite = http.SameSiteNoneMode
	}
	return &http.Cookie{
		Name:     models.JWT.HISTORY_COOKIE_NAME,
		Value:    value,
		HttpOnly: true,
		Secure:   true,
		SameSite: sameSite,
		Path:     "/",
		Domain:   app.Config.CookieDomain,
		Expires:  expiry,
	}
}
