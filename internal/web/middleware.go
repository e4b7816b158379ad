package web

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/erazemk/track/internal/app"
	"github.com/erazemk/track/internal/currency"
	"github.com/erazemk/track/internal/i18n"
)

type webContextKey string

const webPrefsKey webContextKey = "webprefs"

// PreferencesMiddleware resolves the display language and currency for the
// request and adds them to the context. The stored language wins over the
// browser's Accept-Language.
func PreferencesMiddleware(a *app.App) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			prefs, err := a.Preferences(r.Context())
			if err != nil {
				slog.Error("failed to load preferences", "error", err)
				prefs = app.Preferences{Currency: currency.Default}
			}
			prefs.Language = a.Language(r.Context(), r.Header.Get("Accept-Language"))

			ctx := context.WithValue(r.Context(), webPrefsKey, prefs)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetPreferences retrieves the request's preferences from the context.
func GetPreferences(ctx context.Context) app.Preferences {
	prefs, ok := ctx.Value(webPrefsKey).(app.Preferences)
	if !ok {
		return app.Preferences{Language: i18n.Default, Currency: currency.Default}
	}
	return prefs
}
