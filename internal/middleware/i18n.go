package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"
)

// The app ships copy in exactly two languages. Everything that is not
// Indonesian renders in English.
const (
	LocaleIndonesian = "id"
	LocaleEnglish    = "en"
)

type localeContextKey struct{}
type countryContextKey struct{}

// CountryLookup resolves ISO country codes for an IP address.
type CountryLookup func(ip string) (string, error)

// I18N detects the request locale and country and stores both in the
// context. Explicit headers beat Accept-Language, which beats GeoIP.
func I18N(defaultLocale string, lookup CountryLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			country := resolveCountry(r, lookup)
			ctx := context.WithValue(r.Context(), localeContextKey{}, detectLocale(r, defaultLocale, country))
			if country != "" {
				ctx = context.WithValue(ctx, countryContextKey{}, country)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LocaleFromContext returns the detected locale, or English when the
// request never passed through I18N.
func LocaleFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(localeContextKey{}).(string); ok {
		return v
	}
	return LocaleEnglish
}

// WithLocale stores a locale directly, mainly for tests and internal calls
// that bypass the middleware.
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// CountryFromContext returns the ISO country code stored in the request context.
func CountryFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(countryContextKey{}).(string); ok {
		return v
	}
	return ""
}

func detectLocale(r *http.Request, fallback string, country string) string {
	if v := r.Header.Get("X-Locale"); v != "" {
		return normalizeLocale(v)
	}
	if v := preferredLanguage(r.Header.Get("Accept-Language")); v != "" {
		return v
	}
	switch {
	case strings.EqualFold(country, "ID"):
		return LocaleIndonesian
	case country != "":
		return LocaleEnglish
	case fallback != "":
		return fallback
	}
	return LocaleEnglish
}

// preferredLanguage walks the Accept-Language entries in order and returns
// the first one that maps to a supported language. q-weights are ignored;
// browsers already order the list by preference.
func preferredLanguage(header string) string {
	first := ""
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.Split(part, ";")[0])
		if tag == "" {
			continue
		}
		locale := normalizeLocale(tag)
		if locale == LocaleIndonesian {
			return locale
		}
		if first == "" {
			first = locale
		}
	}
	return first
}

// normalizeLocale collapses locale tags onto the two supported languages.
// Older Android builds still send "in" for Indonesian.
func normalizeLocale(locale string) string {
	locale = strings.ToLower(locale)
	if strings.HasPrefix(locale, "id") || strings.HasPrefix(locale, "in-") || locale == "in" {
		return LocaleIndonesian
	}
	return LocaleEnglish
}

// resolveCountry derives a best-effort ISO country code. Proxy headers win,
// then locale region subtags, then a plain Indonesian locale, then GeoIP.
func resolveCountry(r *http.Request, lookup CountryLookup) string {
	for _, key := range []string{"X-Country-Code", "X-IP-Country", "CF-IPCountry", "X-Appengine-Country"} {
		if val := strings.TrimSpace(r.Header.Get(key)); val != "" {
			return strings.ToUpper(val)
		}
	}
	for _, header := range []string{r.Header.Get("X-Locale"), r.Header.Get("Accept-Language")} {
		if region := regionSubtag(header); region != "" {
			return region
		}
	}
	if normalizeLocale(r.Header.Get("X-Locale")) == LocaleIndonesian ||
		preferredLanguage(r.Header.Get("Accept-Language")) == LocaleIndonesian {
		return "ID"
	}
	if lookup != nil {
		if ip := requestIP(r); ip != "" {
			if country, err := lookup(ip); err == nil && country != "" {
				return strings.ToUpper(country)
			}
		}
	}
	return ""
}

// regionSubtag pulls the region out of the first locale tag that carries
// one, e.g. "en-AU" yields "AU".
func regionSubtag(header string) string {
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.Split(part, ";")[0])
		if tag == "" {
			continue
		}
		if idx := strings.IndexAny(tag, "-_"); idx > 0 && idx < len(tag)-1 {
			return strings.ToUpper(tag[idx+1:])
		}
	}
	return ""
}

func requestIP(r *http.Request) string {
	if xf := r.Header.Get("X-Forwarded-For"); xf != "" {
		if parts := strings.Split(xf, ","); len(parts) > 0 {
			return strings.TrimSpace(parts[0])
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
