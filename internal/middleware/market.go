package middleware

import (
	"context"
	"net/http"
	"strings"
)

type marketContextKey struct{}

// MarketKey stores the caller's ISO country code in the request context.
var MarketKey = marketContextKey{}

// CountryLookup resolves ISO country codes for an IP address.
type CountryLookup func(ip string) (string, error)

// Market resolves the caller's market country from proxy headers, falling
// back to a GeoIP lookup on the client IP. The scoring handlers use it as
// the default target market for profiles without a configured one.
func Market(lookup CountryLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			country := resolveCountry(r, lookup)
			if country != "" {
				ctx := context.WithValue(r.Context(), MarketKey, country)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// MarketFromContext returns the ISO country code stored by Market, or "".
func MarketFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(MarketKey).(string); ok {
		return v
	}
	return ""
}

func resolveCountry(r *http.Request, lookup CountryLookup) string {
	headerHints := []string{"X-Country-Code", "X-IP-Country", "CF-IPCountry", "X-Appengine-Country"}
	for _, key := range headerHints {
		if val := strings.TrimSpace(r.Header.Get(key)); val != "" {
			return strings.ToUpper(val)
		}
	}
	if lookup != nil {
		if ip := ClientIP(r); ip != "" {
			if country, err := lookup(ip); err == nil && country != "" {
				return strings.ToUpper(country)
			}
		}
	}
	return ""
}
