package middleware

import (
	"haven/shared"
	"haven/shared/constant"
	"haven/transport/http/response"
	"net"
	"net/http"
	"net/netip"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit     = "limiter"
	cacheKeyRateLimitForm = "limiter:form"
	publicSitePrefix      = "/v1/site/"
)

// RateLimit counts requests per client address in a fixed redis window that starts with the
// first request. Public form posts (contact and newsletter) are counted in a separate, smaller
// budget. A redis failure lets the request through.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limiter := a.config.App.RateLimiter
			if !limiter.Enable {
				next.ServeHTTP(w, r)

				return
			}

			prefix, maxReqs := cacheKeyRateLimit, limiter.MaxRequests
			if isFormSubmission(r) && limiter.FormMaxRequests > 0 {
				prefix, maxReqs = cacheKeyRateLimitForm, limiter.FormMaxRequests
			}

			count, err := a.cache.Increment(r.Context(), shared.BuildCacheKey(prefix, a.getClientIP(r)), limiter.WindowSeconds)
			if err != nil {
				next.ServeHTTP(w, r)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.FormatInt(max(0, int64(maxReqs)-count), 10))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(limiter.WindowSeconds))

			if count > int64(maxReqs) {
				response.WithRequestLimitExceeded(w)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isFormSubmission(r *http.Request) bool {
	return r.Method == http.MethodPost && strings.HasPrefix(r.URL.Path, publicSitePrefix)
}

func (a *appMiddleware) getUA(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == "" {
		ua = "unknown"
	}

	return ua
}

// getClientIP returns the socket peer unless it is a trusted proxy. Behind a trusted proxy the
// X-Forwarded-For chain is read from the right and the first hop that is not itself a trusted
// proxy wins, then X-Real-IP.
func (a *appMiddleware) getClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	peer, err := netip.ParseAddr(host)
	if err != nil || !a.trusted(peer) {
		return host
	}

	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		hops := strings.Split(xff, ",")

		for idx := len(hops) - 1; idx >= 0; idx-- {
			hop, err := netip.ParseAddr(strings.TrimSpace(hops[idx]))
			if err != nil {
				break
			}

			if !a.trusted(hop) {
				return hop.String()
			}
		}
	}

	if xri, err := netip.ParseAddr(strings.TrimSpace(r.Header.Get(constant.RequestHeaderRealIP))); err == nil {
		return xri.String()
	}

	return host
}

func (a *appMiddleware) trusted(addr netip.Addr) bool {
	addr = addr.Unmap()

	for _, prefix := range a.trustedProxies {
		if prefix.Contains(addr) {
			return true
		}
	}

	return false
}

// parseTrustedProxies accepts single addresses and CIDR ranges. Invalid entries are logged and
// ignored.
func parseTrustedProxies(entries []string) []netip.Prefix {
	prefixes := make([]netip.Prefix, 0, len(entries))

	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		if prefix, err := netip.ParsePrefix(entry); err == nil {
			prefixes = append(prefixes, prefix.Masked())

			continue
		}

		addr, err := netip.ParseAddr(entry)
		if err != nil {
			log.Warn().Str("entry", entry).Msg("ignoring invalid trusted proxy")

			continue
		}

		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}

	return prefixes
}
