package http

import (
	"net/http"
	"strconv"
	"strings"
)

const (
	corsAllowMethods = "GET, POST, PUT, DELETE, OPTIONS"
	corsAllowHeaders = "Content-Type, Authorization"
	corsMaxAge       = 10 * 60
)

// CORSPolicy decides which browser origins may call the API.
type CORSPolicy struct {
	any     bool
	origins map[string]bool
}

// NewCORSPolicy builds a policy from a list of origins. "*" admits every
// origin; blank entries are ignored.
func NewCORSPolicy(origins []string) CORSPolicy {
	p := CORSPolicy{origins: make(map[string]bool, len(origins))}
	for _, o := range origins {
		switch o = strings.TrimSpace(o); o {
		case "":
		case "*":
			p.any = true
		default:
			p.origins[o] = true
		}
	}
	return p
}

// Allows reports whether origin may read responses.
func (p CORSPolicy) Allows(origin string) bool {
	return p.any || p.origins[origin]
}

// Wrap answers preflight requests and stamps allowed responses. Requests
// without an Origin header pass straight through; a preflight from a
// disallowed origin gets 403.
func (p CORSPolicy) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		preflight := r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != ""

		switch {
		case origin == "":
			next.ServeHTTP(w, r)
			return
		case !p.Allows(origin):
			if preflight {
				writeError(w, http.StatusForbidden, codeForbidden, "origin not allowed")
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		h := w.Header()
		if p.any {
			h.Set("Access-Control-Allow-Origin", "*")
		} else {
			h.Set("Access-Control-Allow-Origin", origin)
			h.Add("Vary", "Origin")
		}

		if !preflight {
			next.ServeHTTP(w, r)
			return
		}
		h.Set("Access-Control-Allow-Methods", corsAllowMethods)
		h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
		h.Set("Access-Control-Max-Age", strconv.Itoa(corsMaxAge))
		w.WriteHeader(http.StatusNoContent)
	})
}
