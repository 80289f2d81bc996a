package middleware

import (
	"net/http"
	"strings"
)

// securityHeaders is the OWASP REST Security Cheat Sheet set for JSON APIs.
var securityHeaders = [...]struct{ name, value string }{
	{"Cache-Control", "no-store"},
	{"Content-Security-Policy", "frame-ancestors 'none'"},
	{"Cross-Origin-Opener-Policy", "same-origin"},
	{"Cross-Origin-Resource-Policy", "same-origin"},
	{"Permissions-Policy", "accelerometer=(), camera=(), geolocation=(), gyroscope=(), magnetometer=(), microphone=(), payment=(), usb=()"},
	{"Referrer-Policy", "strict-origin-when-cross-origin"},
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "DENY"},
}

// Security sets securityHeaders on every response except those under one of
// exempt, such as the docs UI, which loads scripts and must be frameable.
func Security(exempt ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !underAny(r.URL.Path, exempt) {
				h := w.Header()
				for _, sh := range securityHeaders {
					h.Set(sh.name, sh.value)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// underAny reports whether path equals a root or lies below it. "/api-docs"
// covers "/api-docs/x" but not "/api-docsx".
func underAny(path string, roots []string) bool {
	for _, root := range roots {
		root = strings.TrimSuffix(root, "/")
		if root == "" {
			continue
		}
		if path == root || strings.HasPrefix(path, root+"/") {
			return true
		}
	}
	return false
}
