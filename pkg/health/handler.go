package health

import (
	"encoding/json"
	"net/http"
)

// LivenessHandler answers 200 while the process can serve requests.
func LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeResponse(w, &Response{OK: true, Status: StatusHealthy})
	}
}

// ReadinessHandler runs checks on every request and answers 200 when all
// pass or 503 when any fails.
func ReadinessHandler(checks Checks, opts ...Option) http.HandlerFunc {
	cfg := newConfig(opts...)

	return func(w http.ResponseWriter, r *http.Request) {
		writeResponse(w, runChecks(r.Context(), checks, cfg))
	}
}

func writeResponse(w http.ResponseWriter, resp *Response) {
	status := http.StatusOK
	if !resp.OK {
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
