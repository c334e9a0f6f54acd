package web

import (
	"net/http"
	"strconv"
	"time"

	"menucard/internal/adapters/http/middleware"
)

// handleAdminPerf serves aggregated request timings (GET /admin/perf)
// PRE: User must be authenticated as admin
// POST: Returns a JSON snapshot covering the requested window
func handleAdminPerf(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}
	if sess.Role != "admin" {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	// Window in minutes, default 60, capped at 24h
	minutes := 60
	if v := r.URL.Query().Get("minutes"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 1440 {
			minutes = n
		}
	}

	since := time.Now().Add(-time.Duration(minutes) * time.Minute)
	snap := perfCollector.Snapshot(since, 10)
	writeJSON(w, http.StatusOK, snap)
}
