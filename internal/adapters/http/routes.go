package web

import "net/http"

// registerRoutes attaches all application routes to the mux. Method checks
// live inside the handlers; the trailing-slash patterns carry the id in the
// remaining path segment.
func registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", handleHome)
	mux.HandleFunc("/about", handleAbout)

	mux.HandleFunc("/html/product", handleProductIndex)
	mux.HandleFunc("/html/product/", handleProductShow)
	mux.HandleFunc("/html/suggest", handleSuggestIndex)
	mux.HandleFunc("/html/suggest/", handleSuggestShow)

	mux.HandleFunc("/suggest", handleSuggestCollection)
	mux.HandleFunc("/suggest/", handleSuggestItem)

	mux.HandleFunc("/login", handleLogin)
	mux.HandleFunc("/logout", handleLogout)

	mux.HandleFunc("/admin/perf", handleAdminPerf)
}
