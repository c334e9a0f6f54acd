package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"menucard/internal/adapters/http/middleware"
	"menucard/internal/adapters/storage"
	"menucard/internal/application/orchestrators"
	"menucard/internal/application/projections"
	suggestionDomain "menucard/internal/domain/suggestion"
)

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details (storage paths, parse positions).
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeJSONError writes an error body in the shape the suggestion API uses.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// isValidationErr reports whether err is a request-input problem rather than
// an internal failure.
func isValidationErr(err error) bool {
	return errors.Is(err, suggestionDomain.ErrEmptyProductID) ||
		errors.Is(err, suggestionDomain.ErrEmptyComment) ||
		errors.Is(err, suggestionDomain.ErrCommentTooLong)
}

const templatesDir = "internal/adapters/http/templates"

const contentDir = "content"

func isHTMLRequest(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/html") || strings.Contains(accept, "application/xhtml+xml")
}

func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	username := ""
	role := ""
	if ok {
		username = sess.Username
		role = sess.Role
	}

	funcMap := template.FuncMap{
		"currentUser": func() string { return username },
		"currentRole": func() string { return role },
		"isLoggedIn":  func() bool { return username != "" },
		"csrfToken":   func() string { return csrf.Token(r) },
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
	}

	layoutPath := filepath.Join(templatesDir, "layout.html")
	pagePath := filepath.Join(templatesDir, templateName)
	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath, pagePath)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
		return
	}
}

// loadContent reads a Markdown content file for the informational pages.
func loadContent(name string) (string, error) {
	raw, err := os.ReadFile(filepath.Join(contentDir, name))
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// handleHome handles GET / and, because "/" matches everything, serves the
// 404 for unmatched routes.
func handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	md, err := loadContent("home.md")
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "home.html", map[string]any{
		"Title":   "Welcome to KazABurger",
		"Content": md,
	})
}

// handleAbout handles GET /about
func handleAbout(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	md, err := loadContent("about.md")
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "about.html", map[string]any{
		"Title":   "About KazABurger",
		"Content": md,
	})
}

// handleProductIndex handles GET /html/product, the catalog listing with
// family/featured/suggest/search filters.
func handleProductIndex(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	query := projections.GetProductListQuery{
		Family:   q.Get("family"),
		Featured: q.Get("featured"),
		Suggest:  q.Get("suggest"),
		Search:   q.Get("search"),
	}
	deps := projections.GetProductListDeps{ProductStore: stores.ProductStore}

	result, err := projections.QueryGetProductList(r.Context(), query, deps)
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "product_index.html", map[string]any{
			"Title":         "The menu",
			"Products":      result.Products,
			"Families":      result.Families,
			"CurrentFamily": result.CurrentFamily,
			"Search":        result.Search,
		})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handleProductShow handles GET /html/product/{id}
func handleProductShow(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/html/product/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}

	p, err := stores.ProductStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "Product not found", http.StatusNotFound)
			return
		}
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "product_show.html", map[string]any{
			"Title":   p.Title,
			"Product": p,
		})
		return
	}

	writeJSON(w, http.StatusOK, p)
}

// handleSuggestIndex handles GET /html/suggest, the suggestion listing
// enriched with product data.
func handleSuggestIndex(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	deps := projections.GetSuggestionListDeps{
		SuggestionStore: stores.SuggestionStore,
		ProductStore:    stores.ProductStore,
	}
	enriched, err := projections.QueryGetSuggestionList(r.Context(), deps)
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "suggest_index.html", map[string]any{
			"Title":       "Suggestions",
			"Suggestions": enriched,
		})
		return
	}

	writeJSON(w, http.StatusOK, enriched)
}

// handleSuggestShow handles GET /html/suggest/{id}, the edit page for one
// suggestion.
func handleSuggestShow(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/html/suggest/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}

	deps := projections.GetSuggestionDeps{
		SuggestionStore: stores.SuggestionStore,
		ProductStore:    stores.ProductStore,
	}
	result, err := projections.QueryGetSuggestion(r.Context(), projections.GetSuggestionQuery{ID: id}, deps)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "Suggestion not found", http.StatusNotFound)
			return
		}
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "suggest_show.html", map[string]any{
			"Title":        "Edit suggestion",
			"Suggestion":   result.Suggestion,
			"Product":      result.Product,
			"ProductFound": result.ProductFound,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"suggestion":   result.Suggestion,
		"product":      result.Product,
		"productFound": result.ProductFound,
	})
}

// handleSuggestCollection handles POST /suggest, create a suggestion.
func handleSuggestCollection(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var input orchestrators.CreateSuggestionInput
	if err := strictDecode(r, &input); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	deps := orchestrators.CreateSuggestionDeps{SuggestionStore: stores.SuggestionStore}
	if _, err := orchestrators.ExecuteCreateSuggestion(r.Context(), input, deps); err != nil {
		if isValidationErr(err) {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]bool{"success": true})
}

// handleSuggestItem handles PATCH and DELETE for /suggest/{id}
func handleSuggestItem(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/suggest/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case "PATCH":
		var input orchestrators.UpdateSuggestionInput
		if err := strictDecode(r, &input); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		input.ID = id

		deps := orchestrators.UpdateSuggestionDeps{SuggestionStore: stores.SuggestionStore}
		if err := orchestrators.ExecuteUpdateSuggestion(r.Context(), input, deps); err != nil {
			switch {
			case errors.Is(err, orchestrators.ErrSuggestionNotFound):
				writeJSONError(w, http.StatusNotFound, "suggestion not found")
			case isValidationErr(err):
				writeJSONError(w, http.StatusBadRequest, err.Error())
			default:
				internalError(w, err)
			}
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})

	case "DELETE":
		deps := orchestrators.DeleteSuggestionDeps{SuggestionStore: stores.SuggestionStore}
		if err := orchestrators.ExecuteDeleteSuggestion(r.Context(), orchestrators.DeleteSuggestionInput{ID: id}, deps); err != nil {
			if errors.Is(err, orchestrators.ErrSuggestionNotFound) {
				writeJSONError(w, http.StatusNotFound, "suggestion not found")
				return
			}
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleLogin handles GET (form) and POST (authenticate) for /login
func handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		// If already logged in, redirect to the catalog
		if _, ok := middleware.GetSessionFromContext(r.Context()); ok {
			http.Redirect(w, r, "/html/product", http.StatusSeeOther)
			return
		}
		renderTemplate(w, r, "login.html", map[string]any{
			"Title": "Sign in",
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		input := orchestrators.LoginInput{
			Username: r.FormValue("username"),
			Password: r.FormValue("password"),
		}
		deps := orchestrators.LoginDeps{UserStore: stores.UserStore}

		result, err := orchestrators.ExecuteLogin(r.Context(), input, deps)
		if err != nil {
			// One generic message for unknown user and wrong password
			renderTemplate(w, r, "login.html", map[string]any{
				"Title": "Sign in",
				"Error": "Invalid credentials",
			})
			return
		}

		token, err := sessions.Create(result.Username, result.Role)
		if err != nil {
			http.Error(w, "Session error", http.StatusInternalServerError)
			return
		}

		middleware.SetSessionCookie(w, token)
		http.Redirect(w, r, "/html/product", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleLogout handles GET /logout. Destroys the session unconditionally
// and returns to the catalog.
func handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	cookie, err := r.Cookie(middleware.SessionCookieName)
	if err == nil {
		sessions.Delete(cookie.Value)
	}

	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, "/html/product", http.StatusSeeOther)
}
