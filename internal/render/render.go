// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public site.
// Every page template is paired with the base layout; pages are rendered
// into a buffer first so list pages can be stored in the Redis page cache
// as complete documents.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"scholarsite/internal/middleware"
	"scholarsite/internal/models"
)

//go:embed templates/site/*.html
var siteFS embed.FS

// PageData holds all data passed to site templates.
type PageData struct {
	Title     string            // Page title for <title> tag
	Section   string            // Active nav section (e.g. "services", "blog")
	Profile   *models.Profile   // Site owner, shown in header/footer
	CSRFToken string            // CSRF token for form hidden fields
	Data      map[string]any    // Page-specific data
	Errors    map[string]string // Per-field validation errors for form re-render
	Form      map[string]string // Submitted values for form re-render
}

// Renderer handles template parsing and execution for public pages.
type Renderer struct {
	templates map[string]*template.Template
	funcMap   template.FuncMap
}

// New creates a Renderer by parsing all site templates from the embedded
// filesystem. fileURL resolves an object-storage key to a browser URL; it
// may be nil when storage is not configured, in which case media simply
// has no URL.
func New(fileURL func(string) string) (*Renderer, error) {
	if fileURL == nil {
		fileURL = func(string) string { return "" }
	}

	r := &Renderer{
		templates: make(map[string]*template.Template),
		funcMap: template.FuncMap{
			"activeClass": func(current, target string) string {
				if current == target {
					return "active"
				}
				return ""
			},
			// deref safely dereferences a string pointer for use in templates.
			"deref": func(s *string) string {
				if s == nil {
					return ""
				}
				return *s
			},
			// derefInt safely dereferences an int pointer.
			"derefInt": func(n *int) int {
				if n == nil {
					return 0
				}
				return *n
			},
			// fileURL resolves an object-storage key to a public URL.
			"fileURL": func(key *string) string {
				if key == nil || *key == "" {
					return ""
				}
				return fileURL(*key)
			},
			// fileURLString is fileURL for non-nullable keys (book covers).
			"fileURLString": func(key string) string {
				if key == "" {
					return ""
				}
				return fileURL(key)
			},
			// money renders an optional price with two decimals.
			"money": func(p *float64) string {
				if p == nil {
					return ""
				}
				return fmt.Sprintf("%.2f", *p)
			},
			// langs splits the comma-separated languages field.
			"langs": func(s string) []string {
				var out []string
				for _, l := range strings.Split(s, ",") {
					if l = strings.TrimSpace(l); l != "" {
						out = append(out, l)
					}
				}
				return out
			},
			// stars returns a slice of length n for rating loops.
			"stars": func(n int) []struct{} {
				if n < 0 {
					n = 0
				}
				return make([]struct{}, n)
			},
			// richHTML marks operator-authored content as trusted HTML.
			// Only fields edited through the authenticated admin API are
			// rendered with this; visitor input never is.
			"richHTML": func(s string) template.HTML {
				return template.HTML(s)
			},
			// tags splits a comma-separated tag list.
			"tags": func(s string) []string {
				var out []string
				for _, t := range strings.Split(s, ",") {
					if t = strings.TrimSpace(t); t != "" {
						out = append(out, t)
					}
				}
				return out
			},
		},
	}

	entries, err := siteFS.ReadDir("templates/site")
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}

	// Parse each page template paired with the base layout.
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == "base.html" {
			continue
		}

		tmplName := strings.TrimSuffix(name, ".html")
		tmpl, err := template.New("base.html").Funcs(r.funcMap).ParseFS(
			siteFS, "templates/site/base.html", "templates/site/"+name,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.templates[tmplName] = tmpl
	}

	return r, nil
}

// Render executes a page template into a byte slice. Used directly by
// handlers that store the result in the page cache.
func (rn *Renderer) Render(r *http.Request, name string, data *PageData) ([]byte, error) {
	tmpl, ok := rn.templates[name]
	if !ok {
		return nil, fmt.Errorf("template %q not found", name)
	}

	// Inject CSRF token from context (set by CSRF middleware).
	if data.CSRFToken == "" {
		data.CSRFToken = middleware.CSRFTokenFromCtx(r.Context())
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.html", data); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// Page renders a full page to the response. Template failures surface as
// a plain 500 so a broken template never emits a half-written document.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, name string, data *PageData) {
	rn.PageStatus(w, r, http.StatusOK, name, data)
}

// PageStatus renders a page with an explicit HTTP status code. Used by
// the 404 page and form re-renders.
func (rn *Renderer) PageStatus(w http.ResponseWriter, r *http.Request, status int, name string, data *PageData) {
	out, err := rn.Render(r, name, data)
	if err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(out)
}

// WriteCached sends a previously rendered page from the cache.
func WriteCached(w http.ResponseWriter, html []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}
