// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"scholarsite/internal/models"
)

func testRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New(func(key string) string { return "https://cdn.example.com/" + key })
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func TestNewParsesAllTemplates(t *testing.T) {
	r := testRenderer(t)

	for _, name := range []string{
		"home", "about", "services", "portfolio", "publications",
		"publication_detail", "blog", "blog_post", "books", "book_detail",
		"contact", "order", "not_found", "error",
	} {
		if _, ok := r.templates[name]; !ok {
			t.Errorf("template %q not parsed", name)
		}
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	r := testRenderer(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := r.Render(req, "nope", &PageData{})
	if err == nil {
		t.Fatal("expected error for unknown template")
	}
}

func TestRenderHome(t *testing.T) {
	r := testRenderer(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	photo := "media/profile/photo.jpg"
	out, err := r.Render(req, "home", &PageData{
		Title:   "Главная",
		Section: "home",
		Profile: &models.Profile{
			FullName:       "Ахмедова Феруза Медетовна",
			AcademicDegree: "Доктор философии (PhD)",
			PhotoKey:       &photo,
		},
		Data: map[string]any{},
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	html := string(out)
	if !strings.Contains(html, "Ахмедова Феруза Медетовна") {
		t.Error("profile name missing from rendered page")
	}
	if !strings.Contains(html, "https://cdn.example.com/media/profile/photo.jpg") {
		t.Error("photo key not resolved through fileURL")
	}
	if !strings.Contains(html, "<!DOCTYPE html>") {
		t.Error("base layout missing")
	}
}

func TestRenderEscapesVisitorContent(t *testing.T) {
	r := testRenderer(t)
	req := httptest.NewRequest(http.MethodGet, "/contact", nil)

	out, err := r.Render(req, "contact", &PageData{
		Title: "Контакты",
		Form:  map[string]string{"name": `<script>alert(1)</script>`},
		Data:  map[string]any{},
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	html := string(out)
	if strings.Contains(html, "<script>alert(1)</script>") {
		t.Error("visitor input must be escaped")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Error("expected escaped form value in re-render")
	}
}

func TestRenderBookDetailOrderForm(t *testing.T) {
	r := testRenderer(t)
	req := httptest.NewRequest(http.MethodGet, "/books/test", nil)

	price := 1800.00
	out, err := r.Render(req, "book_detail", &PageData{
		Title: "Книга",
		Data: map[string]any{
			"Book": &models.Book{
				Title:           "Методология исследований",
				Slug:            "metodologia",
				CoverKey:        "media/books/covers/c.jpg",
				PDFKey:          "private/books/b.pdf",
				PublicationYear: 2023,
				Price:           &price,
				IsAvailable:     true,
			},
		},
		Form: map[string]string{},
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	html := string(out)
	if !strings.Contains(html, `action="/books/metodologia/order"`) {
		t.Error("order form action missing")
	}
	if !strings.Contains(html, "1800.00") {
		t.Error("price missing")
	}
	// The private PDF key must never leak into the public page.
	if strings.Contains(html, "private/books/b.pdf") {
		t.Error("private pdf key exposed on public page")
	}
}

func TestPageStatusWritesStatus(t *testing.T) {
	r := testRenderer(t)
	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	rr := httptest.NewRecorder()

	r.PageStatus(rr, req, http.StatusNotFound, "not_found", &PageData{Title: "404", Data: map[string]any{}})

	if rr.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type: got %q", ct)
	}
	if !strings.Contains(rr.Body.String(), "Страница не найдена") {
		t.Error("404 body missing")
	}
}
