// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the public site and the
// admin JSON API, grouped into Public, Auth and Admin handler sets.
package handlers

import (
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"scholarsite/internal/store"
)

// maxJSONBody caps admin API request bodies at 1 MiB.
const maxJSONBody = 1 << 20

// Stores bundles every entity store so handler groups share one wired set.
type Stores struct {
	Profiles      *store.ProfileStore
	Services      *store.ServiceStore
	Publications  *store.PublicationStore
	Projects      *store.ProjectStore
	Posts         *store.BlogPostStore
	Achievements  *store.AchievementStore
	Testimonials  *store.TestimonialStore
	Books         *store.BookStore
	ServiceOrders *store.ServiceOrderStore
	BookOrders    *store.BookOrderStore
	Contacts      *store.ContactMessageStore
	Operators     *store.OperatorStore
}

// NewStores constructs all entity stores on top of a single database handle.
func NewStores(db *sql.DB) *Stores {
	return &Stores{
		Profiles:      store.NewProfileStore(db),
		Services:      store.NewServiceStore(db),
		Publications:  store.NewPublicationStore(db),
		Projects:      store.NewProjectStore(db),
		Posts:         store.NewBlogPostStore(db),
		Achievements:  store.NewAchievementStore(db),
		Testimonials:  store.NewTestimonialStore(db),
		Books:         store.NewBookStore(db),
		ServiceOrders: store.NewServiceOrderStore(db),
		BookOrders:    store.NewBookOrderStore(db),
		Contacts:      store.NewContactMessageStore(db),
		Operators:     store.NewOperatorStore(db),
	}
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode json response", "error", err)
	}
}

// jsonError writes a {"error": msg} body with the given status.
func jsonError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON reads a size-limited JSON request body into dst.
func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(io.LimitReader(r.Body, maxJSONBody)).Decode(dst)
}

// idParam parses the {id} chi URL parameter as a UUID.
func idParam(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}
