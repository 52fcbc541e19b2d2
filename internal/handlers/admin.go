// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// admin.go is the session-authenticated JSON API for operating the site:
// CRUD on every content entity, order processing, contact inbox and media
// upload. Every write invalidates the affected public page caches.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"scholarsite/internal/cache"
	"scholarsite/internal/models"
	"scholarsite/internal/slug"
	"scholarsite/internal/storage"
	"scholarsite/internal/store"
)

// maxUploadMemory bounds the in-memory part of multipart media uploads.
const maxUploadMemory = 32 << 20

// pdfLinkTTL is how long an admin-issued book PDF link stays valid.
const pdfLinkTTL = 15 * time.Minute

// mediaPrefixes maps the {class} URL segment of a media upload to its
// object-storage key prefix.
var mediaPrefixes = map[string]string{
	"profile":      storage.PrefixProfile,
	"covers":       storage.PrefixBookCovers,
	"blog":         storage.PrefixBlog,
	"projects":     storage.PrefixProjects,
	"certificates": storage.PrefixCertificates,
	"testimonials": storage.PrefixTestimonials,
	"publications": storage.PrefixPublications,
	"pdfs":         storage.PrefixBookPDFs,
}

// Admin serves the operator's JSON API.
type Admin struct {
	st        *Stores
	storage   *storage.Client
	pageCache *cache.PageCache
}

// NewAdmin creates the admin handler group. storageClient may be nil when
// object storage is not configured; media endpoints then return 503.
func NewAdmin(st *Stores, storageClient *storage.Client, pageCache *cache.PageCache) *Admin {
	return &Admin{st: st, storage: storageClient, pageCache: pageCache}
}

// invalidate drops the given public page cache entries after a write.
func (a *Admin) invalidate(r *http.Request, keys ...string) {
	if a.pageCache != nil {
		a.pageCache.Invalidate(r.Context(), keys...)
	}
}

// invalidateAll drops every cached public page. Used for writes that
// surface on all pages, like the profile shown in the site header.
func (a *Admin) invalidateAll(r *http.Request) {
	if a.pageCache != nil {
		a.pageCache.InvalidateAll(r.Context())
	}
}

func (a *Admin) serverError(w http.ResponseWriter, action string, err error) {
	slog.Error(action, "error", err)
	jsonError(w, http.StatusInternalServerError, "internal error")
}

// Dashboard returns the operator's work queue counters.
func (a *Admin) Dashboard(w http.ResponseWriter, r *http.Request) {
	newServiceOrders, err := a.st.ServiceOrders.CountByStatus(models.OrderStatusNew)
	if err != nil {
		a.serverError(w, "count service orders", err)
		return
	}
	newBookOrders, err := a.st.BookOrders.CountByStatus(models.OrderStatusNew)
	if err != nil {
		a.serverError(w, "count book orders", err)
		return
	}
	unread, err := a.st.Contacts.CountUnread()
	if err != nil {
		a.serverError(w, "count unread messages", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{
		"new_service_orders": newServiceOrders,
		"new_book_orders":    newBookOrders,
		"unread_messages":    unread,
	})
}

// PurgeCache drops all cached public pages.
func (a *Admin) PurgeCache(w http.ResponseWriter, r *http.Request) {
	a.invalidateAll(r)
	w.WriteHeader(http.StatusNoContent)
}

// --- Profile ---

// GetProfile returns the site owner's profile.
func (a *Admin) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := a.st.Profiles.Get()
	if err != nil {
		a.serverError(w, "get profile", err)
		return
	}
	if profile == nil {
		jsonError(w, http.StatusNotFound, "profile not set")
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// UpdateProfile creates or replaces the single profile row.
func (a *Admin) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var p models.Profile
	if err := decodeJSON(r, &p); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if p.FullName == "" {
		jsonError(w, http.StatusUnprocessableEntity, "full_name is required")
		return
	}

	updated, err := a.st.Profiles.Upsert(&p)
	if err != nil {
		a.serverError(w, "upsert profile", err)
		return
	}

	// The profile appears in the header and footer of every page.
	a.invalidateAll(r)
	writeJSON(w, http.StatusOK, updated)
}

// --- Services ---

func (a *Admin) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := a.st.Services.List()
	if err != nil {
		a.serverError(w, "list services", err)
		return
	}
	writeJSON(w, http.StatusOK, services)
}

func (a *Admin) CreateService(w http.ResponseWriter, r *http.Request) {
	var sv models.Service
	if err := decodeJSON(r, &sv); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if sv.Title == "" {
		jsonError(w, http.StatusUnprocessableEntity, "title is required")
		return
	}

	created, err := a.st.Services.Create(&sv)
	if err != nil {
		a.serverError(w, "create service", err)
		return
	}

	a.invalidate(r, cache.KeyServices, cache.KeyHome)
	writeJSON(w, http.StatusCreated, created)
}

func (a *Admin) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}

	var sv models.Service
	if err := decodeJSON(r, &sv); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	sv.ID = id

	if err := a.st.Services.Update(&sv); err != nil {
		a.serverError(w, "update service", err)
		return
	}

	updated, err := a.st.Services.FindByID(id)
	if err != nil {
		a.serverError(w, "reload service", err)
		return
	}
	if updated == nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}

	a.invalidate(r, cache.KeyServices, cache.KeyHome)
	writeJSON(w, http.StatusOK, updated)
}

func (a *Admin) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}

	if err := a.st.Services.Delete(id); err != nil {
		a.serverError(w, "delete service", err)
		return
	}

	a.invalidate(r, cache.KeyServices, cache.KeyHome)
	w.WriteHeader(http.StatusNoContent)
}

// --- Publications ---

func (a *Admin) ListPublications(w http.ResponseWriter, r *http.Request) {
	pubs, err := a.st.Publications.List()
	if err != nil {
		a.serverError(w, "list publications", err)
		return
	}
	writeJSON(w, http.StatusOK, pubs)
}

func (a *Admin) CreatePublication(w http.ResponseWriter, r *http.Request) {
	var p models.Publication
	if err := decodeJSON(r, &p); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if p.Title == "" {
		jsonError(w, http.StatusUnprocessableEntity, "title is required")
		return
	}
	if !models.ValidPublicationType(p.Type) {
		jsonError(w, http.StatusUnprocessableEntity, "unknown publication type")
		return
	}

	created, err := a.st.Publications.Create(&p)
	if err != nil {
		a.serverError(w, "create publication", err)
		return
	}

	a.invalidate(r, cache.KeyPublications, cache.KeyHome)
	writeJSON(w, http.StatusCreated, created)
}

func (a *Admin) UpdatePublication(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}

	var p models.Publication
	if err := decodeJSON(r, &p); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !models.ValidPublicationType(p.Type) {
		jsonError(w, http.StatusUnprocessableEntity, "unknown publication type")
		return
	}
	p.ID = id

	if err := a.st.Publications.Update(&p); err != nil {
		a.serverError(w, "update publication", err)
		return
	}

	updated, err := a.st.Publications.FindByID(id)
	if err != nil {
		a.serverError(w, "reload publication", err)
		return
	}
	if updated == nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}

	a.invalidate(r, cache.KeyPublications, cache.KeyHome)
	writeJSON(w, http.StatusOK, updated)
}

func (a *Admin) DeletePublication(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}

	if err := a.st.Publications.Delete(id); err != nil {
		a.serverError(w, "delete publication", err)
		return
	}

	a.invalidate(r, cache.KeyPublications, cache.KeyHome)
	w.WriteHeader(http.StatusNoContent)
}

// --- Projects ---

func (a *Admin) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := a.st.Projects.List()
	if err != nil {
		a.serverError(w, "list projects", err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

func (a *Admin) CreateProject(w http.ResponseWriter, r *http.Request) {
	var p models.Project
	if err := decodeJSON(r, &p); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if p.Title == "" {
		jsonError(w, http.StatusUnprocessableEntity, "title is required")
		return
	}

	created, err := a.st.Projects.Create(&p)
	if err != nil {
		a.serverError(w, "create project", err)
		return
	}

	a.invalidate(r, cache.KeyPortfolio)
	writeJSON(w, http.StatusCreated, created)
}

func (a *Admin) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}

	var p models.Project
	if err := decodeJSON(r, &p); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p.ID = id

	if err := a.st.Projects.Update(&p); err != nil {
		a.serverError(w, "update project", err)
		return
	}

	updated, err := a.st.Projects.FindByID(id)
	if err != nil {
		a.serverError(w, "reload project", err)
		return
	}
	if updated == nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}

	a.invalidate(r, cache.KeyPortfolio)
	writeJSON(w, http.StatusOK, updated)
}

func (a *Admin) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}

	if err := a.st.Projects.Delete(id); err != nil {
		a.serverError(w, "delete project", err)
		return
	}

	a.invalidate(r, cache.KeyPortfolio)
	w.WriteHeader(http.StatusNoContent)
}

// --- Blog posts ---

func (a *Admin) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := a.st.Posts.List()
	if err != nil {
		a.serverError(w, "list posts", err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

func (a *Admin) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}

	post, err := a.st.Posts.FindByID(id)
	if err != nil {
		a.serverError(w, "find post", err)
		return
	}
	if post == nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

func (a *Admin) CreatePost(w http.ResponseWriter, r *http.Request) {
	var p models.BlogPost
	if err := decodeJSON(r, &p); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if p.Title == "" {
		jsonError(w, http.StatusUnprocessableEntity, "title is required")
		return
	}

	if p.Slug == "" {
		s, err := slug.Unique(slug.Generate(p.Title), a.st.Posts.SlugExists)
		if err != nil {
			a.serverError(w, "assign post slug", err)
			return
		}
		p.Slug = s
	}

	created, err := a.st.Posts.Create(&p)
	if err != nil {
		a.serverError(w, "create post", err)
		return
	}

	a.invalidate(r, cache.KeyBlogIndex, cache.KeyHome)
	writeJSON(w, http.StatusCreated, created)
}

func (a *Admin) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}

	var p models.BlogPost
	if err := decodeJSON(r, &p); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p.ID = id

	if err := a.st.Posts.Update(&p); err != nil {
		a.serverError(w, "update post", err)
		return
	}

	updated, err := a.st.Posts.FindByID(id)
	if err != nil {
		a.serverError(w, "reload post", err)
		return
	}
	if updated == nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}

	a.invalidate(r, cache.KeyBlogIndex, cache.KeyHome)
	writeJSON(w, http.StatusOK, updated)
}

func (a *Admin) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}

	if err := a.st.Posts.Delete(id); err != nil {
		a.serverError(w, "delete post", err)
		return
	}

	a.invalidate(r, cache.KeyBlogIndex, cache.KeyHome)
	w.WriteHeader(http.StatusNoContent)
}

// --- Achievements ---

func (a *Admin) ListAchievements(w http.ResponseWriter, r *http.Request) {
	items, err := a.st.Achievements.List()
	if err != nil {
		a.serverError(w, "list achievements", err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (a *Admin) CreateAchievement(w http.ResponseWriter, r *http.Request) {
	var ach models.Achievement
	if err := decodeJSON(r, &ach); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if ach.Title == "" {
		jsonError(w, http.StatusUnprocessableEntity, "title is required")
		return
	}

	created, err := a.st.Achievements.Create(&ach)
	if err != nil {
		a.serverError(w, "create achievement", err)
		return
	}

	a.invalidate(r, cache.KeyAbout)
	writeJSON(w, http.StatusCreated, created)
}

func (a *Admin) UpdateAchievement(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}

	var ach models.Achievement
	if err := decodeJSON(r, &ach); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ach.ID = id

	if err := a.st.Achievements.Update(&ach); err != nil {
		a.serverError(w, "update achievement", err)
		return
	}

	updated, err := a.st.Achievements.FindByID(id)
	if err != nil {
		a.serverError(w, "reload achievement", err)
		return
	}
	if updated == nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}

	a.invalidate(r, cache.KeyAbout)
	writeJSON(w, http.StatusOK, updated)
}

func (a *Admin) DeleteAchievement(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}

	if err := a.st.Achievements.Delete(id); err != nil {
		a.serverError(w, "delete achievement", err)
		return
	}

	a.invalidate(r, cache.KeyAbout)
	w.WriteHeader(http.StatusNoContent)
}

// --- Testimonials ---

func (a *Admin) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	items, err := a.st.Testimonials.List()
	if err != nil {
		a.serverError(w, "list testimonials", err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (a *Admin) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var tm models.Testimonial
	if err := decodeJSON(r, &tm); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if tm.ClientName == "" || tm.Text == "" {
		jsonError(w, http.StatusUnprocessableEntity, "client_name and text are required")
		return
	}
	if !models.ValidRating(tm.Rating) {
		jsonError(w, http.StatusUnprocessableEntity, "rating must be between 1 and 5")
		return
	}

	created, err := a.st.Testimonials.Create(&tm)
	if err != nil {
		a.serverError(w, "create testimonial", err)
		return
	}

	a.invalidate(r, cache.KeyHome, cache.KeyAbout)
	writeJSON(w, http.StatusCreated, created)
}

func (a *Admin) UpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}

	var tm models.Testimonial
	if err := decodeJSON(r, &tm); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !models.ValidRating(tm.Rating) {
		jsonError(w, http.StatusUnprocessableEntity, "rating must be between 1 and 5")
		return
	}
	tm.ID = id

	if err := a.st.Testimonials.Update(&tm); err != nil {
		a.serverError(w, "update testimonial", err)
		return
	}

	updated, err := a.st.Testimonials.FindByID(id)
	if err != nil {
		a.serverError(w, "reload testimonial", err)
		return
	}
	if updated == nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}

	a.invalidate(r, cache.KeyHome, cache.KeyAbout)
	writeJSON(w, http.StatusOK, updated)
}

type approveRequest struct {
	IsApproved bool `json:"is_approved"`
}

// ApproveTestimonial toggles a testimonial's public visibility.
func (a *Admin) ApproveTestimonial(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}

	var req approveRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.st.Testimonials.SetApproved(id, req.IsApproved); err != nil {
		a.serverError(w, "approve testimonial", err)
		return
	}

	a.invalidate(r, cache.KeyHome, cache.KeyAbout)
	w.WriteHeader(http.StatusNoContent)
}

func (a *Admin) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}

	if err := a.st.Testimonials.Delete(id); err != nil {
		a.serverError(w, "delete testimonial", err)
		return
	}

	a.invalidate(r, cache.KeyHome, cache.KeyAbout)
	w.WriteHeader(http.StatusNoContent)
}

// --- Books ---

func (a *Admin) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := a.st.Books.List()
	if err != nil {
		a.serverError(w, "list books", err)
		return
	}
	writeJSON(w, http.StatusOK, books)
}

func (a *Admin) CreateBook(w http.ResponseWriter, r *http.Request) {
	var b models.Book
	if err := decodeJSON(r, &b); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if b.Title == "" {
		jsonError(w, http.StatusUnprocessableEntity, "title is required")
		return
	}

	if b.Slug == "" {
		s, err := slug.Unique(slug.Generate(b.Title), a.st.Books.SlugExists)
		if err != nil {
			a.serverError(w, "assign book slug", err)
			return
		}
		b.Slug = s
	}

	created, err := a.st.Books.Create(&b)
	if err != nil {
		if errors.Is(err, store.ErrMissingBookFiles) {
			jsonError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		a.serverError(w, "create book", err)
		return
	}

	a.invalidate(r, cache.KeyBooksIndex, cache.KeyHome)
	writeJSON(w, http.StatusCreated, created)
}

func (a *Admin) UpdateBook(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}

	var b models.Book
	if err := decodeJSON(r, &b); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	b.ID = id

	if err := a.st.Books.Update(&b); err != nil {
		if errors.Is(err, store.ErrMissingBookFiles) {
			jsonError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		a.serverError(w, "update book", err)
		return
	}

	updated, err := a.st.Books.FindByID(id)
	if err != nil {
		a.serverError(w, "reload book", err)
		return
	}
	if updated == nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}

	a.invalidate(r, cache.KeyBooksIndex, cache.KeyHome)
	writeJSON(w, http.StatusOK, updated)
}

func (a *Admin) DeleteBook(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}

	if err := a.st.Books.Delete(id); err != nil {
		a.serverError(w, "delete book", err)
		return
	}

	a.invalidate(r, cache.KeyBooksIndex, cache.KeyHome)
	w.WriteHeader(http.StatusNoContent)
}

// BookPDFURL issues a short-lived presigned link to a book's PDF. The key
// lives under the private prefix and is never exposed on the public site.
func (a *Admin) BookPDFURL(w http.ResponseWriter, r *http.Request) {
	if a.storage == nil {
		jsonError(w, http.StatusServiceUnavailable, "object storage not configured")
		return
	}

	id, err := idParam(r)
	if err != nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}

	book, err := a.st.Books.FindByID(id)
	if err != nil {
		a.serverError(w, "find book", err)
		return
	}
	if book == nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}

	url, err := a.storage.PresignedURL(r.Context(), book.PDFKey, pdfLinkTTL)
	if err != nil {
		a.serverError(w, "presign book pdf", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

// --- Orders ---

type orderStatusRequest struct {
	Status     models.OrderStatus `json:"status"`
	AdminNotes string             `json:"admin_notes"`
}

func (a *Admin) ListServiceOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := a.st.ServiceOrders.List()
	if err != nil {
		a.serverError(w, "list service orders", err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (a *Admin) GetServiceOrder(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}

	order, err := a.st.ServiceOrders.FindByID(id)
	if err != nil {
		a.serverError(w, "find service order", err)
		return
	}
	if order == nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// UpdateServiceOrder changes an order's status and operator notes.
func (a *Admin) UpdateServiceOrder(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}

	var req orderStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.st.ServiceOrders.UpdateStatus(id, req.Status, req.AdminNotes); err != nil {
		if errors.Is(err, store.ErrInvalidStatus) {
			jsonError(w, http.StatusUnprocessableEntity, "invalid order status")
			return
		}
		a.serverError(w, "update service order", err)
		return
	}

	order, err := a.st.ServiceOrders.FindByID(id)
	if err != nil {
		a.serverError(w, "reload service order", err)
		return
	}
	if order == nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (a *Admin) ListBookOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := a.st.BookOrders.List()
	if err != nil {
		a.serverError(w, "list book orders", err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (a *Admin) GetBookOrder(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}

	order, err := a.st.BookOrders.FindByID(id)
	if err != nil {
		a.serverError(w, "find book order", err)
		return
	}
	if order == nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// UpdateBookOrder changes an order's status and operator notes. Book
// orders additionally accept the "shipped" status.
func (a *Admin) UpdateBookOrder(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}

	var req orderStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.st.BookOrders.UpdateStatus(id, req.Status, req.AdminNotes); err != nil {
		if errors.Is(err, store.ErrInvalidStatus) {
			jsonError(w, http.StatusUnprocessableEntity, "invalid order status")
			return
		}
		a.serverError(w, "update book order", err)
		return
	}

	order, err := a.st.BookOrders.FindByID(id)
	if err != nil {
		a.serverError(w, "reload book order", err)
		return
	}
	if order == nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// --- Contact inbox ---

func (a *Admin) ListContactMessages(w http.ResponseWriter, r *http.Request) {
	msgs, err := a.st.Contacts.List()
	if err != nil {
		a.serverError(w, "list contact messages", err)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

type readRequest struct {
	IsRead bool `json:"is_read"`
}

// MarkContactMessage toggles a message's read flag.
func (a *Admin) MarkContactMessage(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}

	var req readRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.st.Contacts.SetRead(id, req.IsRead); err != nil {
		a.serverError(w, "mark contact message", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *Admin) DeleteContactMessage(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}

	if err := a.st.Contacts.Delete(id); err != nil {
		a.serverError(w, "delete contact message", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Media ---

type uploadResponse struct {
	Key string `json:"key"`
	URL string `json:"url,omitempty"` // empty for private keys
}

// UploadMedia stores an uploaded file under the asset class named in the
// URL and returns the generated object key.
func (a *Admin) UploadMedia(w http.ResponseWriter, r *http.Request) {
	if a.storage == nil {
		jsonError(w, http.StatusServiceUnavailable, "object storage not configured")
		return
	}

	prefix, ok := mediaPrefixes[chi.URLParam(r, "class")]
	if !ok {
		jsonError(w, http.StatusNotFound, "unknown media class")
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	key := storage.NewKey(prefix, header.Filename)
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := a.storage.Upload(r.Context(), key, contentType, file, header.Size); err != nil {
		a.serverError(w, "upload media", err)
		return
	}

	resp := uploadResponse{Key: key}
	if !storage.IsPrivate(key) {
		resp.URL = a.storage.FileURL(key)
	}
	writeJSON(w, http.StatusCreated, resp)
}

// DeleteMedia removes the object named by the key query parameter.
func (a *Admin) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	if a.storage == nil {
		jsonError(w, http.StatusServiceUnavailable, "object storage not configured")
		return
	}

	key := r.URL.Query().Get("key")
	if key == "" {
		jsonError(w, http.StatusBadRequest, "missing key parameter")
		return
	}

	if err := a.storage.Delete(r.Context(), key); err != nil {
		a.serverError(w, "delete media", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
