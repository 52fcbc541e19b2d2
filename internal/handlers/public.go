// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"scholarsite/internal/cache"
	"scholarsite/internal/models"
	"scholarsite/internal/notify"
	"scholarsite/internal/render"
)

// notifyTimeout bounds a single background Telegram delivery attempt.
const notifyTimeout = 15 * time.Second

// Notifier delivers operator notifications. *notify.Telegram implements it.
type Notifier interface {
	Enabled() bool
	Send(ctx context.Context, text string) error
}

// Public serves the visitor-facing site: content pages from the page
// cache where possible, plus the contact and order form intake.
type Public struct {
	renderer  *render.Renderer
	st        *Stores
	pageCache *cache.PageCache
	notifier  Notifier
}

// NewPublic creates the public handler group. pageCache and notifier may
// be nil; pages are then rendered per request and notifications dropped.
func NewPublic(renderer *render.Renderer, st *Stores, pageCache *cache.PageCache, notifier Notifier) *Public {
	return &Public{
		renderer:  renderer,
		st:        st,
		pageCache: pageCache,
		notifier:  notifier,
	}
}

// profile loads the site owner's profile for the page header and footer.
// A missing or failing profile never blocks a page render.
func (p *Public) profile() *models.Profile {
	prof, err := p.st.Profiles.Get()
	if err != nil {
		slog.Error("load profile", "error", err)
		return nil
	}
	return prof
}

// serveCached writes the cached page for key if present.
func (p *Public) serveCached(w http.ResponseWriter, r *http.Request, key string) bool {
	if p.pageCache == nil {
		return false
	}
	html, ok := p.pageCache.Get(r.Context(), key)
	if !ok {
		return false
	}
	render.WriteCached(w, html)
	return true
}

// renderAndCache renders a list page, stores it under key and writes it.
func (p *Public) renderAndCache(w http.ResponseWriter, r *http.Request, key, tmpl string, data *render.PageData) {
	html, err := p.renderer.Render(r, tmpl, data)
	if err != nil {
		slog.Error("render page", "template", tmpl, "error", err)
		p.ServerError(w, r)
		return
	}
	if p.pageCache != nil {
		p.pageCache.Set(r.Context(), key, html)
	}
	render.WriteCached(w, html)
}

// notifyAsync fires a Telegram notification in the background. Delivery
// failure is logged and never surfaces to the visitor's request.
func (p *Public) notifyAsync(text string) {
	if p.notifier == nil || !p.notifier.Enabled() {
		slog.Warn("telegram not configured, notification skipped")
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := p.notifier.Send(ctx, text); err != nil {
			slog.Warn("telegram notification failed", "error", err)
		}
	}()
}

// Home renders the landing page with featured books and approved
// testimonials.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	if p.serveCached(w, r, cache.KeyHome) {
		return
	}

	featured, err := p.st.Books.ListFeatured()
	if err != nil {
		slog.Error("list featured books", "error", err)
		p.ServerError(w, r)
		return
	}
	testimonials, err := p.st.Testimonials.ListApproved()
	if err != nil {
		slog.Error("list testimonials", "error", err)
		p.ServerError(w, r)
		return
	}

	p.renderAndCache(w, r, cache.KeyHome, "home", &render.PageData{
		Title:   "Главная",
		Section: "home",
		Profile: p.profile(),
		Data: map[string]any{
			"FeaturedBooks": featured,
			"Testimonials":  testimonials,
		},
	})
}

// About renders the biography page with achievements and testimonials.
func (p *Public) About(w http.ResponseWriter, r *http.Request) {
	if p.serveCached(w, r, cache.KeyAbout) {
		return
	}

	achievements, err := p.st.Achievements.List()
	if err != nil {
		slog.Error("list achievements", "error", err)
		p.ServerError(w, r)
		return
	}
	testimonials, err := p.st.Testimonials.ListApproved()
	if err != nil {
		slog.Error("list testimonials", "error", err)
		p.ServerError(w, r)
		return
	}

	p.renderAndCache(w, r, cache.KeyAbout, "about", &render.PageData{
		Title:   "Обо мне",
		Section: "about",
		Profile: p.profile(),
		Data: map[string]any{
			"Achievements": achievements,
			"Testimonials": testimonials,
		},
	})
}

// Services renders the active services, in manual order.
func (p *Public) Services(w http.ResponseWriter, r *http.Request) {
	if p.serveCached(w, r, cache.KeyServices) {
		return
	}

	services, err := p.st.Services.ListActive()
	if err != nil {
		slog.Error("list services", "error", err)
		p.ServerError(w, r)
		return
	}

	p.renderAndCache(w, r, cache.KeyServices, "services", &render.PageData{
		Title:   "Услуги",
		Section: "services",
		Profile: p.profile(),
		Data:    map[string]any{"Services": services},
	})
}

// Portfolio renders active research projects.
func (p *Public) Portfolio(w http.ResponseWriter, r *http.Request) {
	if p.serveCached(w, r, cache.KeyPortfolio) {
		return
	}

	projects, err := p.st.Projects.ListActive()
	if err != nil {
		slog.Error("list projects", "error", err)
		p.ServerError(w, r)
		return
	}

	p.renderAndCache(w, r, cache.KeyPortfolio, "portfolio", &render.PageData{
		Title:   "Портфолио",
		Section: "portfolio",
		Profile: p.profile(),
		Data:    map[string]any{"Projects": projects},
	})
}

// Publications renders the full publication list, newest year first.
func (p *Public) Publications(w http.ResponseWriter, r *http.Request) {
	if p.serveCached(w, r, cache.KeyPublications) {
		return
	}

	pubs, err := p.st.Publications.List()
	if err != nil {
		slog.Error("list publications", "error", err)
		p.ServerError(w, r)
		return
	}

	p.renderAndCache(w, r, cache.KeyPublications, "publications", &render.PageData{
		Title:   "Публикации",
		Section: "publications",
		Profile: p.profile(),
		Data:    map[string]any{"Publications": pubs},
	})
}

// PublicationDetail renders a single publication. Never cached.
func (p *Public) PublicationDetail(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		p.NotFound(w, r)
		return
	}

	pub, err := p.st.Publications.FindByID(id)
	if err != nil {
		slog.Error("find publication", "id", id, "error", err)
		p.ServerError(w, r)
		return
	}
	if pub == nil {
		p.NotFound(w, r)
		return
	}

	p.renderer.Page(w, r, "publication_detail", &render.PageData{
		Title:   pub.Title,
		Section: "publications",
		Profile: p.profile(),
		Data:    map[string]any{"Publication": pub},
	})
}

// Blog renders published posts, newest first.
func (p *Public) Blog(w http.ResponseWriter, r *http.Request) {
	if p.serveCached(w, r, cache.KeyBlogIndex) {
		return
	}

	posts, err := p.st.Posts.ListPublished()
	if err != nil {
		slog.Error("list posts", "error", err)
		p.ServerError(w, r)
		return
	}

	p.renderAndCache(w, r, cache.KeyBlogIndex, "blog", &render.PageData{
		Title:   "Блог",
		Section: "blog",
		Profile: p.profile(),
		Data:    map[string]any{"Posts": posts},
	})
}

// BlogPost renders a published post and counts the view. Never cached, so
// the counter ticks on every access.
func (p *Public) BlogPost(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	post, err := p.st.Posts.FindBySlug(slug)
	if err != nil {
		slog.Error("find post", "slug", slug, "error", err)
		p.ServerError(w, r)
		return
	}
	if post == nil {
		p.NotFound(w, r)
		return
	}

	if err := p.st.Posts.IncrementViews(post.ID); err != nil {
		slog.Error("increment post views", "id", post.ID, "error", err)
	} else {
		post.ViewsCount++
	}

	p.renderer.Page(w, r, "blog_post", &render.PageData{
		Title:   post.Title,
		Section: "blog",
		Profile: p.profile(),
		Data:    map[string]any{"Post": post},
	})
}

// Books renders books available for order.
func (p *Public) Books(w http.ResponseWriter, r *http.Request) {
	if p.serveCached(w, r, cache.KeyBooksIndex) {
		return
	}

	books, err := p.st.Books.ListAvailable()
	if err != nil {
		slog.Error("list books", "error", err)
		p.ServerError(w, r)
		return
	}

	p.renderAndCache(w, r, cache.KeyBooksIndex, "books", &render.PageData{
		Title:   "Книги",
		Section: "books",
		Profile: p.profile(),
		Data:    map[string]any{"Books": books},
	})
}

// BookDetail renders a book with its embedded order form and counts the
// view. Never cached.
func (p *Public) BookDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	book, err := p.st.Books.FindBySlug(slug)
	if err != nil {
		slog.Error("find book", "slug", slug, "error", err)
		p.ServerError(w, r)
		return
	}
	if book == nil {
		p.NotFound(w, r)
		return
	}

	if err := p.st.Books.IncrementViews(book.ID); err != nil {
		slog.Error("increment book views", "id", book.ID, "error", err)
	} else {
		book.ViewsCount++
	}

	p.renderer.Page(w, r, "book_detail", &render.PageData{
		Title:   book.Title,
		Section: "books",
		Profile: p.profile(),
		Data: map[string]any{
			"Book":    book,
			"Ordered": r.URL.Query().Get("ordered") == "1",
		},
		Form: map[string]string{},
	})
}

// ContactPage renders the contact form.
func (p *Public) ContactPage(w http.ResponseWriter, r *http.Request) {
	p.renderer.Page(w, r, "contact", &render.PageData{
		Title:   "Контакты",
		Section: "contact",
		Profile: p.profile(),
		Data:    map[string]any{"Sent": r.URL.Query().Get("sent") == "1"},
		Form:    map[string]string{},
	})
}

// ContactSubmit validates and stores a contact message. Invalid input
// re-renders the form with field errors and stores nothing.
func (p *Public) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	var form ContactForm
	if err := decodeForm(r, &form); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if errs := validateForm(&form); errs != nil {
		p.renderer.Page(w, r, "contact", &render.PageData{
			Title:   "Контакты",
			Section: "contact",
			Profile: p.profile(),
			Data:    map[string]any{},
			Errors:  errs,
			Form:    formValues(r),
		})
		return
	}

	msg, err := p.st.Contacts.Create(&models.ContactMessage{
		Name:    form.Name,
		Email:   form.Email,
		Subject: form.Subject,
		Message: form.Message,
	})
	if err != nil {
		slog.Error("create contact message", "error", err)
		p.ServerError(w, r)
		return
	}

	p.notifyAsync(notify.ContactMessageText(msg))
	http.Redirect(w, r, "/contact?sent=1", http.StatusFound)
}

// OrderPage renders the service order form. A service preselected via
// /order/{serviceID} arrives as the initial form value.
func (p *Public) OrderPage(w http.ResponseWriter, r *http.Request) {
	services, err := p.st.Services.ListActive()
	if err != nil {
		slog.Error("list services", "error", err)
		p.ServerError(w, r)
		return
	}

	form := map[string]string{}
	if preselect := chi.URLParam(r, "serviceID"); preselect != "" {
		if _, err := uuid.Parse(preselect); err == nil {
			form["service_id"] = preselect
		}
	}

	p.renderer.Page(w, r, "order", &render.PageData{
		Title:   "Заказать услугу",
		Section: "services",
		Profile: p.profile(),
		Data: map[string]any{
			"Services": services,
			"Sent":     r.URL.Query().Get("sent") == "1",
		},
		Form: form,
	})
}

// OrderSubmit validates and stores a service order, then notifies the
// operator in the background.
func (p *Public) OrderSubmit(w http.ResponseWriter, r *http.Request) {
	var form ServiceOrderForm
	if err := decodeForm(r, &form); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	errs := validateForm(&form)

	var service *models.Service
	if errs == nil {
		serviceID, _ := uuid.Parse(form.ServiceID)
		var err error
		service, err = p.st.Services.FindByID(serviceID)
		if err != nil {
			slog.Error("find service", "id", serviceID, "error", err)
			p.ServerError(w, r)
			return
		}
		if service == nil {
			errs = map[string]string{"service_id": "Услуга не найдена."}
		}
	}

	if errs != nil {
		services, err := p.st.Services.ListActive()
		if err != nil {
			slog.Error("list services", "error", err)
			p.ServerError(w, r)
			return
		}
		p.renderer.Page(w, r, "order", &render.PageData{
			Title:   "Заказать услугу",
			Section: "services",
			Profile: p.profile(),
			Data:    map[string]any{"Services": services},
			Errors:  errs,
			Form:    formValues(r),
		})
		return
	}

	order, err := p.st.ServiceOrders.Create(&models.ServiceOrder{
		ServiceID:     service.ID,
		FullName:      form.FullName,
		Email:         form.Email,
		Phone:         form.Phone,
		Organization:  form.Organization,
		Message:       form.Message,
		PreferredDate: parseOptionalDate(form.PreferredDate),
	})
	if err != nil {
		slog.Error("create service order", "error", err)
		p.ServerError(w, r)
		return
	}

	p.notifyAsync(notify.ServiceOrderMessage(order, service))
	http.Redirect(w, r, "/order?sent=1", http.StatusFound)
}

// BookOrderSubmit validates and stores a book order placed from the
// book's detail page.
func (p *Public) BookOrderSubmit(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	book, err := p.st.Books.FindBySlug(slug)
	if err != nil {
		slog.Error("find book", "slug", slug, "error", err)
		p.ServerError(w, r)
		return
	}
	if book == nil {
		p.NotFound(w, r)
		return
	}
	if !book.IsAvailable {
		http.Redirect(w, r, "/books/"+book.Slug, http.StatusSeeOther)
		return
	}

	var form BookOrderForm
	if err := decodeForm(r, &form); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if errs := validateForm(&form); errs != nil {
		p.renderer.Page(w, r, "book_detail", &render.PageData{
			Title:   book.Title,
			Section: "books",
			Profile: p.profile(),
			Data:    map[string]any{"Book": book},
			Errors:  errs,
			Form:    formValues(r),
		})
		return
	}

	order, err := p.st.BookOrders.Create(&models.BookOrder{
		BookID:   book.ID,
		FullName: form.FullName,
		Email:    form.Email,
		Phone:    form.Phone,
		Address:  form.Address,
		Quantity: form.Quantity,
		Message:  form.Message,
	})
	if err != nil {
		slog.Error("create book order", "error", err)
		p.ServerError(w, r)
		return
	}

	p.notifyAsync(notify.BookOrderMessage(order, book))
	http.Redirect(w, r, "/books/"+book.Slug+"?ordered=1", http.StatusFound)
}

// NotFound renders the 404 page.
func (p *Public) NotFound(w http.ResponseWriter, r *http.Request) {
	p.renderer.PageStatus(w, r, http.StatusNotFound, "not_found", &render.PageData{
		Title:   "Страница не найдена",
		Profile: p.profile(),
		Data:    map[string]any{},
	})
}

// ServerError renders the 500 page.
func (p *Public) ServerError(w http.ResponseWriter, r *http.Request) {
	p.renderer.PageStatus(w, r, http.StatusInternalServerError, "error", &render.PageData{
		Title:   "Ошибка",
		Profile: p.profile(),
		Data:    map[string]any{},
	})
}
