// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router wires all HTTP routes and middleware chains: the public
// site, the static file server and the admin JSON API.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"scholarsite/internal/handlers"
	"scholarsite/internal/middleware"
	"scholarsite/internal/session"
	"scholarsite/web"
)

// New creates the configured chi router. secure controls cookie flags and
// should be true when the site is served over TLS. loginLimiter guards
// the login endpoint against credential stuffing.
func New(sessions *session.Store, secure bool, loginLimiter *middleware.RateLimiter,
	admin *handlers.Admin, auth *handlers.Auth, public *handlers.Public) chi.Router {

	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessions))

	// Health check. No session, no CSRF.
	r.Get("/health", healthHandler)

	// Embedded static assets.
	r.Handle("/static/*", http.FileServer(http.FS(web.StaticFS)))

	// Admin JSON API.
	r.Route("/admin/api", func(r chi.Router) {
		r.Use(middleware.NewCSRF(secure))

		r.With(loginLimiter.Middleware).Post("/login", auth.Login)

		// Requires a session, but 2FA may still be pending.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Post("/2fa/setup", auth.TwoFASetup)
			r.Post("/2fa/verify", auth.TwoFAVerify)
			r.Post("/logout", auth.Logout)
			r.Get("/me", auth.Me)
		})

		// Fully authenticated operator area.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.Require2FA)

			r.Get("/dashboard", admin.Dashboard)
			r.Post("/cache/purge", admin.PurgeCache)

			r.Get("/profile", admin.GetProfile)
			r.Put("/profile", admin.UpdateProfile)

			r.Route("/services", func(r chi.Router) {
				r.Get("/", admin.ListServices)
				r.Post("/", admin.CreateService)
				r.Put("/{id}", admin.UpdateService)
				r.Delete("/{id}", admin.DeleteService)
			})

			r.Route("/publications", func(r chi.Router) {
				r.Get("/", admin.ListPublications)
				r.Post("/", admin.CreatePublication)
				r.Put("/{id}", admin.UpdatePublication)
				r.Delete("/{id}", admin.DeletePublication)
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", admin.ListProjects)
				r.Post("/", admin.CreateProject)
				r.Put("/{id}", admin.UpdateProject)
				r.Delete("/{id}", admin.DeleteProject)
			})

			r.Route("/posts", func(r chi.Router) {
				r.Get("/", admin.ListPosts)
				r.Post("/", admin.CreatePost)
				r.Get("/{id}", admin.GetPost)
				r.Put("/{id}", admin.UpdatePost)
				r.Delete("/{id}", admin.DeletePost)
			})

			r.Route("/achievements", func(r chi.Router) {
				r.Get("/", admin.ListAchievements)
				r.Post("/", admin.CreateAchievement)
				r.Put("/{id}", admin.UpdateAchievement)
				r.Delete("/{id}", admin.DeleteAchievement)
			})

			r.Route("/testimonials", func(r chi.Router) {
				r.Get("/", admin.ListTestimonials)
				r.Post("/", admin.CreateTestimonial)
				r.Put("/{id}", admin.UpdateTestimonial)
				r.Patch("/{id}/approve", admin.ApproveTestimonial)
				r.Delete("/{id}", admin.DeleteTestimonial)
			})

			r.Route("/books", func(r chi.Router) {
				r.Get("/", admin.ListBooks)
				r.Post("/", admin.CreateBook)
				r.Put("/{id}", admin.UpdateBook)
				r.Delete("/{id}", admin.DeleteBook)
				r.Get("/{id}/pdf-url", admin.BookPDFURL)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Route("/services", func(r chi.Router) {
					r.Get("/", admin.ListServiceOrders)
					r.Get("/{id}", admin.GetServiceOrder)
					r.Patch("/{id}", admin.UpdateServiceOrder)
				})
				r.Route("/books", func(r chi.Router) {
					r.Get("/", admin.ListBookOrders)
					r.Get("/{id}", admin.GetBookOrder)
					r.Patch("/{id}", admin.UpdateBookOrder)
				})
			})

			r.Route("/messages", func(r chi.Router) {
				r.Get("/", admin.ListContactMessages)
				r.Patch("/{id}", admin.MarkContactMessage)
				r.Delete("/{id}", admin.DeleteContactMessage)
			})

			r.Route("/media", func(r chi.Router) {
				r.Post("/{class}", admin.UploadMedia)
				r.Delete("/", admin.DeleteMedia)
			})
		})
	})

	// Public site. CSRF protects the contact and order forms.
	r.Group(func(r chi.Router) {
		r.Use(middleware.NewCSRF(secure))

		r.Get("/", public.Home)
		r.Get("/about", public.About)
		r.Get("/services", public.Services)
		r.Get("/portfolio", public.Portfolio)
		r.Get("/publications", public.Publications)
		r.Get("/publications/{id}", public.PublicationDetail)
		r.Get("/blog", public.Blog)
		r.Get("/blog/{slug}", public.BlogPost)
		r.Get("/books", public.Books)
		r.Get("/books/{slug}", public.BookDetail)
		r.Post("/books/{slug}/order", public.BookOrderSubmit)
		r.Get("/contact", public.ContactPage)
		r.Post("/contact", public.ContactSubmit)
		r.Get("/order", public.OrderPage)
		r.Get("/order/{serviceID}", public.OrderPage)
		r.Post("/order", public.OrderSubmit)
	})

	r.NotFound(public.NotFound)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
