package handler

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/tavolo/tavolo/internal/middleware"
)

// CatalogStore is the full read surface the router needs. Implemented
// by *repository.Repository.
type CatalogStore interface {
	UserStore
	ImageStore
	MenuStore
	FAQStore
	ReviewStore
	Pinger
}

// NewRouter configures the chi router with all routes and middleware.
func NewRouter(store CatalogStore, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))

	users := NewUserHandler(store, logger)
	images := NewImageHandler(store, logger)
	menu := NewMenuHandler(store, logger)
	faqs := NewFAQHandler(store, logger)
	reviews := NewReviewHandler(store, logger)
	health := NewHealthHandler(store, logger)

	r.Get("/users", users.List)
	r.Get("/users/{id}", users.Get)

	r.Get("/images", images.List)
	r.Get("/images/{id}", images.Get)

	r.Get("/menu-categories", menu.ListCategories)
	r.Get("/menu-categories/{id}", menu.GetCategory)

	r.Get("/menu-items", menu.ListItems)
	r.Get("/menu-items/{id}", menu.GetItem)

	r.Get("/faqs", faqs.List)

	r.Get("/reviews", reviews.List)
	r.Get("/reviews/{id}", reviews.Get)

	// Diagnostic probe, not part of the resource catalog.
	r.Get("/test-db", health.TestDB)

	r.NotFound(NotFound)
	r.MethodNotAllowed(MethodNotAllowed)

	return r
}
