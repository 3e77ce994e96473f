package handlers

import (
	"dealTracker/internal/middleware"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type RouterOptions struct {
	AllowedOrigins []string
	RateLimit      int
}

func NewRouter(h *Handler, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))
	r.Use(middleware.RateLimit(opts.RateLimit))

	r.Get("/health", h.HealthCheck)

	r.Route("/deals", func(r chi.Router) {
		r.Post("/", h.CreateDeal)
		r.Get("/", h.ListDeals)
		r.Get("/stats", h.DealStats)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetDeal)
			r.Patch("/", h.UpdateDeal)
			r.Delete("/", h.DeleteDeal)

			r.Get("/overview", h.DealOverview)
			r.Get("/tasks", h.ListTasks)
			r.Get("/documents", h.ListDocuments)
			r.Get("/communications", h.ListCommunications)
			r.Get("/contacts", h.ListContacts)
		})
	})

	r.Route("/tasks", func(r chi.Router) {
		r.Post("/", h.CreateTask)
		r.Get("/{id}", h.GetTask)
		r.Patch("/{id}", h.UpdateTask)
		r.Delete("/{id}", h.DeleteTask)
	})

	r.Route("/documents", func(r chi.Router) {
		r.Post("/", h.CreateDocument)
		r.Get("/{id}", h.GetDocument)
		r.Patch("/{id}", h.UpdateDocument)
		r.Delete("/{id}", h.DeleteDocument)
	})

	r.Route("/communications", func(r chi.Router) {
		r.Post("/", h.CreateCommunication)
		r.Get("/{id}", h.GetCommunication)
		r.Patch("/{id}", h.UpdateCommunication)
		r.Delete("/{id}", h.DeleteCommunication)
	})

	r.Route("/contacts", func(r chi.Router) {
		r.Post("/", h.CreateContact)
		r.Get("/{id}", h.GetContact)
		r.Patch("/{id}", h.UpdateContact)
		r.Delete("/{id}", h.DeleteContact)
	})

	return r
}
