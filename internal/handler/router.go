package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	custommiddleware "github.com/mmeshcher/backoffice-system/internal/middleware"
)

// SetupRouter настраивает HTTP-маршруты и middleware API бэк-офиса.
func (h *Handler) SetupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(custommiddleware.GzipMiddleware)
	r.Use(custommiddleware.Logger(h.logger))

	r.Route("/api", func(r chi.Router) {
		mountCrud(r, "/bids", "bid", h, h.services.Bids)
		mountCrud(r, "/trades", "trade", h, h.services.Trades)
		mountCrud(r, "/curvepoints", "curve point", h, h.services.CurvePoints)
		mountCrud(r, "/ratings", "rating", h, h.services.Ratings)
		mountCrud(r, "/rulenames", "rule name", h, h.services.RuleNames)
		mountCrud(r, "/users", "user", h, h.services.Users)

		r.Post("/login", h.Login)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	return r
}

// mountCrud вешает единый набор CRUD-маршрутов одного вида записей на поддерево.
func mountCrud[D any](r chi.Router, pattern, name string, h *Handler, svc CrudService[D]) {
	ch := &crudHandler[D]{
		name:     name,
		service:  svc,
		logger:   h.logger,
		validate: h.validate,
	}

	r.Route(pattern, func(r chi.Router) {
		r.Get("/", ch.list)
		r.Post("/", ch.create)
		r.Get("/{id}", ch.get)
		r.Put("/{id}", ch.update)
		r.Delete("/{id}", ch.delete)
	})
}
