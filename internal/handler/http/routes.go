package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		h.restRoutes(r)

		// long-lived: no request timeout and no compression
		r.Route("/api/subscribe", func(r chi.Router) {
			r.Get("/lists", h.subscribeLists)
			r.Get("/lists/{listID}/items", h.subscribeItems)
			r.Get("/invites", h.subscribeInvites)
		})
	})

	// unsupported methods on known paths look like unknown paths
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	return router
}

func (h *Handler) restRoutes(router chi.Router) {
	router.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(h.requestTimeout), middleware.Compress(5, "application/json"))

		r.Post("/api/auth/token", h.refreshToken)

		r.Route("/api/lists", func(r chi.Router) {
			r.Get("/", h.userLists)
			r.Post("/", h.createList)

			r.Route("/{listID}", func(r chi.Router) {
				r.Delete("/", h.deleteList)
				r.Post("/leave", h.leaveList)

				r.Get("/items", h.items)
				r.Post("/items", h.addItem)
				r.Delete("/items/{itemID}", h.deleteItem)

				r.Get("/collaborators", h.collaborators)
				r.Post("/invites", h.invite)
			})
		})

		r.Route("/api/invites", func(r chi.Router) {
			r.Get("/", h.pendingInvites)
			r.Post("/{inviteID}/accept", h.acceptInvite)
			r.Post("/{inviteID}/decline", h.declineInvite)
			r.Delete("/{inviteID}", h.removeCollaborator)
		})

		r.Get("/api/users", h.findUser)
	})
}
