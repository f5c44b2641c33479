package routes

import (
	"Postboard/internal/api/handlers/post"
	"Postboard/internal/core/posts"

	"github.com/go-chi/chi/v5"
)

// RegisterPostRoutes registers the post CRUD and search endpoints on the router
func RegisterPostRoutes(r chi.Router, service posts.Service) {
	// Initialize handlers
	listHandler := post.NewListHandler(service)
	createHandler := post.NewCreateHandler(service)
	updateHandler := post.NewUpdateHandler(service)
	deleteHandler := post.NewDeleteHandler(service)
	searchHandler := post.NewSearchHandler(service)

	// GET /api/posts - list all posts, optionally sorted
	r.Get("/api/posts", listHandler.HandleList)

	// POST /api/posts - create a new post
	r.Post("/api/posts", createHandler.HandleCreate)

	// GET /api/posts/search - substring search over title/content
	// Registered as a static route so it never collides with {id}
	r.Get("/api/posts/search", searchHandler.HandleSearch)

	// PUT /api/posts/{id} - partial update of an existing post
	r.Put("/api/posts/{id}", updateHandler.HandleUpdate)

	// DELETE /api/posts/{id} - remove a post
	r.Delete("/api/posts/{id}", deleteHandler.HandleDelete)
}
