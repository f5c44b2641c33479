package post

import (
	"net/http"

	"Postboard/internal/core/posts"
)

// SearchHandler handles post search requests
type SearchHandler struct {
	service posts.Service
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(service posts.Service) *SearchHandler {
	return &SearchHandler{
		service: service,
	}
}

// HandleSearch handles GET /api/posts/search
// Matches posts whose title or content contains the given substrings,
// case-insensitively; with no parameters nothing matches
func (h *SearchHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// An absent parameter and an empty one behave differently: ?title=
	// matches everything, no title parameter matches nothing
	q := r.URL.Query()
	var req posts.SearchPostsRequest
	if q.Has("title") {
		v := q.Get("title")
		req.Title = &v
	}
	if q.Has("content") {
		v := q.Get("content")
		req.Content = &v
	}

	result, err := h.service.SearchPosts(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
