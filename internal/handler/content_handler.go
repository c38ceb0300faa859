package handler

import (
	"errors"
	"net/http"

	"github.com/onamkulam/interiors/internal/content"
	"github.com/onamkulam/interiors/internal/model"
)

// ContentStore is the read side of the blog and portfolio content.
type ContentStore interface {
	Posts(category string) []model.BlogPost
	Post(slug string) (model.BlogPost, error)
	Portfolio(category string) []model.PortfolioCategory
}

// ContentHandler serves blog posts and the portfolio gallery.
type ContentHandler struct {
	store ContentStore
}

func NewContentHandler(store ContentStore) *ContentHandler {
	return &ContentHandler{store: store}
}

// ListBlogs handles GET /api/blogs?category=.
func (h *ContentHandler) ListBlogs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"posts": h.store.Posts(r.URL.Query().Get("category")),
	})
}

// GetBlog handles GET /api/blogs/{slug}.
func (h *ContentHandler) GetBlog(w http.ResponseWriter, r *http.Request) {
	post, err := h.store.Post(r.PathValue("slug"))
	if errors.Is(err, content.ErrNotFound) {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load post")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// Portfolio handles GET /api/portfolio?category=.
func (h *ContentHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"categories": h.store.Portfolio(r.URL.Query().Get("category")),
	})
}
