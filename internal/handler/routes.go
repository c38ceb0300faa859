package handler

import (
	"net/http"

	"github.com/onamkulam/interiors/pkg/auth"
)

// Routes groups the handlers mounted by NewRouter.
type Routes struct {
	Base        *Handler
	Enquiries   *EnquiryHandler
	Content     *ContentHandler
	Layout      *LayoutHandler
	RateLimiter *RateLimiter
	// AdminSecret signs admin bearer tokens. When empty the admin routes
	// are not registered.
	AdminSecret []byte
}

// NewRouter registers every API route and wraps the mux in the shared
// middleware chain.
func NewRouter(rt Routes) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", rt.Base.Health)

	submit := http.Handler(http.HandlerFunc(rt.Enquiries.Submit))
	if rt.RateLimiter != nil {
		submit = rt.RateLimiter.Middleware(submit)
	}
	mux.Handle("POST /api/enquiry", submit)

	mux.HandleFunc("GET /api/blogs", rt.Content.ListBlogs)
	mux.HandleFunc("GET /api/blogs/{slug}", rt.Content.GetBlog)
	mux.HandleFunc("GET /api/portfolio", rt.Content.Portfolio)

	mux.HandleFunc("GET /api/layout", rt.Layout.Plan)
	mux.HandleFunc("GET /api/layout/frame", rt.Layout.Frame)

	// Admin routes (bearer token)
	if len(rt.AdminSecret) > 0 {
		requireAdmin := auth.RequireAdmin(rt.AdminSecret)
		mux.Handle("GET /api/admin/enquiries", requireAdmin(http.HandlerFunc(rt.Enquiries.AdminList)))
		mux.Handle("GET /api/admin/enquiries/{id}", requireAdmin(http.HandlerFunc(rt.Enquiries.AdminGet)))
	}

	return RequestLogger(SecurityHeaders(rt.Base.CORS(mux)))
}
