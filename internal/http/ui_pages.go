package httpx

import (
	"context"
	"net/http"

	"github.com/kwakyosong/platform-ui/internal/domain/model"
	"github.com/kwakyosong/platform-ui/internal/domain/view"
)

// Home serves the content discovery view. Public; the category and q query
// params narrow the listing.
func (h *UIHandlers) Home(w http.ResponseWriter, r *http.Request) {
	dest, _ := h.navigate(r, view.Home, nil)
	if dest != view.Home {
		h.redirectTo(w, r, dest)
		return
	}

	filter := contentFilterFromQuery(r)
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Discover", PageTitle: "Discover", View: view.Home},
		Fetch: func(ctx context.Context, data map[string]any) error {
			contents, err := h.Contents.List(ctx, filter)
			if err != nil {
				return err
			}
			data["Contents"] = contents
			data["Category"] = string(filter.Category)
			data["Query"] = filter.Query
			return nil
		},
	})
}

func contentFilterFromQuery(r *http.Request) model.ContentFilter {
	var filter model.ContentFilter
	if c, ok := model.ParseContentCategory(r.URL.Query().Get("category")); ok {
		filter.Category = c
	}
	filter.Query = r.URL.Query().Get("q")
	return filter
}

// Detail serves the content detail view. Public, but it needs a payload: a
// request for an unknown or missing id navigates back to home instead of
// rendering an error.
func (h *UIHandlers) Detail(w http.ResponseWriter, r *http.Request) {
	var payload *model.Content
	if id := r.PathValue("id"); id != "" {
		c, err := h.Contents.Get(r.Context(), id)
		if err != nil {
			h.logger().DebugContext(r.Context(), "detail payload lookup failed", "id", id, "error", err)
		} else {
			payload = c
		}
	}

	dest, router := h.navigate(r, view.Detail, payload)
	if dest != view.Detail {
		h.redirectTo(w, r, dest)
		return
	}

	content := router.Payload()
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: content.Title, PageTitle: content.Title, View: view.Detail},
		Fetch: func(_ context.Context, data map[string]any) error {
			data["Content"] = content
			return nil
		},
	})
}

// Community serves the community board view. Public.
func (h *UIHandlers) Community(w http.ResponseWriter, r *http.Request) {
	dest, _ := h.navigate(r, view.Community, nil)
	if dest != view.Community {
		h.redirectTo(w, r, dest)
		return
	}

	filter := model.PostFilter{
		Category: r.URL.Query().Get("category"),
		Query:    r.URL.Query().Get("q"),
	}
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Community", PageTitle: "Community", View: view.Community},
		Fetch: func(ctx context.Context, data map[string]any) error {
			posts, err := h.Posts.List(ctx, filter)
			if err != nil {
				return err
			}
			data["Posts"] = posts
			data["Category"] = filter.Category
			data["Query"] = filter.Query
			return nil
		},
	})
}

// CareerMap serves the career path explorer. Public.
func (h *UIHandlers) CareerMap(w http.ResponseWriter, r *http.Request) {
	dest, _ := h.navigate(r, view.CareerMap, nil)
	if dest != view.CareerMap {
		h.redirectTo(w, r, dest)
		return
	}

	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Career Map", PageTitle: "Career Map", View: view.CareerMap},
		Fetch: func(ctx context.Context, data map[string]any) error {
			paths, err := h.Careers.List(ctx)
			if err != nil {
				return err
			}
			data["Paths"] = paths
			return nil
		},
	})
}

// LoginPage serves the sign-in form. Public; an already authenticated user
// still sees the form so switching roles stays a one-step flow.
func (h *UIHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	dest, _ := h.navigate(r, view.Login, nil)
	if dest != view.Login {
		h.redirectTo(w, r, dest)
		return
	}

	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Sign In", PageTitle: "Sign In", View: view.Login},
		Fetch: func(_ context.Context, data map[string]any) error {
			data["RedirectURI"] = safeRedirectPath(r.URL.Query().Get("redirect_uri"))
			if r.URL.Query().Get("error") == "login_failed" {
				data["Error"] = true
				data["ErrorMessage"] = "Sign-in failed. Please try again."
			}
			return nil
		},
	})
}

// NotFound renders the 404 page through the shared layout so unknown URLs
// still carry navigation back into the app.
func (h *UIHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	data := basePageData(r, PageMeta{Title: "Page Not Found", PageTitle: "Page Not Found", View: view.Home})
	data["RequestedPath"] = r.URL.Path

	w.WriteHeader(http.StatusNotFound)
	if err := h.T.RenderError(w, r, data); err != nil {
		h.logger().Error("not-found render failed", "error", err)
	}
}
