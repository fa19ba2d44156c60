package httpx

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	domainauth "github.com/kwakyosong/platform-ui/internal/domain/auth"
	"github.com/kwakyosong/platform-ui/internal/domain/model"
	"github.com/kwakyosong/platform-ui/internal/domain/view"
	"github.com/kwakyosong/platform-ui/internal/http/validation"
)

// FormMode represents the mode of a form (create or edit).
type FormMode string

const (
	FormModeCreate FormMode = "create"
	FormModeEdit   FormMode = "edit"
)

const formDateLayout = "2006-01-02"

// AdminDashboard serves the aggregate statistics view for administrators.
func (h *UIHandlers) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	dest, _ := h.navigate(r, view.AdminDashboard, nil)
	if dest != view.AdminDashboard {
		h.redirectTo(w, r, dest)
		return
	}

	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Admin Dashboard", PageTitle: "Dashboard", View: view.AdminDashboard},
		Fetch: func(ctx context.Context, data map[string]any) error {
			stats, err := h.Dashboard.Stats(ctx)
			if err != nil {
				return err
			}
			data["Stats"] = stats
			return nil
		},
	})
}

// AdminContents serves the content management view. Besides the category and
// q filters it accepts an optional expr query param holding a JMESPath
// expression evaluated against the listing; an invalid expression renders the
// unfiltered list with an inline error instead of failing the page.
func (h *UIHandlers) AdminContents(w http.ResponseWriter, r *http.Request) {
	dest, _ := h.navigate(r, view.AdminContents, nil)
	if dest != view.AdminContents {
		h.redirectTo(w, r, dest)
		return
	}

	filter := contentFilterFromQuery(r)
	expr := strings.TrimSpace(r.URL.Query().Get("expr"))

	data := NewTemplateData(r, PageMeta{Title: "Manage Contents", PageTitle: "Contents", View: view.AdminContents}).
		With("Category", string(filter.Category)).
		With("Query", filter.Query).
		With("Expr", expr)

	contents, err := h.Contents.AdminList(r.Context(), filter, expr)
	if err != nil {
		h.logger().WarnContext(r.Context(), "admin content listing failed", "expr", expr, "error", err)
		data.WithError("The filter expression could not be evaluated.")
		contents, err = h.Contents.AdminList(r.Context(), filter, "")
		if err != nil {
			h.logger().ErrorContext(r.Context(), "content listing failed", "error", err)
			contents = nil
		}
	}
	data.With("Contents", contents)

	h.renderNavPage(w, r, data.Build())
}

// AdminContentNew renders the empty content form.
func (h *UIHandlers) AdminContentNew(w http.ResponseWriter, r *http.Request) {
	dest, _ := h.navigate(r, view.AdminContents, nil)
	if dest != view.AdminContents {
		h.redirectTo(w, r, dest)
		return
	}
	h.renderContentForm(w, r, contentFormState{Mode: FormModeCreate})
}

// AdminContentEdit renders the content form pre-filled from an existing record.
func (h *UIHandlers) AdminContentEdit(w http.ResponseWriter, r *http.Request) {
	dest, _ := h.navigate(r, view.AdminContents, nil)
	if dest != view.AdminContents {
		h.redirectTo(w, r, dest)
		return
	}

	content, err := h.Contents.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.NotFound(w, r)
		return
	}
	h.renderContentForm(w, r, contentFormState{Mode: FormModeEdit, Content: content})
}

// AdminContentCreate handles the content form submission.
func (h *UIHandlers) AdminContentCreate(w http.ResponseWriter, r *http.Request) {
	h.saveContent(w, r, "")
}

// AdminContentUpdate handles the edit form submission.
func (h *UIHandlers) AdminContentUpdate(w http.ResponseWriter, r *http.Request) {
	h.saveContent(w, r, r.PathValue("id"))
}

func (h *UIHandlers) saveContent(w http.ResponseWriter, r *http.Request, id string) {
	dest, _ := h.navigate(r, view.AdminContents, nil)
	if dest != view.AdminContents {
		h.redirectTo(w, r, dest)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	content, fieldErrors := contentFromForm(r)
	mode := FormModeCreate
	if id != "" {
		mode = FormModeEdit
		content.ID = id
	}
	if len(fieldErrors) > 0 {
		h.renderContentForm(w, r, contentFormState{Mode: mode, Content: content, Errors: fieldErrors})
		return
	}

	if sess := GetSessionFromContext(r.Context()); sess != nil {
		content.CreatedBy = sess.Email
	}

	var err error
	if mode == FormModeEdit {
		_, err = h.Contents.Update(r.Context(), id, content)
	} else {
		_, err = h.Contents.Create(r.Context(), content)
	}
	if err != nil {
		h.logger().ErrorContext(r.Context(), "content save failed", "mode", string(mode), "error", err)
		h.renderContentForm(w, r, contentFormState{
			Mode: mode, Content: content,
			Errors: map[string]string{"form": "The content could not be saved. Please try again."},
		})
		return
	}

	if IsHTMX(r) {
		HTMX(w).Redirect(view.Path(view.AdminContents))
		return
	}
	http.Redirect(w, r, view.Path(view.AdminContents), http.StatusSeeOther)
}

// AdminContentDelete removes a content record and returns to the listing.
func (h *UIHandlers) AdminContentDelete(w http.ResponseWriter, r *http.Request) {
	dest, _ := h.navigate(r, view.AdminContents, nil)
	if dest != view.AdminContents {
		h.redirectTo(w, r, dest)
		return
	}

	if _, err := h.Contents.Delete(r.Context(), r.PathValue("id")); err != nil {
		http.Error(w, "Unable to delete content.", http.StatusInternalServerError)
		return
	}

	if IsHTMX(r) {
		HTMX(w).Redirect(view.Path(view.AdminContents))
		return
	}
	http.Redirect(w, r, view.Path(view.AdminContents), http.StatusSeeOther)
}

// contentFormState carries everything the content form template needs.
type contentFormState struct {
	Mode    FormMode
	Content *model.Content
	Errors  map[string]string
}

func (h *UIHandlers) renderContentForm(w http.ResponseWriter, r *http.Request, state contentFormState) {
	title := "New Content"
	if state.Mode == FormModeEdit {
		title = "Edit Content"
	}
	if state.Content == nil {
		state.Content = &model.Content{}
	}
	if state.Errors == nil {
		state.Errors = map[string]string{}
	}

	data := NewTemplateData(r, PageMeta{Title: title, PageTitle: title, View: view.AdminContents}).
		With("Mode", string(state.Mode)).
		With("Content", state.Content).
		With("Errors", state.Errors)
	if len(state.Errors) > 0 {
		data.WithError(errMsgFixBelow)
	}

	d := data.Build()
	d["CurrentPage"] = "admin-content-form"
	h.renderNavPage(w, r, d)
}

// contentFromForm builds a content record from the submitted form, collecting
// field-level validation errors along the way.
func contentFromForm(r *http.Request) (*model.Content, map[string]string) {
	errs := validation.New().
		Validate("title", r.FormValue("title"), validation.Required("Title", 200)).
		Validate("category", r.FormValue("category"),
			validation.OneOf("Category", []string{"contest", "event", "education", "community"})).
		Validate("status", r.FormValue("status"),
			validation.OneOf("Status", []string{"upcoming", "ongoing", "ended"})).
		Validate("description", r.FormValue("description"), validation.Optional("Description", 5000)).
		Validate("organizer", r.FormValue("organizer"), validation.Optional("Organizer", 200)).
		Errors()

	if img := strings.TrimSpace(r.FormValue("image")); img != "" {
		if msg := validation.HTTPSURL("Image", 500)(img); msg != "" {
			errs["image"] = msg
		}
	}

	content := &model.Content{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Organizer:   strings.TrimSpace(r.FormValue("organizer")),
		Image:       strings.TrimSpace(r.FormValue("image")),
		Status:      model.ContentStatus(strings.ToLower(strings.TrimSpace(r.FormValue("status")))),
	}
	if c, ok := model.ParseContentCategory(r.FormValue("category")); ok {
		content.Category = c
	}

	if raw := strings.TrimSpace(r.FormValue("max_participants")); raw != "" {
		if msg := validation.IntRange("Max participants", 0, 1_000_000)(raw); msg != "" {
			errs["max_participants"] = msg
		} else {
			content.MaxParticipants, _ = strconv.Atoi(raw)
		}
	}

	content.StartDate = parseFormDate(r.FormValue("start_date"), "start_date", errs)
	content.EndDate = parseFormDate(r.FormValue("end_date"), "end_date", errs)

	if tags := strings.TrimSpace(r.FormValue("tags")); tags != "" {
		for _, t := range strings.Split(tags, ",") {
			if t = strings.TrimSpace(t); t != "" {
				content.Tags = append(content.Tags, t)
			}
		}
	}

	return content, errs
}

func parseFormDate(raw, field string, errs map[string]string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	t, err := time.Parse(formDateLayout, raw)
	if err != nil {
		errs[field] = "Enter a date as YYYY-MM-DD."
		return time.Time{}
	}
	return t
}

// AdminUsers serves the account administration view.
func (h *UIHandlers) AdminUsers(w http.ResponseWriter, r *http.Request) {
	dest, _ := h.navigate(r, view.AdminUsers, nil)
	if dest != view.AdminUsers {
		h.redirectTo(w, r, dest)
		return
	}

	filter := model.AccountFilter{
		Role:  domainauth.Role(strings.TrimSpace(r.URL.Query().Get("role"))),
		Query: r.URL.Query().Get("q"),
	}
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Manage Users", PageTitle: "Users", View: view.AdminUsers},
		Fetch: func(ctx context.Context, data map[string]any) error {
			accounts, err := h.Accounts.List(ctx, filter)
			if err != nil {
				return err
			}
			data["Accounts"] = accounts
			data["Role"] = string(filter.Role)
			data["Query"] = filter.Query
			return nil
		},
	})
}

// AdminUserDelete removes an account and returns to the user listing.
func (h *UIHandlers) AdminUserDelete(w http.ResponseWriter, r *http.Request) {
	dest, _ := h.navigate(r, view.AdminUsers, nil)
	if dest != view.AdminUsers {
		h.redirectTo(w, r, dest)
		return
	}

	if _, err := h.Accounts.Delete(r.Context(), r.PathValue("id")); err != nil {
		http.Error(w, "Unable to delete account.", http.StatusInternalServerError)
		return
	}

	if IsHTMX(r) {
		HTMX(w).Redirect(view.Path(view.AdminUsers))
		return
	}
	http.Redirect(w, r, view.Path(view.AdminUsers), http.StatusSeeOther)
}
