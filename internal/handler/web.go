package handler

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/zenathia/zenathia-web/internal/middleware"
	"github.com/zenathia/zenathia-web/internal/model"
	"github.com/zenathia/zenathia-web/internal/repository"
	"github.com/zenathia/zenathia-web/internal/service"
	"github.com/zenathia/zenathia-web/internal/session"
	"github.com/zenathia/zenathia-web/web"
)

// genericErrorMsg is shown whenever the store fails. Backend error text
// is logged, never flashed to the client.
const genericErrorMsg = "Something went wrong. Please try again."

// WebHandler serves the HTML pages and form endpoints.
type WebHandler struct {
	auth     *service.AuthService
	sessions *session.Manager
	tmpl     *template.Template
}

// NewWebHandler creates a WebHandler with the embedded templates parsed.
func NewWebHandler(auth *service.AuthService, sessions *session.Manager) (*WebHandler, error) {
	tmpl, err := template.ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &WebHandler{auth: auth, sessions: sessions, tmpl: tmpl}, nil
}

type pageData struct {
	Flash string
	User  *model.User
}

// HandleHome handles GET / requests.
func (h *WebHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	flash, _ := h.sessions.PopFlash(w, r)
	h.render(w, "index.html", pageData{Flash: flash})
}

// HandleRegistrationPage handles GET /registration requests. Already
// authenticated visitors are sent to their dashboard.
func (h *WebHandler) HandleRegistrationPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.SessionUserFromContext(r.Context()); ok {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}

	flash, _ := h.sessions.PopFlash(w, r)
	h.render(w, "registration.html", pageData{Flash: flash})
}

// HandleRegister handles POST /register requests. Every outcome flashes
// a message and redirects back to the registration page; a successful
// registration does not create a session.
func (h *WebHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	if err := r.ParseForm(); err != nil {
		h.sessions.Flash(w, genericErrorMsg)
		http.Redirect(w, r, "/registration", http.StatusSeeOther)
		return
	}

	form := model.RegisterForm{
		Name:            r.PostFormValue("name"),
		Email:           r.PostFormValue("email"),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirm_password"),
	}

	if err := h.auth.Register(r.Context(), form); err != nil {
		switch {
		case errors.Is(err, service.ErrFieldsRequired),
			errors.Is(err, service.ErrPasswordMismatch),
			errors.Is(err, service.ErrPasswordTooShort),
			errors.Is(err, service.ErrEmailTaken):
			h.sessions.Flash(w, err.Error())
		default:
			slog.Error("registration failed", "error", err)
			h.sessions.Flash(w, genericErrorMsg)
		}
		http.Redirect(w, r, "/registration", http.StatusSeeOther)
		return
	}

	h.sessions.Flash(w, "Registration successful! Please login.")
	http.Redirect(w, r, "/registration", http.StatusSeeOther)
}

// HandleLogin handles POST /login requests. Unknown email and wrong
// password produce the same flash message.
func (h *WebHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	if err := r.ParseForm(); err != nil {
		h.sessions.Flash(w, genericErrorMsg)
		http.Redirect(w, r, "/registration", http.StatusSeeOther)
		return
	}

	form := model.LoginForm{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	user, err := h.auth.Login(r.Context(), form)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCredentialsRequired),
			errors.Is(err, service.ErrInvalidCredentials):
			h.sessions.Flash(w, err.Error())
		default:
			slog.Error("login failed", "error", err)
			h.sessions.Flash(w, genericErrorMsg)
		}
		http.Redirect(w, r, "/registration", http.StatusSeeOther)
		return
	}

	if err := h.sessions.Issue(w, user); err != nil {
		slog.Error("issuing session failed", "error", err)
		h.sessions.Flash(w, genericErrorMsg)
		http.Redirect(w, r, "/registration", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// HandleDashboard handles GET /dashboard requests. A session whose user
// no longer exists is cleared rather than trusted.
func (h *WebHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.SessionUserFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/registration", http.StatusFound)
		return
	}

	user, err := h.auth.CurrentUser(r.Context(), principal.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			h.sessions.Clear(w)
			http.Redirect(w, r, "/registration", http.StatusFound)
			return
		}
		slog.Error("dashboard lookup failed", "error", err, "user_id", principal.ID)
		h.sessions.Flash(w, genericErrorMsg)
		http.Redirect(w, r, "/registration", http.StatusFound)
		return
	}

	flash, _ := h.sessions.PopFlash(w, r)
	h.render(w, "dashboard.html", pageData{Flash: flash, User: user})
}

// HandleLogout handles GET /logout requests. Clearing is unconditional,
// so logging out without a session is a no-op apart from the flash.
func (h *WebHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	h.sessions.Flash(w, "You have been logged out.")
	http.Redirect(w, r, "/registration", http.StatusFound)
}

func (h *WebHandler) render(w http.ResponseWriter, name string, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("rendering template failed", "template", name, "error", err)
	}
}
