package handlers

import (
	"PassVault/internal/config"
	"PassVault/internal/middleware"
	"PassVault/internal/service"
	"PassVault/internal/session"
	"PassVault/internal/web"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// AccountHandler обрабатывает регистрацию, вход, выход и дашборд.
type AccountHandler struct {
	AccountService *service.AccountService
	Sessions       session.Store
	Renderer       *web.Renderer
	Logger         *zap.SugaredLogger
	Config         *config.Config
}

// NewAccountHandler создаёт хендлер учёток
func NewAccountHandler(
	accountService *service.AccountService,
	sessions session.Store,
	renderer *web.Renderer,
	logger *zap.SugaredLogger,
	cfg *config.Config,
) *AccountHandler {
	return &AccountHandler{
		AccountService: accountService,
		Sessions:       sessions,
		Renderer:       renderer,
		Logger:         logger,
		Config:         cfg,
	}
}

// Home — с сессией на дашборд, без — на логин.
func (h *AccountHandler) Home(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetSessionFromContext(r.Context()); ok {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}

// LoginPage рендерит форму входа.
func (h *AccountHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, "login.gohtml", nil)
}

// Login проверяет учётные данные и открывает сессию.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	acc, err := h.AccountService.Login(r.Context(), email, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAccountNotFound):
			http.Error(w, "User not found", http.StatusNotFound)
		case errors.Is(err, service.ErrInvalidPassword):
			http.Error(w, "Invalid password", http.StatusUnauthorized)
		default:
			h.Logger.Errorw("Login: service error", "error", err)
			http.Error(w, "Something went wrong", http.StatusInternalServerError)
		}
		return
	}

	// сессия создана и cookie записана ДО редиректа:
	// ответ не должен обгонять фиксацию сессии
	sess := h.Sessions.Create(acc.ID, acc.Username)
	middleware.SetSessionCookie(w, sess.Token)
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// RegisterPage рендерит форму регистрации.
func (h *AccountHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, "register.gohtml", nil)
}

// Register создаёт учётку и сразу открывает сессию.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	name := r.PostFormValue("name")
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")
	cpassword := r.PostFormValue("cpassword")

	// валидация: плоское сообщение со статусом 200, как в исходном потоке
	if password != cpassword {
		_, _ = w.Write([]byte("Password and Confirm Password do not match"))
		return
	}

	acc, err := h.AccountService.Register(r.Context(), name, email, password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			_, _ = w.Write([]byte("Email already registered"))
			return
		}
		h.Logger.Errorw("Register: service error", "error", err)
		http.Error(w, "Register error", http.StatusInternalServerError)
		return
	}

	sess := h.Sessions.Create(acc.ID, acc.Username)
	middleware.SetSessionCookie(w, sess.Token)
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// Dashboard рендерит приветствие из сессии; БД не трогаем.
func (h *AccountHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.GetSessionFromContext(r.Context())
	h.render(w, "dashboard.gohtml", map[string]any{"Name": sess.DisplayName})
}

// Logout гасит сессию на сервере и cookie у клиента.
func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.GetSessionFromContext(r.Context())
	if err := h.Sessions.Destroy(sess.Token); err != nil {
		h.Logger.Errorw("Logout: destroy session", "error", err)
		_, _ = w.Write([]byte("Logout error"))
		return
	}
	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *AccountHandler) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.Renderer.Render(w, name, data); err != nil {
		h.Logger.Errorw("render failed", "template", name, "error", err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
	}
}
