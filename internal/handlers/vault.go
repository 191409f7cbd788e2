package handlers

import (
	"PassVault/internal/config"
	"PassVault/internal/middleware"
	"PassVault/internal/service"
	"PassVault/internal/web"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// VaultHandler — CRUD над записями хранилища текущей учётки.
// Все маршруты за Auth Gate, владелец берётся только из сессии.
type VaultHandler struct {
	VaultService *service.VaultService
	Renderer     *web.Renderer
	Logger       *zap.SugaredLogger
	Config       *config.Config
}

// NewVaultHandler создаёт хендлер хранилища
func NewVaultHandler(
	vaultService *service.VaultService,
	renderer *web.Renderer,
	logger *zap.SugaredLogger,
	cfg *config.Config,
) *VaultHandler {
	return &VaultHandler{
		VaultService: vaultService,
		Renderer:     renderer,
		Logger:       logger,
		Config:       cfg,
	}
}

// NewEntryPage рендерит форму добавления.
func (h *VaultHandler) NewEntryPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, "new.gohtml", nil)
}

// CreateEntry сохраняет новую запись владельца и уводит на список.
func (h *VaultHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.GetSessionFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	website := r.PostFormValue("website")
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	if _, err := h.VaultService.Create(r.Context(), sess.AccountID, website, email, password); err != nil {
		h.Logger.Errorw("CreateEntry: service error", "owner", sess.AccountID, "error", err)
		http.Error(w, "Error adding password", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/passwords", http.StatusFound)
}

// ListEntries рендерит все записи владельца.
func (h *VaultHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.GetSessionFromContext(r.Context())

	entries, err := h.VaultService.List(r.Context(), sess.AccountID)
	if err != nil {
		h.Logger.Errorw("ListEntries: service error", "owner", sess.AccountID, "error", err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}
	h.render(w, "show.gohtml", map[string]any{"Entries": entries})
}

// EditEntryPage грузит запись для формы редактирования.
// Поиск ограничен владельцем: чужой id отвечает 404.
func (h *VaultHandler) EditEntryPage(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.GetSessionFromContext(r.Context())
	id := chi.URLParam(r, "id")

	entry, err := h.VaultService.Get(r.Context(), sess.AccountID, id)
	if err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			http.Error(w, "Not found", http.StatusNotFound)
			return
		}
		h.Logger.Errorw("EditEntryPage: service error", "owner", sess.AccountID, "id", id, "error", err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}
	h.render(w, "edit.gohtml", map[string]any{"Entry": entry})
}

// UpdateEntry перезаписывает изменяемые поля записи владельца.
func (h *VaultHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.GetSessionFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	id := r.PostFormValue("id")
	website := r.PostFormValue("website")
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	if err := h.VaultService.Update(r.Context(), sess.AccountID, id, website, email, password); err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			http.Error(w, "Not found", http.StatusNotFound)
			return
		}
		h.Logger.Errorw("UpdateEntry: service error", "owner", sess.AccountID, "id", id, "error", err)
		http.Error(w, "Error updating password", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/passwords", http.StatusFound)
}

// DeleteEntry удаляет запись владельца; повторное удаление — no-op.
func (h *VaultHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.GetSessionFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.VaultService.Delete(r.Context(), sess.AccountID, id); err != nil {
		h.Logger.Errorw("DeleteEntry: service error", "owner", sess.AccountID, "id", id, "error", err)
		http.Error(w, "Error deleting password", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/passwords", http.StatusFound)
}

// SecurityPage — статическая справка по безопасности.
func (h *VaultHandler) SecurityPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, "security.gohtml", nil)
}

func (h *VaultHandler) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.Renderer.Render(w, name, data); err != nil {
		h.Logger.Errorw("render failed", "template", name, "error", err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
	}
}
