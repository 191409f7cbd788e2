package handlers

import (
	"PassVault/internal/config"
	"PassVault/internal/middleware"
	"PassVault/internal/service"
	"PassVault/internal/session"
	"PassVault/internal/web"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	accountService *service.AccountService,
	vaultService *service.VaultService,
	sessions session.Store,
	renderer *web.Renderer,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithMethodOverride)
	r.Use(middleware.WithSession(sessions))

	// Handlers
	accountHandler := NewAccountHandler(accountService, sessions, renderer, logger, config)
	vaultHandler := NewVaultHandler(vaultService, renderer, logger, config)

	// Public routes
	r.Get("/", accountHandler.Home)
	r.Get("/login", accountHandler.LoginPage)
	r.Post("/login", accountHandler.Login)
	r.Get("/register", accountHandler.RegisterPage)
	r.Post("/register", accountHandler.Register)

	r.Handle("/static/*", web.StaticHandler())

	// Protected routes — за Auth Gate
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		r.Get("/dashboard", accountHandler.Dashboard)
		r.Get("/logout", accountHandler.Logout)

		r.Get("/add-user", vaultHandler.NewEntryPage)
		r.Post("/add-user", vaultHandler.CreateEntry)
		r.Get("/passwords", vaultHandler.ListEntries)
		r.Get("/edit/{id}", vaultHandler.EditEntryPage)
		r.Patch("/edit", vaultHandler.UpdateEntry)
		r.Delete("/delete/{id}", vaultHandler.DeleteEntry)
		r.Get("/security", vaultHandler.SecurityPage)
	})

	return &Handler{Router: r}
}
