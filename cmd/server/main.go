package main

import (
	"PassVault/internal/config"
	"PassVault/internal/handlers"
	"PassVault/internal/middleware"
	"PassVault/internal/repo"
	"PassVault/internal/service"
	"PassVault/internal/session"
	"PassVault/internal/web"
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	//context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	accountRepo := repo.NewAccountRepository(gormDB)
	entryRepo := repo.NewEntryRepository(gormDB)

	accountService := service.NewAccountService(accountRepo)
	vaultService := service.NewVaultService(entryRepo)

	// процесс-локальное хранилище сессий; фоновая чистка истёкших
	sessions := session.NewMemoryStore()
	go sessions.Run(ctx, 10*time.Minute)

	renderer, err := web.NewRenderer()
	if err != nil {
		sugar.Fatalw("failed to parse templates", "error", err)
	}

	h := handlers.NewHandler(accountService, vaultService, sessions, renderer, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
