package repo

import (
	"PassVault/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB открывает Postgres по DSN и накатывает миграции моделей.
// Уникальный индекс по accounts.email создаётся здесь же — он закрывает
// гонку check-then-insert при регистрации.
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&model.Account{}, &model.VaultEntry{}); err != nil {
		return nil, err
	}
	return db, nil
}
