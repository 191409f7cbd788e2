package repo

import (
	"PassVault/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestAccountRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	r := NewAccountRepository(db)
	ctx := context.Background()

	// успешное создание
	acc, err := r.CreateAccount(ctx, &model.Account{
		ID:           "a1",
		Username:     "john",
		Email:        "john@example.com",
		PasswordHash: "hash",
	})
	assert.NoError(t, err)
	assert.Equal(t, "a1", acc.ID)

	// поиск по email — найдено
	got, err := r.GetAccountByEmail(ctx, "john@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "a1", got.ID)
	assert.Equal(t, "john", got.Username)

	// уникальный email — вторая вставка должна дать ошибку
	_, err = r.CreateAccount(ctx, &model.Account{
		ID:           "a2",
		Username:     "john2",
		Email:        "john@example.com",
		PasswordHash: "x",
	})
	assert.Error(t, err)

	// дубликат не создал вторую учётку
	var count int64
	db.Model(&model.Account{}).Where("email = ?", "john@example.com").Count(&count)
	assert.Equal(t, int64(1), count)

	// поиск несуществующего — ожидаем gorm.ErrRecordNotFound
	got, err = r.GetAccountByEmail(ctx, "doesnotexist@example.com")
	assert.Nil(t, got)
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}
