package repo

import (
	"PassVault/internal/model"
	"context"

	"gorm.io/gorm"
)

// AccountRepository определяет минимальный контракт доступа к Account для слоя сервиса.
type AccountRepository interface {
	// CreateAccount вставляет новую учётку. Дубликат email даёт ошибку
	// уникального индекса БД.
	CreateAccount(ctx context.Context, account *model.Account) (*model.Account, error)

	// GetAccountByEmail возвращает учётку по email или gorm.ErrRecordNotFound.
	GetAccountByEmail(ctx context.Context, email string) (*model.Account, error)
}

type accountRepo struct {
	db *gorm.DB
}

// NewAccountRepository создаёт реализацию репозитория для Account.
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepo{db: db}
}

func (r *accountRepo) CreateAccount(ctx context.Context, account *model.Account) (*model.Account, error) {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		return nil, err
	}
	return account, nil
}

func (r *accountRepo) GetAccountByEmail(ctx context.Context, email string) (*model.Account, error) {
	var acc model.Account
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&acc).Error; err != nil {
		return nil, err
	}
	return &acc, nil
}
