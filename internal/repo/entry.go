package repo

import (
	"PassVault/internal/model"
	"context"

	"gorm.io/gorm"
)

// EntryRepository — контракт доступа к VaultEntry. Все выборки и мутации
// ограничены владельцем: запись чужого пользователя неотличима от отсутствующей.
type EntryRepository interface {
	// Create вставляет новую запись хранилища.
	Create(ctx context.Context, entry *model.VaultEntry) error

	// ListByOwner возвращает все записи владельца.
	ListByOwner(ctx context.Context, ownerID string) ([]model.VaultEntry, error)

	// GetByID возвращает запись по id в пределах владельца или gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, ownerID, id string) (*model.VaultEntry, error)

	// Update перезаписывает изменяемые поля записи владельца.
	// Возвращает число затронутых строк (0 — записи нет или она чужая).
	Update(ctx context.Context, ownerID, id string, updates map[string]any) (int64, error)

	// Delete удаляет запись владельца. Отсутствующий id — не ошибка.
	Delete(ctx context.Context, ownerID, id string) error
}

type entryRepo struct {
	db *gorm.DB
}

// NewEntryRepository создаёт реализацию репозитория для VaultEntry.
func NewEntryRepository(db *gorm.DB) EntryRepository {
	return &entryRepo{db: db}
}

func (r *entryRepo) Create(ctx context.Context, entry *model.VaultEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *entryRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.VaultEntry, error) {
	var entries []model.VaultEntry
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *entryRepo) GetByID(ctx context.Context, ownerID, id string) (*model.VaultEntry, error) {
	var entry model.VaultEntry
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *entryRepo) Update(ctx context.Context, ownerID, id string, updates map[string]any) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&model.VaultEntry{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Updates(updates)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

func (r *entryRepo) Delete(ctx context.Context, ownerID, id string) error {
	// Идемпотентно: повторное удаление того же id затрагивает 0 строк и не ошибка
	return r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.VaultEntry{}).Error
}
