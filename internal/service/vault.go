package service

import (
	"PassVault/internal/model"
	"PassVault/internal/repo"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrEntryNotFound — записи нет либо она принадлежит другой учётке.
// Снаружи эти два случая неразличимы намеренно.
var ErrEntryNotFound = errors.New("vault entry not found")

// VaultService инкапсулирует CRUD над записями хранилища.
// Каждая операция ограничена владельцем из текущей сессии.
type VaultService struct {
	repo repo.EntryRepository
}

func NewVaultService(r repo.EntryRepository) *VaultService {
	return &VaultService{repo: r}
}

// Create сохраняет новую запись с ownerID текущей учётки.
func (s *VaultService) Create(ctx context.Context, ownerID, siteURL, siteEmail, secret string) (*model.VaultEntry, error) {
	entry := &model.VaultEntry{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		SiteURL:   siteURL,
		SiteEmail: siteEmail,
		Secret:    secret,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("vault create: %w", err)
	}
	return entry, nil
}

// List возвращает все записи владельца.
func (s *VaultService) List(ctx context.Context, ownerID string) ([]model.VaultEntry, error) {
	entries, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("vault list: %w", err)
	}
	return entries, nil
}

// Get загружает одну запись владельца (для формы редактирования).
func (s *VaultService) Get(ctx context.Context, ownerID, id string) (*model.VaultEntry, error) {
	entry, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("vault get: %w", err)
	}
	return entry, nil
}

// Update перезаписывает изменяемые поля записи владельца.
func (s *VaultService) Update(ctx context.Context, ownerID, id, siteURL, siteEmail, secret string) error {
	n, err := s.repo.Update(ctx, ownerID, id, map[string]any{
		"site_url":   siteURL,
		"site_email": siteEmail,
		"secret":     secret,
	})
	if err != nil {
		return fmt.Errorf("vault update: %w", err)
	}
	if n == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// Delete удаляет запись владельца. Повторное удаление — no-op.
func (s *VaultService) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return fmt.Errorf("vault delete: %w", err)
	}
	return nil
}
