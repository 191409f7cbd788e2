package model

import "time"

// VaultEntry — одна сохранённая учётная запись сайта, принадлежит ровно одному Account.
type VaultEntry struct {
	ID      string `gorm:"primaryKey;type:uuid"`
	OwnerID string `gorm:"type:uuid;not null;index"` // ссылка на accounts.id

	// Связи
	Owner *Account `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	SiteURL   string `gorm:"not null"`
	SiteEmail string
	// Secret хранится открытым текстом — известное ограничение дизайна,
	// воспроизведено намеренно (см. DESIGN.md)
	Secret string `gorm:"not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
