package model

import "time"

// Account — зарегистрированный пользователь хранилища.
type Account struct {
	ID string `gorm:"primaryKey;type:uuid"`

	Username string `gorm:"not null"`
	// Email — естественный ключ для логина; уникальность обеспечивается на уровне БД
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password_hash;not null"` // bcrypt, никогда не отдаётся наружу

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
