package service

import (
	"PassVault/internal/model"
	"PassVault/internal/repo"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Ошибки уровня бизнес-логики; хендлеры маппят их на HTTP-ответы.
var (
	// ErrEmailTaken — email уже зарегистрирован
	ErrEmailTaken = errors.New("email already registered")
	// ErrAccountNotFound — учётка по email не найдена
	ErrAccountNotFound = errors.New("account not found")
	// ErrInvalidPassword — пароль не совпал с хешем
	ErrInvalidPassword = errors.New("invalid password")
)

// AccountService инкапсулирует регистрацию и вход.
type AccountService struct {
	repo repo.AccountRepository
}

func NewAccountService(r repo.AccountRepository) *AccountService {
	return &AccountService{repo: r}
}

// Register создаёт учётку: хеширует пароль, генерирует id и сохраняет.
// Предварительная проверка email даёт быстрый конфликт, но истиной остаётся
// уникальный индекс БД: нарушение на вставке маппится в тот же ErrEmailTaken.
func (s *AccountService) Register(ctx context.Context, name, email, password string) (*model.Account, error) {
	existing, err := s.repo.GetAccountByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("register: lookup email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	acc := &model.Account{
		ID:           uuid.NewString(),
		Username:     name,
		Email:        email,
		PasswordHash: string(hash),
	}

	created, err := s.repo.CreateAccount(ctx, acc)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// проигранная гонка check-then-insert
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("register: create account: %w", err)
	}
	return created, nil
}

// Login ищет учётку по email и сверяет пароль с bcrypt-хешем.
func (s *AccountService) Login(ctx context.Context, email, password string) (*model.Account, error) {
	acc, err := s.repo.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("login: lookup email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidPassword
	}
	return acc, nil
}
