package handlers_test

import (
	"PassVault/internal/config"
	"PassVault/internal/handlers"
	"PassVault/internal/middleware"
	"PassVault/internal/model"
	"PassVault/internal/repo"
	"PassVault/internal/service"
	"PassVault/internal/session"
	"PassVault/internal/web"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// Minimal mocks
type mockAccountRepo struct{ mock.Mock }

func (m *mockAccountRepo) CreateAccount(ctx context.Context, account *model.Account) (*model.Account, error) {
	args := m.Called(ctx, account)
	if a, ok := args.Get(0).(*model.Account); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAccountRepo) GetAccountByEmail(ctx context.Context, email string) (*model.Account, error) {
	args := m.Called(ctx, email)
	if a, ok := args.Get(0).(*model.Account); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.AccountRepository = (*mockAccountRepo)(nil)

type mockEntryRepo struct{ mock.Mock }

func (m *mockEntryRepo) Create(ctx context.Context, entry *model.VaultEntry) error {
	return m.Called(ctx, entry).Error(0)
}
func (m *mockEntryRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.VaultEntry, error) {
	args := m.Called(ctx, ownerID)
	if v, ok := args.Get(0).([]model.VaultEntry); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockEntryRepo) GetByID(ctx context.Context, ownerID, id string) (*model.VaultEntry, error) {
	args := m.Called(ctx, ownerID, id)
	if v, ok := args.Get(0).(*model.VaultEntry); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockEntryRepo) Update(ctx context.Context, ownerID, id string, updates map[string]any) (int64, error) {
	args := m.Called(ctx, ownerID, id, updates)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockEntryRepo) Delete(ctx context.Context, ownerID, id string) error {
	return m.Called(ctx, ownerID, id).Error(0)
}

var _ repo.EntryRepository = (*mockEntryRepo)(nil)

// --- Helpers ---

// newTestRouter собирает роутер над переданными (обычно мок-) репозиториями.
// Возвращает и session store, чтобы тесты могли готовить сессии напрямую.
func newTestRouter(t *testing.T, ar repo.AccountRepository, er repo.EntryRepository) (http.Handler, *session.MemoryStore) {
	t.Helper()
	cfg := &config.Config{BaseURL: "localhost:3000"}
	logger := zap.NewNop().Sugar()

	renderer, err := web.NewRenderer()
	if err != nil {
		t.Fatalf("failed to build renderer: %v", err)
	}

	sessions := session.NewMemoryStore()
	accountSvc := service.NewAccountService(ar)
	vaultSvc := service.NewVaultService(er)

	h := handlers.NewHandler(accountSvc, vaultSvc, sessions, renderer, logger, cfg)
	return h.Router, sessions
}

// newIntegrationRouter — роутер над настоящими репозиториями с in-memory SQLite.
func newIntegrationRouter(t *testing.T) (http.Handler, *session.MemoryStore) {
	t.Helper()
	// именованная in-memory БД: общий кеш разделяет её между соединениями пула,
	// имя теста изолирует тесты друг от друга
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	db, err := gorm.Open(dial, &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	if err := db.AutoMigrate(&model.Account{}, &model.VaultEntry{}); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	return newTestRouter(t, repo.NewAccountRepository(db), repo.NewEntryRepository(db))
}

// addSessionCookie создаёт сессию в сторе и вешает её cookie на запрос.
func addSessionCookie(t *testing.T, req *http.Request, sessions *session.MemoryStore, accountID, name string) *session.Session {
	t.Helper()
	sess := sessions.Create(accountID, name)
	rr := httptest.NewRecorder()
	middleware.SetSessionCookie(rr, sess.Token)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
	return sess
}

// formRequest собирает form-encoded POST.
func formRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// sessionCookie достаёт cookie сессии из ответа (nil — не выставлялась).
func sessionCookie(rr *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	return nil
}
