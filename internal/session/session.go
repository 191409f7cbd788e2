package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// CookieName — имя http-only cookie с токеном сессии.
const CookieName = "vault_session"

// IdleTTL — окно бездействия: сессия живёт час с момента последнего обращения.
const IdleTTL = time.Hour

// Session — серверная запись аутентифицированного браузера.
// Токен непрозрачный, клиенту уходит только он.
type Session struct {
	Token         string
	AccountID     string
	DisplayName   string
	Authenticated bool
	ExpiresAt     time.Time
}

// Store абстрагирует хранение сессий, чтобы in-memory реализацию можно было
// заменить на внешнюю (общую для нескольких процессов) без правки хендлеров.
type Store interface {
	// Create создаёт сессию для учётки и возвращает её вместе с токеном.
	Create(accountID, displayName string) *Session

	// Get возвращает живую сессию по токену и продлевает окно бездействия.
	// false — токена нет или сессия истекла.
	Get(token string) (*Session, bool)

	// Destroy удаляет сессию по токену.
	Destroy(token string) error
}

// MemoryStore — процесс-локальная реализация Store.
// Истечение проверяется лениво при каждом Get; фоновая чистка в Run
// лишь не даёт карте расти на брошенных сессиях.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time // подменяется в тестах
}

// NewMemoryStore создаёт пустое in-memory хранилище сессий с окном IdleTTL.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*Session),
		ttl:      IdleTTL,
		now:      time.Now,
	}
}

func (s *MemoryStore) Create(accountID, displayName string) *Session {
	sess := &Session{
		Token:         uuid.NewString(),
		AccountID:     accountID,
		DisplayName:   displayName,
		Authenticated: true,
		ExpiresAt:     s.now().Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[sess.Token] = sess
	s.mu.Unlock()

	return sess
}

func (s *MemoryStore) Get(token string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return nil, false
	}
	if s.now().After(sess.ExpiresAt) {
		delete(s.sessions, token)
		return nil, false
	}

	// скользящее окно: каждое обращение продлевает сессию
	sess.ExpiresAt = s.now().Add(s.ttl)

	// копия, чтобы вызывающий не менял хранимое состояние напрямую
	cp := *sess
	return &cp, true
}

func (s *MemoryStore) Destroy(token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}

// Len возвращает число хранимых сессий (включая ещё не вычищенные истёкшие).
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Run периодически выметает истёкшие сессии, пока контекст жив.
func (s *MemoryStore) Run(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.sweep()
		}
	}
}

func (s *MemoryStore) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for token, sess := range s.sessions {
		if now.After(sess.ExpiresAt) {
			delete(s.sessions, token)
		}
	}
}
