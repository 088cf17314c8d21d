package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// User es la copia del usuario autenticado que vive dentro de la sesión.
// No lleva el hash de password: la sesión solo necesita identidad.
type User struct {
	ID    string
	Name  string
	Email string
}

type entry struct {
	user      User
	expiresAt time.Time
}

// Store guarda sesiones en memoria, keyed por token opaco.
// Es el único estado mutable compartido entre requests: RWMutex alcanza,
// cada token se toca desde un solo browser (last write wins).
type Store struct {
	mu  sync.RWMutex
	ttl time.Duration
	now func() time.Time

	byToken map[string]entry
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		now:     time.Now,
		byToken: make(map[string]entry),
	}
}

// Create registra una sesión nueva para el usuario y devuelve el token.
func (s *Store) Create(u User) string {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.byToken[token] = entry{
		user:      u,
		expiresAt: s.now().Add(s.ttl),
	}
	return token
}

// Get resuelve un token a su usuario. Token desconocido o vencido => (_, false);
// nunca es un error. Las entradas vencidas se limpian acá mismo (lazy).
func (s *Store) Get(token string) (User, bool) {
	if token == "" {
		return User{}, false
	}

	s.mu.RLock()
	e, ok := s.byToken[token]
	s.mu.RUnlock()

	if !ok {
		return User{}, false
	}
	if s.now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.byToken, token)
		s.mu.Unlock()
		return User{}, false
	}
	return e.user, true
}

// Destroy elimina la sesión. Token inexistente es un no-op.
func (s *Store) Destroy(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byToken, token)
}

// TTL expone la duración configurada (la usa el cookie helper).
func (s *Store) TTL() time.Duration {
	return s.ttl
}
