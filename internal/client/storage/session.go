package storage

import (
	"context"
	"time"
)

// SessionStorage defines interface for storing the active session on client
// Хранит только локальную часть сессии: кто залогинен и с какого устройства.
// Игровое состояние (друзья, комнаты, вопросы) не персистится — оно
// полностью пересобирается из ответов сервера при каждой синхронизации.
type SessionStorage interface {
	// SaveSession stores session data, overwriting any previous session
	SaveSession(ctx context.Context, session *SessionData) error

	// GetSession retrieves stored session data
	// Returns ErrSessionNotFound if no session exists
	GetSession(ctx context.Context) (*SessionData, error)

	// DeleteSession removes stored session data (logout)
	DeleteSession(ctx context.Context) error

	// HasSession checks if a saved session exists
	HasSession(ctx context.Context) (bool, error)
}

// SessionData represents the locally persisted session
type SessionData struct {
	Username  string    `json:"username"`   // активный username
	ClientID  string    `json:"client_id"`  // уникальный ID устройства (UUID)
	ServerURL string    `json:"server_url"` // базовый URL бекенда на момент логина
	SavedAt   time.Time `json:"saved_at"`   // время сохранения сессии
}
