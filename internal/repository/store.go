package repository

import (
	"context"
	"time"
)

// Ключевое пространство KV-хранилища.
const (
	UserPrefix          = "user:"
	CredPrefix          = "cred:"
	TicketPrefix        = "ticket:"
	ServicePrefix       = "service:"
	UserTicketsPrefix   = "user_tickets:"
	MasterTicketsPrefix = "master_tickets:"
	BlacklistPrefix     = "blacklist:"
)

// Store — то, что репозиториям нужно от key-value хранилища.
// SetMulti обязан записывать все пары атомарно: запись тикета и его
// индексов идёт одним вызовом, чтобы индекс не расходился с данными.
type Store interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	SetMulti(ctx context.Context, pairs map[string]interface{}) error
	Delete(ctx context.Context, key string) error
	GetByPrefix(ctx context.Context, prefix string) ([][]byte, error)
	Exists(ctx context.Context, key string) (bool, error)
}
