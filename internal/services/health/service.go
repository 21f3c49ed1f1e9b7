package health

import (
	"context"
	"database/sql"
)

// IndexStats reports the size of the semantic index.
type IndexStats interface {
	Size() int
}

// Service encapsulates health-related checks.
type Service struct {
	DB    *sql.DB
	Index IndexStats
}

// NewService constructs a new health service.
func NewService(db *sql.DB, index IndexStats) *Service {
	return &Service{DB: db, Index: index}
}

// Status returns the health payload: overall liveness, database
// reachability, and the number of indexed products.
func (s *Service) Status(ctx context.Context) map[string]any {
	status := map[string]any{"ok": true}

	if s.DB != nil {
		if err := s.DB.PingContext(ctx); err != nil {
			status["ok"] = false
			status["db"] = "unreachable"
		} else {
			status["db"] = "ok"
		}
	} else {
		status["db"] = "memory"
	}

	if s.Index != nil {
		status["indexedProducts"] = s.Index.Size()
	}

	return status
}
