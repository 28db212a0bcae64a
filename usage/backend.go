package usage

import (
	"context"
	"fmt"

	"deep-summarizer/config"
	"deep-summarizer/db"
	"deep-summarizer/repositories"
)

// OpenStore builds the Store selected by cfg.Usage.Backend. The returned
// function releases it.
func OpenStore(ctx context.Context, cfg config.AppConfig) (Store, func() error, error) {
	switch cfg.Usage.Backend {
	case "memory":
		return NewMemoryStore(), func() error { return nil }, nil
	case "", "file":
		s := NewFileStore(cfg.Usage.Path)
		return s, s.Close, nil
	case "sqlite":
		conn, err := db.OpenSQLite(cfg.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewUsageSQLiteRepository(conn), conn.Close, nil
	case "mongo":
		if err := db.Init(ctx); err != nil {
			return nil, nil, err
		}
		return repositories.NewUsageMongoRepository(db.Database()), func() error {
			return db.Close(context.Background())
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown usage backend %q", cfg.Usage.Backend)
	}
}
