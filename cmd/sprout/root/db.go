package root

import (
	"context"
	"database/sql"

	"sprout/internal/config"
	"sprout/internal/engine"
	"sprout/internal/storage"
)

func openDB(ctx context.Context) (*sql.DB, func(), error) {
	path := ""
	if cfg != nil {
		path = cfg.DB.Path
	}
	if path == "" {
		p, err := storage.ResolveDBPath()
		if err != nil {
			return nil, nil, err
		}
		path = p
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

func openService(ctx context.Context) (*engine.Service, func(), error) {
	db, cleanup, err := openDB(ctx)
	if err != nil {
		return nil, nil, err
	}
	c := cfg
	if c == nil {
		c = config.DefaultConfig()
	}
	svc := engine.NewService(db,
		engine.WithLogger(logger),
		engine.WithTickInterval(c.Garden.TickInterval),
		engine.WithPersistTicks(c.Garden.PersistTicks),
	)
	return svc, cleanup, nil
}
