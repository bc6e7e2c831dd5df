package root

import (
	"context"
	"errors"
	"fmt"

	"daymark/internal/config"
	"daymark/internal/engine"
	"daymark/internal/storage"
)

func openStore(ctx context.Context) (*storage.Store, *config.Config, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	path, err := storage.ResolveDBPath(cfg.DBPath)
	if err != nil {
		return nil, nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return storage.NewStore(db), cfg, cleanup, nil
}

// openService resolves the logged-in identity and builds the per-user
// service. Commands that need a session fail fast here.
func openService(ctx context.Context) (*engine.Service, *config.Config, func(), error) {
	store, cfg, cleanup, err := openStore(ctx)
	if err != nil {
		return nil, nil, nil, err
	}

	identity, err := engine.NewAuth(store).CurrentIdentity(ctx)
	if err != nil {
		cleanup()
		if errors.Is(err, engine.ErrSessionMissing) {
			return nil, nil, nil, fmt.Errorf("not logged in; run `dm login <email>` first")
		}
		return nil, nil, nil, err
	}

	svc, err := engine.NewService(ctx, store, identity)
	if err != nil {
		cleanup()
		return nil, nil, nil, err
	}
	return svc, cfg, cleanup, nil
}
