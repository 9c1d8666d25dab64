package root

import (
	"context"

	"levelingking/internal/config"
	"levelingking/internal/engine"
	"levelingking/internal/storage"
)

func (a *app) openStore(ctx context.Context) (engine.Store, func(), error) {
	if a.cfg.Store == config.StoreRedis {
		rc := storage.DefaultRedisConfig()
		rc.Addr = a.cfg.RedisAddr
		rc.Password = a.cfg.RedisPassword
		rc.DB = a.cfg.RedisDB
		rs, err := storage.OpenRedis(ctx, rc)
		if err != nil {
			return nil, nil, err
		}
		return rs, func() { _ = rs.Close() }, nil
	}

	path, err := storage.ResolveDBPath(a.cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	return storage.NewSnapshotRepo(db), func() { _ = db.Close() }, nil
}

func (a *app) openService(ctx context.Context) (*engine.Service, func(), error) {
	loc, err := a.cfg.Location()
	if err != nil {
		return nil, nil, err
	}
	store, cleanup, err := a.openStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	svc := engine.NewService(store,
		engine.WithLogger(a.logger.Named("engine")),
		engine.WithLocation(loc),
	)
	return svc, cleanup, nil
}

// shortID is the prefix shown in listings; any unique prefix is accepted back.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
