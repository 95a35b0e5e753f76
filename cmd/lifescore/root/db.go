package root

import (
	"context"
	"database/sql"
	"path/filepath"

	"go.uber.org/zap"

	"lifescore/internal/config"
	"lifescore/internal/engine"
	"lifescore/internal/logging"
	"lifescore/internal/storage"
)

func openLogger() (*zap.Logger, func(), error) {
	file := appConfig.Log.File
	if file == "" {
		dir, err := config.Dir()
		if err != nil {
			return nil, nil, err
		}
		file = filepath.Join(dir, "lifescore.log")
	}
	return logging.New(logging.Options{
		Level:      appConfig.Log.Level,
		Format:     appConfig.Log.Format,
		File:       file,
		MaxSizeMB:  appConfig.Log.MaxSizeMB,
		MaxBackups: appConfig.Log.MaxBackups,
	})
}

func openDB(ctx context.Context) (*sql.DB, func(), error) {
	path, err := storage.ResolveDBPath(appConfig.Storage.Path)
	if err != nil {
		return nil, nil, err
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
	logger, closeLog, err := openLogger()
	if err != nil {
		return nil, nil, err
	}
	db, closeDB, err := openDB(ctx)
	if err != nil {
		closeLog()
		return nil, nil, err
	}
	svc := engine.NewService(db,
		engine.WithConfig(appConfig.Engine),
		engine.WithLogger(logger),
		engine.WithPlayerKey(appConfig.Storage.PlayerKey),
	)
	cleanup := func() {
		closeDB()
		_ = logger.Sync()
		closeLog()
	}
	return svc, cleanup, nil
}
