package main

import (
	"context"
	"fmt"

	"github.com/vancomm/mines/internal/config"
	"github.com/vancomm/mines/internal/database"
	"github.com/vancomm/mines/internal/game"
	"github.com/vancomm/mines/internal/repository"
	"github.com/vancomm/mines/internal/store"
)

type application struct {
	records game.RecordStore
}

func newApplication(ctx context.Context, c *config.Config) (*application, error) {
	records, err := openRecords(ctx, c.Records)
	if err != nil {
		return nil, fmt.Errorf("unable to open records (%s): %w", c.Records.Backend, err)
	}
	return &application{records: records}, nil
}

func openRecords(ctx context.Context, c config.Records) (game.RecordStore, error) {
	switch c.Backend {
	case config.BackendSQLite:
		log.WithField("path", c.SQLitePath).Debug("opening sqlite records")
		return store.OpenRecords(ctx, c.SQLitePath)

	case config.BackendPostgres:
		pool, err := database.ConnectAndMigrate(ctx)
		if err != nil {
			return nil, err
		}
		log.Debug("connected to postgres")
		return repository.NewFromPool(pool), nil

	default:
		return game.NopStore{}, nil
	}
}

func (app *application) Close() error {
	return app.records.Close()
}
