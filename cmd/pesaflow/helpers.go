package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/nmwangi/pesaflow/internal/config"
	"github.com/nmwangi/pesaflow/internal/storage"
)

// initStorage opens the transaction database and applies any pending
// migrations.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDBPath()
	} else {
		dbPath = config.ExpandPath(dbPath)
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

func currentMonth() string {
	return time.Now().Format("2006-01")
}

func today() string {
	return time.Now().Format("2006-01-02")
}

func formatKES(amount float64) string {
	return fmt.Sprintf("KES %.2f", amount)
}
