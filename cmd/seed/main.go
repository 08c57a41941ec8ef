package main

import (
	"context"
	"flag"
	stdLog "log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-management/library/config"
	"github.com/Astemirdum/library-management/library/migrations"
	"github.com/Astemirdum/library-management/library/seed"
	"github.com/Astemirdum/library-management/pkg/logger"
	"github.com/Astemirdum/library-management/pkg/postgres"
)

func main() {
	dir := flag.String("dir", "data", "directory holding book.csv, authors.csv, book_authors.csv and borrower.csv")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLog.Fatal("load envs from .env ", err)
	}
	cfg := config.NewConfig()
	log := logger.NewLogger(cfg.Log, "seed")
	defer log.Sync() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	defer db.Close()

	report, err := seed.Load(ctx, db, *dir, log)
	if err != nil {
		log.Fatal("seed", zap.Error(err))
	}
	log.Info("seed finished", zap.Any("rows", report))
}
