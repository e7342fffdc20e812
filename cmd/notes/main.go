package main

import (
	"context"
	"log"
	"os"

	"github.com/JoseBG93/notes-Assistant/internal/cli"
	"github.com/JoseBG93/notes-Assistant/internal/config"
	"github.com/JoseBG93/notes-Assistant/internal/logging"
	"github.com/JoseBG93/notes-Assistant/internal/repositories/store"
	"github.com/JoseBG93/notes-Assistant/internal/services"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger, closer := logging.New(cfg)
	defer closer.Close()

	st, err := store.NewOS(cfg.DataDir, store.WithLogger(logger))
	if err != nil {
		logger.Error(ctx, "failed to open data store", "data_dir", cfg.DataDir, "error", err)
		log.Printf("%v", err)
		return
	}

	users := services.NewUserService(st, logger)
	notes := services.NewNotesService(st, logger)

	app := cli.NewApp(cfg, users, notes, logger, os.Stdin, os.Stdout)
	app.Run(ctx)

}
