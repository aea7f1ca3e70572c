package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/linesmerrill/campus-rides/api"
	"github.com/linesmerrill/campus-rides/config"
	"github.com/linesmerrill/campus-rides/databases"
	"github.com/linesmerrill/campus-rides/maintenance"
)

var connect maintenance.Connector = maintenance.Connect

func main() {
	if err := run(context.Background()); err != nil {
		zap.S().Errorw("campus-rides stopped", "error", err)
		_ = zap.L().Sync()
		os.Exit(1)
	}
}

// run connects, ensures indexes and serves until the listener fails. The client is
// disconnected on every return path.
func run(ctx context.Context) error {
	conf, err := config.New()
	if err != nil {
		return err
	}

	client, err := connect(ctx, conf)
	if err != nil {
		return err
	}
	defer func() {
		if derr := client.Disconnect(context.WithoutCancel(ctx)); derr != nil {
			zap.S().Errorw("failed to disconnect from mongo", "error", derr)
		}
	}()

	if err = databases.EnsureIndexes(ctx, databases.NewDatabase(conf, client)); err != nil {
		return fmt.Errorf("failed to ensure indexes: %w", err)
	}

	a := api.App{Client: client}
	a.New()

	zap.S().Infow("campus-rides is up and running",
		"port", conf.Port,
		"url", conf.BaseURL,
	)
	return http.ListenAndServe(fmt.Sprintf(":%v", conf.Port), a.Router)
}
