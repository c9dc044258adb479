// Package main provides collabrec-admin, an operator CLI for seeding the
// document store and inspecting the recommendation corpus offline.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/collabrec/internal/config"
	dbRedis "github.com/kailas-cloud/collabrec/internal/db/redis"
	logpkg "github.com/kailas-cloud/collabrec/internal/logger"
	apprepo "github.com/kailas-cloud/collabrec/internal/repository/application"
	"github.com/kailas-cloud/collabrec/internal/repository/docstore"
	projectrepo "github.com/kailas-cloud/collabrec/internal/repository/project"
	userrepo "github.com/kailas-cloud/collabrec/internal/repository/user"
)

var rootCmd = &cobra.Command{
	Use:           "collabrec-admin",
	Short:         "Operator tooling for the collabrec recommendation service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var adminEnv string

func init() {
	rootCmd.PersistentFlags().StringVar(&adminEnv, "env", config.GetEnv(), "Config environment (local, dev, prod)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// repos groups the repositories the commands write through.
type repos struct {
	projects *projectrepo.Repo
	users    *userrepo.Repo
	apps     *apprepo.Repo
}

func newRepos(s docstore.Store, prefix string) repos {
	return repos{
		projects: projectrepo.New(s, prefix, nil),
		users:    userrepo.New(s, prefix, nil),
		apps:     apprepo.New(s, prefix, nil),
	}
}

// connect loads config and opens the store. The caller closes the store.
func connect(ctx context.Context) (*dbRedis.Store, repos, *zap.Logger, error) {
	cfg, err := config.Load(adminEnv)
	if err != nil {
		return nil, repos{}, nil, fmt.Errorf("load config: %w", err)
	}
	logger, err := logpkg.NewLogger(adminEnv, cfg.Logging.Level)
	if err != nil {
		return nil, repos{}, nil, fmt.Errorf("create logger: %w", err)
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
		DB:       cfg.Database.DB,
	})
	if err != nil {
		return nil, repos{}, nil, fmt.Errorf("create store: %w", err)
	}
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		store.Close()
		return nil, repos{}, nil, fmt.Errorf("database not ready: %w", err)
	}

	return store, newRepos(store, cfg.Storage.KeyPrefix), logger, nil
}
