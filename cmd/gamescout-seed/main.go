// Command gamescout-seed loads the JSON dataset from disk and writes it
// into Redis in the hash layout the API server reads at startup.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/meeplelab/gamescout/internal/dataset"
	"github.com/meeplelab/gamescout/internal/db"
	dbRedis "github.com/meeplelab/gamescout/internal/db/redis"
	logpkg "github.com/meeplelab/gamescout/internal/logger"
)

// batchSize bounds the number of hashes written per pipelined HSET.
const batchSize = 200

func main() {
	app := &cli.App{
		Name:  "gamescout-seed",
		Usage: "Seed the game catalog and neighbor index into Redis",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "games",
				Usage:    "Path to games JSON (optionally .gz or .zst)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "neighbors",
				Usage:    "Path to neighbors JSON (optionally .gz or .zst)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "descriptions",
				Usage: "Path to descriptions JSON, merged into the records",
			},
			&cli.StringSliceFlag{
				Name:  "addr",
				Usage: "Redis address (repeatable)",
				Value: cli.NewStringSlice("localhost:6379"),
			},
			&cli.StringFlag{
				Name:  "password",
				Usage: "Redis password",
			},
			&cli.StringFlag{
				Name:  "prefix",
				Usage: "Key prefix",
				Value: "gamescout:",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "Concurrent write workers",
				Value: runtime.NumCPU(),
			},
			&cli.BoolFlag{
				Name:  "flush",
				Usage: "Delete existing keys under the prefix first",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Logging level (debug, info, warn, error)",
				Value: "info",
			},
		},
		Action: seed,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func seed(c *cli.Context) error {
	logger, err := logpkg.New("local", c.String("log-level"))
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	source := &dataset.FileSource{
		GamesPath:        c.String("games"),
		NeighborsPath:    c.String("neighbors"),
		DescriptionsPath: c.String("descriptions"),
	}
	ds, err := source.Load(ctx)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	logger.Info("Dataset loaded",
		zap.Int("games", len(ds.Games)),
		zap.Int("neighbor_lists", len(ds.Neighbors)),
	)

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    c.StringSlice("addr"),
		Password: c.String("password"),
	})
	if err != nil {
		return fmt.Errorf("create store: %w", err)
	}
	defer store.Close()

	if err := store.WaitForReady(ctx, 10*time.Second); err != nil {
		return fmt.Errorf("database not ready: %w", err)
	}

	prefix := c.String("prefix")

	if c.Bool("flush") {
		deleted, err := flush(ctx, store, prefix)
		if err != nil {
			return fmt.Errorf("flush: %w", err)
		}
		logger.Info("Flushed existing keys", zap.Int("deleted", deleted))
	}

	items, err := dataset.SeedItems(ds, prefix)
	if err != nil {
		return err
	}

	start := time.Now()
	if err := writeBatches(ctx, store, items, c.Int("workers")); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	logger.Info("Seed complete",
		zap.Int("keys", len(items)),
		zap.Duration("took", time.Since(start)),
	)
	return nil
}

// writeBatches fans pipelined HSET batches out over an ants worker pool.
func writeBatches(ctx context.Context, store db.HashStore, items []db.HashSetItem, workers int) error {
	if workers < 1 {
		workers = 1
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return err
	}
	defer pool.Release()

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	for start := 0; start < len(items); start += batchSize {
		end := start + batchSize
		if end > len(items) {
			end = len(items)
		}
		batch := items[start:end]

		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			if err := store.HSetMulti(ctx, batch); err != nil {
				once.Do(func() { firstErr = err })
			}
		}); err != nil {
			wg.Done()
			once.Do(func() { firstErr = err })
			break
		}
	}
	wg.Wait()
	return firstErr
}

func flush(ctx context.Context, store db.HashStore, prefix string) (int, error) {
	keys, err := store.Scan(ctx, prefix+"*")
	if err != nil {
		return 0, err
	}
	for i, key := range keys {
		if err := store.Del(ctx, key); err != nil {
			return i, err
		}
	}
	return len(keys), nil
}
