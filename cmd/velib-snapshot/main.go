// Command velib-snapshot fetches the current station snapshot once and
// appends it to a SQLite file. "velib-snapshot list" prints saved snapshots.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"

	"github.com/ngmaloney/velib-terminal/internal/config"
	"github.com/ngmaloney/velib-terminal/internal/logging"
	"github.com/ngmaloney/velib-terminal/internal/snapshots"
	"github.com/ngmaloney/velib-terminal/internal/velib"
)

func main() {
	_ = godotenv.Load()

	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	listMode := len(args) > 0 && args[0] == "list"
	if listMode {
		args = args[1:]
	}

	cfg, err := config.Load(config.SnapshotCommand, args)
	if err != nil {
		return err
	}

	// Without -log this command reports to stderr
	logger := logging.NewWriter(os.Stderr, log.InfoLevel)
	if cfg.LogFile != "" {
		fileLogger, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
		if err != nil {
			return err
		}
		defer closer.Close()
		logger = fileLogger
	} else if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	repo := snapshots.NewRepository(cfg.DBPath)
	if listMode {
		return listSnapshots(ctx, repo)
	}
	return takeSnapshot(ctx, cfg, repo, logger)
}

func takeSnapshot(ctx context.Context, cfg config.Config, repo *snapshots.Repository, logger *log.Logger) error {
	client := velib.NewClient(velib.ClientConfig{
		BaseURL: cfg.APIURL,
		Dataset: cfg.Dataset,
		Rows:    cfg.Rows,
		Timeout: cfg.Timeout,
		Logger:  logger,
	})

	stations, err := client.FetchStations(ctx)
	if err != nil {
		return fmt.Errorf("fetching stations: %w", err)
	}

	snap := &snapshots.Snapshot{SourceURL: cfg.APIURL, Stations: stations}
	if err := repo.Save(ctx, snap); err != nil {
		return err
	}

	fmt.Printf("Snapshot #%d saved to %s: %s stations, %s bikes, %s docks\n",
		snap.ID,
		cfg.DBPath,
		humanize.Comma(int64(snap.Summary.Stations)),
		humanize.Comma(int64(snap.Summary.Bikes)),
		humanize.Comma(int64(snap.Summary.Docks)),
	)
	return nil
}

func listSnapshots(ctx context.Context, repo *snapshots.Repository) error {
	list, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("No snapshots saved yet.")
		return nil
	}

	for _, s := range list {
		fmt.Printf("#%-5d %-14s %6s stations %7s bikes %7s docks\n",
			s.ID,
			humanize.Time(s.FetchedAt),
			humanize.Comma(int64(s.Summary.Stations)),
			humanize.Comma(int64(s.Summary.Bikes)),
			humanize.Comma(int64(s.Summary.Docks)),
		)
	}
	return nil
}
