package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dootMaster/hugging-face-blog-scraper/internal/config"
	"github.com/dootMaster/hugging-face-blog-scraper/internal/logging"
	"github.com/dootMaster/hugging-face-blog-scraper/internal/scrape"
	"github.com/dootMaster/hugging-face-blog-scraper/internal/store"
	"github.com/dootMaster/hugging-face-blog-scraper/internal/tui"
)

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, st, scraper, client, err := setup()
	if err != nil {
		return err
	}
	defer logging.Close()

	if flagWidth > 0 {
		cfg.WrapWidth = flagWidth
	}

	active, err := st.LoadActive()
	if errors.Is(err, store.ErrNoActive) || flagRefresh {
		// First run (or forced refresh): no listing to show without a
		// scrape, so a failure here is fatal.
		fmt.Println("Fetching blog listing...")
		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout())
		active, err = scraper.Scrape(ctx)
		cancel()
		if err != nil {
			return fmt.Errorf("scraping listing: %w", err)
		}
	} else if err != nil {
		return err
	}

	stashed, err := st.LoadStashed()
	if err != nil {
		return err
	}

	return tui.Run(tui.RunOpts{
		Cfg:     cfg,
		Store:   st,
		Client:  client,
		Scraper: scraper,
		Active:  active,
		Stashed: stashed,
	})
}

// setup wires the config, store, client and scraper shared by every command.
func setup() (*config.Config, *store.Store, *scrape.Scraper, *scrape.Client, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("loading config: %w", err)
	}

	if err := logging.Init(config.LogDir()); err != nil {
		// Diagnostics only; the reader works without them.
		fmt.Printf("  [warn] %v\n", err)
	}

	st, err := store.Open(cfg.ResolvedDataDir())
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("opening data dir: %w", err)
	}

	client := scrape.NewClient(cfg.Timeout(), cfg.UserAgent)
	scraper, err := scrape.NewScraper(client, st, cfg.BaseURL, cfg.ListingURL())
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return cfg, st, scraper, client, nil
}
