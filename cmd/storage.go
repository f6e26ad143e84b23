package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dootMaster/hugging-face-blog-scraper/internal/logging"
	"github.com/dootMaster/hugging-face-blog-scraper/internal/store"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Refresh the blog listing without launching the reader",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, scraper, _, err := setup()
		if err != nil {
			return err
		}
		defer logging.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout())
		defer cancel()

		posts, err := scraper.Scrape(ctx)
		if err != nil {
			return fmt.Errorf("scraping listing: %w", err)
		}
		fmt.Printf("Scraped %d post(s).\n", len(posts))
		return nil
	},
}

var flagListStashed bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the visible post listing",
	Long:  "Print the numbered post listing to stdout. With --stashed, print the stash instead.",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, st, _, _, err := setup()
		if err != nil {
			return err
		}
		defer logging.Close()

		stashed, err := st.LoadStashed()
		if err != nil {
			return err
		}

		posts := stashed
		if !flagListStashed {
			active, err := st.LoadActive()
			if err != nil {
				return err
			}
			posts = store.Visible(active, stashed)
		}

		if len(posts) == 0 {
			fmt.Println("No posts.")
			return nil
		}
		for i, p := range posts {
			line := fmt.Sprintf("%3d. %s", i+1, p.Title)
			if p.Date != "" {
				line += " (" + p.Date + ")"
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&flagListStashed, "stashed", false, "list stashed posts instead of visible ones")
}
