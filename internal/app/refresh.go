package app

import (
	"fmt"

	"github.com/blackwell-systems/librarian/internal/catalog"
	"github.com/spf13/cobra"
)

func newRefreshCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Fetch the feed and replace the local catalog snapshot",
		Long: `Fetch the configured feed, normalize its rows into the canonical
catalog, and replace the local snapshot wholesale.

Rows missing a title or author are dropped (with a count), never fatal.
If the fetch fails the existing snapshot stays untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := feedCli.Fetch()
			if err != nil {
				if storeMgr.HasCatalog() {
					warn("Keeping existing snapshot")
				}
				return fmt.Errorf("refresh: %w", err)
			}

			books, dropped := catalog.FromRecords(rows)
			if err := storeMgr.SaveCatalog(books); err != nil {
				return err
			}

			ok("Catalog refreshed: %d book(s)", len(books))
			if dropped > 0 {
				warn("Dropped %d malformed row(s)", dropped)
			}
			return nil
		},
	}
	return cmd
}
