package app

import (
	"fmt"
	"os"

	"github.com/blackwell-systems/librarian/internal/config"
	"github.com/blackwell-systems/librarian/internal/feed"
	"github.com/blackwell-systems/librarian/internal/store"
	"github.com/blackwell-systems/librarian/internal/tui"
	"github.com/blackwell-systems/librarian/internal/util"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	cfg      *config.Config
	storeMgr *store.Manager
	feedCli  *feed.Client

	flagNoColor       bool
	flagNoInteractive bool
	flagConfig        string
)

var rootCmd = &cobra.Command{
	Use:   "librarian",
	Short: "Browse a personal book library published as a JSON feed",
	Long: `librarian browses a book library published as a JSON feed
(e.g. a spreadsheet exported through an opensheet-style endpoint).

The feed is fetched once per refresh and cached locally; search, category
and range filtering, sorting and bookmarks all run against the cached
catalog, so everything except 'refresh' works offline.

Run 'librarian' with no arguments to launch the interactive browser.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if tui.ShouldUseTUI(cmd) {
			return runBrowser(queryFlags{}, "")
		}
		return cmd.Help()
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagNoInteractive, "no-interactive", false, "Disable interactive TUI mode")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/librarian/config.yml)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		if flagConfig != "" {
			os.Setenv("LIBRARIAN_CONFIG", flagConfig)
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		storeMgr = store.New(cfg.Defaults.DataDir)
		feedCli = feed.New(cfg.Feed.URL)
		return nil
	}

	rootCmd.AddCommand(
		newRefreshCmd(),
		newSearchCmd(),
		newBrowseCmd(),
		newCategoriesCmd(),
		newInfoCmd(),
		newOpenCmd(),
		newBookmarkCmd(),
		newVersionCmd(),
		newCompletionCmd(),
	)
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}
