package app

import (
	"fmt"
	"os/exec"
	"runtime"
	"time"

	"github.com/blackwell-systems/librarian/internal/catalog"
	"github.com/spf13/cobra"
)

func newOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <id|title>",
		Short: "Open a book's document link and record the read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := findBook(args[0])
			if err != nil {
				return err
			}
			return openBook(*b)
		},
	}
}

func openBook(b catalog.Book) error {
	if b.DocumentURL == "" {
		return fmt.Errorf("book %q has no document link", b.Title)
	}

	stats, err := storeMgr.LoadReadStats()
	if err != nil {
		return err
	}
	stats.Record(b.ID, time.Now())
	if err := storeMgr.SaveReadStats(stats); err != nil {
		return err
	}

	if err := openURL(b.DocumentURL); err != nil {
		return err
	}
	ok("Opened %q", b.Title)
	return nil
}

func openURL(url string) error {
	var cmdName string
	var args []string

	switch runtime.GOOS {
	case "darwin":
		cmdName = "open"
		args = []string{url}
	case "windows":
		cmdName = "cmd"
		args = []string{"/c", "start", "", url}
	default: // linux, freebsd, etc.
		cmdName = "xdg-open"
		args = []string{url}
	}

	c := exec.Command(cmdName, args...)
	if err := c.Start(); err != nil {
		return fmt.Errorf("opening with %q: %w", cmdName, err)
	}
	return nil
}
