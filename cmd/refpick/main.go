package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/refpick/refpick/internal/app"
	"github.com/refpick/refpick/internal/config"
	"github.com/refpick/refpick/internal/deps"
	"github.com/refpick/refpick/internal/git"
	"github.com/refpick/refpick/internal/recent"
	"github.com/refpick/refpick/internal/shell"
	"github.com/refpick/refpick/pkg/version"
)

var (
	queryFlag   string
	maxRowsFlag int
)

func main() {
	if os.Getenv("REFPICK_DEBUG") != "" {
		f, err := tea.LogToFile("refpick-debug.log", "refpick")
		if err == nil {
			defer f.Close()
		}
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "refpick",
	Short: "Fuzzy-pick git branches, tags, commits and stashes",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		_, err = a.PickBranch(queryFlag, false)
		return err
	},
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.PersistentFlags().StringVarP(&queryFlag, "query", "q", "", "Pre-fill the filter query")
	rootCmd.PersistentFlags().IntVar(&maxRowsFlag, "max-rows", 0, "Override the visible row limit")

	rootCmd.AddCommand(branchCmd)
	rootCmd.AddCommand(tagCmd)
	rootCmd.AddCommand(commitCmd)
	rootCmd.AddCommand(stashCmd)
	rootCmd.AddCommand(menuCmd)
}

func ensureDeps() error {
	missing := deps.Check()
	if len(missing) == 0 {
		return nil
	}
	for _, dep := range missing {
		fmt.Fprintf(os.Stderr, "Missing dependency: %s (%s)\n", dep.Name, deps.InstallHint(dep))
	}
	return fmt.Errorf("missing required dependencies")
}

func loadApp() (*app.App, error) {
	if err := ensureDeps(); err != nil {
		return nil, err
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if maxRowsFlag > 0 {
		cfg.MaxRows = maxRowsFlag
	}
	g, err := git.New(&shell.ExecCommander{})
	if err != nil {
		return nil, err
	}
	store, err := recent.Load()
	if err != nil {
		return nil, err
	}
	return &app.App{
		Git:    g,
		Cfg:    cfg,
		Recent: store,
		Out:    os.Stdout,
		IsTTY:  isatty.IsTerminal(os.Stdout.Fd()) && isatty.IsTerminal(os.Stdin.Fd()),
	}, nil
}

var branchCmd = &cobra.Command{
	Use:   "branch",
	Short: "Pick a local branch",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		_, err = a.PickBranch(queryFlag, false)
		return err
	},
}

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Pick a tag",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		_, err = a.PickTag(queryFlag, false)
		return err
	},
}

var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Pick a recent commit",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		_, err = a.PickCommit(queryFlag, false)
		return err
	},
}

var stashCmd = &cobra.Command{
	Use:   "stash",
	Short: "Pick a stash",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		_, err = a.PickStash(queryFlag, false)
		return err
	},
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Browse all pickers from a top-level menu",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		return a.Menu()
	},
}
