// Package app wires the git service, configuration, recent-branch store
// and the interactive selector into the picker commands the CLI exposes.
package app

import (
	"fmt"
	"io"

	"github.com/refpick/refpick/internal/config"
	"github.com/refpick/refpick/internal/git"
	"github.com/refpick/refpick/internal/recent"
	"github.com/refpick/refpick/internal/selector"
)

type App struct {
	Git    *git.Git
	Cfg    *config.Config
	Recent *recent.Store

	// Out receives plain listings and post-exit confirmations.
	Out io.Writer

	// IsTTY gates the interactive UI; without a terminal the pickers
	// degrade to a filtered plain listing on Out.
	IsTTY bool
}

// menuEntry is one row of the top-level menu.
type menuEntry struct {
	Label string
	Desc  string
	Kind  string
}

// Menu runs the top-level picker of pickers. Sub-pickers are entered
// with back navigation enabled, so Escape on an empty query pops to the
// menu instead of quitting.
func (a *App) Menu() error {
	entries := []menuEntry{
		{Label: "branches", Desc: "switch, delete or inspect local branches", Kind: "branch"},
		{Label: "tags", Desc: "check out or inspect tags", Kind: "tag"},
		{Label: "commits", Desc: "browse recent history", Kind: "commit"},
		{Label: "stashes", Desc: "apply, pop or drop stashes", Kind: "stash"},
	}

	if !a.IsTTY {
		for _, e := range entries {
			fmt.Fprintln(a.Out, e.Label)
		}
		return nil
	}

	for {
		res, err := selector.Run(selector.Config[menuEntry]{
			Items:          entries,
			RenderText:     func(e menuEntry) string { return fmt.Sprintf("%-10s %s", e.Label, e.Desc) },
			SearchText:     func(e menuEntry) string { return e.Label },
			Header:         "refpick",
			MaxVisibleRows: a.Cfg.MaxRows,
		})
		if err != nil {
			return err
		}
		if !res.OK {
			return nil
		}

		var back bool
		switch res.Item.Kind {
		case "branch":
			back, err = a.PickBranch("", true)
		case "tag":
			back, err = a.PickTag("", true)
		case "commit":
			back, err = a.PickCommit("", true)
		case "stash":
			back, err = a.PickStash("", true)
		}
		if err != nil {
			return err
		}
		if !back {
			return nil
		}
	}
}

func (a *App) listPlain(query string, names []string) {
	matches := selector.Rank(len(names), query, func(i int) string { return names[i] })
	for _, m := range matches {
		fmt.Fprintln(a.Out, names[m.Index])
	}
}
