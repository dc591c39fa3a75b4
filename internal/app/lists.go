package app

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/refpick/refpick/internal/git"
	"github.com/refpick/refpick/internal/selector"
)

// PickBranch runs the branch picker. The returned bool reports that the
// user backed out to the caller's menu rather than finishing.
func (a *App) PickBranch(query string, allowBack bool) (bool, error) {
	branches, err := a.Git.Branches()
	if err != nil {
		return false, err
	}
	if a.Cfg.RecentBranchesFirst {
		branches = floatRecent(branches, a.Recent.Branches(a.Git.RepoRoot))
	}

	if !a.IsTTY {
		names := make([]string, len(branches))
		for i, b := range branches {
			names[i] = b.Name
		}
		a.listPlain(query, names)
		return false, nil
	}

	res, err := selector.Run(selector.Config[git.Branch]{
		Items:            branches,
		RenderText:       renderBranch,
		SearchText:       func(b git.Branch) string { return b.Name },
		Header:           "branches",
		ActionsFor:       a.branchActions,
		Actions:          []selector.Action[git.Branch]{a.fetchAction()},
		DefaultActionKey: a.Cfg.DefaultBranchAction,
		AllowBack:        allowBack,
		MaxVisibleRows:   a.Cfg.MaxRows,
		InitialQuery:     query,
	})
	if err != nil {
		return false, err
	}
	if res.Back {
		return true, nil
	}
	if res.OK && res.Action != nil {
		switch res.Action.Key {
		case "show":
			return false, a.Git.Show(res.Item.Name)
		case "checkout":
			fmt.Fprintf(a.Out, "switched to %q\n", res.Item.Name)
		}
	}
	return false, nil
}

func renderBranch(b git.Branch) string {
	marker := "  "
	if b.Current {
		marker = "* "
	}
	if b.Subject == "" {
		return marker + b.Name
	}
	return fmt.Sprintf("%s%s  %s", marker, b.Name, b.Subject)
}

// floatRecent reorders branches so recently checked-out ones lead the
// unfiltered list. Relative order is otherwise preserved; ranking keeps
// input order for the empty query, so this ordering is what shows.
func floatRecent(branches []git.Branch, recentNames []string) []git.Branch {
	byName := make(map[string]int, len(branches))
	for i, b := range branches {
		byName[b.Name] = i
	}
	taken := make(map[int]bool)
	out := make([]git.Branch, 0, len(branches))
	for _, name := range recentNames {
		if i, ok := byName[name]; ok && !taken[i] {
			out = append(out, branches[i])
			taken[i] = true
		}
	}
	for i, b := range branches {
		if !taken[i] {
			out = append(out, b)
		}
	}
	return out
}

func (a *App) branchActions(b git.Branch) []selector.Action[git.Branch] {
	copyAction := selector.Action[git.Branch]{
		Key:         "copy",
		Label:       "copy",
		Description: "copy the branch name to the clipboard",
		Handler: func(b git.Branch) selector.Outcome[git.Branch] {
			if err := clipboard.WriteAll(b.Name); err != nil {
				return selector.Failure[git.Branch](err.Error())
			}
			return selector.Success[git.Branch](fmt.Sprintf("copied %q", b.Name))
		},
	}
	showAction := selector.Action[git.Branch]{
		Key:           "show",
		Label:         "show",
		Description:   "open the branch tip in the pager",
		ExitAfterExec: true,
	}
	if b.Current {
		// The checked-out branch can be inspected but not switched to
		// or deleted.
		return []selector.Action[git.Branch]{showAction, copyAction}
	}
	return []selector.Action[git.Branch]{
		{
			Key:           "checkout",
			Label:         "checkout",
			Description:   "switch the working tree to this branch",
			ExitAfterExec: true,
			Handler: func(b git.Branch) selector.Outcome[git.Branch] {
				if err := a.Git.Checkout(b.Name); err != nil {
					return selector.Failure[git.Branch](err.Error())
				}
				a.Recent.Add(a.Git.RepoRoot, b.Name)
				if err := a.Recent.Save(); err != nil {
					return selector.Success[git.Branch](fmt.Sprintf("switched to %q (recent list not saved: %v)", b.Name, err))
				}
				return selector.Success[git.Branch](fmt.Sprintf("switched to %q", b.Name))
			},
		},
		{
			Key:         "delete",
			Label:       "delete",
			Description: "delete the branch if it is fully merged",
			Handler: func(b git.Branch) selector.Outcome[git.Branch] {
				if err := a.Git.DeleteBranch(b.Name, false); err != nil {
					return selector.FailureWithFollowUp(err.Error(), a.forceDeleteAction())
				}
				a.Recent.Remove(a.Git.RepoRoot, b.Name)
				_ = a.Recent.Save()
				return selector.Success[git.Branch](fmt.Sprintf("deleted %q", b.Name))
			},
		},
		showAction,
		copyAction,
	}
}

func (a *App) forceDeleteAction() selector.Action[git.Branch] {
	return selector.Action[git.Branch]{
		Key:         "force-delete",
		Label:       "force delete",
		Description: "delete the branch even if it is not merged",
		Handler: func(b git.Branch) selector.Outcome[git.Branch] {
			if err := a.Git.DeleteBranch(b.Name, true); err != nil {
				return selector.Failure[git.Branch](err.Error())
			}
			a.Recent.Remove(a.Git.RepoRoot, b.Name)
			_ = a.Recent.Save()
			return selector.Success[git.Branch](fmt.Sprintf("deleted %q", b.Name))
		},
	}
}

func (a *App) fetchAction() selector.Action[git.Branch] {
	return selector.Action[git.Branch]{
		Key:         "fetch",
		Label:       "fetch",
		Description: "fetch all remotes and prune",
		Scope:       selector.ScopeGlobal,
		Handler: func(git.Branch) selector.Outcome[git.Branch] {
			if err := a.Git.Fetch(); err != nil {
				return selector.Failure[git.Branch](err.Error())
			}
			return selector.Success[git.Branch]("fetched all remotes")
		},
	}
}

func (a *App) PickTag(query string, allowBack bool) (bool, error) {
	tags, err := a.Git.Tags()
	if err != nil {
		return false, err
	}

	if !a.IsTTY {
		names := make([]string, len(tags))
		for i, t := range tags {
			names[i] = t.Name
		}
		a.listPlain(query, names)
		return false, nil
	}

	res, err := selector.Run(selector.Config[git.Tag]{
		Items: tags,
		RenderText: func(t git.Tag) string {
			if t.Subject == "" {
				return t.Name
			}
			return fmt.Sprintf("%s  %s", t.Name, t.Subject)
		},
		SearchText: func(t git.Tag) string { return t.Name },
		Header:     "tags",
		Actions: []selector.Action[git.Tag]{
			{
				Key:           "checkout",
				Label:         "checkout",
				Description:   "check out the tag (detached HEAD)",
				ExitAfterExec: true,
				Handler: func(t git.Tag) selector.Outcome[git.Tag] {
					if err := a.Git.CheckoutDetached(t.Name); err != nil {
						return selector.Failure[git.Tag](err.Error())
					}
					return selector.Success[git.Tag](fmt.Sprintf("checked out %q", t.Name))
				},
			},
			{Key: "show", Label: "show", Description: "open the tag in the pager", ExitAfterExec: true},
			{
				Key:         "copy",
				Label:       "copy",
				Description: "copy the tag name to the clipboard",
				Handler: func(t git.Tag) selector.Outcome[git.Tag] {
					if err := clipboard.WriteAll(t.Name); err != nil {
						return selector.Failure[git.Tag](err.Error())
					}
					return selector.Success[git.Tag](fmt.Sprintf("copied %q", t.Name))
				},
			},
			{
				Key:         "delete",
				Label:       "delete",
				Description: "delete the local tag",
				Handler: func(t git.Tag) selector.Outcome[git.Tag] {
					if err := a.Git.DeleteTag(t.Name); err != nil {
						return selector.Failure[git.Tag](err.Error())
					}
					return selector.Success[git.Tag](fmt.Sprintf("deleted %q", t.Name))
				},
			},
		},
		DefaultActionKey: "checkout",
		AllowBack:        allowBack,
		MaxVisibleRows:   a.Cfg.MaxRows,
		InitialQuery:     query,
	})
	if err != nil {
		return false, err
	}
	if res.Back {
		return true, nil
	}
	if res.OK && res.Action != nil {
		switch res.Action.Key {
		case "show":
			return false, a.Git.Show(res.Item.Name)
		case "checkout":
			fmt.Fprintf(a.Out, "checked out %q\n", res.Item.Name)
		}
	}
	return false, nil
}

func (a *App) PickCommit(query string, allowBack bool) (bool, error) {
	commits, err := a.Git.Commits(a.Cfg.CommitLimit)
	if err != nil {
		return false, err
	}

	render := func(c git.Commit) string { return fmt.Sprintf("%s  %s", c.Hash, c.Subject) }

	if !a.IsTTY {
		lines := make([]string, len(commits))
		for i, c := range commits {
			lines[i] = render(c)
		}
		a.listPlain(query, lines)
		return false, nil
	}

	res, err := selector.Run(selector.Config[git.Commit]{
		Items:      commits,
		RenderText: render,
		SearchText: render,
		Header:     "commits",
		Actions: []selector.Action[git.Commit]{
			{Key: "show", Label: "show", Description: "open the commit in the pager", ExitAfterExec: true},
			{
				Key:           "checkout",
				Label:         "checkout",
				Description:   "check out the commit (detached HEAD)",
				ExitAfterExec: true,
				Handler: func(c git.Commit) selector.Outcome[git.Commit] {
					if err := a.Git.CheckoutDetached(c.Hash); err != nil {
						return selector.Failure[git.Commit](err.Error())
					}
					return selector.Success[git.Commit](fmt.Sprintf("checked out %s", c.Hash))
				},
			},
			{
				Key:         "copy",
				Label:       "copy",
				Description: "copy the commit hash to the clipboard",
				Handler: func(c git.Commit) selector.Outcome[git.Commit] {
					if err := clipboard.WriteAll(c.Hash); err != nil {
						return selector.Failure[git.Commit](err.Error())
					}
					return selector.Success[git.Commit](fmt.Sprintf("copied %s", c.Hash))
				},
			},
		},
		DefaultActionKey: "show",
		AllowBack:        allowBack,
		MaxVisibleRows:   a.Cfg.MaxRows,
		InitialQuery:     query,
	})
	if err != nil {
		return false, err
	}
	if res.Back {
		return true, nil
	}
	if res.OK && res.Action != nil {
		switch res.Action.Key {
		case "show":
			return false, a.Git.Show(res.Item.Hash)
		case "checkout":
			fmt.Fprintf(a.Out, "checked out %s\n", res.Item.Hash)
		}
	}
	return false, nil
}

func (a *App) PickStash(query string, allowBack bool) (bool, error) {
	stashes, err := a.Git.Stashes()
	if err != nil {
		return false, err
	}

	if !a.IsTTY {
		lines := make([]string, len(stashes))
		for i, s := range stashes {
			lines[i] = fmt.Sprintf("%s  %s", s.Ref, s.Subject)
		}
		a.listPlain(query, lines)
		return false, nil
	}

	res, err := selector.Run(selector.Config[git.Stash]{
		Items:      stashes,
		RenderText: func(s git.Stash) string { return fmt.Sprintf("%s  %s", s.Ref, s.Subject) },
		SearchText: func(s git.Stash) string { return s.Subject },
		Header:     "stashes",
		Actions: []selector.Action[git.Stash]{
			{
				Key:           "apply",
				Label:         "apply",
				Description:   "apply the stash, keeping it in the list",
				ExitAfterExec: true,
				Handler: func(s git.Stash) selector.Outcome[git.Stash] {
					if err := a.Git.StashApply(s.Ref); err != nil {
						return selector.Failure[git.Stash](err.Error())
					}
					return selector.Success[git.Stash](fmt.Sprintf("applied %s", s.Ref))
				},
			},
			{
				Key:           "pop",
				Label:         "pop",
				Description:   "apply the stash and drop it",
				ExitAfterExec: true,
				Handler: func(s git.Stash) selector.Outcome[git.Stash] {
					if err := a.Git.StashPop(s.Ref); err != nil {
						return selector.Failure[git.Stash](err.Error())
					}
					return selector.Success[git.Stash](fmt.Sprintf("popped %s", s.Ref))
				},
			},
			{
				Key:         "drop",
				Label:       "drop",
				Description: "discard the stash",
				Handler: func(s git.Stash) selector.Outcome[git.Stash] {
					if err := a.Git.StashDrop(s.Ref); err != nil {
						return selector.Failure[git.Stash](err.Error())
					}
					return selector.Success[git.Stash](fmt.Sprintf("dropped %s", s.Ref))
				},
			},
			{Key: "show", Label: "show", Description: "open the stash in the pager", ExitAfterExec: true},
		},
		DefaultActionKey: "apply",
		AllowBack:        allowBack,
		MaxVisibleRows:   a.Cfg.MaxRows,
		InitialQuery:     query,
	})
	if err != nil {
		return false, err
	}
	if res.Back {
		return true, nil
	}
	if res.OK && res.Action != nil {
		switch res.Action.Key {
		case "show":
			return false, a.Git.Show(res.Item.Ref)
		case "apply":
			fmt.Fprintf(a.Out, "applied %s\n", res.Item.Ref)
		case "pop":
			fmt.Fprintf(a.Out, "popped %s\n", res.Item.Ref)
		}
	}
	return false, nil
}
