package git

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/refpick/refpick/internal/shell"
)

// Git wraps the git binary for one repository. All process execution
// goes through the injected Commander so tests can fake it.
type Git struct {
	RepoRoot string
	Cmd      shell.Commander
}

func New(cmd shell.Commander) (*Git, error) {
	out, err := cmd.Run("git", "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, errors.New("not in a git repository")
	}
	return &Git{RepoRoot: strings.TrimSpace(string(out)), Cmd: cmd}, nil
}

func (g *Git) run(args ...string) (string, error) {
	out, err := g.Cmd.RunDir(g.RepoRoot, "git", args...)
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			return "", fmt.Errorf("git %s: %w", args[0], err)
		}
		return "", fmt.Errorf("git %s: %s", args[0], msg)
	}
	return string(out), nil
}

func splitLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

type Branch struct {
	Name     string
	Upstream string
	Subject  string
	Current  bool
}

func (g *Git) Branches() ([]Branch, error) {
	out, err := g.run("branch", "--format=%(HEAD)\t%(refname:short)\t%(upstream:short)\t%(subject)")
	if err != nil {
		return nil, err
	}
	var branches []Branch
	for _, line := range splitLines(out) {
		parts := strings.SplitN(line, "\t", 4)
		if len(parts) < 2 {
			continue
		}
		b := Branch{
			Current: strings.TrimSpace(parts[0]) == "*",
			Name:    strings.TrimSpace(parts[1]),
		}
		if len(parts) > 2 {
			b.Upstream = strings.TrimSpace(parts[2])
		}
		if len(parts) > 3 {
			b.Subject = strings.TrimSpace(parts[3])
		}
		if b.Name != "" {
			branches = append(branches, b)
		}
	}
	return branches, nil
}

type Tag struct {
	Name    string
	Subject string
}

func (g *Git) Tags() ([]Tag, error) {
	out, err := g.run("tag", "--sort=-creatordate", "--format=%(refname:short)\t%(subject)")
	if err != nil {
		return nil, err
	}
	var tags []Tag
	for _, line := range splitLines(out) {
		parts := strings.SplitN(line, "\t", 2)
		t := Tag{Name: strings.TrimSpace(parts[0])}
		if len(parts) > 1 {
			t.Subject = strings.TrimSpace(parts[1])
		}
		if t.Name != "" {
			tags = append(tags, t)
		}
	}
	return tags, nil
}

type Commit struct {
	Hash    string
	Subject string
}

func (g *Git) Commits(limit int) ([]Commit, error) {
	out, err := g.run("log", "--max-count="+strconv.Itoa(limit), "--format=%h\t%s")
	if err != nil {
		return nil, err
	}
	var commits []Commit
	for _, line := range splitLines(out) {
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			continue
		}
		commits = append(commits, Commit{Hash: parts[0], Subject: parts[1]})
	}
	return commits, nil
}

type Stash struct {
	Ref     string // stash@{N}
	Subject string
}

func (g *Git) Stashes() ([]Stash, error) {
	out, err := g.run("stash", "list", "--format=%gd\t%s")
	if err != nil {
		return nil, err
	}
	var stashes []Stash
	for _, line := range splitLines(out) {
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			continue
		}
		stashes = append(stashes, Stash{Ref: parts[0], Subject: parts[1]})
	}
	return stashes, nil
}

func (g *Git) CurrentBranch() (string, error) {
	out, err := g.run("rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (g *Git) Checkout(name string) error {
	_, err := g.run("checkout", name)
	return err
}

func (g *Git) CheckoutDetached(ref string) error {
	_, err := g.run("checkout", "--detach", ref)
	return err
}

func (g *Git) DeleteBranch(name string, force bool) error {
	flag := "-d"
	if force {
		flag = "-D"
	}
	_, err := g.run("branch", flag, name)
	return err
}

func (g *Git) DeleteTag(name string) error {
	_, err := g.run("tag", "-d", name)
	return err
}

func (g *Git) Fetch() error {
	_, err := g.run("fetch", "--all", "--prune")
	return err
}

func (g *Git) StashApply(ref string) error {
	_, err := g.run("stash", "apply", ref)
	return err
}

func (g *Git) StashPop(ref string) error {
	_, err := g.run("stash", "pop", ref)
	return err
}

func (g *Git) StashDrop(ref string) error {
	_, err := g.run("stash", "drop", ref)
	return err
}

// Show pages a ref through git's own pager on the caller's terminal. It
// must only run while no TUI owns the screen.
func (g *Git) Show(ref string) error {
	return g.Cmd.Interactive(g.RepoRoot, "git", "show", ref)
}
