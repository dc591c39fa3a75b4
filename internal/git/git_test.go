package git

import (
	"errors"
	"strings"
	"testing"
)

// fakeCommander records invocations and replays canned outputs keyed by
// the joined argument list.
type fakeCommander struct {
	outputs map[string]string
	errs    map[string]error
	calls   []string
}

func (f *fakeCommander) key(name string, args []string) string {
	return name + " " + strings.Join(args, " ")
}

func (f *fakeCommander) Run(name string, args ...string) ([]byte, error) {
	return f.RunDir("", name, args...)
}

func (f *fakeCommander) RunDir(dir, name string, args ...string) ([]byte, error) {
	k := f.key(name, args)
	f.calls = append(f.calls, k)
	if err, ok := f.errs[k]; ok {
		return []byte(f.outputs[k]), err
	}
	return []byte(f.outputs[k]), nil
}

func (f *fakeCommander) Interactive(dir, name string, args ...string) error {
	f.calls = append(f.calls, "interactive: "+f.key(name, args))
	return nil
}

func newFakeGit(outputs map[string]string) (*Git, *fakeCommander) {
	fake := &fakeCommander{outputs: outputs, errs: map[string]error{}}
	fake.outputs["git rev-parse --show-toplevel"] = "/repo\n"
	g, _ := New(fake)
	return g, fake
}

func TestNewOutsideRepository(t *testing.T) {
	fake := &fakeCommander{
		outputs: map[string]string{},
		errs:    map[string]error{"git rev-parse --show-toplevel": errors.New("exit 128")},
	}
	if _, err := New(fake); err == nil {
		t.Fatalf("expected error outside a repository")
	}
}

func TestBranchesParsing(t *testing.T) {
	g, _ := newFakeGit(map[string]string{
		"git branch --format=%(HEAD)\t%(refname:short)\t%(upstream:short)\t%(subject)": "" +
			"*\tmain\torigin/main\tinitial commit\n" +
			" \tfeature/login\t\tadd login form\n" +
			" \tscratch\t\t\n",
	})

	branches, err := g.Branches()
	if err != nil {
		t.Fatalf("branches: %v", err)
	}
	if len(branches) != 3 {
		t.Fatalf("got %d branches", len(branches))
	}
	if !branches[0].Current || branches[0].Name != "main" || branches[0].Upstream != "origin/main" {
		t.Fatalf("first branch = %+v", branches[0])
	}
	if branches[1].Current || branches[1].Name != "feature/login" || branches[1].Subject != "add login form" {
		t.Fatalf("second branch = %+v", branches[1])
	}
	if branches[2].Name != "scratch" || branches[2].Subject != "" {
		t.Fatalf("third branch = %+v", branches[2])
	}
}

func TestTagsParsing(t *testing.T) {
	g, _ := newFakeGit(map[string]string{
		"git tag --sort=-creatordate --format=%(refname:short)\t%(subject)": "v1.2.0\trelease 1.2\nv1.1.0\t\n",
	})
	tags, err := g.Tags()
	if err != nil {
		t.Fatalf("tags: %v", err)
	}
	if len(tags) != 2 || tags[0].Name != "v1.2.0" || tags[0].Subject != "release 1.2" {
		t.Fatalf("tags = %+v", tags)
	}
	if tags[1].Name != "v1.1.0" || tags[1].Subject != "" {
		t.Fatalf("tags = %+v", tags)
	}
}

func TestCommitsHonorLimit(t *testing.T) {
	g, fake := newFakeGit(map[string]string{
		"git log --max-count=2 --format=%h\t%s": "abc1234\tfix crash\ndef5678\tadd feature\n",
	})
	commits, err := g.Commits(2)
	if err != nil {
		t.Fatalf("commits: %v", err)
	}
	if len(commits) != 2 || commits[0].Hash != "abc1234" || commits[1].Subject != "add feature" {
		t.Fatalf("commits = %+v", commits)
	}
	found := false
	for _, c := range fake.calls {
		if strings.Contains(c, "--max-count=2") {
			found = true
		}
	}
	if !found {
		t.Fatalf("limit not passed through: %v", fake.calls)
	}
}

func TestStashesParsing(t *testing.T) {
	g, _ := newFakeGit(map[string]string{
		"git stash list --format=%gd\t%s": "stash@{0}\tWIP on main\nstash@{1}\ttemp work\n",
	})
	stashes, err := g.Stashes()
	if err != nil {
		t.Fatalf("stashes: %v", err)
	}
	if len(stashes) != 2 || stashes[0].Ref != "stash@{0}" || stashes[1].Subject != "temp work" {
		t.Fatalf("stashes = %+v", stashes)
	}
}

func TestEmptyListings(t *testing.T) {
	g, _ := newFakeGit(map[string]string{})
	if branches, err := g.Branches(); err != nil || len(branches) != 0 {
		t.Fatalf("branches = %+v err = %v", branches, err)
	}
	if stashes, err := g.Stashes(); err != nil || len(stashes) != 0 {
		t.Fatalf("stashes = %+v err = %v", stashes, err)
	}
}

func TestDeleteBranchForceFlag(t *testing.T) {
	g, fake := newFakeGit(map[string]string{})
	if err := g.DeleteBranch("scratch", false); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := g.DeleteBranch("scratch", true); err != nil {
		t.Fatalf("force delete: %v", err)
	}
	want := []string{"git branch -d scratch", "git branch -D scratch"}
	got := fake.calls[1:] // skip rev-parse
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("calls = %v", got)
		}
	}
}

func TestRunErrorSurfacesGitMessage(t *testing.T) {
	g, fake := newFakeGit(map[string]string{})
	key := "git checkout feature/login"
	fake.outputs[key] = "error: pathspec 'feature/login' did not match\n"
	fake.errs[key] = errors.New("exit status 1")

	err := g.Checkout("feature/login")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "did not match") {
		t.Fatalf("error should carry git's message: %v", err)
	}
}

func TestShowUsesInteractiveCommand(t *testing.T) {
	g, fake := newFakeGit(map[string]string{})
	if err := g.Show("v1.2.0"); err != nil {
		t.Fatalf("show: %v", err)
	}
	last := fake.calls[len(fake.calls)-1]
	if last != "interactive: git show v1.2.0" {
		t.Fatalf("last call = %q", last)
	}
}
