package recent

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"
)

const maxPerRepo = 10

// Entry records one successful branch checkout so frequently used
// branches can float to the top of the unfiltered list.
type Entry struct {
	RepoRoot   string    `json:"repo_root"`
	Branch     string    `json:"branch"`
	LastAccess time.Time `json:"last_access"`
}

type Store struct {
	Entries []Entry `json:"entries"`
	path    string
}

func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "refpick")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "refpick")
}

func Load() (*Store, error) {
	path := filepath.Join(configDir(), "recent.json")

	s := &Store{path: path, Entries: []Entry{}}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, s); err != nil {
		return s, nil
	}
	s.path = path
	return s, nil
}

func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

func (s *Store) Add(repoRoot, branch string) {
	for i, e := range s.Entries {
		if e.RepoRoot == repoRoot && e.Branch == branch {
			s.Entries[i].LastAccess = time.Now()
			s.prune()
			return
		}
	}

	s.Entries = append(s.Entries, Entry{
		RepoRoot:   repoRoot,
		Branch:     branch,
		LastAccess: time.Now(),
	})

	s.prune()
}

func (s *Store) prune() {
	sort.Slice(s.Entries, func(i, j int) bool {
		return s.Entries[i].LastAccess.After(s.Entries[j].LastAccess)
	})

	if len(s.Entries) > maxPerRepo*3 {
		s.Entries = s.Entries[:maxPerRepo*3]
	}
}

// Branches returns the branches recorded for one repository, most
// recently used first.
func (s *Store) Branches(repoRoot string) []string {
	var entries []Entry
	for _, e := range s.Entries {
		if e.RepoRoot == repoRoot {
			entries = append(entries, e)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].LastAccess.After(entries[j].LastAccess)
	})

	if len(entries) > maxPerRepo {
		entries = entries[:maxPerRepo]
	}

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Branch
	}
	return names
}

func (s *Store) Remove(repoRoot, branch string) {
	var filtered []Entry
	for _, e := range s.Entries {
		if !(e.RepoRoot == repoRoot && e.Branch == branch) {
			filtered = append(filtered, e)
		}
	}
	s.Entries = filtered
}
