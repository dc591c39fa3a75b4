package deps

import (
	"os/exec"
	"runtime"
)

type Dependency struct {
	Name       string
	Command    string
	Required   bool
	InstallCmd map[string]string
}

type MissingDep struct {
	Dependency
}

var dependencies = []Dependency{
	{
		Name:     "git",
		Command:  "git",
		Required: true,
		InstallCmd: map[string]string{
			"darwin": "brew install git",
			"linux":  "sudo apt install git",
		},
	},
	{
		// Only needed by the copy action on X11; macOS and Windows use
		// native clipboard APIs.
		Name:     "xclip",
		Command:  "xclip",
		Required: false,
		InstallCmd: map[string]string{
			"linux": "sudo apt install xclip",
		},
	},
}

// Check reports required dependencies missing from PATH.
func Check() []MissingDep {
	missing := []MissingDep{}
	for _, dep := range dependencies {
		if !dep.Required {
			continue
		}
		if _, err := exec.LookPath(dep.Command); err != nil {
			missing = append(missing, MissingDep{dep})
		}
	}
	return missing
}

func InstallHint(dep MissingDep) string {
	goos := runtime.GOOS
	if cmd, ok := dep.InstallCmd[goos]; ok {
		return cmd
	}
	return "install " + dep.Name + " via your package manager"
}
