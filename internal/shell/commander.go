package shell

import (
	"os"
	"os/exec"
)

// Commander runs external processes. It is constructed once in main and
// passed to every collaborator that shells out, so tests can substitute a
// fake without touching process-global state.
type Commander interface {
	Run(name string, args ...string) ([]byte, error)
	RunDir(dir, name string, args ...string) ([]byte, error)
	// Interactive runs the command attached to the controlling terminal.
	// Used for pagers and editors after the TUI has released the screen.
	Interactive(dir, name string, args ...string) error
}

type ExecCommander struct{}

func (e *ExecCommander) Run(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	return cmd.CombinedOutput()
}

func (e *ExecCommander) RunDir(dir, name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

func (e *ExecCommander) Interactive(dir, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
