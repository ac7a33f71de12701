package app

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sys/unix"

	"github.com/archie-bi/ursa/internal/logging/events"
	"github.com/archie-bi/ursa/internal/tmux"
	"github.com/archie-bi/ursa/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	SocketPath string
	Verbose    bool
}

// Run bootstraps the Bubble Tea program and, once it exits, carries out the
// action the user confirmed inside it.
func Run(cfg Config) error {
	socketPath, err := tmux.ResolveSocketPath(cfg.SocketPath)
	if err != nil {
		return fmt.Errorf("resolve socket path: %w", err)
	}
	client := tmux.NewClient(socketPath)
	model := ui.NewModel(client, cfg.Verbose)
	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err != nil {
		return err
	}
	m, ok := final.(*ui.Model)
	if !ok {
		return nil
	}
	pending := m.PendingAction()
	events.App.Exit(pendingLabel(pending))
	if pending.Kind == ui.PendingAttach {
		return attachTo(client, socketPath, pending.Target)
	}
	return nil
}

func pendingLabel(p ui.Pending) string {
	switch p.Kind {
	case ui.PendingAttach:
		return "attach"
	case ui.PendingQuit:
		return "quit"
	default:
		return "none"
	}
}

// attachTo hands the terminal over to tmux. Inside a tmux client the server
// switches the current client; outside, the process replaces itself with
// a tmux attach so no intermediate parent lingers.
func attachTo(client *tmux.Client, socketPath, name string) error {
	events.App.Attach(name)
	if tmux.InsideTmux() {
		return client.AttachSession(name)
	}
	path, err := exec.LookPath("tmux")
	if err != nil {
		return fmt.Errorf("tmux not found in PATH: %w", err)
	}
	argv := []string{"tmux"}
	if socketPath != "" {
		argv = append(argv, "-S", socketPath)
	}
	argv = append(argv, "attach-session", "-t", name)
	if err := unix.Exec(path, argv, os.Environ()); err != nil {
		return fmt.Errorf("failed to exec tmux attach: %w", err)
	}
	// unreachable when exec succeeds
	return nil
}
