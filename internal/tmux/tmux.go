package tmux

import (
	"fmt"
	"os"
	"os/exec"
	"os/user"
	"path/filepath"
	"strconv"
	"strings"

	gotmux "github.com/GianlucaP106/gotmux/gotmux"
)

// Session is a read-only snapshot of one tmux session.
type Session struct {
	Name     string
	Windows  int
	Attached bool
}

// Client talks to a single tmux server, addressed by socket path. An empty
// socket path means the default server.
type Client struct {
	socketPath string
}

func NewClient(socketPath string) *Client {
	return &Client{socketPath: socketPath}
}

// Tab-delimited so session names containing colons parse cleanly.
const sessionListFormat = "#{session_name}\t#{session_windows}\t#{session_attached}"

// ListSessions returns all sessions on the server, in tmux's order. Any
// failure (including no server running) yields an empty list; callers treat
// the two identically.
func (c *Client) ListSessions() []Session {
	args := append(c.baseArgs(), "list-sessions", "-F", sessionListFormat)
	output, err := exec.Command("tmux", args...).Output()
	if err != nil {
		return nil
	}
	return parseSessions(string(output))
}

func parseSessions(text string) []Session {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	sessions := make([]Session, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 3)
		if len(parts) < 3 {
			continue
		}
		windows, _ := strconv.Atoi(parts[1])
		attached, _ := strconv.Atoi(parts[2])
		sessions = append(sessions, Session{
			Name:     parts[0],
			Windows:  windows,
			Attached: attached > 0,
		})
	}
	return sessions
}

// CreateSession creates a detached session with the given name.
func (c *Client) CreateSession(name string) error {
	client, err := c.gotmux()
	if err != nil {
		return fmt.Errorf("failed to create session %q: %w", name, err)
	}
	if _, err := client.NewSession(&gotmux.SessionOptions{Name: name}); err != nil {
		return fmt.Errorf("failed to create session %q: %w", name, err)
	}
	return nil
}

// RenameSession renames target to newName.
func (c *Client) RenameSession(target, newName string) error {
	client, err := c.gotmux()
	if err != nil {
		return fmt.Errorf("failed to rename session %q: %w", target, err)
	}
	session, err := client.GetSessionByName(target)
	if err != nil {
		return fmt.Errorf("failed to rename session %q: %w", target, err)
	}
	if session == nil {
		return fmt.Errorf("session %q not found", target)
	}
	if err := session.Rename(newName); err != nil {
		return fmt.Errorf("failed to rename session %q to %q: %w", target, newName, err)
	}
	return nil
}

// KillSession destroys the named session.
func (c *Client) KillSession(name string) error {
	client, err := c.gotmux()
	if err != nil {
		return fmt.Errorf("failed to kill session %q: %w", name, err)
	}
	session, err := client.GetSessionByName(name)
	if err != nil {
		return fmt.Errorf("failed to kill session %q: %w", name, err)
	}
	if session == nil {
		return fmt.Errorf("session %q not found", name)
	}
	if err := session.Kill(); err != nil {
		return fmt.Errorf("failed to kill session %q: %w", name, err)
	}
	return nil
}

// AttachSession connects the current client to the named session. Inside
// tmux this is switch-client; when that fails (no client to switch) it falls
// back to attach-session on the inherited terminal.
func (c *Client) AttachSession(name string) error {
	if client, err := c.gotmux(); err == nil {
		if err := client.SwitchClient(&gotmux.SwitchClientOptions{TargetSession: name}); err == nil {
			return nil
		}
	}
	args := append(c.baseArgs(), "attach-session", "-t", name)
	cmd := exec.Command("tmux", args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to attach to session %q: %w", name, err)
	}
	return nil
}

// InsideTmux reports whether the process is running within a tmux client.
func InsideTmux() bool {
	return os.Getenv("TMUX") != ""
}

// ResolveSocketPath picks the tmux socket: explicit flag first, then the
// URSA_SOCKET override, then the socket advertised by $TMUX, then the
// conventional per-user default.
func ResolveSocketPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if envSocket := os.Getenv("URSA_SOCKET"); envSocket != "" {
		return envSocket, nil
	}
	if tmuxEnv := os.Getenv("TMUX"); tmuxEnv != "" {
		parts := strings.Split(tmuxEnv, ",")
		if len(parts) > 0 && parts[0] != "" {
			return parts[0], nil
		}
	}
	baseDir := os.Getenv("TMUX_TMPDIR")
	if baseDir == "" {
		baseDir = "/tmp"
	}
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return filepath.Join(baseDir, fmt.Sprintf("tmux-%s", u.Uid), "default"), nil
}

func (c *Client) gotmux() (*gotmux.Tmux, error) {
	if c.socketPath != "" {
		return gotmux.NewTmux(c.socketPath)
	}
	return gotmux.DefaultTmux()
}

func (c *Client) baseArgs() []string {
	if strings.TrimSpace(c.socketPath) == "" {
		return []string{}
	}
	return []string{"-S", c.socketPath}
}
