// ABOUTME: PTY harness for end-to-end chat TUI tests
// ABOUTME: Builds the binary once, runs it under a pseudo-terminal, scans output

package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

var (
	buildOnce sync.Once
	buildPath string
	buildErr  error
)

// buildBot compiles the campusbot binary once per test run.
func buildBot(t *testing.T) string {
	t.Helper()
	buildOnce.Do(func() {
		dir, err := os.MkdirTemp("", "campusbot-e2e")
		if err != nil {
			buildErr = err
			return
		}
		buildPath = filepath.Join(dir, "campusbot")
		cmd := exec.Command("go", "build", "-o", buildPath, "../cmd/campusbot")
		out, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = err
			t.Logf("build output:\n%s", out)
		}
	})
	if buildErr != nil {
		t.Fatalf("building binary: %v", buildErr)
	}
	return buildPath
}

// session is a running campusbot process attached to a pty.
type session struct {
	cmd  *exec.Cmd
	ptmx *os.File
	done chan error

	mu  sync.Mutex
	buf bytes.Buffer
}

// startChat launches the binary in chat mode under a pty. The data dir
// is isolated per test and the scrape target points at a closed port
// so no network traffic leaves the machine.
func startChat(t *testing.T) *session {
	t.Helper()
	bin := buildBot(t)

	cmd := exec.Command(bin, "chat")
	cmd.Env = append(os.Environ(),
		"CAMPUSBOT_DATA_DIR="+t.TempDir(),
		"CAMPUSBOT_BASE_URL=http://127.0.0.1:9",
		"TERM=xterm-256color",
	)

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: 40, Cols: 120})
	if err != nil {
		t.Fatalf("starting pty: %v", err)
	}

	s := &session{
		cmd:  cmd,
		ptmx: ptmx,
		done: make(chan error, 1),
	}

	go func() {
		buf := make([]byte, 4096)
		for {
			n, err := ptmx.Read(buf)
			if n > 0 {
				s.mu.Lock()
				s.buf.Write(buf[:n])
				s.mu.Unlock()
			}
			if err != nil {
				return
			}
		}
	}()
	go func() { s.done <- cmd.Wait() }()

	return s
}

// output returns everything the process has written so far.
func (s *session) output() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

// expectStringTimeout polls the output until want appears or the
// timeout elapses.
func (s *session) expectStringTimeout(t *testing.T, want string, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Contains(s.output(), want) {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %q in output:\n%s", want, s.output())
}

// send writes text to the pty as if typed.
func (s *session) send(t *testing.T, text string) {
	t.Helper()
	if _, err := s.ptmx.WriteString(text); err != nil {
		t.Fatalf("writing to pty: %v", err)
	}
}

// sendEnter sends a carriage return.
func (s *session) sendEnter(t *testing.T) {
	s.send(t, "\r")
}

// sendCtrl sends a control character (e.g., 'c' for Ctrl+C).
func (s *session) sendCtrl(t *testing.T, c byte) {
	t.Helper()
	if _, err := s.ptmx.Write([]byte{c - 'a' + 1}); err != nil {
		t.Fatalf("writing to pty: %v", err)
	}
}

// waitExit blocks until the process exits or the timeout elapses.
func (s *session) waitExit(t *testing.T, timeout time.Duration) {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(timeout):
		t.Fatalf("process did not exit within %v; output:\n%s", timeout, s.output())
	}
}

func (s *session) close() {
	_ = s.ptmx.Close()
	_ = s.cmd.Process.Kill()
}
