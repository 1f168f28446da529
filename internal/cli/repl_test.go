package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubExec records which commands the REPL dispatched.
type stubExec struct {
	calls []string
	admin bool
}

func (s *stubExec) isAdmin() bool { return s.admin }
func (s *stubExec) Search(ctx context.Context, handle string) error {
	s.calls = append(s.calls, "search:"+handle)
	return nil
}
func (s *stubExec) Find(ctx context.Context, query string) error {
	s.calls = append(s.calls, "find:"+query)
	return nil
}
func (s *stubExec) Add(ctx context.Context) error {
	s.calls = append(s.calls, "add")
	return nil
}
func (s *stubExec) List(ctx context.Context) error {
	s.calls = append(s.calls, "list")
	return nil
}
func (s *stubExec) StatsCmd(ctx context.Context) error {
	s.calls = append(s.calls, "stats")
	return nil
}
func (s *stubExec) Export(ctx context.Context, format, path string) error {
	s.calls = append(s.calls, "export:"+format+":"+path)
	return nil
}
func (s *stubExec) Admin(ctx context.Context) error {
	s.calls = append(s.calls, "admin")
	return nil
}
func (s *stubExec) Check(ctx context.Context) error {
	s.calls = append(s.calls, "check")
	return nil
}

func runScript(t *testing.T, script string) (*stubExec, []string) {
	t.Helper()

	var lines []string
	orig := printlnFn
	t.Cleanup(func() { printlnFn = orig })
	printlnFn = func(a ...any) {
		lines = append(lines, fmt.Sprint(a...))
	}

	stub := &stubExec{}
	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), stub, func() string { return "" }, scanner)
	return stub, lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	stub, _ := runScript(t, strings.Join([]string{
		"search jane-doe",
		"find jane doe",
		"add",
		"list",
		"stats",
		"export json out.json",
		"export",
		"admin",
		"check",
		"exit",
	}, "\n"))

	assert.Equal(t, []string{
		"search:jane-doe",
		"find:jane doe",
		"add",
		"list",
		"stats",
		"export:json:out.json",
		"export:csv:",
		"admin",
		"check",
	}, stub.calls)
}

func TestRunREPL_UnknownCommand(t *testing.T) {
	stub, lines := runScript(t, "frobnicate\nexit\n")

	assert.Empty(t, stub.calls)
	assert.Contains(t, lines, "Unknown command: frobnicate")
}

func TestRunREPL_EmptyLinesSkipped(t *testing.T) {
	stub, _ := runScript(t, "\n   \nlist\nquit\n")
	assert.Equal(t, []string{"list"}, stub.calls)
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	stub, _ := runScript(t, "list")
	assert.Equal(t, []string{"list"}, stub.calls)
}
