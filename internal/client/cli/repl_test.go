package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	calls []string
	args  [][]string
}

func (f *fakeExec) Send(ctx context.Context, paths []string) error {
	f.calls = append(f.calls, "send")
	f.args = append(f.args, paths)
	return nil
}
func (f *fakeExec) Pick(ctx context.Context, paths []string) error {
	f.calls = append(f.calls, "pick")
	f.args = append(f.args, paths)
	return nil
}
func (f *fakeExec) Status(ctx context.Context) error { f.calls = append(f.calls, "status"); return nil }
func (f *fakeExec) Cancel(ctx context.Context) error { f.calls = append(f.calls, "cancel"); return nil }
func (f *fakeExec) Copy(ctx context.Context) error   { f.calls = append(f.calls, "copy"); return nil }
func (f *fakeExec) Reset(ctx context.Context) error  { f.calls = append(f.calls, "reset"); return nil }

func stubPrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, 0, len(a))
		for _, v := range a {
			if s, ok := v.(string); ok {
				parts = append(parts, s)
			}
		}
		lines = append(lines, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	stubPrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"send photos notes.txt",
		"",
		"status",
		"cancel",
		"pick a.txt",
		"copy",
		"new",
		"reset",
		"exit",
		"send never.txt",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewScanner(input))

	assert.Equal(t, []string{"send", "status", "cancel", "pick", "copy", "reset", "reset"}, exec.calls)
	assert.Equal(t, [][]string{{"photos", "notes.txt"}, {"a.txt"}}, exec.args)
}

func TestRunREPL_UnknownAndQuit(t *testing.T) {
	lines := stubPrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("foobar\nquit\n")))

	assert.Empty(t, exec.calls)
	assert.Contains(t, *lines, "Unknown command: foobar")
	assert.Contains(t, *lines, "Bye!")
}

func TestRunREPL_StopsAtEOF(t *testing.T) {
	stubPrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("status")))

	assert.Equal(t, []string{"status"}, exec.calls)
}
