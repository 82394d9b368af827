package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	calls []string
	err   error
}

func (f *fakeExec) record(s string) error {
	f.calls = append(f.calls, s)
	return f.err
}

func (f *fakeExec) List(ctx context.Context) error { return f.record("list") }
func (f *fakeExec) Filter(ctx context.Context, args []string) error {
	return f.record("filter " + strings.Join(args, ","))
}
func (f *fakeExec) Search(ctx context.Context, text string) error { return f.record("search " + text) }
func (f *fakeExec) Arrive(ctx context.Context, id string, arrived bool) error {
	return f.record(fmt.Sprintf("arrive %s %v", id, arrived))
}
func (f *fakeExec) Export(ctx context.Context, format string) error { return f.record("export " + format) }
func (f *fakeExec) Import(ctx context.Context, path string) error   { return f.record("import " + path) }
func (f *fakeExec) Title(ctx context.Context, text string) error    { return f.record("title " + text) }
func (f *fakeExec) Stats(ctx context.Context) error                 { return f.record("stats") }
func (f *fakeExec) Reset(ctx context.Context) error                 { return f.record("reset") }

func capturePrint(t *testing.T) *[]string {
	t.Helper()
	var out []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		out = append(out, fmt.Sprintln(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &out
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	capturePrint(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"l",
		"filter status Will not attend",
		"search  Ana  Rui ",
		"",
		"arrive g1",
		"depart g1",
		"export pdf",
		"import guests.json",
		"title Summer Gala",
		"stats",
		"reset",
		"exit",
		"list",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "(online)" }, bufio.NewScanner(input))

	assert.Equal(t, []string{
		"list",
		"filter status,Will,not,attend",
		"search Ana Rui",
		"arrive g1 true",
		"arrive g1 false",
		"export pdf",
		"import guests.json",
		"title Summer Gala",
		"stats",
		"reset",
	}, exec.calls)
}

func TestRunREPL_UsageAndUnknown(t *testing.T) {
	out := capturePrint(t)

	input := strings.NewReader("arrive\nexport\nimport\nfoobar\nquit\n")
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(input))

	assert.Empty(t, exec.calls)
	joined := strings.Join(*out, "")
	assert.Contains(t, joined, "Usage: arrive <id>")
	assert.Contains(t, joined, "Usage: export csv|pdf|print")
	assert.Contains(t, joined, "Unknown command: foobar")
	assert.Contains(t, joined, "Bye!")
}

func TestRunREPL_PrintsHandlerErrorsAndContinues(t *testing.T) {
	out := capturePrint(t)

	exec := &fakeExec{err: errors.New("boom")}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(strings.NewReader("stats\nreset\n")))

	assert.Equal(t, []string{"stats", "reset"}, exec.calls)
	assert.Equal(t, 2, strings.Count(strings.Join(*out, ""), "Error: boom"))
}

func TestRunREPL_StopsWhenContextDone(t *testing.T) {
	capturePrint(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "s" }, bufio.NewScanner(strings.NewReader("stats\n")))
	assert.Empty(t, exec.calls)
}
