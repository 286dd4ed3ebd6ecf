package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  [][]string
}

func (f *fakeExec) record(name string, args []string) {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context, args []string) error {
	f.record("login", args)
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.record("logout", nil)
	f.loggedIn = false
	return nil
}
func (f *fakeExec) WhoAmI(ctx context.Context) error { f.record("whoami", nil); return nil }
func (f *fakeExec) List(ctx context.Context, args []string) error {
	f.record("list", args)
	return nil
}
func (f *fakeExec) Popular(ctx context.Context) error    { f.record("popular", nil); return nil }
func (f *fakeExec) Categories(ctx context.Context) error { f.record("categories", nil); return nil }
func (f *fakeExec) Show(ctx context.Context, args []string) error {
	f.record("show", args)
	return nil
}
func (f *fakeExec) Comment(ctx context.Context, args []string) error {
	f.record("comment", args)
	return nil
}
func (f *fakeExec) Stats(ctx context.Context) error { f.record("stats", nil); return nil }

func silencePrintln(t *testing.T) {
	t.Helper()
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })
}

func TestRunREPL_DispatchOrderAndArgs(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login alice",
		"help",
		"list 生活",
		"popular",
		"show 1",
		"comment 1",
		"stats",
		"foobar",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "list", "popular", "show", "comment", "stats", "logout"}
	if len(exec.calls) != len(wantOrder) {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, wantOrder)
	}
	for i, c := range exec.calls {
		if c != wantOrder[i] {
			t.Fatalf("commands order mismatch: got %v, want %v", exec.calls, wantOrder)
		}
	}

	if got := exec.args[0]; len(got) != 1 || got[0] != "alice" {
		t.Fatalf("login args: %v", got)
	}
	if got := exec.args[1]; len(got) != 1 || got[0] != "生活" {
		t.Fatalf("list args: %v", got)
	}
	if got := exec.args[3]; len(got) != 1 || got[0] != "1" {
		t.Fatalf("show args: %v", got)
	}
}

func TestRunREPL_ListAlias(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("l\nquit\n")
	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 1 || exec.calls[0] != "list" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_BlankLinesAndEOF(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("\n\n")
	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
