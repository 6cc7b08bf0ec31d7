package shell

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/yashsuthar/termfolio/vfs"
)

// fakeClock advances only when told, so tests control effect timing.
type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}

func newTestInterpreter(t *testing.T) (*Interpreter, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)}
	sess := newSession(vfs.Portfolio(), clock.Now, rand.New(rand.NewSource(1)))
	return NewInterpreter(sess), clock
}

func lastLine(t *testing.T, sess *Session) Line {
	t.Helper()
	out := sess.Output()
	if len(out) == 0 {
		t.Fatal("output buffer empty")
	}
	return out[len(out)-1]
}

func TestEmptyInputIsIgnored(t *testing.T) {
	interp, _ := newTestInterpreter(t)
	if out := interp.Execute("   "); out != nil {
		t.Errorf("output = %+v, want nil", out)
	}
	if len(interp.Session().Output()) != 0 {
		t.Error("output buffer not empty")
	}
	if len(interp.Session().History()) != 0 {
		t.Error("history not empty")
	}
}

func TestCommandEchoAndHistory(t *testing.T) {
	interp, _ := newTestInterpreter(t)
	sess := interp.Session()

	interp.Execute("  pwd  ")

	out := sess.Output()
	if len(out) != 2 {
		t.Fatalf("len(output) = %d, want 2", len(out))
	}
	if !out[0].IsCommandEcho || out[0].Content != sess.Prompt()+"pwd" {
		t.Errorf("echo line = %+v", out[0])
	}
	if out[1].Content != "/home/yash" {
		t.Errorf("pwd output = %q", out[1].Content)
	}
	if hist := sess.History(); len(hist) != 1 || hist[0] != "pwd" {
		t.Errorf("history = %v", hist)
	}
}

func TestUnknownCommandLeavesStateAlone(t *testing.T) {
	interp, _ := newTestInterpreter(t)
	sess := interp.Session()
	before := sess.PathString()

	out := interp.Execute("frobnicate")
	if out == nil || out.Kind != KindError {
		t.Fatalf("output = %+v, want error", out)
	}
	if !strings.HasPrefix(out.Payload, "Command not found: frobnicate") {
		t.Errorf("payload = %q", out.Payload)
	}
	if len(sess.History()) != 0 {
		t.Errorf("history = %v, want empty", sess.History())
	}
	if sess.PathString() != before {
		t.Errorf("path changed to %s", sess.PathString())
	}
}

func TestCommandsAreCaseInsensitive(t *testing.T) {
	interp, _ := newTestInterpreter(t)
	out := interp.Execute("PWD")
	if out == nil || out.Kind != KindText || out.Payload != "/home/yash" {
		t.Errorf("output = %+v", out)
	}
}

func TestClearWipesBufferWithoutEcho(t *testing.T) {
	interp, _ := newTestInterpreter(t)
	sess := interp.Session()

	interp.Execute("pwd")
	if len(sess.Output()) == 0 {
		t.Fatal("setup: no output")
	}
	if out := interp.Execute("clear"); out != nil {
		t.Errorf("clear output = %+v, want nil", out)
	}
	if len(sess.Output()) != 0 {
		t.Errorf("buffer = %+v, want empty", sess.Output())
	}
	if hist := sess.History(); len(hist) != 2 || hist[1] != "clear" {
		t.Errorf("history = %v", hist)
	}
}

func TestCdUpdatesPromptAndPwd(t *testing.T) {
	interp, _ := newTestInterpreter(t)
	sess := interp.Session()

	interp.Execute("cd skills")
	if sess.PathString() != "~/skills" {
		t.Errorf("path = %q, want ~/skills", sess.PathString())
	}
	if !strings.Contains(sess.Prompt(), ":~/skills$") {
		t.Errorf("prompt = %q", sess.Prompt())
	}

	interp.Execute("cd ..")
	if sess.PathString() != "~" {
		t.Errorf("path after cd .. = %q", sess.PathString())
	}

	interp.Execute("cd /")
	if sess.PathString() != "/" {
		t.Errorf("path after cd / = %q", sess.PathString())
	}

	out := interp.Execute("cd /home/yash/nonexistent")
	if out == nil || out.Kind != KindError || out.Payload != "cd: /home/yash/nonexistent: No such file or directory" {
		t.Errorf("output = %+v", out)
	}
	if sess.PathString() != "/" {
		t.Errorf("failed cd moved to %q", sess.PathString())
	}
}

func TestCdToFileIsNotADirectory(t *testing.T) {
	interp, _ := newTestInterpreter(t)
	out := interp.Execute("cd bio.txt")
	if out == nil || out.Kind != KindError || out.Payload != "cd: bio.txt: Not a directory" {
		t.Errorf("output = %+v", out)
	}
}

func TestCatReadsFiles(t *testing.T) {
	interp, _ := newTestInterpreter(t)

	out := interp.Execute("cat bio.txt")
	if out == nil || out.Kind != KindText || out.Payload == "" {
		t.Fatalf("output = %+v", out)
	}

	out = interp.Execute("cat nope.txt")
	if out == nil || out.Kind != KindError || out.Payload != "cat: nope.txt: No such file or directory" {
		t.Errorf("output = %+v", out)
	}

	out = interp.Execute("cat skills")
	if out == nil || out.Kind != KindError || out.Payload != "cat: skills: Is a directory" {
		t.Errorf("output = %+v", out)
	}
}

func TestLsListsSortedEntries(t *testing.T) {
	interp, _ := newTestInterpreter(t)
	out := interp.Execute("ls")
	if out == nil || out.Kind != KindText {
		t.Fatalf("output = %+v", out)
	}
	if !strings.Contains(out.Payload, "skills/") || !strings.Contains(out.Payload, "bio.txt") {
		t.Errorf("payload = %q", out.Payload)
	}
	if strings.Contains(out.Payload, ".secrets") {
		t.Errorf("plain ls shows hidden entries: %q", out.Payload)
	}

	out = interp.Execute("ls -la")
	if !strings.Contains(out.Payload, ".secrets") || !strings.Contains(out.Payload, "total ") {
		t.Errorf("ls -la payload = %q", out.Payload)
	}
}

func TestHistoryCommand(t *testing.T) {
	interp, _ := newTestInterpreter(t)
	interp.Execute("pwd")
	interp.Execute("whoami")
	out := interp.Execute("history")
	want := "   1  pwd\n   2  whoami\n   3  history"
	if out == nil || out.Payload != want {
		t.Errorf("payload = %q, want %q", out.Payload, want)
	}
}

func TestSnakeRequiresInstall(t *testing.T) {
	interp, _ := newTestInterpreter(t)
	sess := interp.Session()

	out := interp.Execute("snake")
	if out == nil || out.Kind != KindError {
		t.Fatalf("output = %+v, want error", out)
	}
	if !strings.Contains(out.Payload, "apt install snake-game") {
		t.Errorf("payload = %q", out.Payload)
	}

	interp.Execute("apt install snake-game")
	if !sess.HasPackage(SnakePackage) {
		t.Fatal("package not installed")
	}

	out = interp.Execute("snake")
	if out == nil || out.Kind != KindComponent || out.Payload != SnakeTrigger {
		t.Fatalf("output = %+v, want component trigger", out)
	}
	if line := lastLine(t, sess); !line.IsSpecial || line.Content != SnakeTrigger {
		t.Errorf("line = %+v, want special trigger line", line)
	}
}

func TestThemeCommand(t *testing.T) {
	interp, _ := newTestInterpreter(t)
	sess := interp.Session()

	out := interp.Execute("theme dracula")
	if out == nil || out.Payload != "Theme changed to Dracula" {
		t.Errorf("output = %+v", out)
	}
	if sess.Theme() != ThemeDracula {
		t.Errorf("theme = %v", sess.Theme())
	}

	out = interp.Execute("theme neon")
	if out == nil || !strings.Contains(out.Payload, "default, dracula, or matrix") {
		t.Errorf("output = %+v", out)
	}
	if sess.Theme() != ThemeDracula {
		t.Error("unknown theme changed the session theme")
	}
}

func TestExitSchedulesEffect(t *testing.T) {
	interp, clock := newTestInterpreter(t)
	sess := interp.Session()

	out := interp.Execute("exit")
	if out == nil || out.Payload != "Goodbye!" {
		t.Errorf("output = %+v", out)
	}
	if due := sess.Effects().Due(); len(due) != 0 {
		t.Errorf("effect fired immediately: %+v", due)
	}
	clock.Advance(time.Second)
	due := sess.Effects().Due()
	if len(due) != 1 || due[0].Kind != EffectExit {
		t.Errorf("due = %+v, want exit", due)
	}
}

func TestMatrixSchedulesOnThenOff(t *testing.T) {
	interp, clock := newTestInterpreter(t)
	sess := interp.Session()

	interp.Execute("matrix")
	due := sess.Effects().Due()
	if len(due) != 1 || due[0].Kind != EffectMatrixOn {
		t.Fatalf("due = %+v, want matrix on", due)
	}
	clock.Advance(5 * time.Second)
	due = sess.Effects().Due()
	if len(due) != 1 || due[0].Kind != EffectMatrixOff {
		t.Errorf("due = %+v, want matrix off", due)
	}
}

func TestFactor(t *testing.T) {
	interp, _ := newTestInterpreter(t)
	tests := []struct {
		line string
		want string
	}{
		{"factor 12", "12: 2 2 3"},
		{"factor 97", "97: 97"},
		{"factor 1", "1:"},
		{"factor", "factor: missing operand"},
		{"factor banana", "factor: invalid number"},
	}
	for _, test := range tests {
		out := interp.Execute(test.line)
		if out == nil || out.Payload != test.want {
			t.Errorf("%q output = %+v, want %q", test.line, out, test.want)
		}
	}
}

func TestQuotedArgumentsSurviveTokenizing(t *testing.T) {
	interp, _ := newTestInterpreter(t)
	out := interp.Execute(`cat "bio.txt"`)
	if out == nil || out.Kind != KindText {
		t.Errorf("output = %+v", out)
	}
}
