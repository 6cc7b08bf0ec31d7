// Package shell implements the simulated terminal: per-visitor session
// state, the command registry, and the interpreter that dispatches input
// lines to command handlers.
package shell

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/yashsuthar/termfolio/vfs"
)

const (
	DefaultUser     = "visitor"
	DefaultHostname = "yashsuthar.com"
)

// Theme is the active color scheme. Purely session state; rendering is the
// front-end's problem.
type Theme int

const (
	ThemeDefault Theme = iota
	ThemeDracula
	ThemeMatrix
)

func (t Theme) String() string {
	switch t {
	case ThemeDracula:
		return "dracula"
	case ThemeMatrix:
		return "matrix"
	default:
		return "default"
	}
}

// ParseTheme maps a theme name to its Theme. Reports false for unknown
// names.
func ParseTheme(name string) (Theme, bool) {
	switch strings.ToLower(name) {
	case "default":
		return ThemeDefault, true
	case "dracula":
		return ThemeDracula, true
	case "matrix":
		return ThemeMatrix, true
	}
	return ThemeDefault, false
}

// OutputKind classifies a command result.
type OutputKind int

const (
	KindText OutputKind = iota
	KindError
	KindComponent
)

// Output is what a command handler returns. For KindComponent the payload
// is a trigger token the front-end interprets (e.g. launching the snake
// game).
type Output struct {
	Kind      OutputKind
	Payload   string
	Timestamp time.Time
}

// Line is one entry in the session's output buffer.
type Line struct {
	Content       string
	IsCommandEcho bool
	IsSpecial     bool
	Timestamp     time.Time
}

// Session is one visitor's shell state. A session is driven by a single
// input stream, so none of its mutators lock; concurrent use of one
// session is a caller bug.
type Session struct {
	user     string
	hostname string

	fs          vfs.Dir
	currentPath []string
	history     []string
	output      []Line
	installed   []string
	theme       Theme

	effects *EffectScheduler
	clock   func() time.Time
	rnd     *rand.Rand
	started time.Time
}

func NewSession(fs vfs.Dir) *Session {
	return newSession(fs, time.Now, rand.New(rand.NewSource(time.Now().UnixNano())))
}

func newSession(fs vfs.Dir, clock func() time.Time, rnd *rand.Rand) *Session {
	return &Session{
		user:        DefaultUser,
		hostname:    DefaultHostname,
		fs:          fs,
		currentPath: vfs.HomePath(),
		effects:     NewEffectScheduler(clock),
		clock:       clock,
		rnd:         rnd,
		started:     clock(),
	}
}

func (s *Session) User() string {
	return s.user
}

func (s *Session) Hostname() string {
	return s.hostname
}

func (s *Session) FS() vfs.Dir {
	return s.fs
}

// Path returns a copy of the current directory segments.
func (s *Session) Path() []string {
	path := make([]string, len(s.currentPath))
	copy(path, s.currentPath)
	return path
}

func (s *Session) SetPath(segs []string) {
	s.currentPath = segs
}

// PathString contracts the home directory to "~" like a login shell.
func (s *Session) PathString() string {
	full := vfs.PathString(s.currentPath)
	home := vfs.PathString(vfs.HomePath())
	if full == home {
		return "~"
	}
	if strings.HasPrefix(full, home+"/") {
		return "~" + full[len(home):]
	}
	return full
}

// Prompt composes the prompt prefix echoed before each command.
func (s *Session) Prompt() string {
	return fmt.Sprintf("%s@%s:%s$ ", s.user, s.hostname, s.PathString())
}

func (s *Session) History() []string {
	hist := make([]string, len(s.history))
	copy(hist, s.history)
	return hist
}

func (s *Session) appendHistory(line string) {
	s.history = append(s.history, line)
}

// Output returns the output buffer. The returned slice aliases the buffer;
// callers only read it.
func (s *Session) Output() []Line {
	return s.output
}

func (s *Session) appendLine(content string, echo bool, special bool) {
	s.output = append(s.output, Line{
		Content:       content,
		IsCommandEcho: echo,
		IsSpecial:     special,
		Timestamp:     s.clock(),
	})
}

func (s *Session) ClearOutput() {
	s.output = nil
}

func (s *Session) InstallPackage(name string) {
	s.installed = append(s.installed, name)
}

func (s *Session) HasPackage(name string) bool {
	for _, pkg := range s.installed {
		if pkg == name {
			return true
		}
	}
	return false
}

func (s *Session) Packages() []string {
	pkgs := make([]string, len(s.installed))
	copy(pkgs, s.installed)
	return pkgs
}

func (s *Session) Theme() Theme {
	return s.theme
}

func (s *Session) SetTheme(t Theme) {
	s.theme = t
}

func (s *Session) Effects() *EffectScheduler {
	return s.effects
}

func (s *Session) Uptime() time.Duration {
	return s.clock().Sub(s.started)
}

func (s *Session) now() time.Time {
	return s.clock()
}
