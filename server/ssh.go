package server

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/gliderlabs/ssh"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/yashsuthar/termfolio"
	"github.com/yashsuthar/termfolio/shell"
)

const (
	ansiClear      = "\x1b[2J\x1b[H"
	matrixGlyphs   = "ｱｲｳｴｵｶｷｸｹｺ0123456789"
	matrixInterval = 150 * time.Millisecond
)

var banner = `Welcome to Yash Suthar's terminal portfolio.
Type 'help' for available commands.

`

type env struct {
	server *Server
	term   *term.Terminal
	sess   ssh.Session
	input  *inputRouter
	interp *shell.Interpreter
	shSess *shell.Session

	// rendered counts output lines already written to the terminal, so
	// each command only paints what it appended.
	rendered int
}

// HandleSession runs one interactive terminal over SSH.
func (s *Server) HandleSession(sess ssh.Session) {
	key := fmt.Sprintf("%s/%d", sess.RemoteAddr(), time.Now().UnixNano())
	s.sessions.Set(key, true)
	defer s.sessions.Del(key)
	log.Printf("session %s opened (%d active)", key, s.sessions.Len())

	shSess := shell.NewSession(s.fsys)
	input := newInputRouter(sess)
	e := &env{
		server: s,
		term: term.NewTerminal(struct {
			io.Reader
			io.Writer
		}{input, sess}, shSess.Prompt()),
		sess:   sess,
		input:  input,
		interp: shell.NewInterpreter(shSess),
		shSess: shSess,
	}
	if err := e.run(); err != nil {
		if !errors.Is(err, io.EOF) {
			fmt.Fprintf(e.term, "InternalServerError: %v\n", err)
			log.Println(err)
			log.Println(termfolio.StackTrace(err))
		}
	}
	log.Printf("session %s closed", key)
}

func (e *env) run() error {
	fmt.Fprint(e.term, banner)
	for {
		e.term.SetPrompt(e.shSess.Prompt())
		line, err := e.term.ReadLine()
		if err != nil {
			return termfolio.WithStack(err)
		}
		e.interp.Execute(line)
		if err := e.render(); err != nil {
			return err
		}
		exit, err := e.drainEffects()
		if err != nil {
			return err
		}
		if exit {
			return nil
		}
	}
}

// render paints output lines appended since the last paint. A shrunken
// buffer means the screen was cleared.
func (e *env) render() error {
	lines := e.shSess.Output()
	if len(lines) < e.rendered {
		if _, err := fmt.Fprint(e.term, ansiClear); err != nil {
			return termfolio.WithStack(err)
		}
		e.rendered = 0
	}
	for _, line := range lines[e.rendered:] {
		e.rendered++
		if line.IsCommandEcho {
			// The terminal already echoed the typed command.
			continue
		}
		if line.IsSpecial {
			if line.Content == shell.SnakeTrigger {
				if err := e.runSnake(); err != nil {
					return err
				}
			}
			continue
		}
		if _, err := fmt.Fprintln(e.term, line.Content); err != nil {
			return termfolio.WithStack(err)
		}
	}
	return nil
}

// drainEffects waits out any scheduled effects and applies them. Only
// the exit effect ends the session. Holding the prompt during the wait
// is deliberate for the exit delay; the matrix window hands input to
// matrixRain so a keypress can cut it short.
func (e *env) drainEffects() (bool, error) {
	for {
		next, pending := e.shSess.Effects().Next()
		if !pending {
			return false, nil
		}
		if wait := time.Until(next); wait > 0 {
			time.Sleep(wait)
		}
		for _, effect := range e.shSess.Effects().Due() {
			switch effect.Kind {
			case shell.EffectExit:
				return true, nil
			case shell.EffectMatrixOn:
				if err := e.matrixRain(); err != nil {
					return false, err
				}
			case shell.EffectMatrixOff:
				if _, err := fmt.Fprint(e.term, ansiClear); err != nil {
					return false, termfolio.WithStack(err)
				}
				e.rendered = len(e.shSess.Output())
			}
		}
	}
}

// matrixRain paints glyph noise until the scheduled off effect is due,
// or until the user presses a key.
func (e *env) matrixRain() error {
	keys, restore := e.input.GameMode()
	defer restore()
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	for {
		next, pending := e.shSess.Effects().Next()
		if !pending || time.Until(next) <= 0 {
			return nil
		}
		row := make([]rune, 60)
		glyphs := []rune(matrixGlyphs)
		for i := range row {
			if rnd.Intn(3) == 0 {
				row[i] = ' '
			} else {
				row[i] = glyphs[rnd.Intn(len(glyphs))]
			}
		}
		if _, err := fmt.Fprintf(e.term, "\x1b[32m%s\x1b[0m\n", string(row)); err != nil {
			return termfolio.WithStack(err)
		}
		select {
		case _, ok := <-keys:
			e.shSess.Effects().Cancel(shell.EffectMatrixOff)
			if !ok {
				return nil
			}
			if _, err := fmt.Fprint(e.term, ansiClear); err != nil {
				return termfolio.WithStack(err)
			}
			e.rendered = len(e.shSess.Output())
			return nil
		case <-time.After(matrixInterval):
		}
	}
}
