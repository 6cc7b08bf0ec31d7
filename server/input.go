package server

import (
	"io"
	"sync"
)

// inputRouter owns all reads from the SSH channel. In line mode bytes
// flow to the terminal's line editor; in game mode they flow to a key
// channel, with arrow escape sequences collapsed to their final byte.
// One reader means the snake game and the line editor never fight over
// the stream.
type inputRouter struct {
	mu   sync.Mutex
	keys chan byte // non-nil while in game mode
	pr   *io.PipeReader
	pw   *io.PipeWriter
}

func newInputRouter(src io.Reader) *inputRouter {
	pr, pw := io.Pipe()
	r := &inputRouter{pr: pr, pw: pw}
	go r.pump(src)
	return r
}

// Read serves the line editor from the pipe.
func (r *inputRouter) Read(p []byte) (int, error) {
	return r.pr.Read(p)
}

// GameMode diverts input to the returned key channel until restore is
// called. A keystroke arriving during the switch lands in the old mode.
func (r *inputRouter) GameMode() (keys <-chan byte, restore func()) {
	ch := make(chan byte, 8)
	r.mu.Lock()
	r.keys = ch
	r.mu.Unlock()
	return ch, func() {
		r.mu.Lock()
		r.keys = nil
		r.mu.Unlock()
	}
}

func (r *inputRouter) pump(src io.Reader) {
	defer r.pw.Close()
	buf := make([]byte, 1)
	inEscape := 0
	for {
		n, err := src.Read(buf)
		if err != nil {
			r.mu.Lock()
			if r.keys != nil {
				close(r.keys)
				r.keys = nil
			}
			r.mu.Unlock()
			return
		}
		if n == 0 {
			continue
		}
		b := buf[0]

		r.mu.Lock()
		keys := r.keys
		r.mu.Unlock()

		if keys == nil {
			inEscape = 0
			if _, err := r.pw.Write(buf[:n]); err != nil {
				return
			}
			continue
		}

		switch {
		case b == 0x1b:
			inEscape = 1
			continue
		case inEscape == 1 && b == '[':
			inEscape = 2
			continue
		case inEscape == 2:
			inEscape = 0
		case inEscape == 1:
			inEscape = 0
			continue
		}
		select {
		case keys <- b:
		default:
			// Key buffer full; drop rather than stall the reader.
		}
	}
}
