package server

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rodaine/table"

	"github.com/yashsuthar/termfolio"
	"github.com/yashsuthar/termfolio/leaderboard"
	"github.com/yashsuthar/termfolio/snake"
)

const tickInterval = 150 * time.Millisecond

// runSnake plays one full game loop on the raw SSH channel: the match,
// name entry for a scoring game, and the leaderboard view.
func (e *env) runSnake() error {
	game := snake.New(rand.New(rand.NewSource(time.Now().UnixNano())))
	game.BeginNameEntry()
	game.Start()

	keys, restore := e.input.GameMode()
	defer restore()

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	fmt.Fprint(e.term, ansiClear)
	e.paintBoard(game)

	for game.Phase() == snake.PhasePlaying {
		select {
		case <-e.sess.Context().Done():
			return nil
		case key, open := <-keys:
			if !open {
				return nil
			}
			switch key {
			case 'w', 'k', 'A': // 'A' is the arrow-up CSI final byte
				game.Queue(snake.Up)
			case 's', 'j', 'B':
				game.Queue(snake.Down)
			case 'a', 'h', 'D':
				game.Queue(snake.Left)
			case 'd', 'l', 'C':
				game.Queue(snake.Right)
			case 'p', ' ':
				game.TogglePause()
			case 'q', 3: // ctrl-c
				game.Finish()
				fmt.Fprint(e.term, ansiClear)
				e.rendered = len(e.shSess.Output())
				return nil
			}
		case <-ticker.C:
			game.Step()
			e.paintBoard(game)
		}
	}

	restore() // back to line mode for name entry
	fmt.Fprintf(e.term, "\nGame over! Final score: %d\n", game.Score())

	if game.AdvanceFromGameOver() == snake.PhaseNameEntry {
		if err := e.submitScore(game.Score()); err != nil {
			return err
		}
		game.ShowLeaderboard()
	}
	if err := e.showLeaderboard(); err != nil {
		return err
	}
	game.Finish()

	fmt.Fprint(e.term, ansiClear)
	e.rendered = len(e.shSess.Output())
	return nil
}

func (e *env) paintBoard(game *snake.Game) {
	var sb strings.Builder
	sb.WriteString(ansiClear)
	fmt.Fprintf(&sb, "Score: %d", game.Score())
	if game.Paused() {
		sb.WriteString("  [paused]")
	}
	sb.WriteString("\n")

	cells := map[snake.Point]byte{}
	body := game.Snake()
	for _, segment := range body {
		cells[segment] = 'o'
	}
	cells[body[0]] = 'O'
	cells[game.Food()] = '*'

	sb.WriteString("+" + strings.Repeat("-", game.Width()) + "+\n")
	for y := 0; y < game.Height(); y++ {
		sb.WriteByte('|')
		for x := 0; x < game.Width(); x++ {
			if c, found := cells[snake.Point{X: x, Y: y}]; found {
				sb.WriteByte(c)
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("+" + strings.Repeat("-", game.Width()) + "+\n")
	sb.WriteString("wasd/hjkl/arrows to steer, p to pause, q to quit\n")
	fmt.Fprint(e.term, sb.String())
}

func (e *env) submitScore(score int) error {
	for {
		fmt.Fprint(e.term, "Enter your name for the leaderboard: ")
		name, err := e.term.ReadLine()
		if err != nil {
			return termfolio.WithStack(err)
		}
		name = strings.TrimSpace(name)
		if name == "" {
			fmt.Fprintln(e.term, "Skipping submission.")
			return nil
		}
		if err := snake.ValidateName(name); err != nil {
			fmt.Fprintln(e.term, err.Error())
			continue
		}
		ctx := e.sess.Context()
		if _, err := e.server.board.Submit(ctx, name, score); err != nil {
			if !errors.Is(err, ctx.Err()) {
				fmt.Fprintln(e.term, "Could not save your score.")
			}
			return nil
		}
		e.server.publishScores(ctx)
		return nil
	}
}

func (e *env) showLeaderboard() error {
	ctx := e.sess.Context()
	top, err := e.server.board.TopN(ctx, leaderboard.DefaultTopN)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.term, "\nHigh scores:")
	tbl := table.New("Rank", "Player", "Score").WithWriter(e.term)
	for _, entry := range top {
		tbl.AddRow(entry.Rank, entry.PlayerName, entry.Score)
	}
	tbl.Print()
	fmt.Fprint(e.term, "\nPress enter to return to the terminal.")
	if _, err := e.term.ReadLine(); err != nil {
		return termfolio.WithStack(err)
	}
	return nil
}
