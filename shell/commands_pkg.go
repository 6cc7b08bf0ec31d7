package shell

import (
	"fmt"
	"strings"

	"github.com/gertd/go-pluralize"
	"github.com/yashsuthar/termfolio/lang"
)

// SnakeTrigger is the component token emitted by the snake command. Front
// ends that see it launch their snake game implementation.
const SnakeTrigger = "SNAKE_GAME_COMPONENT"

// SnakePackage gates the snake command.
const SnakePackage = "snake-game"

var aptPackages = []string{"snake-game", "tetris", "calculator", "weather-app", "todo-list"}

var plural = pluralize.NewClient()

func packageCommands() []command {
	return []command{
		{names: m("apt", "apt-get"), f: cmdApt},
		{names: m("theme"), f: cmdTheme},
		{names: m("snake"), f: cmdSnake},
	}
}

func cmdApt(args []string, s *Session) Output {
	if len(args) == 0 {
		return text(s, "Usage: apt [search|install|list] [package]")
	}
	sub := args[0]
	arg := strings.Join(args[1:], " ")
	switch sub {
	case "search":
		matches := []string{}
		for _, pkg := range aptPackages {
			if strings.Contains(pkg, arg) {
				matches = append(matches, fmt.Sprintf("  %s - A %s", pkg, strings.ReplaceAll(pkg, "-", " ")))
			}
		}
		if len(matches) == 0 {
			return errorf(s, fmt.Sprintf("No packages found matching '%s'", arg))
		}
		return text(s, "Found packages:\n"+strings.Join(matches, "\n"))
	case "install":
		if arg != SnakePackage {
			return errorf(s, fmt.Sprintf("Package '%s' not found", arg))
		}
		s.InstallPackage(SnakePackage)
		return text(s, "Installing snake-game...\n[========================================] 100%\nsnake-game installed successfully!\nTry running: snake")
	case "list":
		pkgs := s.Packages()
		if len(pkgs) == 0 {
			return text(s, "No packages installed")
		}
		return text(s, fmt.Sprintf("%s installed:\n%s", plural.Pluralize("package", len(pkgs), true), strings.Join(pkgs, "\n")))
	default:
		return text(s, "Usage: apt [search|install|list] [package]")
	}
}

func cmdTheme(args []string, s *Session) Output {
	if len(args) > 0 {
		if theme, ok := ParseTheme(args[0]); ok {
			s.SetTheme(theme)
			return text(s, fmt.Sprintf("Theme changed to %s", lang.Capitalize(theme.String())))
		}
	}
	available := lang.Enumerator{Operator: "or"}.Do("default", "dracula", "matrix")
	return text(s, fmt.Sprintf("Available themes: %s\nUsage: theme [name]", available))
}

func cmdSnake(args []string, s *Session) Output {
	if !s.HasPackage(SnakePackage) {
		return errorf(s, "snake: command not found\nTry: apt install snake-game")
	}
	return component(s, SnakeTrigger)
}
