package shell

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

func systemCommands() []command {
	return []command{
		{names: m("whoami"), f: cmdWhoami},
		{names: m("hostname"), f: cmdHostname},
		{names: m("date"), f: cmdDate},
		{names: m("history"), f: cmdHistory},
		{names: m("uptime"), f: cmdUptime},
		{names: m("ps"), f: cmdPs},
		{names: m("sudo"), f: cmdSudo},
		{names: m("exit"), f: cmdExit},
		{names: m("clear"), f: cmdClear},
		{names: m("matrix", "cmatrix"), f: cmdMatrix},
		{names: m("fortune"), f: cmdFortune},
		{names: m("neofetch"), f: cmdNeofetch},
		{names: m("cowsay"), f: cmdCowsay},
		{names: m("sl"), f: cmdSl},
		{names: m("factor"), f: cmdFactor},
	}
}

func cmdWhoami(args []string, s *Session) Output {
	return text(s, s.User())
}

func cmdHostname(args []string, s *Session) Output {
	return text(s, s.Hostname())
}

func cmdDate(args []string, s *Session) Output {
	return text(s, s.now().Format("Mon Jan 02 15:04:05 MST 2006"))
}

func cmdHistory(args []string, s *Session) Output {
	lines := []string{}
	for idx, cmd := range s.History() {
		lines = append(lines, fmt.Sprintf("%4d  %s", idx+1, cmd))
	}
	return text(s, strings.Join(lines, "\n"))
}

func cmdUptime(args []string, s *Session) Output {
	up := s.Uptime()
	hours := int(up.Hours())
	minutes := int(up.Minutes()) % 60
	seconds := int(up.Seconds()) % 60
	return text(s, fmt.Sprintf("up %d:%02d:%02d", hours, minutes, seconds))
}

func cmdPs(args []string, s *Session) Output {
	return text(s, `  PID TTY          TIME CMD
    1 pts/0    00:00:01 portfolio-sh
    2 pts/0    00:00:00 neofetch
    3 pts/0    00:00:00 sse-broadcaster
    4 pts/0    00:00:00 snake-daemon`)
}

func cmdSudo(args []string, s *Session) Output {
	line := strings.Join(args, " ")
	if strings.HasPrefix(line, "rm -rf") {
		return errorf(s, "Nice try! But I'm not falling for that one.\n\nPermission denied: Cannot delete the universe.\n\nPro tip: Try something less destructive!")
	}
	return text(s, "[sudo] password for yash: \nSorry, try again.")
}

func cmdExit(args []string, s *Session) Output {
	s.Effects().Schedule(time.Second, EffectExit)
	return text(s, "Goodbye!")
}

// cmdClear exists so lookup succeeds; the interpreter special-cases clear
// before dispatch and wipes the buffer instead.
func cmdClear(args []string, s *Session) Output {
	return text(s, "")
}

func cmdMatrix(args []string, s *Session) Output {
	s.Effects().Schedule(0, EffectMatrixOn)
	s.Effects().Schedule(5*time.Second, EffectMatrixOff)
	return text(s, "Entering the Matrix...")
}

var fortunes = []string{
	"The best way to predict the future is to implement it.",
	"Code never lies, comments sometimes do.",
	"A bug in the code is worth two in the documentation.",
	"Programming is the art of telling another human what one wants the computer to do.",
	"The most important property of a program is whether it accomplishes the intention of its user.",
	"Simplicity is the ultimate sophistication.",
	"Make it work, make it right, make it fast.",
	"Code is like humor. When you have to explain it, it's bad.",
}

func cmdFortune(args []string, s *Session) Output {
	return text(s, fmt.Sprintf("Fortune says:\n%q", fortunes[s.rnd.Intn(len(fortunes))]))
}

const neofetchArt = `        _
       | |              yash@portfolio
  _   _| | ___          --------------
 | | | | |/ _ \         OS: Portfolio Linux x86_64
 | |_| | | (_) |        Host: Yash Suthar Terminal
  \__, |_|\___/         Kernel: 6.5.0-portfolio
   __/ |                Shell: portfolio-sh
  |___/                 Terminal: simulated tty`

func cmdNeofetch(args []string, s *Session) Output {
	up := s.Uptime().Truncate(time.Second)
	extra := fmt.Sprintf("Uptime: %s\nPackages: %d (apt)\nTheme: %s", up, len(s.Packages()), s.Theme())
	return Output{Kind: KindText, Payload: neofetchArt + "\n" + extra, Timestamp: s.now()}
}

func cmdCowsay(args []string, s *Session) Output {
	message := strings.Join(args, " ")
	if message == "" {
		message = "Hello, World!"
	}
	border := strings.Repeat("_", len(message)+2)
	bottom := strings.Repeat("-", len(message)+2)
	return text(s, fmt.Sprintf(` %s
< %s >
 %s
        \   ^__^
         \  (oo)\_______
            (__)\       )\/\
                ||----w |
                ||     ||`, border, message, bottom))
}

func cmdSl(args []string, s *Session) Output {
	return text(s, "Choo choo! The steam locomotive has passed by!")
}

func cmdFactor(args []string, s *Session) Output {
	if len(args) == 0 {
		return errorf(s, "factor: missing operand")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return errorf(s, "factor: invalid number")
	}
	factors := []string{}
	rest := n
	for i := 2; i*i <= rest; i++ {
		for rest%i == 0 {
			factors = append(factors, strconv.Itoa(i))
			rest /= i
		}
	}
	if rest > 1 {
		factors = append(factors, strconv.Itoa(rest))
	}
	result := strconv.Itoa(n) + ":"
	if len(factors) > 0 {
		result += " " + strings.Join(factors, " ")
	}
	return text(s, result)
}
