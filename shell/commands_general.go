package shell

import (
	"fmt"
	"strings"
)

func generalCommands() []command {
	return []command{
		{names: m("help"), f: cmdHelp},
		{names: m("about"), f: cmdAbout},
		{names: m("skills"), f: cmdSkills},
		{names: m("projects"), f: cmdProjects},
		{names: m("contact"), f: cmdContact},
		{names: m("funfact"), f: cmdFunfact},
		{names: m("man"), f: cmdMan},
	}
}

const helpText = `Yash Suthar Portfolio Terminal - Available Commands:

PORTFOLIO COMMANDS:
  about         - About Yash Suthar
  skills        - Technical skills and expertise
  projects      - Portfolio projects and demos
  contact       - Contact information
  funfact       - Random fun facts

SYSTEM COMMANDS:
  ls            - List directory contents
  pwd           - Show current directory
  cd [dir]      - Change directory
  cat [file]    - Display file contents
  head [file]   - Show first lines of a file
  tail [file]   - Show last lines of a file
  find [name]   - Search for files by name
  tree          - Show directory tree
  whoami        - Show current user
  hostname      - Show hostname
  date          - Show current date and time
  uptime        - Show session uptime
  ps            - List running processes
  clear         - Clear terminal screen

FUN COMMANDS:
  neofetch      - System information with style
  matrix        - Digital rain effect
  cowsay [text] - Make a cow say something
  fortune       - Random wisdom
  factor [n]    - Prime factorization
  sl            - Steam locomotive
  snake         - Play snake game (requires: apt install snake-game)

PACKAGES & THEMES:
  apt           - Package manager (search, install, list)
  theme [name]  - Change color theme

HELP & NAVIGATION:
  man [cmd]     - Manual page for command
  history       - Show command history
  exit          - Leave the terminal

Type any command to explore! Pro tip: Try 'neofetch' for a system overview.`

func cmdHelp(args []string, s *Session) Output {
	return text(s, helpText)
}

func cmdAbout(args []string, s *Session) Output {
	return text(s, `About Yash Suthar
`+strings.Repeat("=", 50)+`

Full Stack Developer from Ahmedabad, Gujarat, IN.
I love creating interactive applications that push the boundaries of
what's possible on the web. This terminal portfolio is just one example
of how I like to blend creativity with technical skills.

What I Do:
* Full-stack web development with modern technologies
* Building scalable applications and user experiences
* Contributing to open source projects
* Continuous learning and experimenting with new tech

Type 'skills' to see my technical expertise!`)
}

func cmdSkills(args []string, s *Session) Output {
	return text(s, `Technical Skills & Expertise
`+strings.Repeat("=", 50)+`

Languages:
  JavaScript/TypeScript * Python * Java * C++ * Go * Rust

Frameworks:
  React/Next.js * Node.js/Express * Django/FastAPI * Vue.js

Tools:
  Git/GitHub * Docker/Kubernetes * AWS/GCP * MongoDB/PostgreSQL * Redis

Tip: cat the files under skills/ for proficiency breakdowns.

Type 'projects' to see this in action!`)
}

func cmdProjects(args []string, s *Session) Output {
	return text(s, `Portfolio Projects
`+strings.Repeat("=", 50)+`

1. E-Commerce Platform
   Full-stack shop with SSR, live inventory and Stripe payments.
   Tech Stack: Next.js, TypeScript, PostgreSQL, Stripe

2. AI Chatbot Assistant
   Context-aware chatbot with custom knowledge base integration.
   Tech Stack: Python, OpenAI API, FastAPI, React

3. Terminal Portfolio
   You're looking at it! Simulated shell, virtual filesystem and a
   real-time snake leaderboard.
   Tech Stack: Go, SSE, SQLite

The projects/ directory has a writeup for each one.`)
}

func cmdContact(args []string, s *Session) Output {
	return text(s, `Get In Touch
`+strings.Repeat("=", 50)+`

Email: yash@example.com
Location: Ahmedabad, Gujarat, IN

Social & Professional Links:
LinkedIn: linkedin.com/in/yash
GitHub: github.com/yash
Twitter: @yash_dev

For professional inquiries: Email
For quick questions: LinkedIn`)
}

var funFacts = []string{
	"I once debugged an issue that turned out to be a missing semicolon... after 3 hours",
	"My first 'Hello World' program had a syntax error. Some things never change!",
	"I can type faster with my eyes closed than some people with their eyes open",
	"Coffee consumption directly correlates with code quality in my case",
	"I've probably googled 'how to center a div' more times than I care to admit",
	"My rubber duck debugging buddy has helped solve more bugs than Stack Overflow",
	"I once spent a day optimizing code only to realize the bottleneck was my internet connection",
	"The best code I've ever written was deleted by accident. Murphy's Law in action!",
}

func cmdFunfact(args []string, s *Session) Output {
	fact := funFacts[s.rnd.Intn(len(funFacts))]
	return text(s, fmt.Sprintf("Random Fun Fact\n%s\n\n%s\n\nType 'funfact' again for another one!", strings.Repeat("=", 50), fact))
}

var manPages = map[string]string{
	"help":     "help - Display available commands and their descriptions",
	"about":    "about - Show information about Yash Suthar",
	"skills":   "skills - Display technical skills and expertise",
	"projects": "projects - Display portfolio projects",
	"contact":  "contact - Show contact information and social links",
	"ls":       "ls - List directory contents; -la for the long format",
	"cd":       "cd - Change the working directory; 'cd ..' moves up one level",
	"cat":      "cat - Print file contents",
	"clear":    "clear - Clear the terminal screen",
	"apt":      "apt - Package manager; apt [search|install|list] [package]",
	"theme":    "theme - Switch the color theme; theme [default|dracula|matrix]",
	"snake":    "snake - Play the snake game; install it first with 'apt install snake-game'",
	"neofetch": "neofetch - Display system information with ASCII art",
}

func cmdMan(args []string, s *Session) Output {
	if len(args) == 0 {
		return text(s, "man: What manual page do you want?\nUsage: man [command]")
	}
	name := strings.ToLower(args[0])
	if page, found := manPages[name]; found {
		return text(s, fmt.Sprintf("Manual page for %s:\n%s\n\nType 'help' to see all available commands.", name, page))
	}
	return errorf(s, fmt.Sprintf("No manual entry for %s", args[0]))
}
