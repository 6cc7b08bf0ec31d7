package shell

import (
	"sort"
	"strings"
)

// Handler runs one command. args excludes the command name itself. Handlers
// may mutate the session through its setters and must never panic on bad
// input; user errors come back as KindError outputs.
type Handler func(args []string, s *Session) Output

type command struct {
	names map[string]bool
	f     Handler
}

func m(s ...string) map[string]bool {
	res := map[string]bool{}
	for _, p := range s {
		res[p] = true
	}
	return res
}

// Registry is the closed set of built-in commands.
type Registry struct {
	commands []command
}

func NewRegistry() *Registry {
	r := &Registry{}
	r.commands = append(r.commands, generalCommands()...)
	r.commands = append(r.commands, fileCommands()...)
	r.commands = append(r.commands, systemCommands()...)
	r.commands = append(r.commands, packageCommands()...)
	return r
}

// Lookup resolves a command name case-insensitively.
func (r *Registry) Lookup(name string) (Handler, bool) {
	name = strings.ToLower(name)
	for _, cmd := range r.commands {
		if cmd.names[name] {
			return cmd.f, true
		}
	}
	return nil, false
}

// Names lists every registered command name, sorted.
func (r *Registry) Names() []string {
	names := []string{}
	for _, cmd := range r.commands {
		for name := range cmd.names {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func text(s *Session, content string) Output {
	return Output{Kind: KindText, Payload: content, Timestamp: s.now()}
}

func errorf(s *Session, content string) Output {
	return Output{Kind: KindError, Payload: content, Timestamp: s.now()}
}

func component(s *Session, trigger string) Output {
	return Output{Kind: KindComponent, Payload: trigger, Timestamp: s.now()}
}
