package shell

import (
	"fmt"
	"strings"

	"github.com/buildkite/shellwords"
)

// Interpreter ties a session to the command registry. One interpreter per
// session, driven by a single input stream.
type Interpreter struct {
	reg  *Registry
	sess *Session
}

func NewInterpreter(sess *Session) *Interpreter {
	return &Interpreter{
		reg:  NewRegistry(),
		sess: sess,
	}
}

func (i *Interpreter) Session() *Session {
	return i.sess
}

func (i *Interpreter) Registry() *Registry {
	return i.reg
}

// Execute interprets one raw input line: echoes the prompt + input into the
// output buffer, resolves the leading token against the registry, runs the
// handler, and appends its result. The returned output is a convenience for
// front-ends (component triggers); nil means the line was empty or cleared
// the screen. Unknown commands produce an error output and leave history
// and the working directory untouched.
func (i *Interpreter) Execute(raw string) *Output {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	tokens := tokenize(trimmed)
	name := strings.ToLower(tokens[0])
	args := tokens[1:]

	if name == "clear" {
		// clear wipes the buffer instead of echoing into it.
		i.sess.appendHistory(trimmed)
		i.sess.ClearOutput()
		return nil
	}

	i.sess.appendLine(i.sess.Prompt()+trimmed, true, false)

	handler, found := i.reg.Lookup(name)
	if !found {
		out := errorf(i.sess, fmt.Sprintf("Command not found: %s\nType 'help' for available commands.", tokens[0]))
		i.sess.appendLine(out.Payload, false, false)
		return &out
	}

	i.sess.appendHistory(trimmed)
	out := handler(args, i.sess)
	switch out.Kind {
	case KindComponent:
		i.sess.appendLine(out.Payload, false, true)
	default:
		if out.Payload != "" {
			i.sess.appendLine(out.Payload, false, false)
		}
	}
	return &out
}

// tokenize splits a command line into shell words. Malformed quoting falls
// back to plain whitespace splitting so user typos never error out of the
// interpreter.
func tokenize(line string) []string {
	if tokens, err := shellwords.SplitPosix(line); err == nil && len(tokens) > 0 {
		return tokens
	}
	return strings.Fields(line)
}
