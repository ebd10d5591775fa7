package bstviz

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// CommandKind names an action a frontend can ask for.
type CommandKind uint8

const (
	CmdBuild CommandKind = iota + 1
	CmdSearch
	CmdDelete
	CmdTheme
	CmdQuit
)

// Command is a parsed command line such as "build 5,3,8" or "search 4".
type Command struct {
	Kind CommandKind
	Arg  string
}

var commandVerbs = map[string]CommandKind{
	"build":  CmdBuild,
	"b":      CmdBuild,
	"search": CmdSearch,
	"s":      CmdSearch,
	"find":   CmdSearch,
	"delete": CmdDelete,
	"clear":  CmdDelete,
	"d":      CmdDelete,
	"theme":  CmdTheme,
	"quit":   CmdQuit,
	"q":      CmdQuit,
	"exit":   CmdQuit,
}

// ParseCommand splits line into a verb and its argument. A line that starts
// with a digit or sign is shorthand for build.
func ParseCommand(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{}, errors.Wrap(ErrUnknownCommand, "empty command")
	}
	if c := line[0]; c == '-' || c == '+' || (c >= '0' && c <= '9') {
		return Command{Kind: CmdBuild, Arg: line}, nil
	}
	verb, arg, _ := strings.Cut(line, " ")
	kind, ok := commandVerbs[strings.ToLower(verb)]
	if !ok {
		return Command{}, errors.Wrapf(ErrUnknownCommand, "%q", verb)
	}
	return Command{Kind: kind, Arg: strings.TrimSpace(arg)}, nil
}

// Exec runs a build, search or delete command and returns a one-line status
// for display. Theme and quit belong to the frontend and are rejected.
func (v *Visualizer) Exec(c Command) (string, error) {
	switch c.Kind {
	case CmdBuild:
		s, err := v.BuildString(c.Arg)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("built %d nodes, height %d", s.Nodes, s.Height), nil
	case CmdSearch:
		path, err := v.SearchString(c.Arg)
		if err != nil {
			return "", err
		}
		vals := path.Values()
		parts := make([]string, len(vals))
		for i, val := range vals {
			parts[i] = fmt.Sprint(val)
		}
		return "searching: " + strings.Join(parts, " -> "), nil
	case CmdDelete:
		v.Delete()
		return "tree deleted", nil
	default:
		return "", errors.Wrapf(ErrUnknownCommand, "kind %d is handled by the frontend", c.Kind)
	}
}
