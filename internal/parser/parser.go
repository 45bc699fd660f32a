// Package parser turns one raw input line into a Command: whitespace
// tokenization, pid-marker expansion, redirection operators, and the
// trailing background marker. There is no quoting, globbing, or pipeline
// syntax.
package parser

import (
	"errors"
	"strconv"
	"strings"
)

// MaxArgs caps the argument vector of a single command.
const MaxArgs = 512

var (
	ErrMissingCommand    = errors.New("syntax error: missing command")
	ErrMissingInputPath  = errors.New("syntax error: missing input file name after '<'")
	ErrMissingOutputPath = errors.New("syntax error: missing output file name after '>'")
	ErrTooManyArgs       = errors.New("syntax error: too many arguments")
)

// Command is one user-issued instruction. A fresh value is built per input
// line and dropped after dispatch.
type Command struct {
	Argv       []string
	InputPath  string
	OutputPath string
	Background bool
}

// Parse splits line into a Command, expanding the pid marker in every token,
// redirection targets included. A blank line, or a line whose first character
// is '#', yields (nil, nil).
//
// Only a trailing '&' marks a command as background, and only while
// foregroundOnly is off; with the mode on the marker is dropped with no
// effect. A '&' anywhere else is an ordinary argument.
func Parse(line string, pid int, foregroundOnly bool) (*Command, error) {
	if strings.HasPrefix(line, "#") {
		return nil, nil
	}
	fields := strings.Fields(line)

	cmd := &Command{}
	if n := len(fields); n > 0 && fields[n-1] == "&" {
		fields = fields[:n-1]
		cmd.Background = !foregroundOnly
	}
	if len(fields) == 0 {
		return nil, nil
	}

	pidStr := strconv.Itoa(pid)
	for i := 0; i < len(fields); i++ {
		switch fields[i] {
		case "<":
			i++
			if i == len(fields) {
				return nil, ErrMissingInputPath
			}
			cmd.InputPath = expand(fields[i], pidStr)
		case ">":
			i++
			if i == len(fields) {
				return nil, ErrMissingOutputPath
			}
			cmd.OutputPath = expand(fields[i], pidStr)
		default:
			if len(cmd.Argv) == MaxArgs {
				return nil, ErrTooManyArgs
			}
			cmd.Argv = append(cmd.Argv, expand(fields[i], pidStr))
		}
	}

	if len(cmd.Argv) == 0 {
		return nil, ErrMissingCommand
	}
	return cmd, nil
}
