package parser

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	const pid = 777

	tests := []struct {
		name           string
		line           string
		foregroundOnly bool
		want           *Command
	}{
		{
			name: "single word",
			line: "ls",
			want: &Command{Argv: []string{"ls"}},
		},
		{
			name: "arguments",
			line: "ls -la /tmp",
			want: &Command{Argv: []string{"ls", "-la", "/tmp"}},
		},
		{
			name: "extra whitespace",
			line: "   echo \t hello   ",
			want: &Command{Argv: []string{"echo", "hello"}},
		},
		{
			name: "trailing ampersand",
			line: "sleep 30 &",
			want: &Command{Argv: []string{"sleep", "30"}, Background: true},
		},
		{
			name:           "trailing ampersand in foreground-only mode",
			line:           "sleep 30 &",
			foregroundOnly: true,
			want:           &Command{Argv: []string{"sleep", "30"}},
		},
		{
			name: "ampersand mid-line is an argument",
			line: "echo & done",
			want: &Command{Argv: []string{"echo", "&", "done"}},
		},
		{
			name: "input redirection",
			line: "wc < junk",
			want: &Command{Argv: []string{"wc"}, InputPath: "junk"},
		},
		{
			name: "output redirection",
			line: "ls > junk",
			want: &Command{Argv: []string{"ls"}, OutputPath: "junk"},
		},
		{
			name: "both redirections background",
			line: "sort < junk > junk2 &",
			want: &Command{Argv: []string{"sort"}, InputPath: "junk", OutputPath: "junk2", Background: true},
		},
		{
			name: "pid marker in arguments and targets",
			line: "echo id$$ < in$$ > out$$$$",
			want: &Command{Argv: []string{"echo", "id777"}, InputPath: "in777", OutputPath: "out777777"},
		},
		{
			name: "leading space defeats comment detection",
			line: " # words",
			want: &Command{Argv: []string{"#", "words"}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.line, pid, tc.foregroundOnly)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseNoOps(t *testing.T) {
	for _, line := range []string{
		"",
		"   \t  ",
		"#",
		"# a comment line",
		"&",
		"   &",
	} {
		t.Run(strconv.Quote(line), func(t *testing.T) {
			got, err := Parse(line, 1, false)
			require.NoError(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
		want error
	}{
		{"input operator without target", "wc <", ErrMissingInputPath},
		{"output operator without target", "ls >", ErrMissingOutputPath},
		{"operator followed only by ampersand", "wc < &", ErrMissingInputPath},
		{"redirection without command", "< junk > junk2", ErrMissingCommand},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.line, 1, false)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseTooManyArgs(t *testing.T) {
	fields := make([]string, MaxArgs+1)
	for i := range fields {
		fields[i] = "a"
	}

	_, err := Parse(strings.Join(fields, " "), 1, false)
	assert.ErrorIs(t, err, ErrTooManyArgs)

	got, err := Parse(strings.Join(fields[:MaxArgs], " "), 1, false)
	require.NoError(t, err)
	assert.Len(t, got.Argv, MaxArgs)
}
