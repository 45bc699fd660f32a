package parser

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		name  string
		token string
		pid   int
		want  string
	}{
		{"no marker", "plain", 42, "plain"},
		{"lone dollar is literal", "$", 42, "$"},
		{"marker alone", "$$", 42, "42"},
		{"suffix", "out$$", 42, "out42"},
		{"prefix", "$$log", 42, "42log"},
		{"interior", "a$$b", 42, "a42b"},
		{"adjacent markers", "$$$$", 42, "4242"},
		{"odd run keeps trailing dollar", "$$$", 42, "42$"},
		{"many markers", "$$-$$-$$", 9, "9-9-9"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Expand(tc.token, tc.pid))
		})
	}
}

func TestExpandLeavesExpandedTextAlone(t *testing.T) {
	once := Expand("tmp$$", 31)
	assert.Equal(t, "tmp31", once)
	assert.Equal(t, once, Expand(once, 99))
}

func TestExpandLongRun(t *testing.T) {
	pid := 12345
	token := strings.Repeat("$$", 64)
	want := strings.Repeat(strconv.Itoa(pid), 64)
	assert.Equal(t, want, Expand(token, pid))
}
