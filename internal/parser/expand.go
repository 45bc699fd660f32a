package parser

import (
	"strconv"
	"strings"
)

// pidMarker is the two-character sequence replaced with the shell's pid
// wherever it appears in a token. A lone '$' is an ordinary character.
const pidMarker = "$$"

// Expand substitutes every non-overlapping occurrence of the pid marker in
// token, scanning left to right. "$$$$" becomes the pid twice; the trailing
// '$' of an odd run is kept literally. The input string is never modified.
func Expand(token string, pid int) string {
	return expand(token, strconv.Itoa(pid))
}

func expand(token, pid string) string {
	return strings.ReplaceAll(token, pidMarker, pid)
}
