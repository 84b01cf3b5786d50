package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteCatalog(t *testing.T) {
	var buf bytes.Buffer
	writeCatalog(&buf)
	out := buf.String()

	// Weights sum to 130
	for _, want := range []string{
		"shield          30      23.1%   5.0s      Invincibility",
		"nuke            5       3.8%    instant   Clear Screen",
		"double_points   15      11.5%   15.0s     2x Points",
		"Total weight: 130  |  Combo window: 2000ms",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("catalog missing %q:\n%s", want, out)
		}
	}
}
