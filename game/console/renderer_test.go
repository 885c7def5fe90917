package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/wricardo/fifteen-puzzle/game/engine"
)

func TestRenderer_Plain(t *testing.T) {
	var buf bytes.Buffer
	if err := NewRenderer(false).Render(&buf, engine.NewSolvedGrid()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	want := " 1  2  3  4 \n" +
		" 5  6  7  8 \n" +
		" 9 10 11 12 \n" +
		"13 14 15    \n" +
		"\n"
	if buf.String() != want {
		t.Errorf("Render mismatch\nwant %q\ngot  %q", want, buf.String())
	}
}

func TestRenderer_Colored(t *testing.T) {
	g, err := engine.ParseGrid("2,1,3,4,5,6,7,8,9,10,11,12,13,14,15,0")
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}

	var buf bytes.Buffer
	if err := NewRenderer(true).Render(&buf, g); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "\x1b[") {
		t.Error("Expected ANSI escape sequences in colored output")
	}

	// Stripping escapes leaves the plain layout
	plain := stripANSI(out)
	if plain != g.String() {
		t.Errorf("Colored output differs from plain after stripping\nwant %q\ngot  %q", g.String(), plain)
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b {
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
