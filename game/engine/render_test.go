package engine

import (
	"strings"
	"testing"
)

func TestFormatCell(t *testing.T) {
	tests := []struct {
		value    uint8
		expected string
	}{
		{Blank, "   "},
		{1, " 1 "},
		{9, " 9 "},
		{10, "10 "},
		{15, "15 "},
	}

	for _, test := range tests {
		if result := FormatCell(test.value); result != test.expected {
			t.Errorf("FormatCell(%d) = %q, expected %q", test.value, result, test.expected)
		}
	}
}

func TestGridString(t *testing.T) {
	g, err := ParseGrid("1,2,3,4,5,6,7,8,9,10,11,12,13,14,0,15")
	if err != nil {
		t.Fatal(err)
	}

	expected := strings.Join([]string{
		" 1  2  3  4 ",
		" 5  6  7  8 ",
		" 9 10 11 12 ",
		"13 14    15 ",
		"",
		"",
	}, "\n")

	if result := g.String(); result != expected {
		t.Errorf("Expected\n%q\ngot\n%q", expected, result)
	}
}
