package judge

import (
	"reflect"
	"strings"
	"testing"

	"github.com/minijudge/minijudge/internal/domain"
)

func TestCompare_IdenticalText(t *testing.T) {
	inputs := []string{
		"hello",
		"line1\nline2\nline3",
		"",
		"  padded  ",
		"trailing newline\n",
	}

	for _, text := range inputs {
		res := Compare(text, text)
		if !res.ExactMatch {
			t.Errorf("Compare(%q, %q): expected exact match", text, text)
		}
		if len(res.LineDiffs) != 0 {
			t.Errorf("Compare(%q, %q): expected zero diffs, got %d", text, text, len(res.LineDiffs))
		}
		if res.MatchPercentage != 100 {
			t.Errorf("Compare(%q, %q): expected 100%%, got %v", text, text, res.MatchPercentage)
		}
	}
}

func TestCompare_Idempotent(t *testing.T) {
	first := Compare("a\nb\nc", "a\nx\nc")
	second := Compare("a\nb\nc", "a\nx\nc")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated compare produced different results: %+v vs %+v", first, second)
	}
}

func TestCompare_SurroundingWhitespaceIgnored(t *testing.T) {
	res := Compare("hello\n", "  hello  ")
	if !res.ExactMatch {
		t.Errorf("expected exact match after trimming, got %+v", res)
	}
}

func TestCompare_SingleLineMismatch(t *testing.T) {
	res := Compare("helo", "hello")
	if res.ExactMatch {
		t.Error("expected mismatch")
	}
	if len(res.LineDiffs) != 1 {
		t.Fatalf("expected 1 diff, got %d", len(res.LineDiffs))
	}

	diff := res.LineDiffs[0]
	if diff.Line != 1 {
		t.Errorf("expected line 1, got %d", diff.Line)
	}
	if diff.Expected != "hello" || diff.Actual != "helo" {
		t.Errorf("unexpected diff contents: %+v", diff)
	}
	if res.MatchPercentage != 0 {
		t.Errorf("expected 0%%, got %v", res.MatchPercentage)
	}
}

func TestCompare_MissingLinesSentinel(t *testing.T) {
	res := Compare("a\nb", "a\nb\nc\nd")
	if res.ExactMatch {
		t.Error("expected mismatch")
	}
	if len(res.LineDiffs) != 2 {
		t.Fatalf("expected 2 diffs, got %d", len(res.LineDiffs))
	}

	for i, diff := range res.LineDiffs {
		if diff.Actual != "<missing>" {
			t.Errorf("diff %d: expected <missing> actual, got %q", i, diff.Actual)
		}
	}
	if res.LineDiffs[0].Line != 3 || res.LineDiffs[1].Line != 4 {
		t.Errorf("unexpected diff line numbers: %+v", res.LineDiffs)
	}
	if res.MatchPercentage != 50 {
		t.Errorf("expected 50%%, got %v", res.MatchPercentage)
	}
}

func TestCompare_ExtraActualLines(t *testing.T) {
	res := Compare("a\nb\nc", "a")
	if len(res.LineDiffs) != 2 {
		t.Fatalf("expected 2 diffs, got %d", len(res.LineDiffs))
	}
	for _, diff := range res.LineDiffs {
		if diff.Expected != "<missing>" {
			t.Errorf("expected <missing> expected line, got %q", diff.Expected)
		}
	}
}

func TestCompare_BothEmpty(t *testing.T) {
	res := Compare("", "   \n  ")
	if !res.ExactMatch {
		t.Error("expected two empty outputs to match")
	}
	if res.MatchPercentage != 100 {
		t.Errorf("expected 100%%, got %v", res.MatchPercentage)
	}
}

func TestCompare_PercentageBounds(t *testing.T) {
	cases := []struct{ actual, expected string }{
		{"", "x\ny\nz"},
		{"a\nb\nc", "a\nb\nc"},
		{"1\n2\n3\n4", "1\nx\n3"},
		{strings.Repeat("q\n", 50), strings.Repeat("w\n", 20)},
	}

	for _, tc := range cases {
		res := Compare(tc.actual, tc.expected)
		if res.MatchPercentage < 0 || res.MatchPercentage > 100 {
			t.Errorf("Compare(%q, %q): percentage out of range: %v", tc.actual, tc.expected, res.MatchPercentage)
		}
		if res.MatchPercentage == 100 && len(res.LineDiffs) != 0 {
			t.Errorf("Compare(%q, %q): 100%% with %d diffs", tc.actual, tc.expected, len(res.LineDiffs))
		}
	}
}

func TestCompare_DiffCountMatchesUnequalPositions(t *testing.T) {
	actual := "a\nB\nc\nD"
	expected := "a\nb\nc"

	res := Compare(actual, expected)

	// 4 positions walked, 2 positionally equal (a, c).
	if len(res.LineDiffs) != 2 {
		t.Errorf("expected 2 diffs, got %d: %+v", len(res.LineDiffs), res.LineDiffs)
	}
}

func TestCompare_ResultShape(t *testing.T) {
	res := Compare("x", "y")
	want := domain.LineDiff{Line: 1, Expected: "y", Actual: "x"}
	if len(res.LineDiffs) != 1 || res.LineDiffs[0] != want {
		t.Errorf("unexpected diff: %+v", res.LineDiffs)
	}
}
