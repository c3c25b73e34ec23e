package analyzer

import (
	"strings"
	"testing"
)

func TestAnalyze_CleanCode(t *testing.T) {
	report := Analyze("def main():\n    print('hello')\n", nil)

	if report.TotalIssues != 0 {
		t.Errorf("expected no issues, got %d: %+v", report.TotalIssues, report.IssuesByRule)
	}
	if !strings.Contains(report.Summary, "No issues") {
		t.Errorf("unexpected summary: %q", report.Summary)
	}
}

func TestAnalyze_FullWidthSymbols(t *testing.T) {
	report := Analyze("print（'hi'）", nil)

	issues := report.IssuesByRule[RuleFullWidth]
	if len(issues) != 2 {
		t.Fatalf("expected 2 full-width issues, got %d", len(issues))
	}
	if issues[0].Suggestion != "(" || issues[1].Suggestion != ")" {
		t.Errorf("unexpected suggestions: %+v", issues)
	}
	if issues[0].Line != 1 {
		t.Errorf("expected line 1, got %d", issues[0].Line)
	}
}

func TestAnalyze_UnclosedBracket(t *testing.T) {
	report := Analyze("if (x > 0 {\n  y = 1\n}\n", nil)

	if len(report.IssuesByRule[RuleBrackets]) == 0 {
		t.Fatal("expected bracket issues")
	}
}

func TestAnalyze_MismatchedBracket(t *testing.T) {
	report := Analyze("arr = [1, 2}\n", nil)

	found := false
	for _, issue := range report.IssuesByRule[RuleBrackets] {
		if strings.Contains(issue.Message, "Mismatched") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a mismatched-bracket issue: %+v", report.IssuesByRule[RuleBrackets])
	}
}

func TestAnalyze_BracketsInsideStringsIgnored(t *testing.T) {
	report := Analyze(`s = "(not a bracket ["`+"\n", []string{RuleBrackets})

	if n := len(report.IssuesByRule[RuleBrackets]); n != 0 {
		t.Errorf("brackets inside string literals flagged: %+v", report.IssuesByRule[RuleBrackets])
	}
}

func TestAnalyze_UnclosedQuote(t *testing.T) {
	report := Analyze("s = 'unterminated\n", []string{RuleQuotes})

	issues := report.IssuesByRule[RuleQuotes]
	if len(issues) != 1 {
		t.Fatalf("expected 1 quote issue, got %d", len(issues))
	}
	if issues[0].Char != "'" || issues[0].Column != 5 {
		t.Errorf("unexpected issue: %+v", issues[0])
	}
}

func TestAnalyze_EscapedQuoteNotCounted(t *testing.T) {
	report := Analyze(`s = 'it\'s fine'`+"\n", []string{RuleQuotes})

	if n := len(report.IssuesByRule[RuleQuotes]); n != 0 {
		t.Errorf("escaped quote flagged: %+v", report.IssuesByRule[RuleQuotes])
	}
}

func TestAnalyze_ConfusableCharacters(t *testing.T) {
	// The "о" below is Cyrillic U+043E.
	report := Analyze("impоrt sys\n", []string{RuleConfusable})

	issues := report.IssuesByRule[RuleConfusable]
	if len(issues) != 1 {
		t.Fatalf("expected 1 confusable issue, got %d", len(issues))
	}
	if issues[0].Suggestion != "o" {
		t.Errorf("expected suggestion o, got %q", issues[0].Suggestion)
	}
	if issues[0].Column != 4 {
		t.Errorf("expected column 4, got %d", issues[0].Column)
	}
}

func TestAnalyze_ZeroWidthSpace(t *testing.T) {
	report := Analyze("x =​ 1\n", []string{RuleConfusable})

	if len(report.IssuesByRule[RuleConfusable]) != 1 {
		t.Errorf("zero-width space not detected")
	}
}

func TestAnalyze_RuleSelection(t *testing.T) {
	code := "print（'unclosed\n"

	full := Analyze(code, nil)
	if len(full.IssuesByRule) != len(ruleOrder) {
		t.Errorf("expected all %d rules to run, got %d", len(ruleOrder), len(full.IssuesByRule))
	}

	only := Analyze(code, []string{RuleQuotes})
	if len(only.IssuesByRule) != 1 {
		t.Errorf("expected only the quotes rule to run, got %v", only.IssuesByRule)
	}
	if _, ok := only.IssuesByRule[RuleFullWidth]; ok {
		t.Error("disabled rule still ran")
	}
}

func TestAnalyze_UnknownRuleIgnored(t *testing.T) {
	report := Analyze("x = 1\n", []string{"no_such_rule"})
	if report.TotalIssues != 0 || len(report.IssuesByRule) != 0 {
		t.Errorf("unknown rule produced output: %+v", report)
	}
}

func TestFormat_ListsIssuesWithPositions(t *testing.T) {
	report := Analyze("print（1）\n", nil)
	out := Format(report)

	if !strings.Contains(out, "FULL WIDTH") {
		t.Errorf("formatted output missing rule heading: %q", out)
	}
	if !strings.Contains(out, "Line 1") {
		t.Errorf("formatted output missing position: %q", out)
	}
}

func TestRules_CoversAllRegisteredRules(t *testing.T) {
	infos := Rules()
	if len(infos) != len(ruleOrder) {
		t.Fatalf("expected %d rule infos, got %d", len(ruleOrder), len(infos))
	}
	for i, info := range infos {
		if info.Name != ruleOrder[i] {
			t.Errorf("rule info %d out of order: %q", i, info.Name)
		}
		if info.Description == "" {
			t.Errorf("rule %q has no description", info.Name)
		}
	}
}
