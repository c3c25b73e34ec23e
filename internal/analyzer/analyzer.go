// Package analyzer provides pre-compile hints for common source mistakes.
// It is a pure text scanner: no shared state, no part in the judge pipeline's
// failure model.
package analyzer

import (
	"fmt"
	"strings"
)

// Issue is one hint produced by a rule. Line and Column are 1-based.
type Issue struct {
	Rule       string `json:"rule"`
	Line       int    `json:"line"`
	Column     int    `json:"column"`
	Char       string `json:"char,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
	Message    string `json:"message"`
}

// RuleInfo describes one rule for discovery endpoints.
type RuleInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Examples    []string `json:"examples"`
}

// Report aggregates the issues of one analysis pass.
type Report struct {
	TotalIssues  int                `json:"total_issues"`
	IssuesByRule map[string][]Issue `json:"issues_by_rule"`
	Summary      string             `json:"summary"`
}

type ruleFunc func(code string) []Issue

// ruleOrder fixes the evaluation and reporting order of the rules.
var ruleOrder = []string{
	RuleFullWidth,
	RuleBrackets,
	RuleQuotes,
	RuleConfusable,
}

var rules = map[string]ruleFunc{
	RuleFullWidth:  checkFullWidth,
	RuleBrackets:   checkBrackets,
	RuleQuotes:     checkQuotes,
	RuleConfusable: checkConfusable,
}

// Rules lists the available rules in evaluation order.
func Rules() []RuleInfo {
	return []RuleInfo{
		{
			Name:        RuleFullWidth,
			Description: "Detects full-width symbols that should be half-width",
			Examples:    []string{"（", "）", "；", "，"},
		},
		{
			Name:        RuleBrackets,
			Description: "Detects unmatched or mismatched brackets",
			Examples:    []string{"Unclosed (", "Mismatched [}"},
		},
		{
			Name:        RuleQuotes,
			Description: "Detects unclosed string quotes",
			Examples:    []string{"Unclosed '", `Unclosed "`},
		},
		{
			Name:        RuleConfusable,
			Description: "Detects visually similar characters that might cause errors",
			Examples:    []string{"Cyrillic а vs Latin a", "Greek ο vs Latin o"},
		},
	}
}

// Analyze runs the enabled rules over the source text. A nil or empty rule
// set enables every rule; unknown rule names are ignored. The enabled set is
// an explicit argument so callers, not ambient globals, decide what runs.
func Analyze(code string, enabled []string) Report {
	if len(enabled) == 0 {
		enabled = ruleOrder
	}

	want := make(map[string]bool, len(enabled))
	for _, name := range enabled {
		want[name] = true
	}

	report := Report{IssuesByRule: make(map[string][]Issue)}
	for _, name := range ruleOrder {
		if !want[name] {
			continue
		}
		issues := rules[name](code)
		report.IssuesByRule[name] = issues
		report.TotalIssues += len(issues)
	}

	report.Summary = summarize(report)
	return report
}

func summarize(r Report) string {
	if r.TotalIssues == 0 {
		return "No issues found! Code looks good."
	}

	parts := []string{fmt.Sprintf("Found %d issue(s):", r.TotalIssues)}
	for _, name := range ruleOrder {
		if issues := r.IssuesByRule[name]; len(issues) > 0 {
			parts = append(parts, fmt.Sprintf("  - %s: %d issue(s)", name, len(issues)))
		}
	}
	return strings.Join(parts, "\n")
}

// Format renders a report as human-readable text for display.
func Format(r Report) string {
	if r.TotalIssues == 0 {
		return "No issues found! Code looks good."
	}

	out := []string{fmt.Sprintf("Found %d issue(s):", r.TotalIssues)}
	for _, name := range ruleOrder {
		issues := r.IssuesByRule[name]
		if len(issues) == 0 {
			continue
		}

		out = append(out, "", strings.ToUpper(strings.ReplaceAll(name, "_", " "))+":")
		for _, issue := range issues {
			out = append(out, fmt.Sprintf("  Line %d, Column %d: %s", issue.Line, issue.Column, issue.Message))
			if issue.Suggestion != "" {
				out = append(out, fmt.Sprintf("    Suggested fix: use %q", issue.Suggestion))
			}
		}
	}
	return strings.Join(out, "\n")
}
