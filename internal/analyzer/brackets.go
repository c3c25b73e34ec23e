package analyzer

import (
	"fmt"
	"strings"
)

// RuleBrackets flags unmatched or mismatched brackets outside string literals.
const RuleBrackets = "brackets"

var bracketPairs = map[rune]rune{
	'(': ')',
	'[': ']',
	'{': '}',
}

type openBracket struct {
	char rune
	line int
	col  int
}

func checkBrackets(code string) []Issue {
	var issues []Issue
	var stack []openBracket

	inSingleQuote := false
	inDoubleQuote := false

	for lineNum, line := range splitLines(code) {
		runes := []rune(line)
		for i := 0; i < len(runes); i++ {
			// Skip the character following an escape.
			if i > 0 && runes[i-1] == '\\' {
				continue
			}

			char := runes[i]
			if char == '\'' && !inDoubleQuote {
				inSingleQuote = !inSingleQuote
			} else if char == '"' && !inSingleQuote {
				inDoubleQuote = !inDoubleQuote
			}

			if inSingleQuote || inDoubleQuote {
				continue
			}

			if _, isOpen := bracketPairs[char]; isOpen {
				stack = append(stack, openBracket{char: char, line: lineNum + 1, col: i + 1})
				continue
			}

			if !isClosingBracket(char) {
				continue
			}

			if len(stack) == 0 {
				issues = append(issues, Issue{
					Rule:    RuleBrackets,
					Line:    lineNum + 1,
					Column:  i + 1,
					Char:    string(char),
					Message: fmt.Sprintf("Unmatched closing bracket %q", string(char)),
				})
				continue
			}

			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if expected := bracketPairs[top.char]; char != expected {
				issues = append(issues, Issue{
					Rule:   RuleBrackets,
					Line:   lineNum + 1,
					Column: i + 1,
					Char:   string(char),
					Message: fmt.Sprintf("Mismatched bracket: expected %q but found %q",
						string(expected), string(char)),
				})
				// The opener is still unclosed.
				stack = append(stack, top)
			}
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		issues = append(issues, Issue{
			Rule:       RuleBrackets,
			Line:       top.line,
			Column:     top.col,
			Char:       string(top.char),
			Suggestion: string(bracketPairs[top.char]),
			Message:    fmt.Sprintf("Unclosed opening bracket %q", string(top.char)),
		})
	}

	return issues
}

func isClosingBracket(char rune) bool {
	for _, closing := range bracketPairs {
		if char == closing {
			return true
		}
	}
	return false
}

// splitLines splits source text on newlines without dropping empty lines.
func splitLines(code string) []string {
	return strings.Split(code, "\n")
}
