package analyzer

import "fmt"

// RuleFullWidth flags full-width symbols that should be half-width in code.
const RuleFullWidth = "full_width"

// fullWidthMappings maps common full-width symbols to their half-width forms.
var fullWidthMappings = map[rune]string{
	'（': "(",
	'）': ")",
	'｛': "{",
	'｝': "}",
	'［': "[",
	'］': "]",
	'；': ";",
	'：': ":",
	'，': ",",
	'．': ".",
	'！': "!",
	'？': "?",
	'＝': "=",
	'＋': "+",
	'－': "-",
	'＊': "*",
	'／': "/",
	'＜': "<",
	'＞': ">",
	'＆': "&",
	'｜': "|",
	'＾': "^",
	'％': "%",
	'＄': "$",
	'＃': "#",
	'＠': "@",
	'　': " ", // full-width space
}

func checkFullWidth(code string) []Issue {
	var issues []Issue

	for lineNum, line := range splitLines(code) {
		col := 0
		for _, char := range line {
			col++
			replacement, ok := fullWidthMappings[char]
			if !ok {
				continue
			}
			issues = append(issues, Issue{
				Rule:       RuleFullWidth,
				Line:       lineNum + 1,
				Column:     col,
				Char:       string(char),
				Suggestion: replacement,
				Message:    fmt.Sprintf("Full-width symbol %q found, should use %q", string(char), replacement),
			})
		}
	}

	return issues
}
