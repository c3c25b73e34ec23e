package analyzer

// RuleQuotes flags single or double quotes left unclosed at end of input.
const RuleQuotes = "quotes"

type quotePos struct {
	line int
	col  int
}

func checkQuotes(code string) []Issue {
	var singleOpen *quotePos
	var doubleOpen *quotePos

	for lineNum, line := range splitLines(code) {
		runes := []rune(line)
		for i := 0; i < len(runes); i++ {
			if i > 0 && runes[i-1] == '\\' {
				continue
			}

			switch runes[i] {
			case '\'':
				if doubleOpen != nil {
					continue // inside a double-quoted string
				}
				if singleOpen == nil {
					singleOpen = &quotePos{line: lineNum + 1, col: i + 1}
				} else {
					singleOpen = nil
				}
			case '"':
				if singleOpen != nil {
					continue
				}
				if doubleOpen == nil {
					doubleOpen = &quotePos{line: lineNum + 1, col: i + 1}
				} else {
					doubleOpen = nil
				}
			}
		}
	}

	var issues []Issue
	if singleOpen != nil {
		issues = append(issues, Issue{
			Rule:    RuleQuotes,
			Line:    singleOpen.line,
			Column:  singleOpen.col,
			Char:    "'",
			Message: "Unclosed single quote",
		})
	}
	if doubleOpen != nil {
		issues = append(issues, Issue{
			Rule:    RuleQuotes,
			Line:    doubleOpen.line,
			Column:  doubleOpen.col,
			Char:    `"`,
			Message: "Unclosed double quote",
		})
	}
	return issues
}
