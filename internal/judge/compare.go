package judge

import (
	"strings"

	"github.com/minijudge/minijudge/internal/domain"
)

// missingLine is the sentinel recorded for positions past a side's last line.
const missingLine = "<missing>"

// Compare diffs actual program output against the expected text. Both sides
// are trimmed of surrounding whitespace, then compared line by line over the
// longer of the two sequences. The match percentage is a coarse positional
// similarity, not a semantic one.
func Compare(actual, expected string) domain.ComparisonResult {
	actualTrimmed := strings.TrimSpace(actual)
	expectedTrimmed := strings.TrimSpace(expected)

	actualLines := strings.Split(actualTrimmed, "\n")
	expectedLines := strings.Split(expectedTrimmed, "\n")

	result := domain.ComparisonResult{
		ExactMatch: actualTrimmed == expectedTrimmed,
	}

	maxLines := len(actualLines)
	if len(expectedLines) > maxLines {
		maxLines = len(expectedLines)
	}

	for i := 0; i < maxLines; i++ {
		actualLine := missingLine
		if i < len(actualLines) {
			actualLine = actualLines[i]
		}
		expectedLine := missingLine
		if i < len(expectedLines) {
			expectedLine = expectedLines[i]
		}

		if actualLine != expectedLine {
			result.LineDiffs = append(result.LineDiffs, domain.LineDiff{
				Line:     i + 1,
				Expected: expectedLine,
				Actual:   actualLine,
			})
		}
	}

	// strings.Split never yields an empty slice, so maxLines is at least 1
	// and the division is safe even for two empty outputs.
	result.MatchPercentage = (1 - float64(len(result.LineDiffs))/float64(maxLines)) * 100

	return result
}
