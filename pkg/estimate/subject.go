package estimate

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const maxShortSubject = 50

var (
	percentPattern  = regexp.MustCompile(`\d+%`)  //nolint: gochecknoglobals
	currencyPattern = regexp.MustCompile(`\$\d+`) //nolint: gochecknoglobals
)

// SubjectBoost derives an open-rate multiplier from literal properties of a
// subject line. Each rule multiplies independently:
//   - 1 to 50 characters: x1.10
//   - contains '!' or '?': x1.05
//   - mentions a percentage ("20%") or a dollar amount ("$5"): x1.08
//
// An empty subject yields 1.
func SubjectBoost(subject string) float64 {
	boost := 1.0
	if n := utf8.RuneCountInString(subject); n > 0 && n <= maxShortSubject {
		boost *= 1.10
	}
	if strings.ContainsAny(subject, "!?") {
		boost *= 1.05
	}
	if percentPattern.MatchString(subject) || currencyPattern.MatchString(subject) {
		boost *= 1.08
	}

	return boost
}
