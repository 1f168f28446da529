// Package validate contains the stateless checks applied to directory
// submissions before they reach the backing store. All errors are
// sentinels from the common package, matched with errors.Is.
package validate

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrijs2005/classhub/internal/common"
)

// Field length limits, in characters.
const (
	NameMinLen   = 2
	NameMaxLen   = 50
	HandleMinLen = 3
	HandleMaxLen = 100
)

var (
	namePattern   = regexp.MustCompile(`^[A-Za-z \-'.]+$`)
	handlePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)
)

// sanitize trims the raw value, strips characters that are never legal in
// any field, and truncates to max characters. Check ordering downstream
// depends on this running first: a value that is empty after stripping
// must surface as an "empty" error, not as "invalid characters".
func sanitize(raw string, max int) string {
	s := strings.TrimSpace(raw)
	s = strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', '"', '\'', '&':
			return -1
		}
		return r
	}, s)
	if runes := []rune(s); len(runes) > max {
		s = string(runes[:max])
	}
	return s
}

// Name validates a proposed display name and returns the cleaned value.
func Name(raw string) (string, error) {
	s := sanitize(raw, NameMaxLen)
	n := utf8.RuneCountInString(s)
	switch {
	case s == "":
		return "", common.ErrNameEmpty
	case n < NameMinLen:
		return "", common.ErrNameTooShort
	case n > NameMaxLen:
		// unreachable after sanitize, kept to guard callers passing
		// pre-cleaned input around the truncation
		return "", common.ErrNameTooLong
	case !namePattern.MatchString(s):
		return "", common.ErrNameInvalidChars
	}
	return s, nil
}

// Handle validates a proposed profile handle and returns the cleaned
// value with its original case preserved. Uniqueness comparisons happen
// elsewhere and are case-insensitive.
func Handle(raw string) (string, error) {
	s := sanitize(raw, HandleMaxLen)
	n := utf8.RuneCountInString(s)
	switch {
	case s == "":
		return "", common.ErrHandleEmpty
	case strings.ContainsFunc(s, unicode.IsSpace):
		return "", common.ErrHandleHasSpace
	case !handlePattern.MatchString(s):
		return "", common.ErrHandleInvalidChars
	case n < HandleMinLen:
		return "", common.ErrHandleTooShort
	case n > HandleMaxLen:
		return "", common.ErrHandleTooLong
	}
	return s, nil
}
