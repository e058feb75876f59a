package app

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	valid "github.com/asaskevich/govalidator"
)

var (
	errExpanderInvalidAmountOfRangeParts = errors.New("invalid number range")
	errExpanderInvalidRangeType          = errors.New("not a valid number range")
)

var bracePattern = regexp.MustCompile(`\{([a-zA-Z0-9,-.]+)\}`)

// Expander turns a wordlist entry with brace patterns into concrete path
// segments, e.g. "v{1-3}" into v1, v2, v3 and "{a,b}" into a, b. Entries
// without a pattern pass through untouched.
type Expander struct{}

func NewExpander() Expander {
	return Expander{}
}

func (e Expander) Expand(entry string) ([]string, error) {
	if !bracePattern.MatchString(entry) {
		return []string{entry}, nil
	}

	segments := []string{}
	matches := bracePattern.FindAllStringSubmatch(entry, -1)
	match := matches[0]
	parts := strings.Split(match[1], ",")
	for _, part := range parts {
		if !strings.Contains(part, "-") {
			if len(matches) == 1 {
				segments = append(
					segments,
					strings.Replace(entry, match[0], part, 1),
				)
			} else {
				subsegments, err := e.Expand(
					strings.Replace(entry, match[0], part, 1),
				)
				if err != nil {
					return nil, err
				}

				segments = append(
					segments,
					subsegments...,
				)
			}

			continue
		}

		first, second, err := e.parseRange(part)
		if err != nil {
			return []string{}, err
		}

		for i := first; i <= second; i++ {
			replaced := strings.Replace(entry, match[0], strconv.FormatInt(i, 10), 1)
			if len(matches) == 1 {
				segments = append(segments, replaced)

				continue
			}

			subsegments, err := e.Expand(replaced)
			if err != nil {
				return nil, err
			}

			segments = append(segments, subsegments...)
		}
	}

	return segments, nil
}

// normalizeRangeParts folds the empty fragments a negative bound leaves
// behind after splitting on "-", so "-2-1" becomes ["-2", "1"].
func normalizeRangeParts(rangeParts []string) []string {
	if len(rangeParts) > 2 && rangeParts[0] == "" {
		rangeParts = append([]string{"-" + rangeParts[1]}, rangeParts[2:]...)
	}
	if len(rangeParts) > 2 && rangeParts[1] == "" {
		rangeParts = []string{rangeParts[0], "-" + rangeParts[2]}
	}

	return rangeParts
}

func (Expander) parseRange(part string) (int64, int64, error) {
	rangeParts := normalizeRangeParts(strings.Split(part, "-"))
	if len(rangeParts) != 2 {
		return 0, 0, fmt.Errorf("%q: number of elements != 2, is %d: %w", part, len(rangeParts), errExpanderInvalidAmountOfRangeParts)
	}

	if !valid.IsInt(rangeParts[0]) || !valid.IsInt(rangeParts[1]) {
		return 0, 0, fmt.Errorf("%q: %w", part, errExpanderInvalidRangeType)
	}

	first, _ := strconv.ParseInt(rangeParts[0], 10, 64)
	second, _ := strconv.ParseInt(rangeParts[1], 10, 64)
	if second < first {
		return 0, 0, fmt.Errorf("%q: first number cannot be bigger than second number: %w", part, errExpanderInvalidRangeType)
	}

	return first, second, nil
}
