package bounds

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Parse reads a range written as "Range[a,b]", "[a,b]" or "a,b"
func Parse(s string) (Range, error) {
	text := strings.TrimSpace(s)
	if rest := strings.TrimPrefix(text, "Range"); strings.HasPrefix(rest, "[") {
		text = rest
	}
	if strings.HasPrefix(text, "[") {
		if !strings.HasSuffix(text, "]") {
			return Range{}, errors.Errorf("parsing range %q: missing closing bracket", s)
		}
		text = text[1 : len(text)-1]
	}

	parts := strings.Split(text, ",")
	if len(parts) != 2 {
		return Range{}, errors.Errorf("parsing range %q: want two comma separated bounds", s)
	}

	lower, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Range{}, errors.Wrapf(err, "parsing lower bound of %q", s)
	}
	upper, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Range{}, errors.Wrapf(err, "parsing upper bound of %q", s)
	}

	return New(lower, upper)
}
