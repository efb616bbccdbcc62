package poly

import (
	"fmt"
	"strings"
)

// String returns a human readable representation of p, highest degree first,
// such as "6x^2 + 1x^1 - 2". Zero terms are omitted and the zero polynomial is "0".
func (p *Polynomial[T]) String() string {

	if p.IsZero() {
		return "0"
	}

	var sb strings.Builder

	first := true
	for i := p.Degree(); i >= 0; i-- {

		c := p.coeffs[i]
		if c == 0 {
			continue
		}

		s := fmt.Sprint(c)

		switch {
		case first:
			sb.WriteString(s)
			first = false
		case c < 0:
			sb.WriteString(" - ")
			sb.WriteString(strings.TrimPrefix(s, "-"))
		default:
			sb.WriteString(" + ")
			sb.WriteString(s)
		}

		if i > 0 {
			fmt.Fprintf(&sb, "x^%d", i)
		}
	}

	return sb.String()
}
