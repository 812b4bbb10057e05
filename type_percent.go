package traderbook

import "fmt"

// Percent represents a percentage value, e.g. 20.0 for 20%.
type Percent float64

// String returns the string representation of the percent value.
func (p Percent) String() string { return fmt.Sprintf("%.2f%%", float64(p)) }

// SignedString returns the string representation of the percent value with a sign.
// 0 is represented as "-".
func (p Percent) SignedString() string {
	if p == 0 {
		return "-"
	}
	return fmt.Sprintf("%+.2f%%", float64(p))
}
