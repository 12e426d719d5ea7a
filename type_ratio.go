package bookkeeping

import "fmt"

// Ratio is a dimensionless quotient, like the Engel coefficient.
type Ratio float64

func (r Ratio) Equal(q Ratio) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := r - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// Percent formats the ratio as a percentage with two decimals.
func (r Ratio) Percent() string {
	return fmt.Sprintf("%.2f%%", float64(r)*100)
}

func (r Ratio) String() string {
	return fmt.Sprintf("%.4f", float64(r))
}
