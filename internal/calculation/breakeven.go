package calculation

import (
	"fmt"

	"github.com/rpgo/investment-calculator/internal/domain"
)

// FindCrossover finds the first year in which series a moves from strictly
// below b to level with or above it. Every leg starts at the principal, so
// a leader that is ahead from year 1 on never crosses. The fraction is the
// linear position inside the crossing year where the two lines meet. It
// returns nil, nil when a never overtakes b.
func FindCrossover(leader, trailer string, a, b []domain.SeriesPoint) (*domain.Crossover, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("series length mismatch: %s has %d points, %s has %d", leader, len(a), trailer, len(b))
	}
	for i := 1; i < len(a); i++ {
		if a[i].Year != b[i].Year {
			return nil, fmt.Errorf("series year mismatch at index %d: %d vs %d", i, a[i].Year, b[i].Year)
		}
		prevDiff := a[i-1].Value - b[i-1].Value
		currDiff := a[i].Value - b[i].Value

		if prevDiff >= 0 || currDiff < 0 {
			continue
		}

		t := 1.0
		if denom := currDiff - prevDiff; denom != 0 {
			t = -prevDiff / denom
		}
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
		at := a[i-1].Value + (a[i].Value-a[i-1].Value)*t
		return &domain.Crossover{
			Leader:   leader,
			Trailer:  trailer,
			Year:     a[i].Year,
			Fraction: t,
			At:       RoundCurrency(at),
		}, nil
	}
	return nil, nil
}
