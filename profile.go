package bookkeeping

import "fmt"

// Profile is a set of indicators with their interpretation.
type Profile struct {
	Indicators Indicators
	Analysis   []string
}

// EconomicProfile computes the indicators of records and interprets them.
// See ComputeIndicators for keywords and ErrInsufficientData.
func EconomicProfile(records []Record, keywords ...string) (*Profile, error) {
	ind, err := ComputeIndicators(records, keywords...)
	if err != nil {
		return nil, err
	}
	return &Profile{Indicators: *ind, Analysis: analyse(*ind)}, nil
}

// analyse returns the Engel, APC and MPC commentaries, in that order.
func analyse(ind Indicators) []string {
	var engel string
	switch e := ind.Engel; {
	case e > 0.59:
		engel = "Engel coefficient is %s, a poverty level. Food takes a large share of total spending, consider keeping food expenses under control."
	case e > 0.5:
		engel = "Engel coefficient is %s, a subsistence level. Food takes a high share of spending, the standard of living could improve."
	case e > 0.4:
		engel = "Engel coefficient is %s, a moderately well-off level. The standard of living is stable."
	case e > 0.3:
		engel = "Engel coefficient is %s, a well-off level. The quality of life is high."
	default:
		engel = "Engel coefficient is %s, the most affluent level. The quality of life is very high."
	}

	var apc string
	switch a := ind.APC; {
	case a > 1:
		apc = "Average propensity to consume is %s: spending exceeds income, there is a risk of deficit."
	case a > 0.8:
		apc = "Average propensity to consume is %s: a high consumption ratio, savings capacity is limited."
	case a > 0.5:
		apc = "Average propensity to consume is %s: consumption and savings are reasonably balanced."
	default:
		apc = "Average propensity to consume is %s: a low consumption ratio, savings capacity is strong."
	}

	return []string{
		fmt.Sprintf(engel, ind.Engel.Percent()),
		fmt.Sprintf(apc, ind.APC.Percent()),
		fmt.Sprintf("Marginal propensity to consume is %s: each additional unit of income yields %.2f units of additional spending.",
			ind.MPC.Percent(), float64(ind.MPC)),
	}
}
