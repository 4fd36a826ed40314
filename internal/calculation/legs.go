package calculation

import "math"

// The three legs are independent. Each returns unrounded balances for
// years 0..years; a negative horizon yields no points.

// tbillLeg compounds the whole principal annually on the prior year's balance.
func tbillLeg(principal, yieldPct float64, years int) []float64 {
	if years < 0 {
		return nil
	}
	values := make([]float64, years+1)
	value := principal
	for year := 0; year <= years; year++ {
		if year > 0 {
			value = value * (1 + yieldPct/100)
		}
		values[year] = value
	}
	return values
}

// stockLeg tracks two balances. price compounds at the appreciation rate.
// withDiv is each year's price balance plus one year of after-tax dividend
// earned on the prior withDiv balance; dividends are added as cash, they do
// not themselves ride the price appreciation.
func stockLeg(principal, dividendPct, appreciationPct float64, years int) (withDiv, price []float64) {
	if years < 0 {
		return nil, nil
	}
	withDiv = make([]float64, years+1)
	price = make([]float64, years+1)
	priceValue := principal
	divValue := principal
	for year := 0; year <= years; year++ {
		if year > 0 {
			priceValue = priceValue * (1 + appreciationPct/100)
			yearly := dividendIncome(divValue, dividendPct)
			divValue = priceValue + yearly
		}
		withDiv[year] = divValue
		price[year] = priceValue
	}
	return withDiv, price
}

// mixedLeg recomputes every year from time zero: both sub-amounts compound
// exponentially while the dividend term accrues linearly in the year count.
func mixedLeg(principal, tbillAmount, stockAmount, tbillPct, dividendPct, appreciationPct float64, years int) []float64 {
	if years < 0 {
		return nil
	}
	values := make([]float64, years+1)
	values[0] = principal
	for year := 1; year <= years; year++ {
		y := float64(year)
		tbill := tbillAmount * math.Pow(1+tbillPct/100, y)
		stock := stockAmount * math.Pow(1+appreciationPct/100, y)
		dividends := dividendIncome(stockAmount, dividendPct) * y
		values[year] = tbill + stock + dividends
	}
	return values
}

// splitPrincipal divides principal into the mixed portfolio's T-Bill and stock amounts.
func splitPrincipal(principal, tbillSharePct float64) (tbillAmount, stockAmount float64) {
	return principal * (tbillSharePct / 100), principal * ((100 - tbillSharePct) / 100)
}
