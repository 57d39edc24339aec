package calc

import "strconv"

// Round rounds v to the given number of decimal places using fixed-point
// formatting, which also drops binary representation noise such as the tail
// of 0.30000000000000004.
func Round(v float64, places int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	if r == 0 {
		return 0 // drop the sign of -0
	}
	return r
}

// FormatNumber prints v in its shortest decimal form without an exponent, so
// the text can be fed back into Evaluate when chaining.
func FormatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
