package dash

import "fmt"

// PriceText formats a price in minor units: 1234500 -> "12345.00".
func PriceText(cents uint32) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

// ChangeText formats a signed day change in basis points: -150 -> "-1.50%".
func ChangeText(bp int32) string {
	sign := "+"
	if bp < 0 {
		sign = "-"
		bp = -bp
	}
	return fmt.Sprintf("%s%d.%02d%%", sign, bp/100, bp%100)
}

// TempText formats a temperature in whole degrees: -12 -> "-12C".
func TempText(c int16) string {
	return fmt.Sprintf("%dC", c)
}
