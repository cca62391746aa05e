package textutil

import "strings"

var romanSymbols = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// ToRoman converts n to Roman numerals using the greedy subtractive form.
// Values of zero or below have no Roman form and yield "". Values above
// 3999 repeat M as needed.
func ToRoman(n int) string {
	var b strings.Builder
	for _, s := range romanSymbols {
		for n >= s.value {
			b.WriteString(s.symbol)
			n -= s.value
		}
	}
	return b.String()
}
