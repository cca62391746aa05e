package textutil

import "testing"

func TestToRoman(t *testing.T) {
	tests := map[int]string{
		1:    "I",
		4:    "IV",
		9:    "IX",
		14:   "XIV",
		40:   "XL",
		90:   "XC",
		400:  "CD",
		1994: "MCMXCIV",
		2024: "MMXXIV",
		3999: "MMMCMXCIX",
		0:    "",
		-3:   "",
	}
	for n, want := range tests {
		if got := ToRoman(n); got != want {
			t.Fatalf("ToRoman(%d) = %q, want %q", n, got, want)
		}
	}
}
