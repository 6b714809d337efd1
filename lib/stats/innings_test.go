package stats

import "testing"

func TestParseInnings(t *testing.T) {
	testCases := []struct {
		input    string
		expected float64
	}{
		{"0", 0.0},
		{"42", 42.0},
		{"10 1/3", 10.33},
		{"10 2/3", 10.67},
		{"180 2/3", 180.67},
		{"0 1/3", 0.33},
		{"", 0.0},
		{"   ", 0.0},
		{"abc", 0.0},
		// an unknown fraction token contributes nothing
		{"7 3/4", 7.0},
	}

	for _, test := range testCases {
		got := ParseInnings(test.input)
		if got != test.expected {
			t.Fatalf("ParseInnings(%q) = %v, expected %v", test.input, got, test.expected)
		}
	}
}
