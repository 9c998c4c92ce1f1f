package countries

import "testing"

func TestCode(t *testing.T) {
	cases := []struct {
		name string
		code string
		ok   bool
	}{
		{"Japan", "jp", true},
		{"japan", "jp", true},
		{"  Japan  ", "jp", true},
		{"United_States", "us", true},
		{"united states of america", "us", true},
		{"Bosnia_and_Herzegovina", "ba", true},
		{"New Zealand", "nz", true},
		{"Atlantis", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		code, ok := Code(tc.name)
		if ok != tc.ok || code != tc.code {
			t.Errorf("Code(%q) = %q, %v; want %q, %v", tc.name, code, ok, tc.code, tc.ok)
		}
	}
}
