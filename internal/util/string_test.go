package util

import "testing"

func TestTruncateString(t *testing.T) {
	if got := TruncateString("short", 10); got != "short" {
		t.Errorf("got %q", got)
	}
	if got := TruncateString("abcdefghij", 4); got != "abcd..." {
		t.Errorf("got %q", got)
	}
}

func TestFirstToken(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"vegan snack startup", "vegan"},
		{"  leading spaces", "leading"},
		{"single", "single"},
		{"", ""},
		{"   ", ""},
		{"tab\tsplit", "tab"},
	}

	for _, tc := range cases {
		if got := FirstToken(tc.in); got != tc.want {
			t.Errorf("FirstToken(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
