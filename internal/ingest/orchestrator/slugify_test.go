package orchestrator

import "testing"

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"DevPost Inc.":    "devpost-inc",
		"MLH":             "mlh",
		"  Leading Space": "leading-space",
		"a---b":           "a-b",
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Errorf("slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
