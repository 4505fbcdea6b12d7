package domain

import (
	"testing"
)

func TestStatusColor(t *testing.T) {
	cases := []struct {
		status string
		want   string
	}{
		{StatusFresh, "green"},
		{StatusNearExpiry, "orange"},
		{StatusDamaged, "red"},
		{"Expired", "grey"},
		{"", "grey"},
		{"fresh", "grey"}, // statuses are case sensitive
	}

	for _, tc := range cases {
		if got := StatusColor(tc.status); got != tc.want {
			t.Errorf("StatusColor(%q) = %q, want %q", tc.status, got, tc.want)
		}
	}
}
