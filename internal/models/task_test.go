package models

import "testing"

func TestActionForStatus(t *testing.T) {
	tests := []struct {
		status   string
		expected string
	}{
		{"draft", "Edit draft"},
		{"pending", "View draft"},
		{"approved", "Submit post"},
		{"denied", "View/edit draft"},
		{"live", "View post"},
		{"edit_required", "View draft"},

		// Case-insensitive: statuses arrive in mixed case from the
		// owner-side and request-side sources.
		{"Draft", "Edit draft"},
		{"PENDING", "View draft"},
		{"Approved", "Submit post"},
		{"LiVe", "View post"},

		// Unrecognized statuses fall back to the safe default.
		{"xyz", "View details"},
		{"payment_required", "View details"},
		{"", "View details"},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			result := ActionForStatus(tt.status)
			if result != tt.expected {
				t.Errorf("ActionForStatus(%q) = %q, want %q", tt.status, result, tt.expected)
			}
		})
	}
}

func TestStatusCategory(t *testing.T) {
	tests := []struct {
		status   string
		expected string
	}{
		{"approved", CategoryPositive},
		{"live", CategoryPositive},
		{"denied", CategoryNegative},
		{"draft", CategoryNeutral},
		{"pending", CategoryNeutral},
		{"edit_required", CategoryWarning},
		{"DENIED", CategoryNegative},
		{"xyz", CategoryDefault},
		{"", CategoryDefault},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			result := StatusCategory(tt.status)
			if result != tt.expected {
				t.Errorf("StatusCategory(%q) = %q, want %q", tt.status, result, tt.expected)
			}
		})
	}
}

func TestDisplayStatus(t *testing.T) {
	tests := []struct {
		status   string
		expected string
	}{
		{"pending", "Pending"},
		{"APPROVED", "Approved"},
		{"edit_required", "Edit_required"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := DisplayStatus(tt.status); got != tt.expected {
			t.Errorf("DisplayStatus(%q) = %q, want %q", tt.status, got, tt.expected)
		}
	}
}
