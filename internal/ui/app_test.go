package ui

import (
	"reflect"
	"testing"
)

func TestSplitSearchTerm(t *testing.T) {
	tests := []struct {
		term     string
		wantText string
		wantTags []string
	}{
		{"tomato", "tomato", nil},
		{"tag:herb", "", []string{"herb"}},
		{"sun tag:herb tag:summer", "sun", []string{"herb", "summer"}},
		{"tag:", "tag:", nil}, // empty tag token stays free text
		{"  basil   leaf  ", "basil leaf", nil},
		{"", "", nil},
	}
	for _, tt := range tests {
		text, tags := splitSearchTerm(tt.term)
		if text != tt.wantText {
			t.Errorf("splitSearchTerm(%q) text = %q, want %q", tt.term, text, tt.wantText)
		}
		if !reflect.DeepEqual(tags, tt.wantTags) {
			t.Errorf("splitSearchTerm(%q) tags = %v, want %v", tt.term, tags, tt.wantTags)
		}
	}
}
