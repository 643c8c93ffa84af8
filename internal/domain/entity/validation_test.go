package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequiredString(t *testing.T) {
	tests := []struct {
		label   string
		value   string
		want    string
		wantErr bool
	}{
		{"plain value", "Technology", "Technology", false},
		{"trims surrounding whitespace", "  Technology  ", "Technology", false},
		{"keeps interior whitespace", "World News", "World News", false},
		{"empty", "", "", true},
		{"spaces only", "    ", "", true},
		{"mixed whitespace", " \t\n ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := RequiredString("field", tt.value)

			if tt.wantErr {
				var vErr *ValidationError
				assert.ErrorAs(t, err, &vErr)
				assert.Equal(t, "field", vErr.Field)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
