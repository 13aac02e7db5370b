package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name string
		want uint64
		ok   bool
	}{
		{"v1", 1, true},
		{"v23", 23, true},
		{"v007", 7, true},
		{"v", 0, false},
		{"V1", 0, false},
		{"version1", 0, false},
		{"v1.0", 0, false},
		{"v-1", 0, false},
		{"v1\n", 0, false},
		{"v99999999999999999999999", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseVersion(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, Kind(""), KindOf(nil))
	assert.Equal(t, KindMissingField, KindOf(&MissingFieldError{Path: "x", Field: "version"}))
	assert.Equal(t, KindEmptyDirectory, KindOf(&FileValidationError{Err: &EmptyDirectoryError{}}))
	assert.Equal(t, KindUnknown, KindOf(assert.AnError))
}
