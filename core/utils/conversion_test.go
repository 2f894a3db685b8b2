package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPosition(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		want   int
		wantOK bool
	}{
		{"Nil", nil, 0, false},
		{"Int", 3, 3, true},
		{"NegativeInt", -1, 0, false},
		{"Int64", int64(7), 7, true},
		{"Float", float64(12), 12, true},
		{"FractionalFloat", 1.5, 0, false},
		{"NegativeFloat", float64(-2), 0, false},
		{"JSONNumber", json.Number("4"), 4, true},
		{"String", " 9 ", 9, true},
		{"FloatString", "10.0", 10, true},
		{"Garbage", "abc", 0, false},
		{"Bool", true, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToPosition(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestToString(t *testing.T) {
	assert.Equal(t, "", ToString(nil))
	assert.Equal(t, "a.jpg", ToString("a.jpg"))
	assert.Equal(t, "1024", ToString(float64(1024)))
	assert.Equal(t, "1.25", ToString(1.25))
	assert.Equal(t, `{"a":1}`, ToString(map[string]any{"a": 1}))
	assert.Equal(t, `["x","y"]`, ToString([]any{"x", "y"}))
	assert.Equal(t, "true", ToString(true))
}
