package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRandomString(t *testing.T) {
	testCases := []struct {
		name string
		size int
	}{
		{name: "size = 1", size: 1},
		{name: "size = 9", size: 9},
		{name: "size = 20", size: 20},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			str1 := NewRandomString(tc.size)
			str2 := NewRandomString(tc.size)

			assert.Len(t, str1, tc.size)
			assert.Len(t, str2, tc.size)

			// Two consecutive draws colliding at size >= 9 would
			// indicate a broken source.
			if tc.size >= 9 {
				assert.NotEqual(t, str1, str2)
			}
		})
	}
}
