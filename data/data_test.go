package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryFromPath(t *testing.T) {
	defaults := Query{Fuel: DefaultFuel, City: DefaultCity}

	tests := []struct {
		path string
		want Query
		ok   bool
	}{
		{"/", Query{}, false},
		{"", Query{}, false},
		{"//", Query{}, false},
		{"/diesel", Query{Fuel: "diesel", City: "bangalore"}, true},
		{"/diesel/", Query{Fuel: "diesel", City: "bangalore"}, true},
		{"/diesel/chennai", Query{Fuel: "diesel", City: "chennai"}, true},
		{"/diesel//chennai", Query{Fuel: "diesel", City: "chennai"}, true},
		{"/cng/delhi/extra/segments", Query{Fuel: "cng", City: "delhi"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := QueryFromPath(tt.path, defaults)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQueryFromPathEmptyDefaults(t *testing.T) {
	got, ok := QueryFromPath("/lpg", Query{})
	assert.True(t, ok)
	assert.Equal(t, Query{Fuel: "lpg", City: DefaultCity}, got)
}
