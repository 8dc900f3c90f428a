package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldsEqual(t *testing.T) {
	base := Fields{Key: "k", Default: "5", Type: "Integer", Description: "desc"}

	tests := []struct {
		name  string
		other Fields
		equal bool
	}{
		{"identical", Fields{Key: "k", Default: "5", Type: "Integer", Description: "desc"}, true},
		{"different key", Fields{Key: "k2", Default: "5", Type: "Integer", Description: "desc"}, false},
		{"different default", Fields{Key: "k", Default: "6", Type: "Integer", Description: "desc"}, false},
		{"different type", Fields{Key: "k", Default: "5", Type: "Long", Description: "desc"}, false},
		{"different description", Fields{Key: "k", Default: "5", Type: "Integer", Description: "other"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, base.Equal(tt.other))
			// Equality is symmetric
			assert.Equal(t, tt.equal, tt.other.Equal(base))
		})
	}

	// Reflexivity
	assert.True(t, base.Equal(base))
}

func TestFieldsEqualIgnoresOrigin(t *testing.T) {
	a := Declared{
		Fields: Fields{Key: "k", Default: "5", Type: "Integer", Description: "desc"},
		Origin: "CoreOptions",
	}
	b := Declared{
		Fields: Fields{Key: "k", Default: "5", Type: "Integer", Description: "desc"},
		Origin: "NetworkOptions",
	}

	assert.True(t, a.Fields.Equal(b.Fields))
}

func TestFieldsMatchesIgnoresType(t *testing.T) {
	declared := Fields{Key: "k", Default: "5", Type: "int", Description: "desc"}

	// Documentation is allowed to render the type differently.
	documented := Fields{Key: "k", Default: "5", Type: "string", Description: "desc"}
	assert.True(t, declared.Matches(documented))

	// Default and description still have to agree exactly.
	assert.False(t, declared.Matches(Fields{Key: "k", Default: "6", Type: "int", Description: "desc"}))
	assert.False(t, declared.Matches(Fields{Key: "k", Default: "5", Type: "int", Description: "old desc"}))
}

func TestDeclaredInSection(t *testing.T) {
	d := Declared{
		Fields:   Fields{Key: "k"},
		Sections: []string{"common", "network"},
	}

	assert.True(t, d.InSection("common"))
	assert.True(t, d.InSection("network"))
	assert.False(t, d.InSection("state"))

	none := Declared{Fields: Fields{Key: "k2"}}
	assert.False(t, none.InSection("common"))
}
