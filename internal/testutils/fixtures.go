package testutils

import (
	"github.com/jfandel/statkit/internal/repositories/statdefs"
)

// CreateTestRangeDefinition creates a range-kind definition for tests
func CreateTestRangeDefinition(id, name string, base, min, max float64) *statdefs.Definition {
	return &statdefs.Definition{
		ID:   id,
		Name: name,
		Kind: statdefs.KindRange,
		Base: base,
		Min:  min,
		Max:  max,
	}
}

// CreateTestElasticDefinition creates an elastic-kind definition with one
// preset modifier
func CreateTestElasticDefinition(id, name string, base float64) *statdefs.Definition {
	return &statdefs.Definition{
		ID:   id,
		Name: name,
		Kind: statdefs.KindElastic,
		Base: base,
		Modifiers: []statdefs.ModifierDef{
			{Amount: 2, Priority: 0, Origin: "test_bonus"},
		},
	}
}
