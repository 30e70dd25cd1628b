// Package statdefs stores stat definitions: the named templates (kind,
// base amount, bounds, preset modifiers) that the registry service
// materializes into live stats. The engine itself never touches storage.
package statdefs

import (
	"time"

	"github.com/jfandel/statkit/internal/errors"
)

// Kind selects which value variant backs the stat
type Kind string

const (
	KindPlain    Kind = "plain"
	KindConstant Kind = "constant"
	KindFloor    Kind = "floor"
	KindRange    Kind = "range"
	KindElastic  Kind = "elastic"
)

// ModifierDef is a preset modifier applied when the stat is materialized
type ModifierDef struct {
	Amount   float64 `json:"amount"`
	Priority int     `json:"priority"`
	Origin   string  `json:"origin,omitempty"`
}

// Definition is the serialized form of a stat template
type Definition struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Kind      Kind          `json:"kind"`
	Base      float64       `json:"base"`
	Min       float64       `json:"min,omitempty"`
	Max       float64       `json:"max,omitempty"`
	Modifiers []ModifierDef `json:"modifiers,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Validate checks the definition's internal consistency
func (d *Definition) Validate() error {
	if d.Name == "" {
		return errors.InvalidArgument("definition name is required")
	}
	switch d.Kind {
	case KindPlain, KindConstant, KindFloor, KindRange, KindElastic:
	default:
		return errors.InvalidArgumentf("unknown stat kind %q", d.Kind)
	}
	if (d.Kind == KindPlain || d.Kind == KindConstant) && len(d.Modifiers) > 0 {
		return errors.InvalidArgumentf("kind %q does not accept preset modifiers", d.Kind)
	}
	return nil
}
