package stats

import (
	"github.com/jfandel/statkit/internal/telemetry"
	"github.com/jfandel/statkit/internal/uuid"
)

// idgen supplies modifier identifiers for telemetry
var idgen uuid.Generator = uuid.NewGoogleUUIDGenerator()

// StackFunc folds the next modifier amount into a priority group's running
// stack total
type StackFunc func(total, next float64) float64

// FinalFunc folds a priority group's stack total into the running result
type FinalFunc func(base, stackTotal float64) float64

// SumStack is the default StackFunc
func SumStack(total, next float64) float64 { return total + next }

// SumFinal is the default FinalFunc
func SumFinal(base, stackTotal float64) float64 { return base + stackTotal }

// ModifierTarget is the modifiable value a modifier is attached to
type ModifierTarget interface {
	Amount() float64
	SetAmount(amount float64) error
	AddModifier(m Modifier)
	RemoveModifier(m Modifier)
	HasModifier(m Modifier) bool
}

// Modifier is an atomic adjustment to a modifiable value. Modifiers carry
// identity, not value, semantics: two modifiers with identical fields are
// distinct, and containment checks compare identity.
type Modifier interface {
	// ID returns a unique identifier for telemetry
	ID() string

	// Target returns the value this modifier is attached to
	Target() ModifierTarget

	// Amount returns the modifier's contribution
	Amount() float64

	// Origin returns the opaque reference identifying where the modifier
	// came from; the engine never interprets it
	Origin() any

	// Priority determines order of application (lower = applied earlier)
	Priority() int

	// CalculateStack folds next into a priority group's running total
	CalculateStack(total, next float64) float64

	// CalculateFinal folds a group's stack total into the running result
	CalculateFinal(base, stackTotal float64) float64

	// Activate and Deactivate are lifecycle hooks invoked by the owning
	// value exactly once per add/remove transition. Redundant transitions
	// are diagnostic no-ops.
	Activate()
	Deactivate()
}

// BaseModifier provides common implementation for modifiers
type BaseModifier struct {
	id       string
	target   ModifierTarget
	amount   float64
	origin   any
	priority int
	stack    StackFunc
	final    FinalFunc
	active   bool
	sink     telemetry.Sink
}

// NewModifier creates a modifier with default sum stack/final semantics
func NewModifier(target ModifierTarget, amount float64, origin any, priority int) *BaseModifier {
	return &BaseModifier{
		id:       idgen.New(),
		target:   target,
		amount:   amount,
		origin:   origin,
		priority: priority,
		stack:    SumStack,
		final:    SumFinal,
	}
}

// WithStackFunc replaces the stack function (builder pattern)
func (m *BaseModifier) WithStackFunc(fn StackFunc) *BaseModifier {
	m.stack = fn
	return m
}

// WithFinalFunc replaces the final function (builder pattern)
func (m *BaseModifier) WithFinalFunc(fn FinalFunc) *BaseModifier {
	m.final = fn
	return m
}

// WithSink routes the modifier's diagnostics to sink (builder pattern)
func (m *BaseModifier) WithSink(sink telemetry.Sink) *BaseModifier {
	m.sink = sink
	return m
}

func (m *BaseModifier) ID() string             { return m.id }
func (m *BaseModifier) Target() ModifierTarget { return m.target }
func (m *BaseModifier) Amount() float64        { return m.amount }
func (m *BaseModifier) Origin() any            { return m.origin }
func (m *BaseModifier) Priority() int          { return m.priority }

// CalculateStack folds next into total using the stack function
func (m *BaseModifier) CalculateStack(total, next float64) float64 {
	return m.stack(total, next)
}

// CalculateFinal folds stackTotal into base using the final function
func (m *BaseModifier) CalculateFinal(base, stackTotal float64) float64 {
	return m.final(base, stackTotal)
}

// Activate marks the modifier active; redundant activation is a diagnostic
// no-op
func (m *BaseModifier) Activate() {
	if m.active {
		m.emit(telemetry.KindRedundantActivation)
		return
	}
	m.active = true
	m.emit(telemetry.KindModifierActivated)
}

// Deactivate marks the modifier inactive; redundant deactivation is a
// diagnostic no-op
func (m *BaseModifier) Deactivate() {
	if !m.active {
		m.emit(telemetry.KindRedundantDeactivation)
		return
	}
	m.active = false
}

func (m *BaseModifier) emit(kind telemetry.EventKind) {
	if m.sink == nil {
		return
	}
	m.sink.Emit(telemetry.Event{
		Kind:   kind,
		Fields: map[string]any{"modifier": m.id},
	})
}
