package stats

// FloatingValue is a SimpleValue carrying an ordered modifier list. The
// base amount is externally driven; this level holds no derivation logic,
// so adding or removing a modifier does not recalculate anything here.
// Insertion order is preserved and duplicate instances are allowed —
// containment is by identity.
type FloatingValue struct {
	SimpleValue
	modifiers []Modifier
}

// NewFloatingValue creates a modifiable cell holding initial
func NewFloatingValue(initial float64) *FloatingValue {
	return &FloatingValue{SimpleValue: SimpleValue{StatValue: StatValue{amount: initial}}}
}

// AddModifier appends m and activates it
func (v *FloatingValue) AddModifier(m Modifier) {
	v.appendModifier(m)
}

// RemoveModifier deactivates m and removes it by identity; silent no-op
// when m is not present
func (v *FloatingValue) RemoveModifier(m Modifier) {
	v.dropModifier(m)
}

// HasModifier reports whether m is attached, by identity
func (v *FloatingValue) HasModifier(m Modifier) bool {
	for _, existing := range v.modifiers {
		if existing == m {
			return true
		}
	}
	return false
}

// Modifiers returns a copy of the modifier list in insertion order
func (v *FloatingValue) Modifiers() []Modifier {
	out := make([]Modifier, len(v.modifiers))
	copy(out, v.modifiers)
	return out
}

func (v *FloatingValue) appendModifier(m Modifier) {
	v.modifiers = append(v.modifiers, m)
	m.Activate()
}

func (v *FloatingValue) dropModifier(m Modifier) bool {
	for i, existing := range v.modifiers {
		if existing == m {
			m.Deactivate()
			v.modifiers = append(v.modifiers[:i], v.modifiers[i+1:]...)
			return true
		}
	}
	return false
}
