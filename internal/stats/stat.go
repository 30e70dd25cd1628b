package stats

// NamedStat is a named composite pairing an amount-bearing value with
// optional bound values
type NamedStat interface {
	Name() string
	Value() Value

	// InitConstraints wires the bound values into the current value's
	// constraint chain. Called once, after every participant value
	// exists; the System constructors do this.
	InitConstraints()
}

// Stat is a named value with no bounds
type Stat struct {
	name    string
	system  *System
	current Value
}

// Name returns the stat name
func (s *Stat) Name() string { return s.name }

// Value returns the amount-bearing value
func (s *Stat) Value() Value { return s.current }

// System returns the owning StatSystem (non-owning back-reference)
func (s *Stat) System() *System { return s.system }

// InitConstraints is a no-op: a plain stat has no bounds to wire
func (s *Stat) InitConstraints() {}

// FloorStat is a stat whose current value is clamped to at least its min
// value's amount
type FloorStat struct {
	Stat
	min        Value
	constraint Constraint
}

// Min returns the floor bound value
func (s *FloorStat) Min() Value { return s.min }

// InitConstraints attaches the floor constraint; AddConstraint performs the
// initial recalculation
func (s *FloorStat) InitConstraints() {
	cv := s.current.(ConstrainedValue)
	s.constraint = NewFloorConstraint(s.min, cv)
	cv.AddConstraint(s.constraint)
}

// RangeStat is a stat whose current value is clamped into [min, max]
type RangeStat struct {
	FloorStat
	max Value
}

// Max returns the ceiling bound value
func (s *RangeStat) Max() Value { return s.max }

// InitConstraints attaches the range constraint; AddConstraint performs the
// initial recalculation
func (s *RangeStat) InitConstraints() {
	cv := s.current.(ConstrainedValue)
	s.constraint = NewRangeConstraint(s.min, cv, s.max)
	cv.AddConstraint(s.constraint)
}
