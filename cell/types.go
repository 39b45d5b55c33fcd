// Package cell: the Structure type, its validating constructor, functional
// options, and sentinel errors.
package cell

import (
	"errors"

	"github.com/katalvlaran/cellkit/geom"
)

// DefaultTolerance is the conventional geometric tolerance for position
// comparisons, in the same length units as the lattice. Every routine takes
// the tolerance explicitly; this is only the customary starting value.
const DefaultTolerance = 1e-5

// Sentinel errors for cell operations.
var (
	// ErrCountMismatch indicates that the masses or magnetic moments slice
	// does not match the atom count.
	ErrCountMismatch = errors.New("cell: attribute count does not match atom count")

	// ErrAtomIndex indicates an atom index outside [0, Len).
	ErrAtomIndex = errors.New("cell: atom index out of range")
)

// Structure is an immutable periodic (or open) atomic structure.
//
// Fields are reachable only through accessors; slice accessors copy, so a
// Structure can be shared freely across goroutines after construction.
type Structure struct {
	numbers   []int
	masses    []float64 // nil when the cell carries no masses
	magmoms   []float64 // nil when the cell carries no magnetic moments
	positions []geom.Vec3
	lattice   geom.Matrix3
	periodic  bool
}

// Option configures a Structure at construction time.
type Option func(*Structure)

// WithMasses attaches per-atom masses. Length is validated in New.
func WithMasses(masses []float64) Option {
	return func(s *Structure) { s.masses = append([]float64(nil), masses...) }
}

// WithMagneticMoments attaches per-atom collinear magnetic moments.
// Length is validated in New.
func WithMagneticMoments(magmoms []float64) Option {
	return func(s *Structure) { s.magmoms = append([]float64(nil), magmoms...) }
}

// WithoutPeriodicity marks the structure as non-periodic (periodic is the
// default).
func WithoutPeriodicity() Option {
	return func(s *Structure) { s.periodic = false }
}

// New builds a Structure from atomic numbers, fractional positions and a
// lattice (rows = basis vectors). numbers and positions must have equal
// length; optional masses/magnetic moments must match it too, else
// ErrCountMismatch. All inputs are copied. A zero-atom structure is valid.
func New(numbers []int, positions []geom.Vec3, lattice geom.Matrix3, opts ...Option) (*Structure, error) {
	s := &Structure{
		numbers:   append([]int(nil), numbers...),
		positions: append([]geom.Vec3(nil), positions...),
		lattice:   lattice,
		periodic:  true,
	}
	for _, opt := range opts {
		opt(s)
	}
	if len(s.numbers) != len(s.positions) {
		return nil, ErrCountMismatch
	}
	if s.masses != nil && len(s.masses) != len(s.positions) {
		return nil, ErrCountMismatch
	}
	if s.magmoms != nil && len(s.magmoms) != len(s.positions) {
		return nil, ErrCountMismatch
	}
	return s, nil
}

// Len returns the number of atoms.
func (s *Structure) Len() int { return len(s.positions) }

// Number returns the atomic number of atom i.
func (s *Structure) Number(i int) int { return s.numbers[i] }

// Numbers returns a copy of the atomic numbers, in atom order.
func (s *Structure) Numbers() []int {
	return append([]int(nil), s.numbers...)
}

// HasMasses reports whether the structure carries per-atom masses.
func (s *Structure) HasMasses() bool { return s.masses != nil }

// Masses returns a copy of the per-atom masses, or nil when absent.
func (s *Structure) Masses() []float64 {
	if s.masses == nil {
		return nil
	}
	return append([]float64(nil), s.masses...)
}

// HasMagneticMoments reports whether the structure carries magnetic moments.
func (s *Structure) HasMagneticMoments() bool { return s.magmoms != nil }

// MagneticMoments returns a copy of the per-atom moments, or nil when absent.
func (s *Structure) MagneticMoments() []float64 {
	if s.magmoms == nil {
		return nil
	}
	return append([]float64(nil), s.magmoms...)
}

// Position returns the fractional position of atom i.
func (s *Structure) Position(i int) geom.Vec3 { return s.positions[i] }

// Positions returns a copy of the fractional positions, in atom order.
func (s *Structure) Positions() []geom.Vec3 {
	return append([]geom.Vec3(nil), s.positions...)
}

// Lattice returns the 3×3 lattice (rows = basis vectors).
func (s *Structure) Lattice() geom.Matrix3 { return s.lattice }

// Periodic reports whether the structure is periodic.
func (s *Structure) Periodic() bool { return s.periodic }

// CartesianPositions returns the cartesian positions of all atoms as one
// batched N×3 product of the fractional positions with the lattice.
func (s *Structure) CartesianPositions() []geom.Vec3 {
	return geom.MulRows(s.positions, s.lattice)
}

// Symbol returns the species symbol of atom i ("X" for unknown numbers).
func (s *Structure) Symbol(i int) string { return symbolOf(s.numbers[i]) }

// Symbols returns the species symbols of all atoms, in atom order.
func (s *Structure) Symbols() []string {
	out := make([]string, len(s.numbers))
	for i, z := range s.numbers {
		out[i] = symbolOf(z)
	}
	return out
}
