package cell

import (
	"fmt"
	"io"
)

// DumpOptions annotates a structure dump.
//
//   - Mapping — per-atom index map (e.g. a trim mapping table); each line
//     gains a "> n" suffix with the 1-based mapped index.
//   - Stars — atom indices to mark with '*' (e.g. atoms changed or kept by
//     a trim), in any order.
type DumpOptions struct {
	Mapping []int
	Stars   []int
}

// Dump writes a diagnostic listing of s to w: lattice vectors, then one line
// per atom with symbol, fractional position, and mass / magnetic moment when
// present. Indices printed are 1-based. opts may be nil.
//
// Dump is a debugging aid, not a serialization format.
func Dump(w io.Writer, s *Structure, opts *DumpOptions) error {
	var mapping []int
	starred := map[int]bool{}
	if opts != nil {
		mapping = opts.Mapping
		for _, i := range opts.Stars {
			starred[i] = true
		}
	}

	lat := s.lattice
	if _, err := fmt.Fprintf(w, "Lattice vectors:\n"); err != nil {
		return err
	}
	for i, name := range [3]string{"a", "b", "c"} {
		if _, err := fmt.Fprintf(w, "  %s %20.15f %20.15f %20.15f\n",
			name, lat[i][0], lat[i][1], lat[i][2]); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "Atomic positions (fractional):\n"); err != nil {
		return err
	}
	for i := 0; i < s.Len(); i++ {
		mark := " "
		if starred[i] {
			mark = "*"
		}
		pos := s.positions[i]
		line := fmt.Sprintf("%5s %-2s%18.14f%18.14f%18.14f",
			fmt.Sprintf("%s%d", mark, i+1), s.Symbol(i), pos[0], pos[1], pos[2])
		if s.masses != nil {
			line += fmt.Sprintf(" %7.3f", s.masses[i])
		}
		if s.magmoms != nil {
			line += fmt.Sprintf("  %5.3f", s.magmoms[i])
		}
		if mapping != nil {
			line += fmt.Sprintf(" > %d", mapping[i]+1)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
