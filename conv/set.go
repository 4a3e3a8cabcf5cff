package conv

import "sort"

// CTypeSet is the set of ctypes symbols a generated file must import to
// spell a type on a non-C surface.
type CTypeSet map[string]struct{}

func NewCTypeSet(syms ...string) CTypeSet {
	s := make(CTypeSet, len(syms))
	for _, sym := range syms {
		s.Add(sym)
	}
	return s
}

func (s CTypeSet) Add(sym string) {
	s[sym] = struct{}{}
}

// Merge adds every symbol of other into s.
func (s CTypeSet) Merge(other CTypeSet) {
	for sym := range other {
		s[sym] = struct{}{}
	}
}

func (s CTypeSet) Contains(sym string) bool {
	_, ok := s[sym]
	return ok
}

// Sorted returns the symbols in lexical order, for deterministic output.
func (s CTypeSet) Sorted() []string {
	syms := make([]string, 0, len(s))
	for sym := range s {
		syms = append(syms, sym)
	}
	sort.Strings(syms)
	return syms
}
