package builder

import (
	"fmt"
	"sort"
	"strings"
)

// kindSpec binds a short family name to its parameter arity and constructor.
type kindSpec struct {
	params int
	build  func(p1, p2 int) Constructor
}

var kinds = map[string]kindSpec{
	"K":  {1, func(p1, _ int) Constructor { return Complete(p1) }},
	"C":  {1, func(p1, _ int) Constructor { return Cycle(p1) }},
	"L":  {1, func(p1, _ int) Constructor { return Path(p1) }},
	"S":  {1, func(p1, _ int) Constructor { return Star(p1) }},
	"W":  {1, func(p1, _ int) Constructor { return Wheel(p1) }},
	"T":  {1, func(p1, _ int) Constructor { return Tree(p1) }},
	"M":  {1, func(p1, _ int) Constructor { return Mycielski(p1) }},
	"LD": {1, func(p1, _ int) Constructor { return LadderDiagonal(p1) }},
	"BK": {2, func(p1, p2 int) Constructor { return CompleteBipartite(p1, p2) }},
	"G":  {2, func(p1, p2 int) Constructor { return Grid(p1, p2) }},
	"R":  {2, func(p1, p2 int) Constructor { return RandomEdges(p1, p2) }},
}

// Kinds lists the short family names accepted by ByKind, sorted.
func Kinds() []string {
	out := make([]string, 0, len(kinds))
	for k := range kinds {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// KindParams returns how many integer parameters kind takes (1 or 2), or 0
// for an unknown kind.
func KindParams(kind string) int {
	return kinds[strings.ToUpper(kind)].params
}

// ByKind resolves a short family name (case-insensitive) to a Constructor.
// Single-parameter kinds ignore p2.
func ByKind(kind string, p1, p2 int) (Constructor, error) {
	spec, ok := kinds[strings.ToUpper(kind)]
	if !ok {
		return nil, fmt.Errorf("%s: %q (want one of %s): %w",
			methodByKind, kind, strings.Join(Kinds(), ","), ErrUnknownKind)
	}
	return spec.build(p1, p2), nil
}
