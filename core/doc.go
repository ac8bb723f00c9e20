// Package core defines the fundamental combinatorial types of lvhom:
// Simplex, VertexSet and the filtration order that turns an unordered
// collection of simplices into a valid filtration sequence.
//
// 🚀 What is a filtration?
//
//	A filtration is a growing simplicial complex: every simplex carries the
//	time (Value) at which it enters. Downstream packages assign each simplex
//	a column/row index 0..N-1 in filtration order, so the order must be total
//	and deterministic.
//
// ✨ Key guarantees:
//   - VertexSet is always sorted ascending and duplicate-free.
//   - Compare is a total order: Value ↑, then Dim ↑, then lexicographic
//     vertex order (a proper prefix sorts first).
//   - SortFiltration is stable and allocation-free beyond sort.SliceStable.
//   - Validate rejects malformed simplices with sentinel errors; it never panics.
//
// ⚙️ Usage:
//
//	s, err := core.NewSimplex(1.0, 0, 1) // the edge {0,1} entering at t=1
//	fs := []core.Simplex{s, ...}
//	core.SortFiltration(fs)
//
// Complexity:
//
//   - Compare:        O(Dim)
//   - SortFiltration: O(N log N · Dim)
//   - Faces:          O(Dim²) (Dim+1 faces of Dim vertices each)
package core
