// Package barcode extracts persistence intervals from a reduced boundary
// matrix and offers small queries over the resulting multiset.
//
// A zero column c of the reduced matrix is a birth: its feature has the
// dimension and filtration value of simplex c. A nonzero column c with low r
// kills the feature born at r at the value of simplex c. Births never killed
// stay alive forever (End = +Inf).
//
// Output order is (Start, Dim, End) ascending. Equal intervals are distinct
// entries of the multiset and are never merged.
package barcode
