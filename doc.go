// Package lvvec is a small library of bounded numeric containers.
//
// 🚀 What is lvvec?
//
//	A zero-surprise home for fixed-length float64 vectors:
//		• vector/ — Vector: validated construction, Ref/At/Set, exact Equal,
//		  Sum, AddInto, SqrtSum
//		• matrix/ — Dense: row-major matrix with value-returning Add and
//		  row bridges to vector.Vector
//		• probe/  — construction probes with slog diagnostics and YAML plans
//		• cmd/lvvec — CLI over all of the above
//
// ✨ Why choose lvvec?
//
//   - Construction either yields a usable value or a sentinel error
//     (ErrInvalidSize, ErrAllocationFailure); never half a vector
//   - Checked and unchecked accessors side by side; callers pick the trade-off
//   - Storage is owned and garbage-collected; nothing to free by hand
//
//	go get github.com/katalvlaran/lvvec/vector
package lvvec
