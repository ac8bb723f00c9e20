// Package builder provides deterministic generators of simplicial
// filtrations in the "functional-options" style: fixtures for tests,
// benchmarks and the lvhom CLI.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – Build(opts, cons...): resolves options, runs constructors in order,
//     returns the union as a sorted, closed filtration.
//   - Constructors (Constructor implementations):
//     – Ball(n):                every face of the simplex on n+2 vertices.
//     – Sphere(n):              Ball(n) without its top simplex (an n-sphere).
//     – Cycle(n):               n vertices at t=0, n ring edges at t=1.
//     – Complete(n, maxDim):    clique complex of K_n up to maxDim.
//     – Path(n):                P_n with edge i entering at t=i.
//     – Wheel(n):               ring + hub; spokes at t=2, triangles at t=3.
//     – RandomClique(n, p, d):  seeded random clique complex with edge times.
//   - Options (BuilderOption): WithSeed, WithRand, WithVertexOffset,
//     WithValueScale, WithTimeFn (WithUniformTime, WithExponentialTime).
//
// Guarantees:
//
//   - Closure: every face of a generated simplex is generated too, with a
//     value no larger than the simplex's own.
//   - Idempotence: a vertex set produced by several constructors appears
//     once, with the smallest value any of them assigned.
//   - Determinism: same options, seed and constructor order ⇒ identical output.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     constructors themselves return sentinel errors.
package builder
