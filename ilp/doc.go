// SPDX-License-Identifier: MIT
//
// Package ilp solves small integer programs in standard form
//
//	minimize c·x  subject to  A·x = b, x ≥ 0, x integer
//
// with a two-phase primal simplex method and Gomory fractional cuts, in
// exact integer arithmetic (math/big) throughout. There is no tolerance and
// no rounding anywhere: tableau rows are kept as integer multiples, a basic
// variable's value is its right-hand side divided by its basic coefficient,
// and every pivot combines rows with GCD-reduced integer factors.
//
// Algorithm outline:
//
//  1. Phase 1 reuses unit columns as the initial basis and adds one
//     artificial variable per remaining row; it minimises their sum. A
//     non-zero optimum is ErrInfeasible. Artificials still basic afterwards
//     are pivoted out, and rows that cannot be are dropped as redundant.
//  2. Phase 2 installs the real objective and runs simplex with Dantzig's
//     rule, falling back to Bland's rule after a run of degenerate pivots.
//  3. If a basic value is fractional, the first such row yields a Gomory cut
//     with its own slack column; the cut joins the problem and the solve
//     restarts from Phase 1. The loop stops at an integral optimum or when a
//     budget (MaxCuts, MaxPivots, TimeLimit, context) runs out.
//
// Contracts:
//   - Arithmetic contradictions surface as *NumericError and, together with
//     ErrInfeasible and ErrUnbounded, match errors.Is(err, ErrNumeric).
//   - Budgets surface as ErrCutLimit, ErrPivotLimit and ErrTimeLimit.
//   - Solve never mutates its Problem and keeps no state between calls.
//
// Complexity: exponential in the worst case, like any simplex/cutting-plane
// method. Intended for problems with up to a few thousand columns.
package ilp
