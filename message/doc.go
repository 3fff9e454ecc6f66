// Package message defines the value type carried along factor-graph edges:
// a closed tagged union over distribution families, each family holding its
// parameters in one of several explicit, interchangeable parameterizations.
//
// Families:
//
//   - Elided       – placeholder for the outbound slot of an update rule's
//     inbound tuple (a distinct variant, not an absent argument)
//   - Gaussian     – univariate; canonical (ξ, W), mean-precision (m, W),
//     or moment (m, V) form
//   - Multivariate – multivariate Gaussian; same three forms over
//     gonum vectors/matrices
//   - Gamma        – shape/rate plus an inverted (inverse-Gamma) flag
//   - Bernoulli    – success probability p
//   - Beta         – shape pair (α, β)
//   - Wishart      – degrees of freedom ν and scale matrix V
//   - General      – plain scalar or array value (non-probabilistic payload)
//
// A parameter that does not belong to the active form is simply not stored;
// absence is never encoded as NaN or any other numeric sentinel. Conversions
// between forms are total: singular precisions/covariances are handled with
// the pseudo-inverse (scalar pinv(0) = 0; matrix pinv via SVD).
//
// Messages are immutable values. Constructors copy mutable inputs in,
// accessors copy mutable state out, and no mutating method exists; replacing
// a message on an interface is always a whole-value swap.
//
// Errors:
//
//	ErrDecompositionFailed – SVD factorization did not converge.
//
// Constructors over gonum values follow the gonum convention and panic on
// dimension mismatches (programmer error, not runtime input).
package message
