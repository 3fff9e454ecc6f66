// Package nodes implements the built-in node kinds and their update-rule
// dispatch tables:
//
//   - Equality  – N ≥ 3 ports constrained to carry the same distribution;
//     sum-product rules for the Gaussian (univariate and multivariate),
//     Gamma and General families
//   - Constant  – single-port terminal carrying a fixed message
//     (priors and observations); bottoms out demand-driven evaluation
//   - Addition  – 3 ports with in₀ + in₁ = out₂ over Gaussian messages
//   - FixedGain – 2 ports related by a static gain matrix A
//
// Each kind resolves rules by scanning a table of (applicability predicate,
// rule) pairs; the predicates are disjoint, exported where the contract
// enumerates exact accepted tuples (Equality*Applies, Addition*Applies), and
// reject everything outside the enumerated arities and family tuples.
// Resolution failures return core.ErrRuleNotFound; a matched rule that
// rejects its inputs returns core.ErrPrecondition.
//
// Every rule is pure: it reads only the inbound messages handed to it and
// allocates a fresh outbound message.
//
// Errors:
//
//	ErrArity          – node constructed with an unsupported port count.
//	ErrElidedConstant – Constant constructed with the elided placeholder.
//	ErrNilGain        – FixedGain constructed without a gain matrix.
//
// Gain-equality/gain-addition composites and GaussianMixture variational
// rules are not implemented here; they plug in externally by satisfying
// core.Node.
package nodes
