// Package mpgraph is an inference runtime for probabilistic models expressed
// as factor graphs: nodes constrain variables, edges carry messages
// (distribution parameterizations), and marginal beliefs fall out of
// propagating messages until the quantity of interest is available.
//
// The engine is demand-driven and memoizing: asking an interface for its
// outbound message recursively computes whatever upstream messages are
// missing, caches every result, and a reverse-dependency invalidation walk
// keeps the caches coherent when an upstream value is replaced. Cyclic
// graphs terminate by construction — recursion is depth-budgeted and falls
// back to an uninformative message, trading exactness for a guarantee.
//
// Everything is organized under four subpackages:
//
//	message/   — distribution families (Gaussian, multivariate Gaussian,
//	             Gamma, Bernoulli, Beta, Wishart, General) with explicit,
//	             interchangeable parameterizations
//	core/      — the graph model: Node contract, Interface, Edge,
//	             connection and cache-clearing operations
//	nodes/     — built-in node kinds and their update-rule dispatch tables:
//	             Equality, Constant, Addition, FixedGain
//	propagate/ — the evaluator, the invalidation propagator, and the
//	             marginal combiner
//
// A minimal session: pin observations with Constant nodes, wire them to an
// Equality node, ask for a port's message, combine a forward/backward pair
// into a belief:
//
//	prior, _ := nodes.NewConstant("prior", message.NewGaussianMoment(0, 100))
//	obs, _   := nodes.NewConstant("obs", message.NewGaussianMoment(2, 1))
//	eq, _    := nodes.NewEquality("x", 3)
//	core.ConnectNodes(prior, eq)
//	core.ConnectNodes(obs, eq)
//	out, _   := propagate.CalculateMessage(eq, eq.Interfaces()[2])
//
// Evaluation is single-threaded per graph instance; see package propagate
// for the full contract.
package mpgraph
