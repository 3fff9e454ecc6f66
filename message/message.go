package message

import "errors"

// ErrDecompositionFailed indicates that an SVD factorization did not converge
// while computing a pseudo-inverse. It is wrapped with the failing operation.
var ErrDecompositionFailed = errors.New("message: SVD decomposition failed")

// Kind tags the distribution family of a Message.
//
// The zero value is KindElided so that a freshly allocated inbound tuple
// already carries the elided marker in every unfilled slot.
type Kind uint8

const (
	// KindElided marks the outbound slot in an update rule's inbound tuple.
	KindElided Kind = iota
	// KindGaussian is a univariate Gaussian.
	KindGaussian
	// KindMultivariate is a multivariate Gaussian.
	KindMultivariate
	// KindGamma is a Gamma (or inverse-Gamma, see Gamma.Inverted).
	KindGamma
	// KindBernoulli is a Bernoulli distribution.
	KindBernoulli
	// KindBeta is a Beta distribution.
	KindBeta
	// KindWishart is a Wishart distribution.
	KindWishart
	// KindGeneral is a plain scalar or array value.
	KindGeneral
)

// String returns the family name, e.g. "gaussian".
func (k Kind) String() string {
	switch k {
	case KindElided:
		return "elided"
	case KindGaussian:
		return "gaussian"
	case KindMultivariate:
		return "multivariate"
	case KindGamma:
		return "gamma"
	case KindBernoulli:
		return "bernoulli"
	case KindBeta:
		return "beta"
	case KindWishart:
		return "wishart"
	case KindGeneral:
		return "general"
	default:
		return "unknown"
	}
}

// Message is the immutable value sent along a factor-graph edge: one
// distribution family's parameters in one of that family's valid forms.
//
// The zero Message is the elided placeholder.
type Message struct {
	kind      Kind
	gaussian  Gaussian
	multi     Multivariate
	gamma     Gamma
	bernoulli Bernoulli
	beta      Beta
	wishart   Wishart
	general   General
}

// Elided returns the placeholder variant used for the outbound slot of an
// update rule's inbound tuple.
func Elided() Message { return Message{} }

// Kind reports the distribution family of m.
func (m Message) Kind() Kind { return m.kind }

// IsElided reports whether m is the elided placeholder.
func (m Message) IsElided() bool { return m.kind == KindElided }

// Gaussian returns the univariate Gaussian parameters.
// ok is false when m is not of the Gaussian family.
func (m Message) Gaussian() (Gaussian, bool) {
	return m.gaussian, m.kind == KindGaussian
}

// Multivariate returns the multivariate Gaussian parameters.
// ok is false when m is not of the Multivariate family.
func (m Message) Multivariate() (Multivariate, bool) {
	return m.multi, m.kind == KindMultivariate
}

// Gamma returns the Gamma parameters.
// ok is false when m is not of the Gamma family.
func (m Message) Gamma() (Gamma, bool) {
	return m.gamma, m.kind == KindGamma
}

// Bernoulli returns the Bernoulli parameters.
// ok is false when m is not of the Bernoulli family.
func (m Message) Bernoulli() (Bernoulli, bool) {
	return m.bernoulli, m.kind == KindBernoulli
}

// Beta returns the Beta parameters.
// ok is false when m is not of the Beta family.
func (m Message) Beta() (Beta, bool) {
	return m.beta, m.kind == KindBeta
}

// Wishart returns the Wishart parameters.
// ok is false when m is not of the Wishart family.
func (m Message) Wishart() (Wishart, bool) {
	return m.wishart, m.kind == KindWishart
}

// General returns the scalar-or-array payload.
// ok is false when m is not of the General family.
func (m Message) General() (General, bool) {
	return m.general, m.kind == KindGeneral
}
