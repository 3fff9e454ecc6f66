package message

// Gamma holds shape/rate parameters. When Inverted is set the message is an
// inverse-Gamma parameterization, which is what equality composition over
// Gamma messages requires.
type Gamma struct {
	shape    float64
	rate     float64
	inverted bool
}

// NewGamma returns a Gamma message with the given shape a, rate b and
// inverted flag.
func NewGamma(shape, rate float64, inverted bool) Message {
	return Message{kind: KindGamma, gamma: Gamma{shape: shape, rate: rate, inverted: inverted}}
}

// VagueGamma returns an uninformative inverse-Gamma message: shape and rate
// both near zero, the standard flat limit of the family.
func VagueGamma() Message { return NewGamma(1e-12, 1e-12, true) }

// Shape returns the shape parameter a.
func (g Gamma) Shape() float64 { return g.shape }

// Rate returns the rate parameter b.
func (g Gamma) Rate() float64 { return g.rate }

// Inverted reports whether g is in the inverse-Gamma parameterization.
func (g Gamma) Inverted() bool { return g.inverted }
