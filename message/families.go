package message

import "gonum.org/v1/gonum/mat"

// Bernoulli holds the success probability of a binary variable.
type Bernoulli struct {
	p float64
}

// NewBernoulli returns a Bernoulli message with success probability p.
func NewBernoulli(p float64) Message {
	return Message{kind: KindBernoulli, bernoulli: Bernoulli{p: p}}
}

// VagueBernoulli returns the uninformative Bernoulli message, p = 0.5.
func VagueBernoulli() Message { return NewBernoulli(0.5) }

// P returns the success probability.
func (b Bernoulli) P() float64 { return b.p }

// Beta holds the (α, β) shape pair of a Beta distribution.
type Beta struct {
	alpha float64
	beta  float64
}

// NewBeta returns a Beta message with shapes (α, β).
func NewBeta(alpha, beta float64) Message {
	return Message{kind: KindBeta, beta: Beta{alpha: alpha, beta: beta}}
}

// VagueBeta returns the uniform Beta message, (α, β) = (1, 1).
func VagueBeta() Message { return NewBeta(1, 1) }

// Alpha returns the α shape parameter.
func (b Beta) Alpha() float64 { return b.alpha }

// BetaParam returns the β shape parameter.
func (b Beta) BetaParam() float64 { return b.beta }

// Wishart holds the degrees of freedom ν and scale matrix V of a Wishart
// distribution over dim×dim precision matrices.
type Wishart struct {
	dof   float64
	dim   int
	scale *mat.Dense
}

// NewWishart returns a Wishart message with ν degrees of freedom and the
// given scale matrix. Panics if scale is nil or non-square (gonum convention).
func NewWishart(dof float64, scale *mat.Dense) Message {
	if scale == nil {
		panic("message: nil Wishart scale")
	}
	r, _ := scale.Dims()
	mustSquare(scale, r)

	return Message{kind: KindWishart, wishart: Wishart{dof: dof, dim: r, scale: cloneDense(scale)}}
}

// VagueWishart returns an uninformative Wishart message of the given
// dimension: ν = dim degrees of freedom and identity scale.
func VagueWishart(dim int) Message {
	scale := mat.NewDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		scale.Set(i, i, 1)
	}

	return NewWishart(float64(dim), scale)
}

// DegreesOfFreedom returns ν.
func (w Wishart) DegreesOfFreedom() float64 { return w.dof }

// Dim returns the dimensionality of the scale matrix.
func (w Wishart) Dim() int { return w.dim }

// Scale returns a copy of the scale matrix V.
func (w Wishart) Scale() *mat.Dense { return cloneDense(w.scale) }
