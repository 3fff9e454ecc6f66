package message

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Multivariate is a multivariate Gaussian in exactly one of the three
// GaussianForm parameterizations, over gonum vectors and matrices.
//
// Internal vectors/matrices are owned exclusively by the value: constructors
// copy their inputs and accessors return fresh copies, so a Multivariate can
// be shared freely without aliasing hazards.
type Multivariate struct {
	form GaussianForm
	dim  int
	xi   *mat.VecDense // canonical
	mean *mat.VecDense // mean-precision, moment
	prec *mat.Dense    // canonical, mean-precision
	cov  *mat.Dense    // moment
}

// NewMultivariateCanonical returns a multivariate Gaussian message in
// canonical (ξ, W) form. Panics if w is not len(xi)×len(xi) (gonum
// convention for dimension mismatches).
func NewMultivariateCanonical(xi []float64, w *mat.Dense) Message {
	dim := len(xi)
	mustSquare(w, dim)

	return Message{kind: KindMultivariate, multi: Multivariate{
		form: FormCanonical,
		dim:  dim,
		xi:   mat.NewVecDense(dim, cloneFloats(xi)),
		prec: cloneDense(w),
	}}
}

// NewMultivariateMeanPrecision returns a multivariate Gaussian message in
// mean-precision (m, W) form. Panics on dimension mismatch.
func NewMultivariateMeanPrecision(mean []float64, w *mat.Dense) Message {
	dim := len(mean)
	mustSquare(w, dim)

	return Message{kind: KindMultivariate, multi: Multivariate{
		form: FormMeanPrecision,
		dim:  dim,
		mean: mat.NewVecDense(dim, cloneFloats(mean)),
		prec: cloneDense(w),
	}}
}

// NewMultivariateMoment returns a multivariate Gaussian message in moment
// (m, V) form. Panics on dimension mismatch.
func NewMultivariateMoment(mean []float64, cov *mat.Dense) Message {
	dim := len(mean)
	mustSquare(cov, dim)

	return Message{kind: KindMultivariate, multi: Multivariate{
		form: FormMoment,
		dim:  dim,
		mean: mat.NewVecDense(dim, cloneFloats(mean)),
		cov:  cloneDense(cov),
	}}
}

// VagueMultivariate returns an uninformative multivariate Gaussian of the
// given dimension: zero mean, vagueVariance·I covariance.
func VagueMultivariate(dim int) Message {
	cov := mat.NewDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		cov.Set(i, i, vagueVariance)
	}

	return NewMultivariateMoment(make([]float64, dim), cov)
}

// Dim returns the dimensionality of g.
func (g Multivariate) Dim() int { return g.dim }

// Form reports which parameter pair g holds.
func (g Multivariate) Form() GaussianForm { return g.form }

// Canonical returns copies of (ξ, W); ok is false unless g is in canonical form.
func (g Multivariate) Canonical() (xi *mat.VecDense, w *mat.Dense, ok bool) {
	if g.form != FormCanonical {
		return nil, nil, false
	}

	return cloneVec(g.xi), cloneDense(g.prec), true
}

// MeanPrecision returns copies of (m, W); ok is false unless g is in
// mean-precision form.
func (g Multivariate) MeanPrecision() (mean *mat.VecDense, w *mat.Dense, ok bool) {
	if g.form != FormMeanPrecision {
		return nil, nil, false
	}

	return cloneVec(g.mean), cloneDense(g.prec), true
}

// Moment returns copies of (m, V); ok is false unless g is in moment form.
func (g Multivariate) Moment() (mean *mat.VecDense, cov *mat.Dense, ok bool) {
	if g.form != FormMoment {
		return nil, nil, false
	}

	return cloneVec(g.mean), cloneDense(g.cov), true
}

// ToCanonical converts g to canonical (ξ, W) form. Singular matrices go
// through PseudoInverse; the only possible error is a failed SVD.
func (g Multivariate) ToCanonical() (Multivariate, error) {
	switch g.form {
	case FormCanonical:
		return g, nil
	case FormMeanPrecision:
		var xi mat.VecDense
		xi.MulVec(g.prec, g.mean)

		return Multivariate{form: FormCanonical, dim: g.dim, xi: &xi, prec: cloneDense(g.prec)}, nil
	default: // FormMoment
		w, err := PseudoInverse(g.cov)
		if err != nil {
			return Multivariate{}, fmt.Errorf("ToCanonical: %w", err)
		}
		var xi mat.VecDense
		xi.MulVec(w, g.mean)

		return Multivariate{form: FormCanonical, dim: g.dim, xi: &xi, prec: w}, nil
	}
}

// ToMeanPrecision converts g to mean-precision (m, W) form.
func (g Multivariate) ToMeanPrecision() (Multivariate, error) {
	switch g.form {
	case FormMeanPrecision:
		return g, nil
	case FormCanonical:
		v, err := PseudoInverse(g.prec)
		if err != nil {
			return Multivariate{}, fmt.Errorf("ToMeanPrecision: %w", err)
		}
		var mean mat.VecDense
		mean.MulVec(v, g.xi)

		return Multivariate{form: FormMeanPrecision, dim: g.dim, mean: &mean, prec: cloneDense(g.prec)}, nil
	default: // FormMoment
		w, err := PseudoInverse(g.cov)
		if err != nil {
			return Multivariate{}, fmt.Errorf("ToMeanPrecision: %w", err)
		}

		return Multivariate{form: FormMeanPrecision, dim: g.dim, mean: cloneVec(g.mean), prec: w}, nil
	}
}

// ToMoment converts g to moment (m, V) form.
func (g Multivariate) ToMoment() (Multivariate, error) {
	switch g.form {
	case FormMoment:
		return g, nil
	case FormMeanPrecision:
		v, err := PseudoInverse(g.prec)
		if err != nil {
			return Multivariate{}, fmt.Errorf("ToMoment: %w", err)
		}

		return Multivariate{form: FormMoment, dim: g.dim, mean: cloneVec(g.mean), cov: v}, nil
	default: // FormCanonical
		v, err := PseudoInverse(g.prec)
		if err != nil {
			return Multivariate{}, fmt.Errorf("ToMoment: %w", err)
		}
		var mean mat.VecDense
		mean.MulVec(v, g.xi)

		return Multivariate{form: FormMoment, dim: g.dim, mean: &mean, cov: v}, nil
	}
}

// PseudoInverse computes the Moore–Penrose pseudo-inverse of a via thin SVD,
// zeroing singular values below a relative tolerance. Unlike a plain inverse
// it is defined for singular and rank-deficient inputs, which precision/
// covariance sums in update rules can legitimately be.
func PseudoInverse(a mat.Matrix) (*mat.Dense, error) {
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDThin) {
		return nil, fmt.Errorf("PseudoInverse: %w", ErrDecompositionFailed)
	}

	values := svd.Values(nil)
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	// Relative cutoff in the spirit of numpy.linalg.pinv.
	r, c := a.Dims()
	tol := 0.0
	if len(values) > 0 {
		tol = float64(max(r, c)) * values[0] * 2.220446049250313e-16
	}

	inv := mat.NewDense(len(values), len(values), nil)
	for i, s := range values {
		if s > tol {
			inv.Set(i, i, 1/s)
		}
	}

	var tmp, out mat.Dense
	tmp.Mul(&v, inv)
	out.Mul(&tmp, u.T())

	return &out, nil
}

func mustSquare(a *mat.Dense, dim int) {
	if a == nil {
		panic("message: nil parameter matrix")
	}
	r, c := a.Dims()
	if r != dim || c != dim {
		panic(fmt.Sprintf("message: parameter matrix is %dx%d, want %dx%d", r, c, dim, dim))
	}
}

func cloneFloats(xs []float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)

	return out
}

func cloneVec(v *mat.VecDense) *mat.VecDense {
	var out mat.VecDense
	out.CloneFromVec(v)

	return &out
}

func cloneDense(a *mat.Dense) *mat.Dense {
	var out mat.Dense
	out.CloneFrom(a)

	return &out
}

// VecSlice copies the entries of v into a plain []float64, the shape message
// constructors accept.
func VecSlice(v mat.Vector) []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}

	return out
}

// IsNaNFree reports whether every entry of xs is a finite number. Kept as a
// guard for callers ingesting external data; the package itself never uses
// NaN to mean anything.
func IsNaNFree(xs []float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}
