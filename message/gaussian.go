package message

// GaussianForm selects which parameter pair a Gaussian (or Multivariate)
// message currently holds. Forms are interchangeable via the To* conversions.
type GaussianForm uint8

const (
	// FormCanonical holds the natural parameters: precision-weighted mean ξ
	// and precision W.
	FormCanonical GaussianForm = iota
	// FormMeanPrecision holds mean m and precision W.
	FormMeanPrecision
	// FormMoment holds mean m and (co)variance V.
	FormMoment
)

// String returns the form name, e.g. "canonical".
func (f GaussianForm) String() string {
	switch f {
	case FormCanonical:
		return "canonical"
	case FormMeanPrecision:
		return "mean-precision"
	case FormMoment:
		return "moment"
	default:
		return "unknown"
	}
}

// vagueVariance is the variance of an uninformative Gaussian fallback:
// wide enough to dominate nothing, finite so downstream math stays finite.
const vagueVariance = 1e12

// Gaussian is a univariate Gaussian in exactly one of its three forms.
// Fields not belonging to the active form are not meaningful and are never
// read; there is no NaN-as-absent convention anywhere in this package.
type Gaussian struct {
	form     GaussianForm
	xi       float64 // canonical
	mean     float64 // mean-precision, moment
	prec     float64 // canonical, mean-precision
	variance float64 // moment
}

// NewGaussianCanonical returns a univariate Gaussian message in canonical
// (ξ, W) form.
func NewGaussianCanonical(xi, w float64) Message {
	return Message{kind: KindGaussian, gaussian: Gaussian{form: FormCanonical, xi: xi, prec: w}}
}

// NewGaussianMeanPrecision returns a univariate Gaussian message in
// mean-precision (m, W) form.
func NewGaussianMeanPrecision(mean, w float64) Message {
	return Message{kind: KindGaussian, gaussian: Gaussian{form: FormMeanPrecision, mean: mean, prec: w}}
}

// NewGaussianMoment returns a univariate Gaussian message in moment (m, V)
// form.
func NewGaussianMoment(mean, variance float64) Message {
	return Message{kind: KindGaussian, gaussian: Gaussian{form: FormMoment, mean: mean, variance: variance}}
}

// VagueGaussian returns an uninformative univariate Gaussian: zero mean,
// very large variance. Used as the depth-budget fallback for Gaussian
// interfaces.
func VagueGaussian() Message { return NewGaussianMoment(0, vagueVariance) }

// Form reports which parameter pair g holds.
func (g Gaussian) Form() GaussianForm { return g.form }

// Canonical returns (ξ, W); ok is false unless g is in canonical form.
func (g Gaussian) Canonical() (xi, w float64, ok bool) {
	return g.xi, g.prec, g.form == FormCanonical
}

// MeanPrecision returns (m, W); ok is false unless g is in mean-precision form.
func (g Gaussian) MeanPrecision() (mean, w float64, ok bool) {
	return g.mean, g.prec, g.form == FormMeanPrecision
}

// Moment returns (m, V); ok is false unless g is in moment form.
func (g Gaussian) Moment() (mean, variance float64, ok bool) {
	return g.mean, g.variance, g.form == FormMoment
}

// ToCanonical converts g to canonical (ξ, W) form.
// Singular parameters go through Pinv, so the conversion is total.
func (g Gaussian) ToCanonical() Gaussian {
	switch g.form {
	case FormCanonical:
		return g
	case FormMeanPrecision:
		return Gaussian{form: FormCanonical, xi: g.prec * g.mean, prec: g.prec}
	default: // FormMoment
		w := Pinv(g.variance)
		return Gaussian{form: FormCanonical, xi: w * g.mean, prec: w}
	}
}

// ToMeanPrecision converts g to mean-precision (m, W) form.
func (g Gaussian) ToMeanPrecision() Gaussian {
	switch g.form {
	case FormMeanPrecision:
		return g
	case FormCanonical:
		return Gaussian{form: FormMeanPrecision, mean: Pinv(g.prec) * g.xi, prec: g.prec}
	default: // FormMoment
		return Gaussian{form: FormMeanPrecision, mean: g.mean, prec: Pinv(g.variance)}
	}
}

// ToMoment converts g to moment (m, V) form.
func (g Gaussian) ToMoment() Gaussian {
	switch g.form {
	case FormMoment:
		return g
	case FormMeanPrecision:
		return Gaussian{form: FormMoment, mean: g.mean, variance: Pinv(g.prec)}
	default: // FormCanonical
		v := Pinv(g.prec)
		return Gaussian{form: FormMoment, mean: v * g.xi, variance: v}
	}
}

// Pinv is the scalar pseudo-inverse: 1/x for non-zero x, 0 for x == 0.
// It mirrors the matrix pseudo-inverse on a singular 1×1 input and keeps
// every Gaussian form conversion total.
func Pinv(x float64) float64 {
	if x == 0 {
		return 0
	}

	return 1 / x
}
