package message

// General carries a plain scalar or a one-dimensional array: the
// non-probabilistic payload family. Equality composition over General values
// is pass-through on agreement and a zero value of the same shape on
// disagreement (an explicit conflict signal, not an error).
type General struct {
	scalar float64
	arr    []float64 // nil means scalar
}

// NewScalar returns a General message holding a single value.
func NewScalar(v float64) Message {
	return Message{kind: KindGeneral, general: General{scalar: v}}
}

// NewArray returns a General message holding a copy of vs.
func NewArray(vs []float64) Message {
	return Message{kind: KindGeneral, general: General{arr: cloneFloats(vs)}}
}

// VagueGeneral returns the neutral General message, scalar zero.
func VagueGeneral() Message { return NewScalar(0) }

// IsArray reports whether g holds an array rather than a scalar.
func (g General) IsArray() bool { return g.arr != nil }

// Scalar returns the scalar value; ok is false when g holds an array.
func (g General) Scalar() (float64, bool) {
	return g.scalar, g.arr == nil
}

// Array returns a copy of the array value; ok is false when g holds a scalar.
func (g General) Array() ([]float64, bool) {
	if g.arr == nil {
		return nil, false
	}

	return cloneFloats(g.arr), true
}

// EqualTo reports whether g and other hold the same shape and the same
// values.
func (g General) EqualTo(other General) bool {
	if g.IsArray() != other.IsArray() {
		return false
	}
	if !g.IsArray() {
		return g.scalar == other.scalar
	}
	if len(g.arr) != len(other.arr) {
		return false
	}
	for i, v := range g.arr {
		if other.arr[i] != v {
			return false
		}
	}

	return true
}

// Zero returns a General message of the same shape as g with every value
// zero: scalar 0 for a scalar, a zero-filled array of equal length otherwise.
func (g General) Zero() Message {
	if g.arr == nil {
		return NewScalar(0)
	}

	return NewArray(make([]float64, len(g.arr)))
}

// Message wraps g back into a Message value, preserving its shape and values.
func (g General) Message() Message {
	if g.arr == nil {
		return NewScalar(g.scalar)
	}

	return NewArray(g.arr)
}
