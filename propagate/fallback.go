package propagate

import (
	"github.com/tverien/mpgraph/core"
	"github.com/tverien/mpgraph/message"
)

// VagueFallback is the default depth-exhaustion policy: an uninformative
// message of the family (and, where relevant, shape) the target interface
// appears to carry.
//
// The family is inferred from the nearest evidence: the target's own present
// message, then its partner's, then the sibling interfaces of both endpoint
// nodes — each sibling's present message, its partner's, and the pinned value
// of any Constant node found there. Sibling probing matters inside a
// never-evaluated cycle, where every interface on the cycle is still empty
// but the observations hanging off the cycle's nodes name the family. With
// no evidence anywhere the fallback is a vague univariate Gaussian — callers
// that know better inject their own policy via WithFallback.
func VagueFallback(target *core.Interface) message.Message {
	probe, ok := probeNeighborhood(target)
	if !ok {
		return message.VagueGaussian()
	}

	switch probe.Kind() {
	case message.KindGaussian:
		return message.VagueGaussian()
	case message.KindMultivariate:
		g, _ := probe.Multivariate()

		return message.VagueMultivariate(g.Dim())
	case message.KindGamma:
		return message.VagueGamma()
	case message.KindBernoulli:
		return message.VagueBernoulli()
	case message.KindBeta:
		return message.VagueBeta()
	case message.KindWishart:
		w, _ := probe.Wishart()

		return message.VagueWishart(w.Dim())
	case message.KindGeneral:
		g, _ := probe.General()

		return g.Zero()
	default:
		return message.VagueGaussian()
	}
}

// probeNeighborhood looks for family evidence near target, closest first:
// target itself, its partner, then the siblings on target's node and on the
// partner's node.
func probeNeighborhood(target *core.Interface) (message.Message, bool) {
	if m, ok := probeInterface(target); ok {
		return m, true
	}
	p := target.Partner()
	if p != nil {
		if m, ok := probeInterface(p); ok {
			return m, true
		}
	}
	if m, ok := probeSiblings(target); ok {
		return m, true
	}
	if p != nil {
		if m, ok := probeSiblings(p); ok {
			return m, true
		}
	}

	return message.Message{}, false
}

// probeInterface reports family evidence at a single interface: its present
// message, or the fixed value of the Constant node owning it. A Constant's
// value is evidence even before its rule has ever run.
func probeInterface(ifc *core.Interface) (message.Message, bool) {
	if m, ok := ifc.Message(); ok {
		return m, true
	}
	if c, ok := ifc.Node().(interface{ Value() message.Message }); ok {
		return c.Value(), true
	}

	return message.Message{}, false
}

// probeSiblings scans the other interfaces of ifc's node, each together with
// its partner.
func probeSiblings(ifc *core.Interface) (message.Message, bool) {
	for _, sib := range ifc.Node().Interfaces() {
		if sib == ifc {
			continue
		}
		if m, ok := probeInterface(sib); ok {
			return m, true
		}
		if p := sib.Partner(); p != nil {
			if m, ok := probeInterface(p); ok {
				return m, true
			}
		}
	}

	return message.Message{}, false
}
