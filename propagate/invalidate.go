package propagate

import (
	"go.uber.org/zap"

	"github.com/tverien/mpgraph/core"
)

// Invalidate marks ifc's cached message stale and propagates the staleness
// to every message that could have depended on it.
//
// Propagation is conservative: a node's outbound message is assumed to
// depend on every one of its other inbound messages. It is also cycle-safe
// and idempotent: an interface found already invalid is neither changed nor
// recursed into, so a second visit — or a second call — stops immediately.
func Invalidate(ifc *core.Interface, opts ...Option) {
	if ifc == nil {
		return
	}
	cfg := buildOptions(opts)
	ifc.MarkInvalid()
	push(ifc, &cfg)
}

// PushMessageInvalidations propagates staleness downstream of ifc without
// touching ifc itself: the call to make after storing a fresh message on an
// interface, so stale dependents are recomputed on demand.
func PushMessageInvalidations(ifc *core.Interface, opts ...Option) {
	if ifc == nil {
		return
	}
	cfg := buildOptions(opts)
	push(ifc, &cfg)
}

// push walks across ifc's edge into the partner's node and marks every other
// interface of that node invalid, recursing only into interfaces that were
// previously valid and held a message.
func push(ifc *core.Interface, cfg *Options) {
	p := ifc.Partner()
	if p == nil {
		return
	}
	for _, other := range p.Node().Interfaces() {
		if other == p {
			continue
		}
		_, present := other.Message()
		live := present && other.Valid()
		other.MarkInvalid()
		if live {
			cfg.Logger.Debug("invalidated cached message",
				zap.String("node", p.Node().Name()))
			push(other, cfg)
		}
	}
}
