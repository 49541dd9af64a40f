package connectivity

import (
	"context"

	"go.uber.org/zap"

	syncdomain "github.com/erp/companion/internal/domain/sync"
)

// PolicyGate decides whether a sync attempt may proceed from live
// connectivity and the user's wifi-only preference. It performs no
// mutation; querying the probe is its only side effect-free suspension
// point.
type PolicyGate struct {
	probe  syncdomain.ConnectivityProbe
	logger *zap.Logger
}

// NewPolicyGate creates a gate over the given probe
func NewPolicyGate(probe syncdomain.ConnectivityProbe, logger *zap.Logger) *PolicyGate {
	return &PolicyGate{
		probe:  probe,
		logger: logger.Named("gate"),
	}
}

// CanSync implements sync.Gate
func (g *PolicyGate) CanSync(ctx context.Context, wifiOnly bool) bool {
	state := g.probe.State(ctx)

	allowed := false
	switch {
	case state == syncdomain.ConnectivityNone:
		allowed = false
	case wifiOnly:
		allowed = state == syncdomain.ConnectivityWifi
	default:
		allowed = true
	}

	g.logger.Debug("Sync gate decision",
		zap.String("connectivity", state.String()),
		zap.Bool("wifi_only", wifiOnly),
		zap.Bool("allowed", allowed),
	)
	return allowed
}

// State implements sync.Gate
func (g *PolicyGate) State(ctx context.Context) syncdomain.Connectivity {
	return g.probe.State(ctx)
}

// Ensure PolicyGate implements sync.Gate
var _ syncdomain.Gate = (*PolicyGate)(nil)
