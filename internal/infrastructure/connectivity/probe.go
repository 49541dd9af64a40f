package connectivity

import (
	"context"
	"net"
	"strings"
	"time"

	syncdomain "github.com/erp/companion/internal/domain/sync"
)

// InterfaceProbe classifies the device's connectivity from its live
// network interfaces. Wifi beats cellular when both are up, matching how
// mobile platforms route traffic.
type InterfaceProbe struct {
	// reachabilityAddr, when set, is dialed to confirm actual egress
	// (interfaces can be up on a dead link). host:port form.
	reachabilityAddr string
	dialTimeout      time.Duration
}

// ProbeOption configures an InterfaceProbe
type ProbeOption func(*InterfaceProbe)

// WithReachabilityCheck makes the probe confirm egress by dialing addr
func WithReachabilityCheck(addr string) ProbeOption {
	return func(p *InterfaceProbe) {
		p.reachabilityAddr = addr
	}
}

// NewInterfaceProbe creates a probe over the OS interface list
func NewInterfaceProbe(opts ...ProbeOption) *InterfaceProbe {
	p := &InterfaceProbe{
		dialTimeout: 3 * time.Second,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// State implements sync.ConnectivityProbe
func (p *InterfaceProbe) State(ctx context.Context) syncdomain.Connectivity {
	ifaces, err := net.Interfaces()
	if err != nil {
		return syncdomain.ConnectivityNone
	}

	state := syncdomain.ConnectivityNone
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil || len(addrs) == 0 {
			continue
		}
		state = preferred(state, classifyInterface(iface.Name))
	}

	if state == syncdomain.ConnectivityNone {
		return state
	}

	if p.reachabilityAddr != "" && !p.reachable(ctx) {
		return syncdomain.ConnectivityNone
	}

	return state
}

// reachable dials the configured address to confirm the link carries
// traffic
func (p *InterfaceProbe) reachable(ctx context.Context) bool {
	dialer := net.Dialer{Timeout: p.dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", p.reachabilityAddr)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}

// preferred ranks connectivity classes: wifi > cellular > other > none
func preferred(current, candidate syncdomain.Connectivity) syncdomain.Connectivity {
	rank := map[syncdomain.Connectivity]int{
		syncdomain.ConnectivityNone:     0,
		syncdomain.ConnectivityOther:    1,
		syncdomain.ConnectivityCellular: 2,
		syncdomain.ConnectivityWifi:     3,
	}
	if rank[candidate] > rank[current] {
		return candidate
	}
	return current
}

// classifyInterface maps an interface name to a connectivity class using
// the naming conventions of the platforms the companion runs on
func classifyInterface(name string) syncdomain.Connectivity {
	lower := strings.ToLower(name)
	switch {
	case strings.HasPrefix(lower, "wlan"),
		strings.HasPrefix(lower, "wlp"),
		strings.HasPrefix(lower, "wifi"),
		strings.HasPrefix(lower, "ath"),
		strings.HasPrefix(lower, "en"):
		return syncdomain.ConnectivityWifi
	case strings.HasPrefix(lower, "wwan"),
		strings.HasPrefix(lower, "rmnet"),
		strings.HasPrefix(lower, "ccmni"),
		strings.HasPrefix(lower, "pdp_ip"):
		return syncdomain.ConnectivityCellular
	default:
		return syncdomain.ConnectivityOther
	}
}

// Ensure InterfaceProbe implements sync.ConnectivityProbe
var _ syncdomain.ConnectivityProbe = (*InterfaceProbe)(nil)
