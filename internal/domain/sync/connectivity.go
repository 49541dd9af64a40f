package sync

import "context"

// Connectivity classifies the device's live network state
type Connectivity string

const (
	// ConnectivityNone indicates no usable network
	ConnectivityNone Connectivity = "NONE"
	// ConnectivityWifi indicates a WLAN connection
	ConnectivityWifi Connectivity = "WIFI"
	// ConnectivityCellular indicates a metered mobile data connection
	ConnectivityCellular Connectivity = "CELLULAR"
	// ConnectivityOther indicates wired or otherwise unclassified transport
	ConnectivityOther Connectivity = "OTHER"
)

// String returns the string representation of Connectivity
func (c Connectivity) String() string {
	return string(c)
}

// ConnectivityProbe reports the device's current connectivity. Querying
// may block on the OS networking subsystem but never mutates state.
type ConnectivityProbe interface {
	State(ctx context.Context) Connectivity
}

// Gate decides whether a sync attempt may proceed under the user's
// connectivity preference
type Gate interface {
	// CanSync returns false when there is no connectivity, or when
	// wifiOnly is set and the device is not on wifi
	CanSync(ctx context.Context, wifiOnly bool) bool
	// State exposes the probed connectivity for diagnostics
	State(ctx context.Context) Connectivity
}
