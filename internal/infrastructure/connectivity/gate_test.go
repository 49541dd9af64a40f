package connectivity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	syncdomain "github.com/erp/companion/internal/domain/sync"
)

// stubProbe returns a fixed connectivity state
type stubProbe struct {
	state syncdomain.Connectivity
}

func (p *stubProbe) State(_ context.Context) syncdomain.Connectivity {
	return p.state
}

func TestPolicyGate_CanSync(t *testing.T) {
	tests := []struct {
		name     string
		state    syncdomain.Connectivity
		wifiOnly bool
		want     bool
	}{
		{"offline always denies", syncdomain.ConnectivityNone, false, false},
		{"offline denies even without wifi-only", syncdomain.ConnectivityNone, true, false},
		{"wifi allows", syncdomain.ConnectivityWifi, false, true},
		{"wifi allows under wifi-only", syncdomain.ConnectivityWifi, true, true},
		{"cellular allows by default", syncdomain.ConnectivityCellular, false, true},
		{"cellular denied under wifi-only", syncdomain.ConnectivityCellular, true, false},
		{"other transport allows by default", syncdomain.ConnectivityOther, false, true},
		{"other transport denied under wifi-only", syncdomain.ConnectivityOther, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := NewPolicyGate(&stubProbe{state: tt.state}, zap.NewNop())
			assert.Equal(t, tt.want, gate.CanSync(context.Background(), tt.wifiOnly))
		})
	}
}

func TestPolicyGate_State(t *testing.T) {
	gate := NewPolicyGate(&stubProbe{state: syncdomain.ConnectivityCellular}, zap.NewNop())
	assert.Equal(t, syncdomain.ConnectivityCellular, gate.State(context.Background()))
}
