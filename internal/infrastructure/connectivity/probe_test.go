package connectivity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	syncdomain "github.com/erp/companion/internal/domain/sync"
)

func TestClassifyInterface(t *testing.T) {
	tests := []struct {
		name string
		want syncdomain.Connectivity
	}{
		{"wlan0", syncdomain.ConnectivityWifi},
		{"wlp3s0", syncdomain.ConnectivityWifi},
		{"en0", syncdomain.ConnectivityWifi},
		{"rmnet_data0", syncdomain.ConnectivityCellular},
		{"ccmni0", syncdomain.ConnectivityCellular},
		{"pdp_ip0", syncdomain.ConnectivityCellular},
		{"wwan0", syncdomain.ConnectivityCellular},
		{"eth0", syncdomain.ConnectivityOther},
		{"tun0", syncdomain.ConnectivityOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyInterface(tt.name))
		})
	}
}

func TestPreferred(t *testing.T) {
	assert.Equal(t, syncdomain.ConnectivityWifi,
		preferred(syncdomain.ConnectivityCellular, syncdomain.ConnectivityWifi))
	assert.Equal(t, syncdomain.ConnectivityWifi,
		preferred(syncdomain.ConnectivityWifi, syncdomain.ConnectivityCellular))
	assert.Equal(t, syncdomain.ConnectivityCellular,
		preferred(syncdomain.ConnectivityNone, syncdomain.ConnectivityCellular))
	assert.Equal(t, syncdomain.ConnectivityOther,
		preferred(syncdomain.ConnectivityNone, syncdomain.ConnectivityOther))
}
