package transmission

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsableInterface(t *testing.T) {
	assert.True(t, usableInterface(net.FlagUp|net.FlagMulticast|net.FlagBroadcast))
	assert.False(t, usableInterface(net.FlagUp|net.FlagMulticast|net.FlagLoopback))
	assert.False(t, usableInterface(net.FlagMulticast))
	assert.False(t, usableInterface(net.FlagUp))
}

func TestIPv4Addresses(t *testing.T) {
	_, v4, err := net.ParseCIDR("192.168.1.20/24")
	require.NoError(t, err)
	v4.IP = net.ParseIP("192.168.1.20")
	_, v6, err := net.ParseCIDR("fe80::1/64")
	require.NoError(t, err)
	loop := &net.IPNet{IP: net.ParseIP("127.0.0.1"), Mask: net.CIDRMask(8, 32)}

	ips := ipv4Addresses([]net.Addr{v4, v6, loop, &net.IPAddr{IP: net.ParseIP("10.0.0.1")}})
	require.Len(t, ips, 1)
	assert.Equal(t, "192.168.1.20", ips[0].String())
}

func TestAvailableIPAddresses(t *testing.T) {
	ips, err := AvailableIPAddresses()
	require.NoError(t, err)
	for _, ip := range ips {
		assert.NotNil(t, ip.To4())
		assert.False(t, ip.IsLoopback())
	}
}
