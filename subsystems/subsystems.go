package subsystems

import (
	"fmt"

	"github.com/Artiqlate/gpsshare/avahi"
)

type Backend string

const (
	BackendAvahi    Backend = "avahi"
	BackendZeroconf Backend = "zeroconf"
	BackendMDNS     Backend = "mdns"
)

type DiscoveryConfig struct {
	Backend Backend
	// Name is the instance name for the in-process responders. The avahi
	// backend always advertises avahi.InstanceName.
	Name    string
	Port    uint16
	Confirm bool
}

// NewNetworkDiscovery builds the publisher for cfg.Backend. For the avahi
// backend this connects to the system bus.
func NewNetworkDiscovery(cfg DiscoveryConfig) (NetworkDiscovery, error) {
	if cfg.Port == 0 {
		return nil, fmt.Errorf("NetworkDiscovery: port must be non-zero")
	}
	if cfg.Name == "" {
		cfg.Name = InstanceName
	}
	switch cfg.Backend {
	case BackendAvahi, "":
		client, clientErr := avahi.New()
		if clientErr != nil {
			return nil, clientErr
		}
		return NewAvahiDiscovery(client, cfg.Port, cfg.Confirm), nil
	case BackendZeroconf:
		return NewZeroconfDiscovery(cfg.Name, cfg.Port), nil
	case BackendMDNS:
		return NewMDNSDiscovery(cfg.Name, cfg.Port), nil
	}
	return nil, fmt.Errorf("NetworkDiscovery: unknown backend %q", cfg.Backend)
}
