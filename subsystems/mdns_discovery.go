package subsystems

import (
	"context"
	"errors"
	"fmt"

	"github.com/Artiqlate/gpsshare/transmission"
	"github.com/Artiqlate/gpsshare/utils"
	"github.com/hashicorp/mdns"
)

var (
	mdnsNewServer         = mdns.NewServer
	defaultAvailableIPv4s = transmission.AvailableIPAddresses
	availableIPv4s        = defaultAvailableIPv4s
)

// MDNSDiscovery is the hashicorp/mdns flavour of ZeroconfDiscovery.
type MDNSDiscovery struct {
	name   string
	port   uint16
	server *mdns.Server
}

func NewMDNSDiscovery(name string, port uint16) *MDNSDiscovery {
	return &MDNSDiscovery{name: name, port: port}
}

func (md *MDNSDiscovery) Publish(_ context.Context) error {
	ips, ipsErr := availableIPv4s()
	if ipsErr != nil {
		return fmt.Errorf("mdns: local addresses: %w", ipsErr)
	}
	if len(ips) == 0 {
		return errors.New("mdns: no usable IPv4 address")
	}
	service, serviceErr := mdns.NewMDNSService(md.name, Service, "", "", int(md.port), ips, nil)
	if serviceErr != nil {
		return fmt.Errorf("mdns: service: %w", serviceErr)
	}
	server, serverErr := mdnsNewServer(&mdns.Config{Zone: service})
	if serverErr != nil {
		return fmt.Errorf("mdns: server: %w", serverErr)
	}
	md.server = server
	utils.LogFunc("ND", "mdns: %s.%s on port %d (%v)", md.name, Service, md.port, ips)
	return nil
}

func (md *MDNSDiscovery) Shutdown() {
	if md.server == nil {
		return
	}
	if shutdownErr := md.server.Shutdown(); shutdownErr != nil {
		utils.LogFunc("ND", "mdns: shutdown: %v", shutdownErr)
	}
	md.server = nil
}
