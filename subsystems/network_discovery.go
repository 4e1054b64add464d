package subsystems

import (
	"context"

	"github.com/Artiqlate/gpsshare/utils"
)

const (
	InstanceName = "gps-share"
	Service      = "_nmea-0183._tcp"
	Domain       = "local."
)

// NetworkDiscovery advertises the NMEA-0183 TCP service on the local network.
type NetworkDiscovery interface {
	Publish(ctx context.Context) error
	Shutdown()
}

type avahiPublisher interface {
	Publish(port uint16) error
	PublishConfirmed(ctx context.Context, port uint16) error
	Close() error
}

// AvahiDiscovery hands the record to avahi-daemon.
type AvahiDiscovery struct {
	client  avahiPublisher
	port    uint16
	confirm bool
}

func NewAvahiDiscovery(client avahiPublisher, port uint16, confirm bool) *AvahiDiscovery {
	return &AvahiDiscovery{client: client, port: port, confirm: confirm}
}

func (ad *AvahiDiscovery) Publish(ctx context.Context) error {
	utils.LogFunc("ND", "avahi: publishing %s on port %d (confirm=%t)", Service, ad.port, ad.confirm)
	if ad.confirm {
		return ad.client.PublishConfirmed(ctx, ad.port)
	}
	return ad.client.Publish(ad.port)
}

// Shutdown drops the bus connection; avahi-daemon removes the group with it.
func (ad *AvahiDiscovery) Shutdown() {
	if closeErr := ad.client.Close(); closeErr != nil {
		utils.LogFunc("ND", "avahi: close: %v", closeErr)
	}
}
