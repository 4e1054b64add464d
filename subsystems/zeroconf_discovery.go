package subsystems

import (
	"context"

	"github.com/Artiqlate/gpsshare/transmission"
	"github.com/Artiqlate/gpsshare/utils"
	"github.com/grandcat/zeroconf"
)

var zeroconfRegister = zeroconf.Register

// ZeroconfDiscovery answers mDNS queries in-process, without avahi-daemon.
type ZeroconfDiscovery struct {
	name   string
	port   uint16
	server *zeroconf.Server
}

func NewZeroconfDiscovery(name string, port uint16) *ZeroconfDiscovery {
	return &ZeroconfDiscovery{name: name, port: port}
}

func (zd *ZeroconfDiscovery) Publish(_ context.Context) error {
	ifaces, ifacesErr := transmission.AvailableInterfaces()
	if ifacesErr != nil {
		return ifacesErr
	}
	zcServer, registerErr := zeroconfRegister(
		zd.name,
		Service,
		Domain,
		int(zd.port),
		nil,
		ifaces,
	)
	if registerErr != nil {
		return registerErr
	}
	zd.server = zcServer
	utils.LogFunc("ND", "zeroconf: %s.%s%s on port %d, %d interfaces", zd.name, Service, Domain, zd.port, len(ifaces))
	return nil
}

func (zd *ZeroconfDiscovery) Shutdown() {
	if zd.server != nil {
		zd.server.Shutdown()
		zd.server = nil
	}
}
