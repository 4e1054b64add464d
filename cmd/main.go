package main

import (
	"flag"
	"log"
	"math"

	"github.com/Artiqlate/gpsshare"
	"github.com/Artiqlate/gpsshare/subsystems"
)

func main() {
	port := flag.Uint("port", 10110, "TCP port serving NMEA-0183 data")
	backend := flag.String("backend", string(subsystems.BackendAvahi), "Discovery backend: avahi, zeroconf or mdns")
	name := flag.String("name", subsystems.InstanceName, "Instance name (zeroconf and mdns backends)")
	confirm := flag.Bool("confirm", false, "Wait for avahi-daemon to confirm the service")
	flag.Parse()

	if *port == 0 || *port > math.MaxUint16 {
		log.Fatalf("invalid port: %d", *port)
	}

	serv, servErr := gpsshare.NewServerModule(gpsshare.ServerConfig{
		Port:    uint16(*port),
		Backend: subsystems.Backend(*backend),
		Name:    *name,
		Confirm: *confirm,
	})
	if servErr != nil {
		log.Fatalf("Server error: %v", servErr)
	}
	if runErr := serv.Run(); runErr != nil {
		log.Fatalf("Server error: %v", runErr)
	}
}
