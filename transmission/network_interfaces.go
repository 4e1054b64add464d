package transmission

import (
	"net"
)

// usableInterface skips loop-back, down and non-multicast interfaces.
func usableInterface(flags net.Flags) bool {
	return flags&net.FlagLoopback == 0 && flags&net.FlagUp != 0 && flags&net.FlagMulticast != 0
}

// AvailableInterfaces lists the interfaces an mDNS responder can announce on.
func AvailableInterfaces() ([]net.Interface, error) {
	ifaces, ifacesErr := net.Interfaces()
	if ifacesErr != nil {
		return nil, ifacesErr
	}
	var usable []net.Interface
	for _, iface := range ifaces {
		if usableInterface(iface.Flags) {
			usable = append(usable, iface)
		}
	}
	return usable, nil
}

// ipv4Addresses keeps the IPv4 host addresses out of addrs.
func ipv4Addresses(addrs []net.Addr) []net.IP {
	var ips []net.IP
	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok {
			continue
		}
		if ip4 := ipNet.IP.To4(); ip4 != nil && !ip4.IsLoopback() {
			ips = append(ips, ip4)
		}
	}
	return ips
}

// AvailableIPAddresses returns the IPv4 addresses of AvailableInterfaces.
func AvailableIPAddresses() ([]net.IP, error) {
	ifaces, ifacesErr := AvailableInterfaces()
	if ifacesErr != nil {
		return nil, ifacesErr
	}
	var availableIPAddresses []net.IP
	for _, iface := range ifaces {
		addresses, addrErr := iface.Addrs()
		if addrErr != nil {
			return nil, addrErr
		}
		availableIPAddresses = append(availableIPAddresses, ipv4Addresses(addresses)...)
	}
	return availableIPAddresses, nil
}
