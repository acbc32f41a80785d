// Package privacy reduces client addresses to their network before they are
// logged, so identity events never carry a full IP.
package privacy

import (
	"net"
	"net/netip"
)

const (
	ipv4Bits = 24
	ipv6Bits = 48
)

// ClientNetwork masks the host part of an address: IPv4 to /24 and IPv6 to
// /48. remoteAddr may carry a port. Forwarding headers are not consulted.
// Unparseable input yields "unknown".
func ClientNetwork(remoteAddr string) string {
	host := remoteAddr
	if h, _, err := net.SplitHostPort(remoteAddr); err == nil {
		host = h
	}
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return "unknown"
	}
	addr = addr.Unmap().WithZone("")

	bits := ipv6Bits
	if addr.Is4() {
		bits = ipv4Bits
	}
	prefix, err := addr.Prefix(bits)
	if err != nil {
		return "unknown"
	}
	return prefix.String()
}
