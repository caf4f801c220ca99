package ip

import (
	"encoding/hex"
	"net"
	"runtime"
)

// IPv4 returns the first non-loopback ipv4 address of the host, or nil.
func IPv4() net.IP {
	if runtime.GOOS == "windows" {
		return nil
	}
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return nil
	}

	for _, addr := range addrs {
		if ipNet, ok := addr.(*net.IPNet); ok && !ipNet.IP.IsLoopback() {
			if ipv4 := ipNet.IP.To4(); ipv4 != nil {
				return ipv4
			}
		}
	}

	return nil
}

func IPv4Hex() string {
	ipv4 := IPv4()
	if ipv4 == nil {
		return "00000000"
	}
	return hex.EncodeToString(ipv4)
}
