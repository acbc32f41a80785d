package privacy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientNetwork(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "ipv4 with port", input: "192.168.1.47:51234", want: "192.168.1.0/24"},
		{name: "ipv4 bare", input: "10.0.0.9", want: "10.0.0.0/24"},
		{name: "ipv4 mapped ipv6", input: "[::ffff:172.16.50.255]:443", want: "172.16.50.0/24"},
		{name: "ipv6 with port", input: "[2001:db8:85a3::8a2e:370:7334]:8080", want: "2001:db8:85a3::/48"},
		{name: "ipv6 zone dropped", input: "fe80::1%eth0", want: "fe80::/48"},
		{name: "loopback", input: "[::1]:80", want: "::/48"},
		{name: "empty", input: "", want: "unknown"},
		{name: "hostname", input: "example.com:80", want: "unknown"},
		{name: "partial", input: "192.168.1", want: "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClientNetwork(tt.input))
		})
	}
}

func TestClientNetworkGroupsHostsOfOneNetwork(t *testing.T) {
	assert.Equal(t, ClientNetwork("192.168.1.1:1"), ClientNetwork("192.168.1.254:2"))
	assert.NotEqual(t, ClientNetwork("192.168.1.1:1"), ClientNetwork("192.168.2.1:1"))
}
