package hdkey

import (
	"strings"

	"github.com/pkg/errors"
)

// Network selects the version prefixes an extended key is serialized with.
type Network uint8

// Supported networks.
const (
	Mainnet Network = iota
	Testnet
)

var networkNames = map[Network]string{
	Mainnet: "mainnet",
	Testnet: "testnet",
}

// String returns the lowercase name of the network.
func (n Network) String() string {
	name, ok := networkNames[n]
	if !ok {
		return "unknown"
	}
	return name
}

// ParseNetwork returns the network with the given name.
func ParseNetwork(name string) (Network, error) {
	for network, networkName := range networkNames {
		if strings.EqualFold(name, networkName) {
			return network, nil
		}
	}
	return 0, errors.Errorf("unknown network %q", name)
}

func (n Network) isValid() bool {
	_, ok := networkNames[n]
	return ok
}
