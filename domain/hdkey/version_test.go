package hdkey

import (
	"errors"
	"testing"
)

func TestVersionRegistry(t *testing.T) {
	tests := []struct {
		network   Network
		isPrivate bool
		version   KeyVersion
		hex       string
	}{
		{Mainnet, true, MainnetPrivate, "0488ade4"},
		{Mainnet, false, MainnetPublic, "0488b21e"},
		{Testnet, true, TestnetPrivate, "04358394"},
		{Testnet, false, TestnetPublic, "043587cf"},
	}

	for _, test := range tests {
		version, err := VersionFor(test.network, test.isPrivate)
		if err != nil {
			t.Fatalf("VersionFor: %+v", err)
		}
		if version != test.version || version.String() != test.hex {
			t.Fatalf("%s (private: %t): expected version %s but got %s",
				test.network, test.isPrivate, test.hex, version)
		}

		network, isPrivate, err := LookupVersion(version)
		if err != nil {
			t.Fatalf("LookupVersion: %+v", err)
		}
		if network != test.network || isPrivate != test.isPrivate {
			t.Fatalf("version %s: expected %s (private: %t) but got %s (private: %t)",
				version, test.network, test.isPrivate, network, isPrivate)
		}
	}

	_, _, err := LookupVersion(KeyVersion{})
	if !errors.Is(err, ErrUnknownVersion) {
		t.Fatalf("expected ErrUnknownVersion but got %v", err)
	}
	_, err = VersionFor(Network(9), true)
	if !errors.Is(err, ErrUnknownVersion) {
		t.Fatalf("expected ErrUnknownVersion but got %v", err)
	}
}

func TestParseNetwork(t *testing.T) {
	tests := []struct {
		name     string
		expected Network
		valid    bool
	}{
		{"mainnet", Mainnet, true},
		{"Testnet", Testnet, true},
		{"TESTNET", Testnet, true},
		{"simnet", 0, false},
		{"", 0, false},
	}

	for _, test := range tests {
		network, err := ParseNetwork(test.name)
		if !test.valid {
			if err == nil {
				t.Fatalf("%q: expected an error", test.name)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: ParseNetwork: %+v", test.name, err)
		}
		if network != test.expected {
			t.Fatalf("%q: expected %s but got %s", test.name, test.expected, network)
		}
	}

	if Network(9).String() != "unknown" {
		t.Fatalf("unexpected name %s for an unknown network", Network(9))
	}
}
