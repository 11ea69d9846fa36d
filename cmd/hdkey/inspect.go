package main

import (
	"fmt"
)

func inspect(conf *inspectConfig) error {
	key, err := parseKeyArgument(conf.Key)
	if err != nil {
		return err
	}
	defer key.Zero()

	publicKey, err := key.PublicKeyBytes()
	if err != nil {
		return err
	}
	address, err := key.Address()
	if err != nil {
		return err
	}

	keyType := "public"
	if key.IsPrivate() {
		keyType = "private"
	}
	parentFingerprint := key.ParentFingerprint()
	fingerprint := key.Fingerprint()

	fmt.Printf("Network:            %s\n", key.Network())
	fmt.Printf("Type:               %s\n", keyType)
	fmt.Printf("Depth:              %d\n", key.Depth())
	fmt.Printf("Parent fingerprint: %x\n", parentFingerprint[:])
	fmt.Printf("Child index:        %s\n", formatIndex(key.ChildIndex()))
	fmt.Printf("Chain code:         %x\n", key.ChainCode())
	fmt.Printf("Fingerprint:        %x\n", fingerprint[:])
	fmt.Printf("ID:                 %x\n", key.ID())
	fmt.Printf("Public key:         %x\n", publicKey)
	fmt.Printf("Address:            %s\n", address)
	return nil
}
