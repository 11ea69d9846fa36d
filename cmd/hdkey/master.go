package main

import (
	"bytes"
	"encoding/hex"

	"github.com/kaspanet/hdkeychain/domain/ecc"
	"github.com/kaspanet/hdkeychain/domain/hdkey"
	"github.com/pkg/errors"
)

func master(conf *masterConfig) error {
	seedHex := []byte(conf.Seed)
	if conf.Seed == "" {
		var err error
		seedHex, err = readSecret("Enter the seed (hex): ")
		if err != nil {
			return err
		}
	}
	seedHex = bytes.TrimSpace(seedHex)
	defer ecc.Zero(seedHex)

	seed := make([]byte, hex.DecodedLen(len(seedHex)))
	defer ecc.Zero(seed)
	_, err := hex.Decode(seed, seedHex)
	if err != nil {
		return errors.Wrap(err, "error decoding the seed")
	}

	masterKey, err := hdkey.NewMaster(seed, conf.ActiveNetwork)
	if err != nil {
		return err
	}
	defer masterKey.Zero()

	return printKey(masterKey)
}
