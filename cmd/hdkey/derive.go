package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/kaspanet/hdkeychain/domain/hdkey"
)

func derive(conf *deriveConfig) error {
	key, err := parseKeyArgument(conf.Key)
	if err != nil {
		return err
	}
	defer key.Zero()

	descendant, err := key.DerivePath(conf.Path)
	if err != nil {
		return err
	}
	if descendant != key {
		defer descendant.Zero()
	}

	if conf.Count == 0 {
		return printKey(descendant)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	children, err := hdkey.DeriveRange(ctx, descendant, conf.First, conf.Count, conf.Workers)
	if err != nil {
		return err
	}

	pathPrefix := strings.TrimSuffix(conf.Path, "/")
	for _, child := range children {
		publicText, err := child.Text(false)
		if err != nil {
			return err
		}
		address, err := child.Address()
		if err != nil {
			return err
		}
		fmt.Printf("%s/%s\t%s\t%s\n", pathPrefix, formatIndex(child.ChildIndex()), publicText, address)
		child.Zero()
	}
	return nil
}
