package main

import (
	"fmt"
)

func neuter(conf *neuterConfig) error {
	key, err := parseKeyArgument(conf.Key)
	if err != nil {
		return err
	}
	defer key.Zero()

	publicKey, err := key.Neuter()
	if err != nil {
		return err
	}
	publicText, err := publicKey.Text(false)
	if err != nil {
		return err
	}
	fmt.Println(publicText)
	return nil
}
