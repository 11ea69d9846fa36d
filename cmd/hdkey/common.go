package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/kaspanet/hdkeychain/domain/hdkey"
	"github.com/kaspanet/hdkeychain/infrastructure/logger"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

func printErrorAndExit(err error) {
	log.Debugf("Exiting with error: %+v", err)
	logger.BackendLog.Close()
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

// readSecret reads a line from the standard input. When the input is a
// terminal the line is not echoed and the terminal state is restored if the
// process is interrupted.
func readSecret(prompt string) ([]byte, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		line, err := bufio.NewReader(os.Stdin).ReadBytes('\n')
		if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
			return nil, errors.Wrap(err, "error reading from the standard input")
		}
		return bytes.TrimSpace(line), nil
	}

	initialTermState, err := term.GetState(fd)
	if err != nil {
		return nil, errors.Wrap(err, "error getting the terminal state")
	}

	interrupt := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(interrupt, os.Interrupt)
	spawn("restoreTerminalOnInterrupt", func() {
		select {
		case <-interrupt:
			_ = term.Restore(fd, initialTermState)
			os.Exit(1)
		case <-done:
		}
	})
	defer func() {
		signal.Stop(interrupt)
		close(done)
	}()

	fmt.Fprint(os.Stderr, prompt)
	secret, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, errors.Wrap(err, "error reading from the terminal")
	}
	return bytes.TrimSpace(secret), nil
}

// parseKeyArgument parses the given extended key, reading it from the
// standard input if it is empty.
func parseKeyArgument(keyString string) (*hdkey.ExtendedKey, error) {
	if keyString == "" {
		keyBytes, err := readSecret("Enter the extended key: ")
		if err != nil {
			return nil, err
		}
		keyString = string(keyBytes)
	}
	return hdkey.FromString(strings.TrimSpace(keyString))
}

func printKey(key *hdkey.ExtendedKey) error {
	if key.IsPrivate() {
		privateText, err := key.Text(true)
		if err != nil {
			return err
		}
		fmt.Printf("Private key: %s\n", privateText)
	}
	publicText, err := key.Text(false)
	if err != nil {
		return err
	}
	fmt.Printf("Public key:  %s\n", publicText)
	return nil
}

// formatIndex formats a child index the way it appears in a path.
func formatIndex(index uint32) string {
	if index >= hdkey.HardenedKeyStart {
		return fmt.Sprintf("%d'", index-hdkey.HardenedKeyStart)
	}
	return fmt.Sprintf("%d", index)
}
