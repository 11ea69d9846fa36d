package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/kaspanet/hdkeychain/infrastructure/config"
	"github.com/kaspanet/hdkeychain/infrastructure/logger"
	"github.com/kaspanet/hdkeychain/version"
	"github.com/pkg/errors"
)

const (
	masterSubCmd  = "master"
	deriveSubCmd  = "derive"
	neuterSubCmd  = "neuter"
	inspectSubCmd = "inspect"
)

type configFlags struct {
	ShowVersion bool `short:"V" long:"version" description:"Display version information and exit"`
	config.LogFlags
}

type masterConfig struct {
	Seed string `long:"seed" short:"s" description:"The seed to create the master key from (encoded in hex, 16 to 64 bytes). Read from the terminal if omitted"`
	config.NetworkFlags
}

type deriveConfig struct {
	Key     string `long:"key" short:"k" description:"The extended key to derive from (xprv, xpub, tprv or tpub). Read from the terminal if omitted"`
	Path    string `long:"path" short:"p" description:"The derivation path, e.g. m/44'/0'/0' (use M/... for public output)" required:"true"`
	First   uint32 `long:"first" description:"The first child index to derive below the path when --count is set"`
	Count   uint32 `long:"count" short:"n" description:"Derive this many consecutive children below the path and print their public keys and addresses"`
	Workers int    `long:"workers" description:"Number of goroutines deriving children when --count is set (defaults to the number of CPUs)"`
}

type neuterConfig struct {
	Key string `long:"key" short:"k" description:"The extended private key to neuter. Read from the terminal if omitted"`
}

type inspectConfig struct {
	Key string `long:"key" short:"k" description:"The extended key to inspect. Read from the terminal if omitted"`
}

func parseCommandLine() (subCommand string, config interface{}) {
	cfg := &configFlags{}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)
	parser.SubcommandsOptional = true

	masterConf := &masterConfig{}
	parser.AddCommand(masterSubCmd, "Creates a master key from a seed",
		"Creates a BIP32 master key from a seed and prints its private and public forms", masterConf)

	deriveConf := &deriveConfig{}
	parser.AddCommand(deriveSubCmd, "Derives a descendant of an extended key",
		"Derives the descendant of an extended key along a path, or a range of children below it", deriveConf)

	neuterConf := &neuterConfig{}
	parser.AddCommand(neuterSubCmd, "Prints the public form of an extended private key",
		"Prints the public form of an extended private key", neuterConf)

	inspectConf := &inspectConfig{}
	parser.AddCommand(inspectSubCmd, "Prints the fields of an extended key",
		"Prints the network, depth, parent fingerprint, child index, chain code, identifiers and address of an extended key",
		inspectConf)

	_, err := parser.Parse()

	if err != nil {
		var flagsErr *flags.Error
		if ok := errors.As(err, &flagsErr); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		} else {
			os.Exit(1)
		}
		return "", nil
	}

	if cfg.ShowVersion {
		fmt.Println("hdkey version", version.Version())
		os.Exit(0)
	}

	if parser.Active == nil {
		parser.WriteHelp(os.Stderr)
		os.Exit(1)
	}

	err = cfg.ResolveLogging()
	if err != nil {
		printErrorAndExit(err)
	}

	switch parser.Command.Active.Name {
	case masterSubCmd:
		err := masterConf.ResolveNetwork(parser)
		if err != nil {
			printErrorAndExit(err)
		}
		config = masterConf
	case deriveSubCmd:
		config = deriveConf
	case neuterSubCmd:
		config = neuterConf
	case inspectSubCmd:
		config = inspectConf
	}

	log.Debugf("Running %s with log levels %s", parser.Command.Active.Name, logger.LogLevelsString())
	return parser.Command.Active.Name, config
}
