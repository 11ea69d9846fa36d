package main

import (
	"github.com/kaspanet/hdkeychain/infrastructure/logger"
	"github.com/kaspanet/hdkeychain/util/panics"
	"github.com/pkg/errors"
)

func main() {
	defer panics.HandlePanic(log, "main", nil)

	subCmd, config := parseCommandLine()
	defer logger.BackendLog.Close()

	var err error
	switch subCmd {
	case masterSubCmd:
		err = master(config.(*masterConfig))
	case deriveSubCmd:
		err = derive(config.(*deriveConfig))
	case neuterSubCmd:
		err = neuter(config.(*neuterConfig))
	case inspectSubCmd:
		err = inspect(config.(*inspectConfig))
	default:
		err = errors.Errorf("Unknown sub-command '%s'\n", subCmd)
	}

	if err != nil {
		printErrorAndExit(err)
	}
}
