package config

import (
	"path/filepath"

	"github.com/btcsuite/btcutil"
	"github.com/kaspanet/hdkeychain/infrastructure/logger"
	"github.com/pkg/errors"
)

const (
	defaultLogFilename    = "hdkey.log"
	defaultErrLogFilename = "hdkey_err.log"
	defaultLogLevel       = "info"
)

// DefaultAppDir is the directory log files are written to unless
// overridden.
var DefaultAppDir = btcutil.AppDataDir("hdkey", false)

// LogFlags holds the logging configuration shared by all commands.
type LogFlags struct {
	LogLevel   string `short:"d" long:"loglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical, off} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems"`
	LogDir     string `long:"logdir" description:"Directory to write log files to"`
	NoLogFiles bool   `long:"nologfiles" description:"Log to the standard error only"`
}

// ResolveLogging attaches the configured writers to the logger backend,
// sets the subsystem levels and starts the backend. The caller closes
// logger.BackendLog when done.
func (logFlags *LogFlags) ResolveLogging() error {
	if logFlags.LogLevel == "" {
		logFlags.LogLevel = defaultLogLevel
	}
	if logFlags.LogDir == "" {
		logFlags.LogDir = filepath.Join(DefaultAppDir, "logs")
	}

	if !logFlags.NoLogFiles {
		err := logger.InitLog(filepath.Join(logFlags.LogDir, defaultLogFilename),
			filepath.Join(logFlags.LogDir, defaultErrLogFilename))
		if err != nil {
			return err
		}
	}
	err := logger.InitLogStderr(logger.LevelWarn)
	if err != nil {
		return err
	}

	err = logger.ParseAndSetLogLevels(logFlags.LogLevel)
	if err != nil {
		return errors.Wrap(err, "error parsing --loglevel")
	}

	return logger.BackendLog.Run()
}
