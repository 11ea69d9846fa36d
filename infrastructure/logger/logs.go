package logger

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// BackendLog is the backend every registered subsystem writes to.
var BackendLog = NewBackend()

var (
	subsystemLoggers     = make(map[string]*Logger)
	subsystemLoggersLock sync.Mutex
)

// RegisterSubSystem returns the logger of the given subsystem, creating it
// on BackendLog if needed. Packages call it once from a package level
// variable.
func RegisterSubSystem(subsystem string) *Logger {
	subsystemLoggersLock.Lock()
	defer subsystemLoggersLock.Unlock()

	logger, ok := subsystemLoggers[subsystem]
	if !ok {
		logger = BackendLog.Logger(subsystem)
		subsystemLoggers[subsystem] = logger
	}
	return logger
}

// InitLog attaches a log file receiving every level and an error log file
// receiving warnings and above to BackendLog, and starts it. Either path
// may be empty.
func InitLog(logFile, errLogFile string) error {
	if logFile != "" {
		err := BackendLog.AddLogFile(logFile, LevelTrace)
		if err != nil {
			return errors.Wrapf(err, "error adding log file %s", logFile)
		}
	}
	if errLogFile != "" {
		err := BackendLog.AddLogFile(errLogFile, LevelWarn)
		if err != nil {
			return errors.Wrapf(err, "error adding error log file %s", errLogFile)
		}
	}
	return nil
}

// InitLogStderr makes BackendLog write entries at or above logLevel to the
// standard error. Standard output is left to the program's results.
func InitLogStderr(logLevel Level) error {
	return BackendLog.AddLogWriter(os.Stderr, logLevel)
}

// SetLogLevel sets the level of the given subsystem. Unknown subsystems are
// ignored; an unknown level falls back to info.
func SetLogLevel(subsystemID string, logLevel string) {
	subsystemLoggersLock.Lock()
	defer subsystemLoggersLock.Unlock()

	logger, ok := subsystemLoggers[subsystemID]
	if !ok {
		return
	}
	level, _ := LevelFromString(logLevel)
	logger.SetLevel(level)
}

// SetLogLevels sets the level of every registered subsystem.
func SetLogLevels(logLevel string) {
	for _, subsystemID := range SupportedSubsystems() {
		SetLogLevel(subsystemID, logLevel)
	}
}

// SupportedSubsystems returns the sorted tags of the registered subsystems.
func SupportedSubsystems() []string {
	subsystemLoggersLock.Lock()
	defer subsystemLoggersLock.Unlock()

	subsystems := make([]string, 0, len(subsystemLoggers))
	for subsystemID := range subsystemLoggers {
		subsystems = append(subsystems, subsystemID)
	}
	sort.Strings(subsystems)
	return subsystems
}

func isSupportedSubsystem(subsystemID string) bool {
	subsystemLoggersLock.Lock()
	defer subsystemLoggersLock.Unlock()

	_, ok := subsystemLoggers[subsystemID]
	return ok
}

// ParseAndSetLogLevels accepts either a single level applied to every
// subsystem, or a comma separated list of subsystem=level pairs.
func ParseAndSetLogLevels(logLevel string) error {
	if !strings.Contains(logLevel, ",") && !strings.Contains(logLevel, "=") {
		if _, ok := LevelFromString(logLevel); !ok {
			return errors.Errorf("the specified log level [%s] is invalid", logLevel)
		}
		SetLogLevels(logLevel)
		return nil
	}

	for _, pair := range strings.Split(logLevel, ",") {
		fields := strings.Split(pair, "=")
		if len(fields) != 2 {
			return errors.Errorf("the specified log level pair [%s] is not of the form subsystem=level", pair)
		}
		subsystemID, level := fields[0], fields[1]
		if !isSupportedSubsystem(subsystemID) {
			return errors.Errorf("the specified subsystem [%s] is invalid; supported subsystems are %s",
				subsystemID, strings.Join(SupportedSubsystems(), ", "))
		}
		if _, ok := LevelFromString(level); !ok {
			return errors.Errorf("the specified log level [%s] is invalid", level)
		}
		SetLogLevel(subsystemID, level)
	}
	return nil
}

// LogLevelsString returns the current level of every subsystem, for
// diagnostics.
func LogLevelsString() string {
	subsystems := SupportedSubsystems()
	levels := make([]string, len(subsystems))
	for i, subsystemID := range subsystems {
		levels[i] = fmt.Sprintf("%s=%s", subsystemID, RegisterSubSystem(subsystemID).Level())
	}
	return strings.Join(levels, ",")
}
