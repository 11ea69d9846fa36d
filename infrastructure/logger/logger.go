package logger

import (
	"bytes"
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

// logEntry is a formatted log line together with the level it was logged
// at, so that each writer can filter it.
type logEntry struct {
	log   []byte
	level Level
}

// Logger writes the messages of one subsystem to a Backend. Messages below
// the logger's level are discarded before they are formatted.
type Logger struct {
	level uint32 // atomic
	tag   string
	b     *Backend
}

// callsiteDepth is the number of stack frames between a log call and
// runtime.Caller in Logger.write.
const callsiteDepth = 2

func (l *Logger) write(level Level, message string) {
	if l.Level() > level || !l.b.IsRunning() {
		return
	}

	var file string
	var line int
	if l.b.flag&(LogFlagShortFile|LogFlagLongFile) != 0 {
		_, file, line, _ = runtime.Caller(callsiteDepth)
	}

	buf := &bytes.Buffer{}
	formatHeader(buf, l.b.flag, time.Now(), level, l.tag, file, line)
	buf.WriteString(message)
	if !strings.HasSuffix(message, "\n") {
		buf.WriteByte('\n')
	}

	l.b.send(logEntry{log: buf.Bytes(), level: level})
}

// formatHeader writes "2006-01-02 15:04:05.000 [LVL] TAG: " and the
// callsite if the backend flags ask for it.
func formatHeader(buf *bytes.Buffer, flags uint32, t time.Time, level Level, tag, file string, line int) {
	buf.WriteString(t.Format("2006-01-02 15:04:05.000"))
	buf.WriteString(" [")
	buf.WriteString(level.String())
	buf.WriteString("] ")
	buf.WriteString(tag)
	if file != "" {
		if flags&LogFlagShortFile != 0 {
			file = file[strings.LastIndexByte(file, '/')+1:]
		}
		fmt.Fprintf(buf, " %s:%d", file, line)
	}
	buf.WriteString(": ")
}

// Tracef formats message according to format specifier and writes to log
// with LevelTrace.
func (l *Logger) Tracef(format string, params ...interface{}) {
	l.write(LevelTrace, fmt.Sprintf(format, params...))
}

// Debugf formats message according to format specifier and writes to log
// with LevelDebug.
func (l *Logger) Debugf(format string, params ...interface{}) {
	l.write(LevelDebug, fmt.Sprintf(format, params...))
}

// Infof formats message according to format specifier and writes to log with
// LevelInfo.
func (l *Logger) Infof(format string, params ...interface{}) {
	l.write(LevelInfo, fmt.Sprintf(format, params...))
}

// Warnf formats message according to format specifier and writes to log with
// LevelWarn.
func (l *Logger) Warnf(format string, params ...interface{}) {
	l.write(LevelWarn, fmt.Sprintf(format, params...))
}

// Errorf formats message according to format specifier and writes to log
// with LevelError.
func (l *Logger) Errorf(format string, params ...interface{}) {
	l.write(LevelError, fmt.Sprintf(format, params...))
}

// Criticalf formats message according to format specifier and writes to log
// with LevelCritical.
func (l *Logger) Criticalf(format string, params ...interface{}) {
	l.write(LevelCritical, fmt.Sprintf(format, params...))
}

// Trace formats message using the default formats for its operands and
// writes to log with LevelTrace.
func (l *Logger) Trace(args ...interface{}) {
	l.write(LevelTrace, fmt.Sprint(args...))
}

// Debug formats message using the default formats for its operands and
// writes to log with LevelDebug.
func (l *Logger) Debug(args ...interface{}) {
	l.write(LevelDebug, fmt.Sprint(args...))
}

// Info formats message using the default formats for its operands and
// writes to log with LevelInfo.
func (l *Logger) Info(args ...interface{}) {
	l.write(LevelInfo, fmt.Sprint(args...))
}

// Warn formats message using the default formats for its operands and
// writes to log with LevelWarn.
func (l *Logger) Warn(args ...interface{}) {
	l.write(LevelWarn, fmt.Sprint(args...))
}

// Error formats message using the default formats for its operands and
// writes to log with LevelError.
func (l *Logger) Error(args ...interface{}) {
	l.write(LevelError, fmt.Sprint(args...))
}

// Critical formats message using the default formats for its operands and
// writes to log with LevelCritical.
func (l *Logger) Critical(args ...interface{}) {
	l.write(LevelCritical, fmt.Sprint(args...))
}

// Level returns the current logging level.
func (l *Logger) Level() Level {
	return Level(atomic.LoadUint32(&l.level))
}

// SetLevel changes the logging level to the passed level.
func (l *Logger) SetLevel(level Level) {
	atomic.StoreUint32(&l.level, uint32(level))
}

// Backend returns the backend the logger writes to.
func (l *Logger) Backend() *Backend {
	return l.b
}

// Tag returns the subsystem tag of the logger.
func (l *Logger) Tag() string {
	return l.tag
}
