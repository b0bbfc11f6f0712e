package report

import (
	"fmt"
	"os"
)

// ReportCompileError reports an error in the input program.  The path is the
// path to the erroneous source file.  If the error is a *CompileError carrying
// a span, the offending source text is displayed beneath the message.
func ReportCompileError(path string, err error) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.errorCount++

	if rep.logLevel < LogLevelError {
		return
	}

	if cerr, ok := err.(*CompileError); ok {
		displayCompileError(path, cerr)
	} else {
		displayStdError(path, err)
	}
}

// ReportFatal reports a fatal error and exits the program.  These are expected
// errors that generally result from invalid configuration of some form:
// missing input file, malformed module manifest, etc.
func ReportFatal(msg string, args ...interface{}) {
	if rep.logLevel > LogLevelSilent {
		displayFatal(fmt.Sprintf(msg, args...))
	}

	os.Exit(1)
}

// ReportICE reports an internal error.  These are errors that specifically
// result from a bug or unexpected condition inside the tool itself: they are
// not intended to ever happen.  These errors are always displayed regardless
// of log level.
func ReportICE(msg string, args ...interface{}) {
	displayICE(fmt.Sprintf(msg, args...))

	os.Exit(-1)
}

// ReportWarning reports a non-fatal warning.
func ReportWarning(msg string, args ...interface{}) {
	if rep.logLevel == LogLevelVerbose {
		displayWarning(fmt.Sprintf(msg, args...))
	}
}

// LogInfo displays an informational message if the log level permits it.
func LogInfo(tag, msg string) {
	if rep.logLevel == LogLevelVerbose {
		displayInfoMessage(tag, msg)
	}
}
