package report

import "sync"

// reporter is responsible for reporting errors, warnings, and other kinds of
// messages to the user during program execution.  The reporter respects the
// set log level and is synchronized: its methods can be safely called from
// multiple goroutines.
type reporter struct {
	// The mutex used to synchronize different report calls.
	m *sync.Mutex

	// The selected log level of the reporter.  This must be one of the
	// enumerated log levels below.
	logLevel int

	// The number of errors reported so far.
	errorCount int
}

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors to the user.
	LogLevelVerbose        // Displays all messages to the user (default).
)

// rep is the global reporter instance.
var rep = &reporter{m: &sync.Mutex{}, logLevel: LogLevelVerbose}

// InitReporter initializes the global reporter to the given log level.
func InitReporter(logLevel int) {
	rep = &reporter{m: &sync.Mutex{}, logLevel: logLevel}
}

// ShouldProceed indicates whether or not there have been any errors that
// should cause the current run to stop at the current phase.
func ShouldProceed() bool {
	return rep.errorCount == 0
}

// ErrorCount returns the number of errors reported so far.
func ErrorCount() int {
	return rep.errorCount
}
