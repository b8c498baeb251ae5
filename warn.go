package boule

import (
	"os"

	kitlog "github.com/go-kit/kit/log"
)

var warnLogger = defaultWarnLogger()

func defaultWarnLogger() kitlog.Logger {
	return kitlog.With(kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr)), "pkg", "boule")
}

// SetWarningLogger replaces the sink used for non-fatal construction
// warnings, such as a negative gravitational constant. Passing nil restores
// the default logfmt logger on stderr.
func SetWarningLogger(l kitlog.Logger) {
	if l == nil {
		l = defaultWarnLogger()
	}
	warnLogger = l
}

func warn(keyvals ...interface{}) {
	warnLogger.Log(keyvals...)
}
