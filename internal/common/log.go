package common

import (
	"fmt"
	"io"
	"os"
	"time"
)

// LoggingEnabled controls whether Logf produces output. Off by default so
// library callers see nothing unless they opt in.
var LoggingEnabled = false

// LogOutput receives everything written by Logf.
var LogOutput io.Writer = os.Stdout

// Logf prints a formatted message if logging is enabled.
func Logf(format string, args ...any) {
	if LoggingEnabled {
		fmt.Fprintf(LogOutput, format, args...)
	}
}

// throughput describes ops operations completed in elapsed time.
type throughput struct {
	ops     int
	elapsed time.Duration
}

func (t throughput) String() string {
	if t.ops <= 0 || t.elapsed <= 0 {
		return fmt.Sprintf("%d ops in %s", t.ops, t.elapsed)
	}
	perOp := t.elapsed / time.Duration(t.ops)
	rate := float64(t.ops) / t.elapsed.Seconds()

	var rateStr string
	switch {
	case rate >= 1e6:
		rateStr = fmt.Sprintf("%.2f Mop/s", rate/1e6)
	case rate >= 1e3:
		rateStr = fmt.Sprintf("%.2f Kop/s", rate/1e3)
	default:
		rateStr = fmt.Sprintf("%.2f op/s", rate)
	}
	return fmt.Sprintf("%d ops in %s, %s/op, %s", t.ops, t.elapsed, perOp, rateStr)
}

// LogThroughput prints a message followed by how many operations ran since
// start and at what rate.
func LogThroughput(start time.Time, ops int, format string, args ...any) {
	if !LoggingEnabled {
		return
	}
	msg := fmt.Sprintf(format, args...)
	Logf("%s [%s]\n", msg, throughput{ops: ops, elapsed: time.Since(start)})
}
