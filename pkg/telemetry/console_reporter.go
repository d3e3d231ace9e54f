package telemetry

import (
	"log"
	"sync"
	"time"
)

// ConsoleReporter logs reported errors to the standard logger, for
// development use without any external dependency.
type ConsoleReporter struct {
	verbose bool
	mu      sync.Mutex
}

// NewConsoleReporter returns a reporter that logs every ReportError call.
// In verbose mode it also logs the breadcrumb trail attached to the
// context.
func NewConsoleReporter(verbose bool) *ConsoleReporter {
	return &ConsoleReporter{verbose: verbose}
}

func (r *ConsoleReporter) ReportError(err error, ctx *ErrorContext) {
	r.mu.Lock()
	defer r.mu.Unlock()

	log.Printf("[kiln] %s error (node %s): %v", ctx.Stage, ctx.NodeID, err)
	if r.verbose {
		for _, bc := range ctx.Breadcrumbs {
			log.Printf("  breadcrumb[%s] %s: %s", bc.Category, bc.Timestamp.Format(time.RFC3339), bc.Message)
		}
	}
}

func (r *ConsoleReporter) Flush(timeout time.Duration) error {
	return nil
}
