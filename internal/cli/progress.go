package cli

import (
	"log"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/codeatlas-io/codeatlas/internal/runner"
)

// CLIProgressReporter implements runner.ProgressReporter with a progress bar.
type CLIProgressReporter struct {
	quiet     bool
	startTime time.Time

	mu  sync.Mutex
	bar *progressbar.ProgressBar
}

// NewCLIProgressReporter creates a new CLI progress reporter.
func NewCLIProgressReporter(quiet bool) *CLIProgressReporter {
	return &CLIProgressReporter{
		quiet:     quiet,
		startTime: time.Now(),
	}
}

func (c *CLIProgressReporter) OnRunStart(totalFiles int) {
	if c.quiet {
		return
	}
	log.Printf("Extracting %d files\n", totalFiles)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.bar = progressbar.NewOptions(totalFiles,
		progressbar.OptionSetDescription("Extracting"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files/s"),
	)
}

func (c *CLIProgressReporter) OnFileDone(path string, err error) {
	if c.quiet {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		log.Printf("warning: %v", err)
	}
	if c.bar != nil {
		c.bar.Add(1)
	}
}

func (c *CLIProgressReporter) OnRunComplete(stats runner.Stats) {
	if c.quiet {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.bar != nil {
		c.bar.Finish()
	}
	log.Printf("\nDone in %v: %d files (%d failed), %d classes, %d methods, %d fields",
		time.Since(c.startTime).Round(time.Millisecond),
		stats.Files, stats.Failed, stats.Classes, stats.Methods, stats.Fields)
}
