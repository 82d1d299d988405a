package signalscope

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates the inspector's logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "signalscope",
	})
}

// scanStats holds timing and counts for one scan+layout pass.
// Only logged when the DebugSummary config option is set.
type scanStats struct {
	scanTime   time.Duration
	layoutTime time.Duration
	nodes      int
	cards      int
	edges      int
	omitted    int
}

// drawStats holds per-redraw counters. Only logged when DebugSummary is set.
type drawStats struct {
	edges       int
	cards       int
	textSkipped int
	drawTime    time.Duration
}

func logScanSummary(l *log.Logger, s scanStats) {
	l.Info("scan complete",
		"nodes", s.nodes,
		"cards", s.cards,
		"edges", s.edges,
		"omitted", s.omitted,
		"scan", s.scanTime.Round(time.Microsecond),
		"layout", s.layoutTime.Round(time.Microsecond),
	)
}

func logDrawSummary(l *log.Logger, s drawStats) {
	l.Debug("redraw",
		"edges", s.edges,
		"cards", s.cards,
		"text_skipped", s.textSkipped,
		"draw", s.drawTime.Round(time.Microsecond),
	)
}
