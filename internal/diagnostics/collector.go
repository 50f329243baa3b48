// =============================================================================
// Compute Sales - Diagnostics Collector
// =============================================================================
//
// The Collector is the run-wide list of recoverable problems found in the
// input data. Validation code never returns Go errors for data-shape problems;
// it records a human-readable message here and moves on to the next record.
//
// RULES:
//   - Messages are kept in the order they were added
//   - Messages are never removed or rewritten during a run
//   - One Collector is created per run and passed by pointer to each stage
//
// =============================================================================

package diagnostics

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Collector is an append-only, ordered list of diagnostic messages.
// The zero value is ready to use and does not log.
type Collector struct {
	messages []string
	logger   *zerolog.Logger
}

// New creates a Collector that also logs every message at debug level.
// A nil logger disables logging.
func New(logger *zerolog.Logger) *Collector {
	return &Collector{logger: logger}
}

// Add records a message.
func (c *Collector) Add(msg string) {
	c.messages = append(c.messages, msg)
	if c.logger != nil {
		c.logger.Debug().Int("seq", len(c.messages)).Msg(msg)
	}
}

// Addf formats and records a message.
func (c *Collector) Addf(format string, args ...any) {
	c.Add(fmt.Sprintf(format, args...))
}

// Messages returns a copy of the recorded messages.
func (c *Collector) Messages() []string {
	out := make([]string, len(c.messages))
	copy(out, c.messages)
	return out
}

// Len returns the number of recorded messages.
func (c *Collector) Len() int {
	return len(c.messages)
}

// Empty reports whether no message has been recorded.
func (c *Collector) Empty() bool {
	return len(c.messages) == 0
}
