package intercept

import (
	"fmt"
	"net"
	"time"

	"github.com/charmbracelet/log"
)

// DestinationKey is the environment variable naming the collector address.
// When it is absent from the environment, reporting is skipped.
const DestinationKey = "CCDB_COLLECTOR_ADDRESS"

// reportTimeout bounds both the connect and the write of a single report.
// An unresponsive collector must not stall the intercepted process.
const reportTimeout = 2 * time.Second

// Reporter sends one event to the collector.
type Reporter interface {
	Report(event *Event) error
}

// TCPReporter reports events over a fresh TCP connection per event.
// Failures are returned to the caller, which treats them as non-fatal;
// there are no retries.
type TCPReporter struct {
	address string
	timeout time.Duration
}

var _ Reporter = (*TCPReporter)(nil)

// NewTCPReporter creates a reporter for the given collector address.
func NewTCPReporter(address string) (*TCPReporter, error) {
	if address == "" {
		return nil, fmt.Errorf("empty collector address")
	}
	return &TCPReporter{address: address, timeout: reportTimeout}, nil
}

// Report opens a connection to the collector, sends the event and closes
// the connection.
func (r *TCPReporter) Report(event *Event) error {
	conn, err := net.DialTimeout("tcp", r.address, r.timeout)
	if err != nil {
		return fmt.Errorf("cannot connect to collector at %s: %w", r.address, err)
	}
	defer conn.Close()
	if err := conn.SetWriteDeadline(time.Now().Add(r.timeout)); err != nil {
		return fmt.Errorf("cannot bound the report write: %w", err)
	}
	if err := WriteEvent(conn, event); err != nil {
		return fmt.Errorf("cannot send event to collector at %s: %w", r.address, err)
	}
	log.Debug("execution reported", "pid", event.Pid, "collector", r.address)
	return nil
}
