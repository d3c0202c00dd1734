// Package collector receives execution events from stand-in processes and
// accumulates the recognized compiler calls.
package collector

import (
	"context"
	"errors"
	"net"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"ccdb/internal/intercept"
	"ccdb/internal/recognition"
	"ccdb/internal/semantic"
)

// readTimeout bounds how long a single connection may take to deliver its
// event.
const readTimeout = 5 * time.Second

// Server listens for events, one per connection. Connections arrive
// concurrently and in no particular order; each is handled independently.
type Server struct {
	listener   net.Listener
	recognizer *recognition.Recognizer

	mu    sync.Mutex
	calls []semantic.CompilerCall
}

// Listen binds the collector to the given TCP address. ":0" picks a free
// port; the actual address is available via Address.
func Listen(address string, recognizer *recognition.Recognizer) (*Server, error) {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, err
	}
	return &Server{listener: listener, recognizer: recognizer}, nil
}

// Address returns the address stand-in processes should report to.
func (s *Server) Address() string {
	return s.listener.Addr().String()
}

// Serve accepts connections until the listener is closed or the context is
// canceled, and waits for in-flight connections to finish.
func (s *Server) Serve(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		s.listener.Close()
	})
	defer stop()

	group, _ := errgroup.WithContext(ctx)
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if !errors.Is(err, net.ErrClosed) {
				log.Error("collector accept failed", "error", err)
			}
			break
		}
		group.Go(func() error {
			s.handle(conn)
			return nil
		})
	}
	return group.Wait()
}

// Close stops accepting new connections.
func (s *Server) Close() error {
	return s.listener.Close()
}

// Calls returns the compiler calls recognized so far, in arrival order.
func (s *Server) Calls() []semantic.CompilerCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]semantic.CompilerCall(nil), s.calls...)
}

// handle reads one event from the connection. A malformed payload is
// logged and dropped; it never stops the collector.
func (s *Server) handle(conn net.Conn) {
	defer conn.Close()
	id := uuid.NewString()
	if err := conn.SetReadDeadline(time.Now().Add(readTimeout)); err != nil {
		log.Error("cannot bound the event read", "event", id, "error", err)
		return
	}
	event, err := intercept.ReadEvent(conn)
	if err != nil {
		log.Error("dropping event", "event", id, "error", err)
		return
	}
	log.Debug("event received", "event", id, "pid", event.Pid, "executable", event.Execution.Executable)

	meaning := s.recognizer.Apply(&event.Execution)
	if meaning == nil {
		return
	}
	if call, ok := meaning.(semantic.CompilerCall); ok {
		s.mu.Lock()
		s.calls = append(s.calls, call)
		s.mu.Unlock()
	}
}
