package trace

import (
	"context"
	"io"
	"sync"
	"time"
)

// DefaultTimeout is how long a partial line waits for more bytes.
const DefaultTimeout = 100 * time.Millisecond

// RecordHandler is called when a record is decoded.
type RecordHandler interface {
	HandleRecord(context.Context, *Record)
}

// HandleRecordFunc is func type of RecordHandler.
type HandleRecordFunc func(context.Context, *Record)

// HandleRecord implements RecordHandler.
func (f HandleRecordFunc) HandleRecord(ctx context.Context, rec *Record) {
	f(ctx, rec)
}

// Handlers dispatches a record to every handler in order.
type Handlers []RecordHandler

// HandleRecord implements RecordHandler.
func (h Handlers) HandleRecord(ctx context.Context, rec *Record) {
	for _, handler := range h {
		handler.HandleRecord(ctx, rec)
	}
}

// Monitor decodes a trace stream from Reader in the background.
type Monitor struct {
	Reader  io.Reader
	Handler RecordHandler
	Timeout time.Duration

	parser Parser
	lock   sync.Mutex
}

// NewMonitor creates a Monitor.
func NewMonitor(r io.Reader, h RecordHandler) *Monitor {
	return &Monitor{Reader: r, Handler: h, Timeout: DefaultTimeout}
}

// Stats returns the parser counters.
func (m *Monitor) Stats() Stats {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.parser.Stats()
}

// Run reads until the context is done or the reader fails. A pending
// partial line is flushed before a read error is returned.
func (m *Monitor) Run(ctx context.Context) error {
	byteCh, errCh := make(chan byte), make(chan error, 1)
	subCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go m.readLoop(subCtx, byteCh, errCh)

	timeout := m.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	var flushTimer <-chan time.Time
	for {
		select {
		case b := <-byteCh:
			m.lock.Lock()
			rec := m.parser.Parse(b)
			pending := m.parser.Pending()
			m.lock.Unlock()
			m.emit(ctx, rec)
			if pending {
				flushTimer = time.After(timeout)
			} else {
				flushTimer = nil
			}
		case <-flushTimer:
			flushTimer = nil
			m.emit(ctx, m.flush())
		case err := <-errCh:
			m.emit(ctx, m.flush())
			return err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (m *Monitor) readLoop(ctx context.Context, byteCh chan<- byte, errCh chan<- error) {
	buf := make([]byte, 64)
	for {
		n, err := m.Reader.Read(buf)
		for _, b := range buf[:n] {
			select {
			case byteCh <- b:
			case <-ctx.Done():
				return
			}
		}
		if err != nil {
			errCh <- err
			return
		}
	}
}

func (m *Monitor) flush() *Record {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.parser.Flush()
}

func (m *Monitor) emit(ctx context.Context, rec *Record) {
	if rec == nil {
		return
	}
	if h := m.Handler; h != nil {
		h.HandleRecord(ctx, rec)
	}
}
