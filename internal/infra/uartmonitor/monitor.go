package uartmonitor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"go.bug.st/serial"

	"github.com/aalvaropc/teensyflash/internal/domain"
	"github.com/aalvaropc/teensyflash/internal/ports"
)

// DefaultBaud matches the board's LPUART log output on pins 0/1.
const DefaultBaud = 115200

type openFunc func(port string, mode *serial.Mode) (serial.Port, error)

// Monitor copies a serial port's output to a writer.
type Monitor struct {
	open  openFunc
	list  func() ([]string, error)
	log   *slog.Logger
	chunk int
}

type Option func(*Monitor)

func WithLogger(l *slog.Logger) Option {
	return func(m *Monitor) {
		if l != nil {
			m.log = l
		}
	}
}

func New(opts ...Option) *Monitor {
	m := &Monitor{
		open:  serial.Open,
		list:  serial.GetPortsList,
		log:   slog.New(slog.NewJSONHandler(io.Discard, nil)),
		chunk: 512,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

var _ ports.LogMonitor = (*Monitor)(nil)

func (m *Monitor) ListPorts() ([]string, error) {
	names, err := m.list()
	if err != nil {
		return nil, &domain.OpError{
			Op:   "uartmonitor.list",
			Kind: domain.KindSerial,
			Err:  err,
		}
	}
	return names, nil
}

// Stream blocks until ctx is done or the port stops delivering data.
// Cancellation is not an error.
func (m *Monitor) Stream(ctx context.Context, port string, baud int, w io.Writer) error {
	if strings.TrimSpace(port) == "" {
		return &domain.OpError{
			Op:   "uartmonitor.stream",
			Kind: domain.KindSerial,
			Err:  errors.New("serial port is required"),
		}
	}
	if baud <= 0 {
		baud = DefaultBaud
	}

	p, err := m.open(port, &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return &domain.OpError{
			Op:   "uartmonitor.open",
			Kind: domain.KindSerial,
			Path: port,
			Err:  err,
		}
	}

	m.log.Info("uartmonitor.opened", "port", port, "baud", baud)

	if err := copyUntilDone(ctx, p, w, m.chunk); err != nil {
		return &domain.OpError{
			Op:   "uartmonitor.stream",
			Kind: domain.KindSerial,
			Path: port,
			Err:  err,
		}
	}
	return nil
}

// copyUntilDone reads r into w until EOF or ctx cancellation. r is always
// closed; closing it is what unblocks a pending Read on cancel.
func copyUntilDone(ctx context.Context, r io.ReadCloser, w io.Writer, chunk int) error {
	var closeOnce sync.Once
	closeR := func() { closeOnce.Do(func() { _ = r.Close() }) }
	defer closeR()

	stop := context.AfterFunc(ctx, closeR)
	defer stop()

	buf := make([]byte, chunk)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if _, werr := w.Write(buf[:n]); werr != nil {
				return fmt.Errorf("write log output: %w", werr)
			}
		}
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) || errors.Is(err, os.ErrClosed) {
				return nil
			}
			return err
		}
	}
}
