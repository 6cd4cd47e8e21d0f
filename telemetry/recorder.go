// Package telemetry writes per-tick character traces as CSV.
package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// TickRecord is one row of the trace: the character's state after a tick.
type TickRecord struct {
	Tick          uint64  `csv:"tick"`
	X             float64 `csv:"x"`
	Y             float64 `csv:"y"`
	VX            float64 `csv:"vx"`
	VY            float64 `csv:"vy"`
	Airborne      bool    `csv:"airborne"`
	CameraX       float64 `csv:"camera_x"`
	ContactStarts int     `csv:"contact_starts"`
}

// Recorder appends TickRecords to a CSV stream, writing the header once.
// A nil Recorder discards everything.
type Recorder struct {
	out           io.Writer
	closer        io.Closer
	headerWritten bool
}

// NewRecorder creates the trace file at path. Returns nil if path is empty
// (tracing disabled).
func NewRecorder(path string) (*Recorder, error) {
	if path == "" {
		return nil, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating trace directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	return &Recorder{out: f, closer: f}, nil
}

// NewWriterRecorder records into w. The caller owns w.
func NewWriterRecorder(w io.Writer) *Recorder {
	return &Recorder{out: w}
}

func (r *Recorder) Write(rec TickRecord) error {
	if r == nil {
		return nil
	}

	records := []TickRecord{rec}

	if !r.headerWritten {
		if err := gocsv.Marshal(records, r.out); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
		r.headerWritten = true
		return nil
	}

	if err := gocsv.MarshalWithoutHeaders(records, r.out); err != nil {
		return fmt.Errorf("writing trace: %w", err)
	}
	return nil
}

func (r *Recorder) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}
