package serialization

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

// ValueSize is the encoded size of one value in bytes.
const ValueSize = 8

// Writer encodes float64 values onto an io.Writer.
type Writer struct {
	w     io.Writer
	order binary.ByteOrder
	buf   [ValueSize]byte
	n     int64
}

// NewWriter returns a Writer using the given byte order.
func NewWriter(w io.Writer, order binary.ByteOrder) *Writer {
	return &Writer{w: w, order: order}
}

// WriteFloat64 writes one value.
func (w *Writer) WriteFloat64(v float64) error {
	w.order.PutUint64(w.buf[:], math.Float64bits(v))
	n, err := w.w.Write(w.buf[:])
	w.n += int64(n)
	if err != nil {
		return fmt.Errorf("failed to write value at offset %d: %w", w.n-int64(n), err)
	}
	return nil
}

// WriteFloat64s writes every value of vs in order.
func (w *Writer) WriteFloat64s(vs []float64) error {
	for _, v := range vs {
		if err := w.WriteFloat64(v); err != nil {
			return err
		}
	}
	return nil
}

// Written returns the number of bytes written so far.
func (w *Writer) Written() int64 {
	return w.n
}

// FileWriter is a Writer backed by a buffered file.
type FileWriter struct {
	*Writer
	file   *os.File
	path   string
	buf    *bufio.Writer
	closed bool
}

// Create creates (or truncates) path and returns a writer for it.
func Create(path string, order binary.ByteOrder) (*FileWriter, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for weight files
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	buf := bufio.NewWriter(file)
	return &FileWriter{
		Writer: NewWriter(buf, order),
		file:   file,
		path:   path,
		buf:    buf,
	}, nil
}

// Close flushes buffered values and closes the file. If the data cannot be
// flushed the partial file is removed.
func (w *FileWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if err := w.buf.Flush(); err != nil {
		_ = w.file.Close() // Best effort close on error
		_ = os.Remove(w.path)
		return fmt.Errorf("failed to flush: %w", err)
	}
	if err := w.file.Close(); err != nil {
		_ = os.Remove(w.path)
		return fmt.Errorf("failed to close file: %w", err)
	}
	return nil
}

// Abort discards everything written, closes and removes the file.
func (w *FileWriter) Abort() error {
	if w.closed {
		return nil
	}
	w.closed = true
	_ = w.file.Close() // Best effort close; the file is deleted anyway
	if err := os.Remove(w.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}
