package nnet

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/born-ml/fixedmath/internal/serialization"
)

// Option configures SaveLayers and LoadLayers.
type Option func(*codecOptions)

type codecOptions struct {
	order binary.ByteOrder
}

// WithByteOrder selects the byte order of the weight file. The default is
// big-endian; binary.LittleEndian reproduces files dumped straight from
// memory on little-endian hosts.
func WithByteOrder(order binary.ByteOrder) Option {
	return func(o *codecOptions) {
		if order != nil {
			o.order = order
		}
	}
}

func newCodecOptions(opts []Option) codecOptions {
	o := codecOptions{order: binary.BigEndian}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// EncodedSize returns the exact number of bytes SaveLayers writes.
func (n *Network) EncodedSize() int64 {
	var values int
	for _, l := range n.layers() {
		values += l.values()
	}
	return int64(values) * serialization.ValueSize
}

// SaveLayers writes every layer to w.
//
// Layers are written in the order input, output, then hidden layers by
// index. Each layer contributes its activations, its weight rows and its
// bias as raw float64 values, with no header. The reader must know the
// network shape in advance.
func (n *Network) SaveLayers(w io.Writer, opts ...Option) error {
	o := newCodecOptions(opts)
	return n.encode(serialization.NewWriter(w, o.order))
}

func (n *Network) encode(w *serialization.Writer) error {
	for i, l := range n.layers() {
		if err := l.save(w); err != nil {
			return fmt.Errorf("%w: layer %d: %w", ErrCouldNotWriteBuffer, i, err)
		}
	}
	return nil
}

// LoadLayers replaces every layer with values read from r, in the order
// SaveLayers writes them. On error the network is left unchanged.
func (n *Network) LoadLayers(r io.Reader, opts ...Option) error {
	o := newCodecOptions(opts)
	return n.decode(serialization.NewReader(r, o.order))
}

func (n *Network) decode(r *serialization.Reader) error {
	staged := n.Clone()
	for i, l := range staged.layers() {
		if err := l.load(r); err != nil {
			return fmt.Errorf("%w: layer %d: %w", ErrCouldNotReadBuffer, i, err)
		}
	}
	n.input, n.output, n.hidden = staged.input, staged.output, staged.hidden
	return nil
}

// SaveFile writes the layers to a new file at path. On failure no file is
// left at path.
func (n *Network) SaveFile(path string, opts ...Option) error {
	o := newCodecOptions(opts)
	fw, err := serialization.Create(path, o.order)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCouldNotWriteBuffer, err)
	}
	if err := n.encode(fw.Writer); err != nil {
		_ = fw.Abort() // Best effort cleanup
		return err
	}
	if err := fw.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrCouldNotWriteBuffer, err)
	}
	return nil
}

// LoadFile reads the layers from the file at path.
func (n *Network) LoadFile(path string, opts ...Option) error {
	o := newCodecOptions(opts)
	fr, err := serialization.Open(path, o.order)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCouldNotReadBuffer, err)
	}
	defer fr.Close()
	return n.decode(fr.Reader)
}
