// SPDX-License-Identifier: MIT
// Package codec serializes LBP code grids into a compact binary container.
//
// Layout (all integers little-endian):
//
//	offset  size  field
//	0       4     magic "LBPC"
//	4       1     version (1)
//	5       1     flags (bit 0: payload is zstd-compressed)
//	6       1     bits per code
//	7       1     storage width in bits (8, 16 or 32)
//	8       4     rows
//	12      4     cols
//	16      8     xxhash64 of the raw (uncompressed) payload
//	24      4     stored payload length
//	28      4     reserved, zero
//	32      n     payload
//
// The raw payload holds rows·cols codes in row-major order, width/8 bytes each.
package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/lbp/grid"
)

const (
	// Magic opens every container.
	Magic = "LBPC"

	// Version is the only layout this package reads and writes.
	Version = 1

	// HeaderSize is the fixed header length in bytes.
	HeaderSize = 32

	// MaxCells bounds rows·cols accepted by Unmarshal.
	MaxCells = 1 << 28

	flagCompressed = 1 << 0
	knownFlags     = flagCompressed
)

// Marshal encodes codes into a container.
// Returns ErrNilCodes.
// Complexity: O(W·H) plus compression.
func Marshal(codes *grid.Codes, opts ...Option) ([]byte, error) {
	// Stage 1 (Validate)
	if codes == nil {
		return nil, codecErrorf(opMarshal, ErrNilCodes)
	}
	o := gatherOptions(opts...)

	// Stage 2 (Payload)
	raw := appendPayload(make([]byte, 0, codes.Rows()*codes.Cols()*codes.Width()/8), codes)
	sum := xxhash.Sum64(raw)

	var flags uint8
	stored := raw
	if o.compress {
		stored = compress(raw)
		flags |= flagCompressed
	}

	// Stage 3 (Header)
	out := make([]byte, 0, HeaderSize+len(stored))
	out = append(out, Magic...)
	out = append(out, Version, flags, uint8(codes.Bits()), uint8(codes.Width()))
	out = binary.LittleEndian.AppendUint32(out, uint32(codes.Rows()))
	out = binary.LittleEndian.AppendUint32(out, uint32(codes.Cols()))
	out = binary.LittleEndian.AppendUint64(out, sum)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(stored)))
	out = binary.LittleEndian.AppendUint32(out, 0)

	return append(out, stored...), nil
}

// Unmarshal decodes a container produced by Marshal.
// Returns ErrTruncated, ErrBadMagic, ErrVersion, ErrCorrupt or ErrChecksum.
func Unmarshal(data []byte) (*grid.Codes, error) {
	// Stage 1 (Header)
	h, err := parseHeader(data)
	if err != nil {
		return nil, codecErrorf(opUnmarshal, err)
	}

	// Stage 2 (Payload)
	stored := data[HeaderSize:]
	if len(stored) < h.length {
		return nil, codecErrorf(opUnmarshal, ErrTruncated)
	}
	if len(stored) > h.length {
		return nil, codecErrorf(opUnmarshal, fmt.Errorf("%w: %d trailing bytes", ErrCorrupt, len(stored)-h.length))
	}
	want := h.rows * h.cols * h.width / 8
	raw := stored
	if h.flags&flagCompressed != 0 {
		if raw, err = decompress(stored, want); err != nil {
			return nil, codecErrorf(opUnmarshal, fmt.Errorf("%w: %v", ErrCorrupt, err))
		}
	}
	if len(raw) != want {
		return nil, codecErrorf(opUnmarshal, fmt.Errorf("%w: payload is %d bytes, want %d", ErrCorrupt, len(raw), want))
	}
	if xxhash.Sum64(raw) != h.sum {
		return nil, codecErrorf(opUnmarshal, ErrChecksum)
	}

	// Stage 3 (Grid)
	codes, err := grid.FromValues(h.rows, h.cols, h.bits, h.width, decodeValues(raw, h))
	if err != nil {
		return nil, codecErrorf(opUnmarshal, fmt.Errorf("%w: %v", ErrCorrupt, err))
	}

	return codes, nil
}

// WriteFile marshals codes and writes the container to path.
func WriteFile(path string, codes *grid.Codes, opts ...Option) error {
	data, err := Marshal(codes, opts...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%s %q: %w", opWriteFile, path, err)
	}

	return nil
}

// ReadFile reads and unmarshals the container at path.
func ReadFile(path string) (*grid.Codes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", opReadFile, path, err)
	}

	return Unmarshal(data)
}

type header struct {
	flags, bits, width int
	rows, cols, length int
	sum                uint64
}

func parseHeader(data []byte) (header, error) {
	var h header
	if len(data) < len(Magic) {
		return h, ErrTruncated
	}
	if !bytes.Equal(data[:len(Magic)], []byte(Magic)) {
		return h, ErrBadMagic
	}
	if len(data) < HeaderSize {
		return h, ErrTruncated
	}
	if data[4] != Version {
		return h, fmt.Errorf("%w: %d", ErrVersion, data[4])
	}

	le := binary.LittleEndian
	h = header{
		flags:  int(data[5]),
		bits:   int(data[6]),
		width:  int(data[7]),
		rows:   int(le.Uint32(data[8:])),
		cols:   int(le.Uint32(data[12:])),
		sum:    le.Uint64(data[16:]),
		length: int(le.Uint32(data[24:])),
	}
	switch {
	case h.flags&^knownFlags != 0:
		return h, fmt.Errorf("%w: unknown flags %#x", ErrCorrupt, h.flags)
	case !grid.ValidWidth(h.width):
		return h, fmt.Errorf("%w: storage width %d", ErrCorrupt, h.width)
	case h.bits < 1 || h.bits > h.width:
		return h, fmt.Errorf("%w: %d bits in width %d", ErrCorrupt, h.bits, h.width)
	case h.rows < 1 || h.cols < 1 || h.rows > MaxCells/h.cols:
		return h, fmt.Errorf("%w: shape %dx%d", ErrCorrupt, h.rows, h.cols)
	case le.Uint32(data[28:]) != 0:
		return h, fmt.Errorf("%w: reserved field set", ErrCorrupt)
	}

	return h, nil
}

func appendPayload(dst []byte, codes *grid.Codes) []byte {
	le := binary.LittleEndian
	for i := 0; i < codes.Rows(); i++ {
		for _, v := range codes.RowView(i) {
			switch codes.Width() {
			case grid.Width8:
				dst = append(dst, uint8(v))
			case grid.Width16:
				dst = le.AppendUint16(dst, uint16(v))
			default:
				dst = le.AppendUint32(dst, v)
			}
		}
	}

	return dst
}

func decodeValues(raw []byte, h header) []uint32 {
	le := binary.LittleEndian
	values := make([]uint32, h.rows*h.cols)
	step := h.width / 8
	for k := range values {
		b := raw[k*step:]
		switch h.width {
		case grid.Width8:
			values[k] = uint32(b[0])
		case grid.Width16:
			values[k] = uint32(le.Uint16(b))
		default:
			values[k] = le.Uint32(b)
		}
	}

	return values
}
