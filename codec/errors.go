// SPDX-License-Identifier: MIT

package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrNilCodes indicates Marshal was given a nil grid.
	ErrNilCodes = errors.New("codec: nil code grid")

	// ErrBadMagic indicates the data does not start with Magic.
	ErrBadMagic = errors.New("codec: bad magic")

	// ErrVersion indicates an unsupported container version.
	ErrVersion = errors.New("codec: unsupported version")

	// ErrTruncated indicates the data ends before the header or payload does.
	ErrTruncated = errors.New("codec: truncated data")

	// ErrChecksum indicates the payload does not match its checksum.
	ErrChecksum = errors.New("codec: checksum mismatch")

	// ErrCorrupt indicates an inconsistent header or undecodable payload.
	ErrCorrupt = errors.New("codec: corrupt data")
)

const (
	opMarshal   = "Marshal"
	opUnmarshal = "Unmarshal"
	opWriteFile = "WriteFile"
	opReadFile  = "ReadFile"
)

func codecErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
