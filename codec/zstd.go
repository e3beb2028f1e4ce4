// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// Encoders and decoders are reusable and allocation-free after warmup.
var encoderPool = sync.Pool{
	New: func() any {
		enc, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false), // the container carries its own checksum
		)
		if err != nil {
			panic(fmt.Sprintf("codec: zstd encoder: %v", err))
		}
		return enc
	},
}

var decoderPool = sync.Pool{
	New: func() any {
		dec, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderMaxMemory(MaxCells*4),
		)
		if err != nil {
			panic(fmt.Sprintf("codec: zstd decoder: %v", err))
		}
		return dec
	},
}

func compress(raw []byte) []byte {
	enc := encoderPool.Get().(*zstd.Encoder)
	defer encoderPool.Put(enc)

	return enc.EncodeAll(raw, make([]byte, 0, len(raw)/2))
}

// decompress inflates stored into a buffer sized for the expected payload.
func decompress(stored []byte, want int) ([]byte, error) {
	dec := decoderPool.Get().(*zstd.Decoder)
	defer decoderPool.Put(dec)

	return dec.DecodeAll(stored, make([]byte, 0, want))
}
