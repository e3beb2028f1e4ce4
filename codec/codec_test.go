package codec_test

import (
	"encoding/binary"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lbp/codec"
	"github.com/katalvlaran/lbp/grid"
	"github.com/katalvlaran/lbp/lbp"
)

func transformed(t *testing.T, r, p, width int) *grid.Codes {
	t.Helper()
	img, err := grid.NewGray(24, 31)
	require.NoError(t, err)
	for i := 0; i < 24; i++ {
		for j := 0; j < 31; j++ {
			require.NoError(t, img.Set(i, j, uint8((i*i*7+j*13)%256)))
		}
	}
	codes, err := lbp.Transform(img, r, p, lbp.WithStorageWidth(width))
	require.NoError(t, err)

	return codes
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		r, p, w  int
		compress bool
	}{
		{"W8_Zstd", 1, 8, grid.Width8, true},
		{"W8_Raw", 1, 8, grid.Width8, false},
		{"W16_Zstd", 2, 12, grid.Width16, true},
		{"W32_Raw", 3, 24, grid.Width32, false},
		{"W32_Zstd", 3, 25, grid.Width32, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			codes := transformed(t, tc.r, tc.p, tc.w)

			data, err := codec.Marshal(codes, codec.WithCompression(tc.compress))
			require.NoError(t, err)
			assert.Equal(t, codec.Magic, string(data[:4]))

			back, err := codec.Unmarshal(data)
			require.NoError(t, err)
			assert.Equal(t, codes.Bits(), back.Bits())
			assert.Equal(t, codes.Width(), back.Width())
			if diff := cmp.Diff(codes.ToRows(), back.ToRows()); diff != "" {
				t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMarshal_RawLayout(t *testing.T) {
	codes, err := grid.FromValues(1, 2, 9, grid.Width16, []uint32{0x1ff, 0x102})
	require.NoError(t, err)

	data, err := codec.Marshal(codes, codec.WithCompression(false))
	require.NoError(t, err)
	require.Len(t, data, codec.HeaderSize+4)

	assert.Equal(t, []byte{codec.Version, 0, 9, 16}, data[4:8])
	assert.Equal(t, uint32(1), binary.LittleEndian.Uint32(data[8:]))
	assert.Equal(t, uint32(2), binary.LittleEndian.Uint32(data[12:]))
	assert.Equal(t, uint32(4), binary.LittleEndian.Uint32(data[24:]))
	assert.Equal(t, []byte{0xff, 0x01, 0x02, 0x01}, data[codec.HeaderSize:])
}

func TestMarshal_CompressionShrinksFlatGrid(t *testing.T) {
	codes, err := grid.NewCodes(128, 128, 8, grid.Width8)
	require.NoError(t, err)

	raw, err := codec.Marshal(codes, codec.WithCompression(false))
	require.NoError(t, err)
	packed, err := codec.Marshal(codes)
	require.NoError(t, err)
	assert.Less(t, len(packed), len(raw)/10)
}

func TestMarshal_Nil(t *testing.T) {
	_, err := codec.Marshal(nil)
	assert.ErrorIs(t, err, codec.ErrNilCodes)
}

func TestUnmarshal_Errors(t *testing.T) {
	codes := transformed(t, 1, 8, grid.Width8)
	raw, err := codec.Marshal(codes, codec.WithCompression(false))
	require.NoError(t, err)
	packed, err := codec.Marshal(codes)
	require.NoError(t, err)

	mutate := func(src []byte, f func([]byte) []byte) []byte {
		dup := append([]byte(nil), src...)
		return f(dup)
	}

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"Empty", nil, codec.ErrTruncated},
		{"BadMagic", mutate(raw, func(b []byte) []byte { b[0] = 'X'; return b }), codec.ErrBadMagic},
		{"ShortHeader", raw[:codec.HeaderSize-1], codec.ErrTruncated},
		{"Version", mutate(raw, func(b []byte) []byte { b[4] = 9; return b }), codec.ErrVersion},
		{"UnknownFlag", mutate(raw, func(b []byte) []byte { b[5] = 0x80; return b }), codec.ErrCorrupt},
		{"BadWidth", mutate(raw, func(b []byte) []byte { b[7] = 12; return b }), codec.ErrCorrupt},
		{"BitsOverWidth", mutate(raw, func(b []byte) []byte { b[6] = 9; return b }), codec.ErrCorrupt},
		{"ZeroRows", mutate(raw, func(b []byte) []byte { binary.LittleEndian.PutUint32(b[8:], 0); return b }), codec.ErrCorrupt},
		{"Reserved", mutate(raw, func(b []byte) []byte { b[31] = 1; return b }), codec.ErrCorrupt},
		{"TruncatedPayload", raw[:len(raw)-1], codec.ErrTruncated},
		{"TrailingBytes", mutate(raw, func(b []byte) []byte { return append(b, 0) }), codec.ErrCorrupt},
		{"Checksum", mutate(raw, func(b []byte) []byte { b[codec.HeaderSize] ^= 0xff; return b }), codec.ErrChecksum},
		{"ValueOverflow", mutate(raw, func(b []byte) []byte { b[6] = 2; return b }), codec.ErrCorrupt},
		{"GarbageZstd", mutate(packed, func(b []byte) []byte {
			for k := codec.HeaderSize; k < len(b); k++ {
				b[k] = 0xa5
			}
			return b
		}), codec.ErrCorrupt},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := codec.Unmarshal(tc.data)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, got)
		})
	}
}

func TestFileRoundTrip(t *testing.T) {
	codes := transformed(t, 2, 16, grid.Width16)
	path := filepath.Join(t.TempDir(), "codes.lbp")

	require.NoError(t, codec.WriteFile(path, codes))
	back, err := codec.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, codes.Equal(back))

	_, err = codec.ReadFile(filepath.Join(t.TempDir(), "missing.lbp"))
	assert.Error(t, err)
}
