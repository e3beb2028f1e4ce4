// SPDX-License-Identifier: MIT

package codec

// DefaultCompression enables zstd for the payload.
const DefaultCompression = true

// Option configures Marshal.
type Option func(*options)

type options struct {
	compress bool
}

// WithCompression toggles zstd compression of the payload.
func WithCompression(on bool) Option {
	return func(o *options) { o.compress = on }
}

func gatherOptions(user ...Option) options {
	o := options{compress: DefaultCompression}
	for _, fn := range user {
		fn(&o)
	}

	return o
}
