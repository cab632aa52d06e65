package ctlv

import (
	"bytes"
	"testing"
)

// FuzzDecodeRoundTrip checks the primary regression class: whenever decode
// accepts a prefix of arbitrary input, re-encoding the decoded triple must
// reproduce exactly the consumed bytes.
func FuzzDecodeRoundTrip(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0, 42})
	f.Add([]byte{128, 1, 42})
	f.Add([]byte{248, 250, 1, 42})
	f.Add([]byte{248, 42})
	f.Add([]byte{127, 1, 2, 3})

	f.Fuzz(func(t *testing.T, data []byte) {
		c, rest, err := DecodeRaw(data)
		if err != nil {
			// Malformed input must fail cleanly, never panic, and the
			// remainder must be a tail of the input.
			if len(rest) > len(data) {
				t.Fatalf("error remainder longer than input: %d > %d", len(rest), len(data))
			}
			return
		}

		consumed := len(data) - len(rest)
		if c.EncodingLength() != consumed {
			t.Fatalf("EncodingLength() = %d, decode consumed %d", c.EncodingLength(), consumed)
		}

		enc := make([]byte, consumed)
		if n := c.Encode(enc); n != consumed {
			t.Fatalf("Encode wrote %d bytes, decode consumed %d", n, consumed)
		}
		if !bytes.Equal(enc, data[:consumed]) {
			t.Fatalf("re-encoding (type %d, value %v) produced %v, want %v", c.Type, c.Value, enc, data[:consumed])
		}
	})
}
