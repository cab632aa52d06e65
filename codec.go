package ctlv

// Encoder accumulates a sequence of encoded triples in an append buffer.
type Encoder struct {
	buf []byte
}

// NewEncoder creates a new encoder with an empty buffer.
func NewEncoder() *Encoder {
	return &Encoder{
		buf: make([]byte, 0),
	}
}

// WriteCtlv appends the encoding of c to the buffer.
func (e *Encoder) WriteCtlv(c Ctlv) {
	off := len(e.buf)
	e.buf = append(e.buf, make([]byte, c.EncodingLength())...)
	c.Encode(e.buf[off:])
}

// Bytes returns the encoded bytes.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Len returns the number of bytes encoded so far.
func (e *Encoder) Len() int {
	return len(e.buf)
}

// Reset clears the encoder buffer, retaining its storage.
func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
}

// Decoder reads a sequence of triples from a single buffer, tracking its
// position between calls.
type Decoder struct {
	buf []byte
	pos int
}

// NewDecoder creates a decoder reading from data.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{
		buf: data,
		pos: 0,
	}
}

// More reports whether unconsumed bytes remain.
func (d *Decoder) More() bool {
	return d.pos < len(d.buf)
}

// Offset returns the current position in the buffer. After a failed Next,
// NextRaw or Skip it is the byte offset at which parsing stopped.
func (d *Decoder) Offset() int {
	return d.pos
}

// NextRaw parses the next triple. Its value aliases the decoder's buffer;
// see DecodeRaw for the aliasing rules.
func (d *Decoder) NextRaw() (Ctlv, error) {
	c, rest, err := DecodeRaw(d.buf[d.pos:])
	d.pos = len(d.buf) - len(rest)
	if err != nil {
		return Ctlv{}, err
	}
	return c, nil
}

// Next parses the next triple, copying its value into fresh storage.
func (d *Decoder) Next() (Ctlv, error) {
	c, err := d.NextRaw()
	if err != nil {
		return Ctlv{}, err
	}

	value := make([]byte, len(c.Value))
	copy(value, c.Value)
	return Ctlv{Type: c.Type, Value: value}, nil
}

// Skip parses and discards the next triple.
func (d *Decoder) Skip() error {
	_, err := d.NextRaw()
	return err
}
