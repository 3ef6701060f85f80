package wire

import (
	"encoding/binary"
	"errors"
	"io"
	"math/big"

	"github.com/calebcase/oops"
)

// Decoder reads value records from a stream.
type Decoder struct {
	r io.Reader
}

// NewDecoder returns a new decoder.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		r: r,
	}
}

// Decode reads a single record. A stream ending cleanly on a record
// boundary returns io.EOF unwrapped; truncation inside a record is an
// error.
func (d *Decoder) Decode() (valuation int16, numerator *big.Int, err error) {
	var header [4]byte

	_, err = io.ReadFull(d.r, header[0:2])
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, nil, io.EOF
		}

		return 0, nil, Error.Wrap(oops.Trace(err))
	}
	valuation = int16(binary.LittleEndian.Uint16(header[0:2]))

	_, err = io.ReadFull(d.r, header[2:4])
	if err != nil {
		return 0, nil, Error.Wrap(oops.Trace(err))
	}

	length := int16(binary.LittleEndian.Uint16(header[2:4]))
	if length < 0 {
		return 0, nil, Error.New("invalid numerator length: %d", length)
	}

	data := make([]byte, length)
	_, err = io.ReadFull(d.r, data)
	if err != nil {
		return 0, nil, Error.Wrap(oops.Trace(err))
	}

	return valuation, UnmarshalInteger(data), nil
}
