package wire

import (
	"encoding/binary"
	"io"
	"math"
	"math/big"

	"github.com/calebcase/oops"
)

// Encoder writes value records to a stream.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w: w,
	}
}

// Encode writes a single record: valuation, numerator length, numerator
// bytes. Numerators whose encoding exceeds 32767 bytes fail.
func (e *Encoder) Encode(valuation int16, numerator *big.Int) (err error) {
	defer Error.WrapP(&err)

	data := MarshalInteger(numerator)
	if len(data) > math.MaxInt16 {
		return Error.New("numerator too long: %d bytes", len(data))
	}

	var header [4]byte
	binary.LittleEndian.PutUint16(header[0:2], uint16(valuation))
	binary.LittleEndian.PutUint16(header[2:4], uint16(int16(len(data))))

	_, err = e.w.Write(header[:])
	if err != nil {
		return oops.Trace(err)
	}

	_, err = e.w.Write(data)
	if err != nil {
		return oops.Trace(err)
	}

	return nil
}
