package qp

import (
	"encoding/binary"
	"io"

	"github.com/calebcase/oops"

	"github.com/calebcase/padic/wire"
)

// Save writes x to w as a single wire record.
func (o Op) Save(x Qp, w io.Writer) (err error) {
	defer Error.WrapP(&err)

	return wire.NewEncoder(w).Encode(x.Valuation, x.Numerator)
}

// Load reads one value from r. The value is taken as stored: no
// normalization is applied, so a non-canonical value round-trips
// unchanged.
func (o Op) Load(r io.Reader) (x Qp, err error) {
	defer Error.WrapP(&err)

	valuation, numerator, err := wire.NewDecoder(r).Decode()
	if err != nil {
		return Qp{}, err
	}

	return Qp{
		Numerator: numerator,
		Valuation: valuation,
	}, nil
}

// SaveAsInteger writes the IntPart projection of x as 8 bytes, little
// endian. It inherits IntPart's panic on negative valuations.
func (o Op) SaveAsInteger(x Qp, w io.Writer) (err error) {
	defer Error.WrapP(&err)

	var data [8]byte
	binary.LittleEndian.PutUint64(data[:], o.IntPart(x))

	_, err = w.Write(data[:])
	if err != nil {
		return oops.Trace(err)
	}

	return nil
}
