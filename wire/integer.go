package wire

import "math/big"

// Numerator sign bytes.
const (
	signPositive byte = 0x01
	signNegative byte = 0x02
)

// MarshalInteger encodes x as a sign byte followed by the magnitude in
// base-256 digits, least significant first. Zero encodes as a single zero
// byte.
func MarshalInteger(x *big.Int) []byte {
	if x.Sign() == 0 {
		return []byte{0}
	}

	// Note: big.Int.Bytes returns the magnitude big-endian with no
	// leading zeros; reversed it is exactly the digit sequence we
	// want.
	mag := x.Bytes()

	data := make([]byte, 0, len(mag)+1)
	if x.Sign() > 0 {
		data = append(data, signPositive)
	} else {
		data = append(data, signNegative)
	}

	for i := len(mag) - 1; i >= 0; i-- {
		data = append(data, mag[i])
	}

	return data
}

// UnmarshalInteger decodes a buffer produced by MarshalInteger. An empty
// buffer decodes to zero. Any sign byte other than 0x02 is read as
// positive.
func UnmarshalInteger(data []byte) *big.Int {
	if len(data) == 0 {
		return new(big.Int)
	}

	mag := make([]byte, len(data)-1)
	for i, b := range data[1:] {
		mag[len(mag)-1-i] = b
	}

	x := new(big.Int).SetBytes(mag)
	if data[0] == signNegative {
		x.Neg(x)
	}

	return x
}
