package qp

import (
	"math"
	"math/big"
	"strconv"
)

// truncationDigits bounds IntPart to the first 40 p-adic digits. The depth
// is fixed: changing it changes observable output.
const truncationDigits = 40

// IntPart projects x onto an unsigned 64 bit integer: numerator *
// p^valuation is reduced modulo p^40, negative residues are folded into
// the positive range by adding the modulus, and the low 64 bits of the
// residue are returned. The projection is lossy.
//
// Only p-adic integers project. IntPart panics if the valuation is
// negative.
func (o Op) IntPart(x Qp) uint64 {
	if x.Valuation < 0 {
		panic(Error.New("not integral: %s", x))
	}

	ip := new(big.Int).Mul(x.Numerator, o.Power(uint(x.Valuation)))

	t := o.Power(truncationDigits)
	ip.Rem(ip, t)
	if ip.Sign() < 0 {
		ip.Add(ip, t)
	}

	// The residue can still exceed 64 bits for large p; take the low
	// word with wrapping.
	ip.And(ip, new(big.Int).SetUint64(math.MaxUint64))

	return ip.Uint64()
}

// Output renders x exactly as "<numerator>(<valuation>)".
func (o Op) Output(x Qp) string {
	return x.String()
}

// OutputInteger renders the IntPart projection in decimal. It inherits
// IntPart's panic on negative valuations.
func (o Op) OutputInteger(x Qp) string {
	return strconv.FormatUint(o.IntPart(x), 10)
}
