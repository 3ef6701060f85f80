package qp

import "math/big"

// Op performs arithmetic on values sharing a single prime. It holds no
// other state and is safe for concurrent use.
type Op struct {
	prime int32
}

// New returns an operation context for the given prime.
func New(prime int32) Op {
	return Op{
		prime: prime,
	}
}

// Q3 is a ready-made context for the 3-adic field.
var Q3 = New(3)

// Prime returns the configured prime.
func (o Op) Prime() int32 {
	return o.prime
}

// Power returns p^exp by repeated multiplication. There is no upper bound
// on exp; the result grows without limit.
func (o Op) Power(exp uint) *big.Int {
	res := big.NewInt(1)
	p := big.NewInt(int64(o.prime))

	for i := uint(0); i < exp; i++ {
		res.Mul(res, p)
	}

	return res
}

// PowerInt returns p^exp as a machine integer. It silently wraps on
// overflow and must only be used when the caller knows exp is small.
func (o Op) PowerInt(exp uint) int32 {
	res := int32(1)

	for i := uint(0); i < exp; i++ {
		res *= o.prime
	}

	return res
}

// Simplify rewrites x into canonical form in place. A zero numerator
// forces the valuation to zero; otherwise factors of p move out of the
// numerator into the valuation until the numerator is coprime to p.
func (o Op) Simplify(x *Qp) {
	if x.Numerator.Sign() == 0 {
		x.Valuation = 0

		return
	}

	p := big.NewInt(int64(o.prime))
	quo := new(big.Int)
	rem := new(big.Int)

	for {
		quo.QuoRem(x.Numerator, p, rem)
		if rem.Sign() != 0 {
			return
		}

		x.Numerator.Set(quo)
		x.Valuation++
	}
}

// Add returns x + y. The operands are aligned to the smaller of the two
// valuations before their numerators are summed. When the valuations
// differ no normalization is needed: the smaller-valuation numerator is
// coprime to p and stays so after adding a multiple of p. When they match
// the sum can pick up a factor of p and is re-simplified.
func (o Op) Add(x, y Qp) Qp {
	if x.Valuation < y.Valuation {
		scaled := new(big.Int).Mul(y.Numerator, o.Power(uint(int(y.Valuation)-int(x.Valuation))))

		return Qp{
			Numerator: scaled.Add(scaled, x.Numerator),
			Valuation: x.Valuation,
		}
	}

	if x.Valuation > y.Valuation {
		scaled := new(big.Int).Mul(x.Numerator, o.Power(uint(int(x.Valuation)-int(y.Valuation))))

		return Qp{
			Numerator: scaled.Add(scaled, y.Numerator),
			Valuation: y.Valuation,
		}
	}

	z := Qp{
		Numerator: new(big.Int).Add(x.Numerator, y.Numerator),
		Valuation: x.Valuation,
	}
	o.Simplify(&z)

	return z
}

// Minus returns -x. Negation never introduces a factor of p, so canonical
// form is preserved.
func (o Op) Minus(x Qp) Qp {
	return Qp{
		Numerator: new(big.Int).Neg(x.Numerator),
		Valuation: x.Valuation,
	}
}

// Multiply returns x * y: numerators multiply, valuations add. Canonical
// nonzero inputs yield a canonical product (p is prime, so the product of
// two non-multiples of p is not a multiple of p) and no simplify pass is
// made. A zero operand zeroes the numerator but the summed valuation is
// kept as-is; callers relying on canonical zero must Simplify the result.
func (o Op) Multiply(x, y Qp) Qp {
	return Qp{
		Numerator: new(big.Int).Mul(x.Numerator, y.Numerator),
		Valuation: x.Valuation + y.Valuation,
	}
}

// Zero returns the canonical zero value.
func (o Op) Zero() Qp {
	return Qp{
		Numerator: new(big.Int),
	}
}

// Unit returns the canonical value denoting the plain integer n.
func (o Op) Unit(n int32) Qp {
	x := Qp{
		Numerator: big.NewInt(int64(n)),
	}
	o.Simplify(&x)

	return x
}

// Construct builds a value directly with no normalization. The result can
// violate canonical form; the caller owns the consequences.
func (o Op) Construct(numerator int32, valuation int16) Qp {
	return Qp{
		Numerator: big.NewInt(int64(numerator)),
		Valuation: valuation,
	}
}

// IsZero returns true if the numerator is zero, regardless of valuation.
func (o Op) IsZero(x Qp) bool {
	return x.Numerator.Sign() == 0
}

// Invertible returns true if x has a multiplicative inverse in the field,
// which is every nonzero value.
func (o Op) Invertible(x Qp) bool {
	return !o.IsZero(x)
}

// Inverse is deliberately unimplemented and returns
// ErrInverseUnimplemented for every input. Consumers needing division must
// check Invertible and handle the failure; there is no path that computes
// an inverse.
func (o Op) Inverse(x Qp) (Qp, error) {
	return Qp{}, ErrInverseUnimplemented
}
