package qp

import (
	"fmt"
	"math/big"
)

// Qp is an element of the p-adic field: the number
//
//  Numerator * p ^ Valuation
//
// for the prime p of the Op operating on it. Values are cheap and freely
// copyable; no operation mutates its operands except Op.Simplify, which
// rewrites the value it is given into canonical form.
type Qp struct {
	Numerator *big.Int
	Valuation int16
}

// Equal returns true if x and y have the same numerator and valuation.
// This compares representations, not numbers: a non-canonical value does
// not equal its canonical form even though both denote the same number.
func (x Qp) Equal(y Qp) bool {
	return x.Valuation == y.Valuation && x.Numerator.Cmp(y.Numerator) == 0
}

// String renders x exactly as "<numerator>(<valuation>)".
func (x Qp) String() string {
	return fmt.Sprintf("%v(%d)", x.Numerator, x.Valuation)
}
