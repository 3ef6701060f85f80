// Package qp provides exact arithmetic on elements of the p-adic number
// field for a fixed prime p.
//
// A value is the pair of an arbitrary precision numerator and a 16 bit
// valuation:
//
//  number = numerator * p ^ valuation
//
// For example, in the 3-adic field:
//
//  9  = 1(2)  = 1 * 3^2
//  4  = 4(0)  = 4 * 3^0
//  13 = 13(0) = 13 * 3^0
//
// Canonical Form
//
// A value is canonical when its numerator carries no factor of p: every
// power of p lives in the valuation. Canonical zero is a zero numerator
// with a zero valuation. Simplify rewrites any value into canonical form
// and is the only operation that modifies a value in place.
//
// The arithmetic operations assume canonical inputs and return canonical
// results without redundant normalization passes: addition of values at
// distinct valuations cannot create a new factor of p in the result, and
// neither can multiplication of canonical nonzero values (p is prime).
// Only addition at equal valuations re-simplifies.
//
// Construct is the escape hatch: it builds a value directly with no
// normalization and can produce non-canonical values. Feeding those to the
// arithmetic operations yields representations that may themselves be
// non-canonical.
//
// Operations are grouped on an Op context holding the prime. The context
// is immutable and safe for concurrent use; it performs no cross-prime
// validation, so mixing values produced under different primes is the
// caller's bug to avoid.
package qp
