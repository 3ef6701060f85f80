// Package wire provides the record format for p-adic values.
//
// A value is stored as a fixed-layout record with no version tag and no
// checksum:
//
//  | Bytes | Field     |                                              |
//  |-------|-----------|----------------------------------------------|
//  | 2     | valuation | signed, little-endian                        |
//  | 2     | length    | signed, little-endian; size of the numerator |
//  | n     | numerator | see below                                    |
//  |-------|-----------|----------------------------------------------|
//
// The numerator is a sign and magnitude encoding of an arbitrary precision
// integer:
//
//  | Bytes | Field     |                                              |
//  |-------|-----------|----------------------------------------------|
//  | 1     | sign      | 0x01 positive, 0x02 negative                 |
//  | n     | magnitude | base-256 digits, least significant first     |
//  |-------|-----------|----------------------------------------------|
//
// Zero is a single zero byte with no magnitude. The magnitude carries no
// superfluous digits: encoding stops once the remaining magnitude is zero.
//
// Numerators longer than 32767 bytes cannot be described by the length
// field and fail to encode. All reads are exact-length: a truncated stream
// surfaces as a read failure, never as silently wrong data.
package wire
