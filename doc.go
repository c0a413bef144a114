// Package bignum implements arbitrary-precision signed integer
// arithmetic. It is the module's public façade: Int pairs a sign bit
// with an internal/magnitude.Nat and delegates every arithmetic
// operation to the unsigned kernel (internal/limb, internal/magnitude,
// internal/ntt), choosing among base-case, Karatsuba, and NTT
// convolution multiplication automatically based on operand size.
//
// Int follows math/big.Int's method convention: most operations are of
// the form z.Op(x, y), storing the result in the receiver (which may
// freely reuse the receiver's backing storage) and also returning it,
// so calls can be chained or used directly in an expression.
package bignum
