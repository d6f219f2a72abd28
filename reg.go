package bitvec

import "fmt"

// RegMaxWidth is the backing capacity of a runtime-width register.
const RegMaxWidth = MaxWordWidth

// Reg is a register whose width is a runtime property rather than a fixed
// parameter of its construction. The width may be changed after the fact,
// which re-interprets the stored bit pattern under the new width. All
// truncation and sign rules of Bits are re-derived from the current width.
// Widths are bounded by RegMaxWidth; the backing store is a single machine
// word.
type Reg struct {
	value  uint64
	width  uint
	signed bool
}

func checkRegWidth(width uint) error {
	if width == 0 || width > RegMaxWidth {
		return fmt.Errorf("register width %d: %w", width, ErrWidthRange)
	}
	return nil
}

// NewReg returns an unsigned register of the given runtime width. A width of
// zero or beyond RegMaxWidth fails with ErrWidthRange.
func NewReg(value uint64, width uint) (Reg, error) {
	if err := checkRegWidth(width); err != nil {
		return Reg{}, err
	}
	return Reg{value: value & bitmask(width), width: width}, nil
}

// NewSignedReg returns a signed register of the given runtime width.
func NewSignedReg(value int64, width uint) (Reg, error) {
	if err := checkRegWidth(width); err != nil {
		return Reg{}, err
	}
	return Reg{value: uint64(value) & bitmask(width), width: width, signed: true}, nil
}

// regOf rebinds a native-width Bits result as a register.
func regOf(b Bits) Reg {
	assert(b.big == nil, "register result on extended storage")
	return Reg{value: b.word, width: b.width, signed: b.signed}
}

// Width returns the current runtime width.
func (r Reg) Width() uint { return r.width }

// IsSigned returns true if the register is interpreted as signed.
func (r Reg) IsSigned() bool { return r.signed }

// Bits returns the register's value as a fixed-width value of the current
// runtime width.
func (r Reg) Bits() Bits {
	return Bits{width: r.width, signed: r.signed, word: r.value}
}

// Uint64 returns the canonical unsigned pattern.
func (r Reg) Uint64() uint64 { return r.value }

// Int64 reinterprets the pattern as a signed 64-bit integer, sign-extending
// from the current top bit.
func (r Reg) Int64() int64 { return signedWord(r.value, r.width) }

// Set rebinds the register to the bit pattern of value, masked to the
// current width.
func (r *Reg) Set(value uint64) {
	r.value = value & bitmask(r.width)
}

// SetSigned rebinds the register to the bit pattern of value, masked to the
// current width.
func (r *Reg) SetSigned(value int64) {
	r.value = uint64(value) & bitmask(r.width)
}

// SetWidth changes the runtime width, re-interpreting the stored pattern:
// a smaller width truncates, a larger one zero- or sign-extends the existing
// bits per the register's signedness. The numeric value is not re-scaled.
// A width of zero or beyond RegMaxWidth fails with ErrWidthRange and leaves
// the register untouched.
func (r *Reg) SetWidth(width uint) error {
	if err := checkRegWidth(width); err != nil {
		return err
	}
	r.value = extendWord(r.value, r.width, width, r.signed)
	r.width = width
	return nil
}

// Assign stores b into the register: the value is re-truncated or extended
// under the register's current width and signedness, exactly as if a new
// register-typed value had been constructed from b.
func (r *Reg) Assign(b Bits) {
	r.value = b.Convert(r.width, r.signed).Uint64()
}

// Add returns the sum of r and o at the wider of the two runtime widths.
func (r Reg) Add(o Reg) Reg { return regOf(r.Bits().Add(o.Bits())) }

// Sub returns the difference of r and o at the wider runtime width.
func (r Reg) Sub(o Reg) Reg { return regOf(r.Bits().Sub(o.Bits())) }

// Mul returns the product of r and o, truncated to the wider runtime width.
func (r Reg) Mul(o Reg) Reg { return regOf(r.Bits().Mul(o.Bits())) }

// Div returns the quotient of r and o. Division by zero fails with
// ErrDivideByZero.
func (r Reg) Div(o Reg) (Reg, error) {
	b, err := r.Bits().Div(o.Bits())
	if err != nil {
		return Reg{}, err
	}
	return regOf(b), nil
}

// Rem returns the remainder of r divided by o. Division by zero fails with
// ErrDivideByZero.
func (r Reg) Rem(o Reg) (Reg, error) {
	b, err := r.Bits().Rem(o.Bits())
	if err != nil {
		return Reg{}, err
	}
	return regOf(b), nil
}

// And returns the bitwise AND of r and o at the wider runtime width.
func (r Reg) And(o Reg) Reg { return regOf(r.Bits().And(o.Bits())) }

// Or returns the bitwise OR of r and o at the wider runtime width.
func (r Reg) Or(o Reg) Reg { return regOf(r.Bits().Or(o.Bits())) }

// Xor returns the bitwise XOR of r and o at the wider runtime width.
func (r Reg) Xor(o Reg) Reg { return regOf(r.Bits().Xor(o.Bits())) }

// Not returns the bitwise inversion of r at its current width.
func (r Reg) Not() Reg { return regOf(r.Bits().Not()) }

// Neg returns the two's-complement additive inverse of r at its current
// width.
func (r Reg) Neg() Reg { return regOf(r.Bits().Neg()) }

// Shl shifts r left by s bits at its current width.
func (r Reg) Shl(s uint) Reg { return regOf(r.Bits().Shl(s)) }

// LShr shifts r right by s bits, zero-filling from the top.
func (r Reg) LShr(s uint) Reg { return regOf(r.Bits().LShr(s)) }

// Sra shifts r right by s bits, replicating the current top bit.
func (r Reg) Sra(s uint) Reg { return regOf(r.Bits().Sra(s)) }

// WideningAdd returns the carry-preserving sum. The result may exceed
// RegMaxWidth, so it is returned as a Bits value.
func (r Reg) WideningAdd(o Reg) Bits { return r.Bits().WideningAdd(o.Bits()) }

// WideningSub returns the borrow-preserving difference as a Bits value.
func (r Reg) WideningSub(o Reg) Bits { return r.Bits().WideningSub(o.Bits()) }

// WideningMul returns the full product as a Bits value.
func (r Reg) WideningMul(o Reg) Bits { return r.Bits().WideningMul(o.Bits()) }

// WideningShl returns the loss-free left shift as a Bits value.
func (r Reg) WideningShl(s uint) Bits { return r.Bits().WideningShl(s) }

// Cmp compares the mathematical values of r and o.
func (r Reg) Cmp(o Reg) int { return r.Bits().Cmp(o.Bits()) }

// Eq returns true if r equals o.
func (r Reg) Eq(o Reg) bool { return r.Cmp(o) == 0 }

// Ne returns true if r does not equal o.
func (r Reg) Ne(o Reg) bool { return r.Cmp(o) != 0 }

// Lt returns true if r is less than o.
func (r Reg) Lt(o Reg) bool { return r.Cmp(o) < 0 }

// Le returns true if r is less than or equal to o.
func (r Reg) Le(o Reg) bool { return r.Cmp(o) <= 0 }

// Gt returns true if r is greater than o.
func (r Reg) Gt(o Reg) bool { return r.Cmp(o) > 0 }

// Ge returns true if r is greater than or equal to o.
func (r Reg) Ge(o Reg) bool { return r.Cmp(o) >= 0 }
