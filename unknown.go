package bitvec

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// XBits pairs a fixed-width value with a parallel unknown-bit mask: bit i of
// the mask set means bit i of the value is indeterminate, in the manner of
// the IEEE-1364 "x" logic state. Value bits at unknown positions are stored
// as zero and must not be relied on. Unknown-ness propagates pessimistically
// through every operation; the exact per-operation rules are documented on
// the methods. XBits requires a finite width.
type XBits struct {
	value   Bits
	unknown *bitset.BitSet
}

// Known returns b with every bit marked known.
func Known(b Bits) XBits {
	assert(b.width != Inf, "unknown mask requires finite width")
	return XBits{value: b, unknown: bitset.New(b.width)}
}

// Unknown returns an unsigned value of the given width with every bit
// unknown.
func Unknown(width uint) XBits {
	assert(width > 0 && width != Inf, "unknown mask requires finite width")
	return XBits{value: New(0, width), unknown: onesMask(width)}
}

// NewX returns value with the given unknown mask. The mask is copied and
// trimmed to the value's width; value bits at unknown positions are cleared.
func NewX(value Bits, unknown *bitset.BitSet) XBits {
	assert(value.width != Inf, "unknown mask requires finite width")
	u := unknown.Clone()
	u.InPlaceIntersection(onesMask(value.width))
	return canonX(value.width, value.signed, value, u)
}

// ParseX constructs an unsigned possibly-unknown value from a string of
// binary digits, most-significant bit first, where 'x' or 'X' marks an
// unknown bit. Underscores are ignored. A literal with more digits than
// width fails with ErrWidthRange.
func ParseX(s string, width uint) (XBits, error) {
	assert(width > 0 && width != Inf, "unknown mask requires finite width")
	v := new(big.Int)
	u := new(big.Int)
	var digits uint
	for _, r := range s {
		switch r {
		case '_':
			continue
		case '0', '1', 'x', 'X':
			v.Lsh(v, 1)
			u.Lsh(u, 1)
			if r == '1' {
				v.SetBit(v, 0, 1)
			} else if r == 'x' || r == 'X' {
				u.SetBit(u, 0, 1)
			}
			digits++
		default:
			return XBits{}, fmt.Errorf("parse %q: invalid bit digit %q", s, r)
		}
	}
	if digits == 0 {
		return XBits{}, fmt.Errorf("parse %q: empty bit literal", s)
	}
	if digits > width {
		return XBits{}, fmt.Errorf("parse %q: %d digits into width %d: %w", s, digits, width, ErrWidthRange)
	}
	mask := bitset.New(width)
	for i := 0; i < int(width); i++ {
		if u.Bit(i) == 1 {
			mask.Set(uint(i))
		}
	}
	return XBits{value: normBits(width, false, v), unknown: mask}, nil
}

// onesMask returns a mask with bits 0..w-1 set.
func onesMask(w uint) *bitset.BitSet {
	return bitset.New(w).FlipRange(0, w)
}

// rangeMask returns a mask with bits lo..w-1 set.
func rangeMask(lo, w uint) *bitset.BitSet {
	if lo >= w {
		return bitset.New(w)
	}
	return bitset.New(w).FlipRange(lo, w)
}

// valueMask returns the set of one-bits in the canonical pattern of b.
func valueMask(b Bits) *bitset.BitSet {
	s := bitset.New(b.width)
	for i := uint(0); i < b.width; i++ {
		if b.Bit(i) == 1 {
			s.Set(i)
		}
	}
	return s
}

// maskBits renders an unknown mask as an unsigned value of width w.
func maskBits(u *bitset.BitSet, w uint) Bits {
	v := new(big.Int)
	for i, ok := u.NextSet(0); ok && i < w; i, ok = u.NextSet(i + 1) {
		v.SetBit(v, int(i), 1)
	}
	return normBits(w, false, v)
}

// canonX restores the canonical form: value bits at unknown positions are
// cleared and the signedness tag is applied.
func canonX(w uint, signed bool, val Bits, u *bitset.BitSet) XBits {
	if u.Any() {
		val = val.And(maskBits(u, w).Not())
	}
	val.signed = signed
	return XBits{value: val, unknown: u}
}

// lowestUnknown returns the least position that is unknown in either mask.
func lowestUnknown(a, b *bitset.BitSet) (uint, bool) {
	ai, ae := a.NextSet(0)
	bi, be := b.NextSet(0)
	switch {
	case ae && be:
		if bi < ai {
			return bi, true
		}
		return ai, true
	case ae:
		return ai, true
	case be:
		return bi, true
	}
	return 0, false
}

// Width returns the declared width in bits.
func (x XBits) Width() uint { return x.value.width }

// IsSigned returns true if the value is interpreted as signed.
func (x XBits) IsSigned() bool { return x.value.signed }

// IsKnown returns true if no bit is unknown.
func (x XBits) IsKnown() bool { return x.unknown.None() }

// KnownBit returns true if bit i is known.
func (x XBits) KnownBit(i uint) bool {
	assert(i < x.value.width, "bit %d out of range for width %d", i, x.value.width)
	return !x.unknown.Test(i)
}

// UnknownMask returns a copy of the unknown-bit mask.
func (x XBits) UnknownMask() *bitset.BitSet { return x.unknown.Clone() }

// Value returns the underlying fixed-width value. Extracting a value with
// any unknown bit fails with ErrUnknownBits; check IsKnown first.
func (x XBits) Value() (Bits, error) {
	if !x.IsKnown() {
		return Bits{}, ErrUnknownBits
	}
	return x.value, nil
}

// Uint64 returns the canonical pattern. It fails with ErrUnknownBits if any
// bit is unknown.
func (x XBits) Uint64() (uint64, error) {
	if !x.IsKnown() {
		return 0, ErrUnknownBits
	}
	return x.value.Uint64(), nil
}

// Int64 returns the sign-reinterpreted low bits. It fails with
// ErrUnknownBits if any bit is unknown.
func (x XBits) Int64() (int64, error) {
	if !x.IsKnown() {
		return 0, ErrUnknownBits
	}
	return x.value.Int64(), nil
}

// alignTo converts x to width w under its own signedness. Truncation drops
// high mask bits; sign extension of an unknown top bit marks every new bit
// unknown.
func (x XBits) alignTo(w uint) XBits {
	ow := x.value.width
	if w == ow {
		return x
	}
	v := x.value.extendAs(w, x.value.signed)
	u := x.unknown.Clone()
	if w < ow {
		u.InPlaceIntersection(onesMask(w))
	} else if x.value.signed && u.Test(ow-1) {
		u.InPlaceUnion(rangeMask(ow, w))
	}
	return XBits{value: v, unknown: u}
}

// Convert re-applies construction under a new width and signedness, exactly
// as Bits.Convert, with the unknown mask carried along: zero extension adds
// known zeros, sign extension from an unknown top bit adds unknown bits.
func (x XBits) Convert(width uint, signed bool) XBits {
	assert(width > 0 && width != Inf, "unknown mask requires finite width")
	a := x.alignTo(width)
	a.value.signed = signed
	return a
}

// knownZeros returns the positions holding a known zero bit.
func (x XBits) knownZeros() *bitset.BitSet {
	z := onesMask(x.value.width)
	z.InPlaceDifference(valueMask(x.value))
	z.InPlaceDifference(x.unknown)
	return z
}

// knownOnes returns the positions holding a known one bit.
func (x XBits) knownOnes() *bitset.BitSet {
	o := valueMask(x.value)
	o.InPlaceDifference(x.unknown)
	return o
}

// And returns the bitwise AND. An output bit is known zero wherever either
// operand has a known zero; otherwise it is unknown if either input bit is.
func (x XBits) And(o XBits) XBits {
	w, signed := promote(x.value, o.value)
	a, b := x.alignTo(w), o.alignTo(w)
	u := a.unknown.Union(b.unknown)
	u.InPlaceDifference(a.knownZeros().Union(b.knownZeros()))
	return canonX(w, signed, a.value.And(b.value), u)
}

// Or returns the bitwise OR. An output bit is known one wherever either
// operand has a known one; otherwise it is unknown if either input bit is.
func (x XBits) Or(o XBits) XBits {
	w, signed := promote(x.value, o.value)
	a, b := x.alignTo(w), o.alignTo(w)
	u := a.unknown.Union(b.unknown)
	u.InPlaceDifference(a.knownOnes().Union(b.knownOnes()))
	return canonX(w, signed, a.value.Or(b.value), u)
}

// Xor returns the bitwise XOR. An output bit is unknown if either input bit
// is.
func (x XBits) Xor(o XBits) XBits {
	w, signed := promote(x.value, o.value)
	a, b := x.alignTo(w), o.alignTo(w)
	return canonX(w, signed, a.value.Xor(b.value), a.unknown.Union(b.unknown))
}

// Not returns the bitwise inversion; the unknown mask is unchanged.
func (x XBits) Not() XBits {
	return canonX(x.value.width, x.value.signed, x.value.Not(), x.unknown.Clone())
}

// Add returns the sum. Carries make every bit at or above the lowest
// unknown input bit unknown.
func (x XBits) Add(o XBits) XBits {
	return x.carryBinary(o, Bits.Add)
}

// Sub returns the difference. Borrows make every bit at or above the lowest
// unknown input bit unknown.
func (x XBits) Sub(o XBits) XBits {
	return x.carryBinary(o, Bits.Sub)
}

func (x XBits) carryBinary(o XBits, op func(Bits, Bits) Bits) XBits {
	w, signed := promote(x.value, o.value)
	a, b := x.alignTo(w), o.alignTo(w)
	u := bitset.New(w)
	if l, ok := lowestUnknown(a.unknown, b.unknown); ok {
		u = rangeMask(l, w)
	}
	return canonX(w, signed, op(a.value, b.value), u)
}

// Neg returns the two's-complement inverse. Every bit at or above the
// lowest unknown bit becomes unknown.
func (x XBits) Neg() XBits {
	w := x.value.width
	u := bitset.New(w)
	if l, ok := x.unknown.NextSet(0); ok {
		u = rangeMask(l, w)
	}
	return canonX(w, x.value.signed, x.value.Neg(), u)
}

// Mul returns the product. Any unknown input bit makes the whole result
// unknown: partial products spread each input bit across every output
// position.
func (x XBits) Mul(o XBits) XBits {
	w, signed := promote(x.value, o.value)
	if x.IsKnown() && o.IsKnown() {
		return canonX(w, signed, x.value.Mul(o.value), bitset.New(w))
	}
	return canonX(w, signed, New(0, w), onesMask(w))
}

// Div returns the quotient. A known zero divisor fails with
// ErrDivideByZero; any unknown input bit (including a possibly-zero
// divisor) yields an all-unknown result instead of an error.
func (x XBits) Div(o XBits) (XBits, error) {
	return x.divide(o, Bits.Div)
}

// Rem returns the remainder, under the same unknown-bit rules as Div.
func (x XBits) Rem(o XBits) (XBits, error) {
	return x.divide(o, Bits.Rem)
}

func (x XBits) divide(o XBits, op func(Bits, Bits) (Bits, error)) (XBits, error) {
	w, signed := promote(x.value, o.value)
	if o.IsKnown() && o.value.IsZero() {
		return XBits{}, ErrDivideByZero
	}
	if !x.IsKnown() || !o.IsKnown() {
		return canonX(w, signed, New(0, w), onesMask(w)), nil
	}
	v, err := op(x.value, o.value)
	if err != nil {
		return XBits{}, err
	}
	return canonX(w, signed, v, bitset.New(w)), nil
}

// Shl shifts left by s bits at the same width; the unknown mask shifts
// along and the vacated low bits are known zeros.
func (x XBits) Shl(s uint) XBits {
	w := x.value.width
	u := x.unknown.Clone()
	u.ShiftLeft(s)
	u.InPlaceIntersection(onesMask(w))
	return canonX(w, x.value.signed, x.value.Shl(s), u)
}

// LShr shifts right by s bits; the unknown mask shifts along and the
// vacated high bits are known zeros.
func (x XBits) LShr(s uint) XBits {
	w := x.value.width
	u := x.unknown.Clone()
	u.ShiftRight(s)
	return canonX(w, x.value.signed, x.value.LShr(s), u)
}

// Sra shifts right by s bits, replicating bit Width()-1. An unknown sign
// bit makes every replicated position unknown.
func (x XBits) Sra(s uint) XBits {
	w := x.value.width
	signUnknown := x.unknown.Test(w - 1)
	u := x.unknown.Clone()
	u.ShiftRight(s)
	if signUnknown {
		if s >= w {
			u = onesMask(w)
		} else {
			u.InPlaceUnion(rangeMask(w-s-1, w))
		}
	}
	return canonX(w, x.value.signed, x.value.Sra(s), u)
}

// WideningAdd returns the carry-preserving sum at one extra bit, under the
// same carry taint rule as Add.
func (x XBits) WideningAdd(o XBits) XBits {
	return x.wideningCarry(o, Bits.WideningAdd)
}

// WideningSub returns the borrow-preserving difference at one extra bit,
// under the same carry taint rule as Sub.
func (x XBits) WideningSub(o XBits) XBits {
	return x.wideningCarry(o, Bits.WideningSub)
}

func (x XBits) wideningCarry(o XBits, op func(Bits, Bits) Bits) XBits {
	w, signed := promote(x.value, o.value)
	rw := w + 1
	a, b := x.alignTo(w), o.alignTo(w)
	u := bitset.New(rw)
	if l, ok := lowestUnknown(a.unknown, b.unknown); ok {
		u = rangeMask(l, rw)
	}
	return canonX(rw, signed, op(a.value, b.value), u)
}

// WideningMul returns the full product at the sum of the operand widths.
// Any unknown input bit makes the whole result unknown.
func (x XBits) WideningMul(o XBits) XBits {
	signed := x.value.signed && o.value.signed
	rw := x.value.width + o.value.width
	if x.IsKnown() && o.IsKnown() {
		return canonX(rw, signed, x.value.WideningMul(o.value), bitset.New(rw))
	}
	return canonX(rw, signed, New(0, rw), onesMask(rw))
}

// WideningShl shifts left by s bits at width Width()+s, keeping every bit;
// the unknown mask shifts along unchanged.
func (x XBits) WideningShl(s uint) XBits {
	rw := x.value.width + s
	u := x.unknown.Clone()
	u.ShiftLeft(s)
	u.InPlaceIntersection(onesMask(rw))
	return canonX(rw, x.value.signed, x.value.WideningShl(s), u)
}

// Cmp compares mathematical values. If either operand has any unknown bit
// the ordering is indeterminate and Cmp fails with ErrUnknownBits; with
// fully known operands it behaves exactly as Bits.Cmp.
func (x XBits) Cmp(o XBits) (int, error) {
	if !x.IsKnown() || !o.IsKnown() {
		return 0, ErrUnknownBits
	}
	return x.value.Cmp(o.value), nil
}

// Eq returns true if x equals o, or ErrUnknownBits if either operand has an
// unknown bit.
func (x XBits) Eq(o XBits) (bool, error) {
	c, err := x.Cmp(o)
	return c == 0, err
}

// Ne returns true if x does not equal o, or ErrUnknownBits if either
// operand has an unknown bit.
func (x XBits) Ne(o XBits) (bool, error) {
	c, err := x.Cmp(o)
	return c != 0, err
}

// Lt returns true if x is less than o, or ErrUnknownBits if either operand
// has an unknown bit.
func (x XBits) Lt(o XBits) (bool, error) {
	c, err := x.Cmp(o)
	return c < 0, err
}

// Le returns true if x is less than or equal to o, or ErrUnknownBits if
// either operand has an unknown bit.
func (x XBits) Le(o XBits) (bool, error) {
	c, err := x.Cmp(o)
	return c <= 0, err
}

// Gt returns true if x is greater than o, or ErrUnknownBits if either
// operand has an unknown bit.
func (x XBits) Gt(o XBits) (bool, error) {
	c, err := x.Cmp(o)
	return c > 0, err
}

// Ge returns true if x is greater than or equal to o, or ErrUnknownBits if
// either operand has an unknown bit.
func (x XBits) Ge(o XBits) (bool, error) {
	c, err := x.Cmp(o)
	return c >= 0, err
}

// Identical reports bit-for-bit equality of value and unknown mask after
// width alignment, like the Verilog === operator. Unlike Eq it is always
// defined: two values are identical only if their unknown bits coincide.
func (x XBits) Identical(o XBits) bool {
	w, _ := promote(x.value, o.value)
	a, b := x.alignTo(w), o.alignTo(w)
	if a.value.pattern().Cmp(b.value.pattern()) != 0 {
		return false
	}
	return a.unknown.SymmetricDifference(b.unknown).None()
}

// Extract returns width bits starting at offset, as an unsigned value with
// the corresponding slice of the unknown mask.
func (x XBits) Extract(offset, width uint) XBits {
	u := x.unknown.Clone()
	u.ShiftRight(offset)
	u.InPlaceIntersection(onesMask(width))
	return canonX(width, false, x.value.Extract(offset, width), u)
}

// Concat returns the concatenation of x (most significant) and lsb (least
// significant) with both unknown masks carried into place.
func (x XBits) Concat(lsb XBits) XBits {
	width := x.value.width + lsb.value.width
	u := x.unknown.Clone()
	u.ShiftLeft(lsb.value.width)
	u.InPlaceUnion(lsb.unknown)
	return canonX(width, false, x.value.Concat(lsb.value), u)
}

// String renders a fully known value as its decimal Bits form and a
// partially unknown one in Verilog style, e.g. 6'b10xx01.
func (x XBits) String() string {
	if x.IsKnown() {
		return x.value.String()
	}
	return fmt.Sprintf("%d'b%s", x.value.width, x.binaryX())
}

// Format implements fmt.Formatter. Fully known values format as their Bits
// form. Otherwise %b renders per-bit with x markers and %x/%X render any
// nibble containing an unknown bit as x; other verbs fall back to String.
func (x XBits) Format(f fmt.State, verb rune) {
	if x.IsKnown() {
		x.value.Format(f, verb)
		return
	}
	switch verb {
	case 'b':
		fmt.Fprint(f, x.binaryX())
	case 'x', 'X':
		fmt.Fprint(f, x.hexX(verb == 'X'))
	default:
		fmt.Fprint(f, x.String())
	}
}

func (x XBits) binaryX() string {
	var sb strings.Builder
	for i := int(x.value.width) - 1; i >= 0; i-- {
		switch {
		case x.unknown.Test(uint(i)):
			sb.WriteByte('x')
		case x.value.Bit(uint(i)) == 1:
			sb.WriteByte('1')
		default:
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func (x XBits) hexX(upper bool) string {
	const lowerDigits = "0123456789abcdef"
	const upperDigits = "0123456789ABCDEF"
	digits := lowerDigits
	xdigit := byte('x')
	if upper {
		digits = upperDigits
		xdigit = 'X'
	}
	w := x.value.width
	var sb strings.Builder
	for nibble := int((w + 3) / 4); nibble > 0; nibble-- {
		lo := uint(nibble-1) * 4
		hi := lo + 4
		if hi > w {
			hi = w
		}
		var v uint
		known := true
		for i := lo; i < hi; i++ {
			if x.unknown.Test(i) {
				known = false
			}
			v |= uint(x.value.Bit(i)) << (i - lo)
		}
		if known {
			sb.WriteByte(digits[v])
		} else {
			sb.WriteByte(xdigit)
		}
	}
	return sb.String()
}

// XReg is a runtime-width register with a parallel unknown-bit mask: the
// possibly-unknown counterpart of Reg, re-deriving all rules from the
// current runtime width.
type XReg struct {
	reg     Reg
	unknown *bitset.BitSet
}

// NewXReg returns a fully known unsigned register of the given runtime
// width. A width of zero or beyond RegMaxWidth fails with ErrWidthRange.
func NewXReg(value uint64, width uint) (XReg, error) {
	r, err := NewReg(value, width)
	if err != nil {
		return XReg{}, err
	}
	return XReg{reg: r, unknown: bitset.New(width)}, nil
}

// NewUnknownReg returns a register of the given runtime width with every
// bit unknown, the state of uninitialized hardware.
func NewUnknownReg(width uint) (XReg, error) {
	r, err := NewReg(0, width)
	if err != nil {
		return XReg{}, err
	}
	return XReg{reg: r, unknown: onesMask(width)}, nil
}

// X returns the register's current contents as a possibly-unknown value.
func (r XReg) X() XBits {
	return XBits{value: r.reg.Bits(), unknown: r.unknown.Clone()}
}

// Width returns the current runtime width.
func (r XReg) Width() uint { return r.reg.width }

// IsKnown returns true if no bit is unknown.
func (r XReg) IsKnown() bool { return r.unknown.None() }

// Uint64 returns the canonical pattern, or ErrUnknownBits if any bit is
// unknown.
func (r XReg) Uint64() (uint64, error) {
	if !r.IsKnown() {
		return 0, ErrUnknownBits
	}
	return r.reg.Uint64(), nil
}

// Set rebinds the register to a fully known value, masked to the current
// width.
func (r *XReg) Set(value uint64) {
	r.reg.Set(value)
	r.unknown = bitset.New(r.reg.width)
}

// SetWidth changes the runtime width under Reg.SetWidth rules; sign
// extension from an unknown top bit marks the new bits unknown.
func (r *XReg) SetWidth(width uint) error {
	x := r.X()
	if err := r.reg.SetWidth(width); err != nil {
		return err
	}
	a := x.alignTo(width)
	r.unknown = a.unknown
	r.reg.value = a.value.Uint64()
	return nil
}

// Assign stores x into the register under the register's current width and
// signedness.
func (r *XReg) Assign(x XBits) {
	a := x.Convert(r.reg.width, r.reg.signed)
	r.reg.value = a.value.Uint64()
	r.unknown = a.unknown.Clone()
}

// Add returns the sum of r and o under XBits propagation rules.
func (r XReg) Add(o XReg) XReg { return xregOf(r.X().Add(o.X())) }

// Sub returns the difference of r and o under XBits propagation rules.
func (r XReg) Sub(o XReg) XReg { return xregOf(r.X().Sub(o.X())) }

// Mul returns the product of r and o under XBits propagation rules.
func (r XReg) Mul(o XReg) XReg { return xregOf(r.X().Mul(o.X())) }

// Div returns the quotient of r and o. A known zero divisor fails with
// ErrDivideByZero; any unknown input bit yields an all-unknown result.
func (r XReg) Div(o XReg) (XReg, error) {
	x, err := r.X().Div(o.X())
	if err != nil {
		return XReg{}, err
	}
	return xregOf(x), nil
}

// Rem returns the remainder of r divided by o, under the same unknown-bit
// rules as Div.
func (r XReg) Rem(o XReg) (XReg, error) {
	x, err := r.X().Rem(o.X())
	if err != nil {
		return XReg{}, err
	}
	return xregOf(x), nil
}

// And returns the bitwise AND of r and o under XBits propagation rules.
func (r XReg) And(o XReg) XReg { return xregOf(r.X().And(o.X())) }

// Or returns the bitwise OR of r and o under XBits propagation rules.
func (r XReg) Or(o XReg) XReg { return xregOf(r.X().Or(o.X())) }

// Xor returns the bitwise XOR of r and o under XBits propagation rules.
func (r XReg) Xor(o XReg) XReg { return xregOf(r.X().Xor(o.X())) }

// Not returns the bitwise inversion of r.
func (r XReg) Not() XReg { return xregOf(r.X().Not()) }

// Neg returns the two's-complement inverse of r.
func (r XReg) Neg() XReg { return xregOf(r.X().Neg()) }

// Shl shifts r left by s bits at its current width.
func (r XReg) Shl(s uint) XReg { return xregOf(r.X().Shl(s)) }

// LShr shifts r right by s bits, zero-filling from the top.
func (r XReg) LShr(s uint) XReg { return xregOf(r.X().LShr(s)) }

// Sra shifts r right by s bits, replicating the current top bit.
func (r XReg) Sra(s uint) XReg { return xregOf(r.X().Sra(s)) }

// WideningAdd returns the carry-preserving sum. The result may exceed
// RegMaxWidth, so it is returned as an XBits value.
func (r XReg) WideningAdd(o XReg) XBits { return r.X().WideningAdd(o.X()) }

// WideningSub returns the borrow-preserving difference as an XBits value.
func (r XReg) WideningSub(o XReg) XBits { return r.X().WideningSub(o.X()) }

// WideningMul returns the full product as an XBits value.
func (r XReg) WideningMul(o XReg) XBits { return r.X().WideningMul(o.X()) }

// WideningShl returns the loss-free left shift as an XBits value.
func (r XReg) WideningShl(s uint) XBits { return r.X().WideningShl(s) }

// Cmp compares r and o; any unknown bit makes the ordering indeterminate.
func (r XReg) Cmp(o XReg) (int, error) { return r.X().Cmp(o.X()) }

// Eq returns true if r equals o, or ErrUnknownBits if any bit is unknown.
func (r XReg) Eq(o XReg) (bool, error) { return r.X().Eq(o.X()) }

// Ne returns true if r does not equal o, or ErrUnknownBits if any bit is
// unknown.
func (r XReg) Ne(o XReg) (bool, error) { return r.X().Ne(o.X()) }

// Lt returns true if r is less than o, or ErrUnknownBits if any bit is
// unknown.
func (r XReg) Lt(o XReg) (bool, error) { return r.X().Lt(o.X()) }

// Le returns true if r is less than or equal to o, or ErrUnknownBits if any
// bit is unknown.
func (r XReg) Le(o XReg) (bool, error) { return r.X().Le(o.X()) }

// Gt returns true if r is greater than o, or ErrUnknownBits if any bit is
// unknown.
func (r XReg) Gt(o XReg) (bool, error) { return r.X().Gt(o.X()) }

// Ge returns true if r is greater than or equal to o, or ErrUnknownBits if
// any bit is unknown.
func (r XReg) Ge(o XReg) (bool, error) { return r.X().Ge(o.X()) }

// Identical reports bit-for-bit equality of value and unknown mask.
func (r XReg) Identical(o XReg) bool { return r.X().Identical(o.X()) }

// String renders the register as its XBits form.
func (r XReg) String() string { return r.X().String() }

func xregOf(x XBits) XReg {
	assert(x.value.big == nil, "register result on extended storage")
	return XReg{
		reg:     Reg{value: x.value.word, width: x.value.width, signed: x.value.signed},
		unknown: x.unknown,
	}
}
