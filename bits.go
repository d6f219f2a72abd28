package bitvec

import (
	"fmt"
	"math/big"
)

// Bits is a fixed-width two's-complement integer. The stored form is the
// canonical unsigned bit pattern: the logical value occupies the low Width()
// bits and is interpreted as signed or unsigned per the value's tag. Widths
// up to MaxWordWidth are backed by a machine word, wider widths by a big.Int,
// and the two stores are observably identical. Values are immutable; every
// operation returns a new value.
type Bits struct {
	width  uint
	signed bool
	word   uint64   // native storage; used when big is nil
	big    *big.Int // extended storage; non-nil for widths beyond MaxWordWidth
}

// New returns an unsigned value of the given width. The bit pattern of value
// is masked to the low width bits.
func New(value uint64, width uint) Bits {
	assert(width > 0, "new: zero width")
	if width <= MaxWordWidth {
		return Bits{width: width, word: value & bitmask(width)}
	}
	return Bits{width: width, big: new(big.Int).SetUint64(value)}
}

// NewSigned returns a signed value of the given width. The bit pattern of
// value is masked to the low width bits; for width Inf the mathematical value
// is kept as is.
func NewSigned(value int64, width uint) Bits {
	assert(width > 0, "new: zero width")
	if width <= MaxWordWidth {
		return Bits{width: width, signed: true, word: uint64(value) & bitmask(width)}
	}
	return Bits{width: width, signed: true, big: truncBig(big.NewInt(value), width)}
}

// Bool returns a 1-bit unsigned value.
func Bool(value bool) Bits {
	if value {
		return New(1, WidthBool)
	}
	return New(0, WidthBool)
}

// FromBigInt returns an unsigned value of the given width holding the bit
// pattern of v reduced to the low width bits. A negative v contributes its
// two's-complement pattern. At width Inf no reduction happens: the
// mathematical value of v is stored as is, and a negative v yields a
// negative value whose pattern queries observe the infinite two's-complement
// tail.
func FromBigInt(v *big.Int, width uint) Bits {
	assert(width > 0, "new: zero width")
	return normBits(width, false, truncBig(new(big.Int).Set(v), width))
}

// Parse constructs an unsigned value from a string of binary digits,
// most-significant bit first. Underscores are ignored. A literal with more
// digits than width fails with ErrWidthRange.
func Parse(s string, width uint) (Bits, error) {
	assert(width > 0, "parse: zero width")
	v := new(big.Int)
	var digits uint
	for _, r := range s {
		switch r {
		case '_':
			continue
		case '0', '1':
			v.Lsh(v, 1)
			if r == '1' {
				v.SetBit(v, 0, 1)
			}
			digits++
		default:
			return Bits{}, fmt.Errorf("parse %q: invalid bit digit %q", s, r)
		}
	}
	if digits == 0 {
		return Bits{}, fmt.Errorf("parse %q: empty bit literal", s)
	}
	if width != Inf && digits > width {
		return Bits{}, fmt.Errorf("parse %q: %d digits into width %d: %w", s, digits, width, ErrWidthRange)
	}
	return normBits(width, false, v), nil
}

// newExtended returns a value forced onto extended storage regardless of
// width. Tests use it to check the two stores against each other.
func newExtended(value uint64, width uint, signed bool) Bits {
	assert(width > 0, "new: zero width")
	return Bits{width: width, signed: signed, big: truncBig(new(big.Int).SetUint64(value), width)}
}

// normBits wraps a canonical pattern in the storage the width calls for.
func normBits(width uint, signed bool, v *big.Int) Bits {
	if width <= MaxWordWidth {
		return Bits{width: width, signed: signed, word: v.Uint64()}
	}
	return Bits{width: width, signed: signed, big: v}
}

// Width returns the declared width in bits.
func (b Bits) Width() uint { return b.width }

// IsSigned returns true if the value is interpreted as signed.
func (b Bits) IsSigned() bool { return b.signed }

func (b Bits) extended() bool { return b.big != nil }

// pattern returns the stored pattern as a big.Int. The result may alias the
// backing store and must not be mutated.
func (b Bits) pattern() *big.Int {
	if b.big != nil {
		return b.big
	}
	return new(big.Int).SetUint64(b.word)
}

// toMath returns the mathematical value, honoring the signedness tag.
func (b Bits) toMath() *big.Int {
	if b.big == nil {
		if b.signed {
			return big.NewInt(signedWord(b.word, b.width))
		}
		return new(big.Int).SetUint64(b.word)
	}
	if b.signed {
		return signedBig(b.big, b.width)
	}
	return new(big.Int).Set(b.big)
}

// wordAt returns the pattern extended to width w per the value's own
// signedness. Only valid on native-backed values with w <= MaxWordWidth.
func (b Bits) wordAt(w uint) uint64 {
	return extendWord(b.word, b.width, w, b.signed)
}

// bigAt returns the pattern extended to width w per the value's own
// signedness.
func (b Bits) bigAt(w uint) *big.Int {
	return extendBig(b.pattern(), b.width, w, b.signed)
}

// Uint64 returns the low 64 bits of the canonical pattern, zero-extended.
func (b Bits) Uint64() uint64 {
	if b.big == nil {
		return b.word
	}
	return truncBig(new(big.Int).Set(b.big), Width64).Uint64()
}

// Int64 reinterprets the low bits as a signed 64-bit integer, regardless of
// the value's own signedness tag: the pattern is loaded into 64 bits and
// sign-extended from bit Width()-1 when that bit is inside the load.
func (b Bits) Int64() int64 {
	if b.big == nil {
		return signedWord(b.word, b.width)
	}
	low := truncBig(new(big.Int).Set(b.big), Width64).Uint64()
	if b.width > Width64 {
		return int64(low)
	}
	return signedWord(low, b.width)
}

// BigInt returns a copy of the canonical unsigned pattern. For width Inf the
// result is the mathematical value and may be negative.
func (b Bits) BigInt() *big.Int {
	return new(big.Int).Set(b.pattern())
}

// SignedBigInt returns the mathematical value, honoring the signedness tag.
func (b Bits) SignedBigInt() *big.Int { return b.toMath() }

// Bit returns the value of bit i.
func (b Bits) Bit(i uint) uint {
	assert(i < b.width, "bit %d out of range for width %d", i, b.width)
	if b.big == nil {
		return uint(b.word>>i) & 1
	}
	return b.big.Bit(int(i))
}

// IsZero returns true if the value is zero.
func (b Bits) IsZero() bool {
	if b.big == nil {
		return b.word == 0
	}
	return b.big.Sign() == 0
}

// IsAllOnes returns true if all bits in the value are one.
func (b Bits) IsAllOnes() bool {
	if b.big == nil {
		return b.word == bitmask(b.width)
	}
	if b.width == Inf {
		return b.big.Cmp(big.NewInt(-1)) == 0
	}
	return b.big.Cmp(maskBig(b.width)) == 0
}

// Sign returns -1, 0, or 1 according to the mathematical value.
func (b Bits) Sign() int {
	if b.IsZero() {
		return 0
	}
	if b.signed && b.width != Inf && b.Bit(b.width-1) == 1 {
		return -1
	}
	if b.big != nil {
		return b.big.Sign()
	}
	return 1
}

// ZExt returns the value zero-extended to the given width. A smaller width
// truncates. The signedness tag is preserved.
func (b Bits) ZExt(width uint) Bits {
	if width == b.width {
		return b
	}
	return b.extendAs(width, false)
}

// SExt returns the value sign-extended (from bit Width()-1) to the given
// width. A smaller width truncates. The signedness tag is preserved.
func (b Bits) SExt(width uint) Bits {
	if width == b.width {
		return b
	}
	return b.extendAs(width, true)
}

func (b Bits) extendAs(width uint, signExtend bool) Bits {
	assert(width > 0, "extend: zero width")
	if b.big == nil && width <= MaxWordWidth {
		return Bits{width: width, signed: b.signed, word: extendWord(b.word, b.width, width, signExtend)}
	}
	return normBits(width, b.signed, extendBig(b.pattern(), b.width, width, signExtend))
}

// Convert re-applies construction under a new width and signedness: the
// pattern is truncated or zero/sign-extended per the source's signedness,
// then tagged with the target's. Cross-width and cross-signedness assignment
// is defined as Convert followed by rebinding.
func (b Bits) Convert(width uint, signed bool) Bits {
	v := b.extendAs(width, b.signed)
	v.signed = signed
	return v
}

// Extract returns width bits starting at offset, as an unsigned value.
func (b Bits) Extract(offset, width uint) Bits {
	assert(width > 0, "extract: zero width")
	if b.width != Inf {
		assert(offset+width <= b.width, "extract out of bounds: %d+%d > %d", offset, width, b.width)
	}
	if b.big == nil {
		return Bits{width: width, word: (b.word >> offset) & bitmask(width)}
	}
	return normBits(width, false, truncBig(new(big.Int).Rsh(b.big, offset), width))
}

// Concat returns the concatenation of b (most significant) and lsb (least
// significant), as an unsigned value of the combined width.
func (b Bits) Concat(lsb Bits) Bits {
	assert(b.width != Inf && lsb.width != Inf, "concat: infinite width")
	width := b.width + lsb.width
	if width <= MaxWordWidth {
		return Bits{width: width, word: b.word<<lsb.width | lsb.word}
	}
	v := new(big.Int).Lsh(b.pattern(), lsb.width)
	return normBits(width, false, v.Or(v, lsb.pattern()))
}
