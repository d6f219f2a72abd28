package bitvec

import "math/big"

// Binary operations promote the narrower operand to the wider operand's
// width, extending per the narrower operand's own signedness, compute at
// that width, and truncate the result back to it. The result is signed only
// if both operands are signed. Comparisons never truncate: they compare
// mathematical values, so mixed-signedness operands order correctly.

// promote returns the common width and signedness for a binary operation.
func promote(a, b Bits) (uint, bool) {
	w := a.width
	if b.width > w {
		w = b.width
	}
	return w, a.signed && b.signed
}

// widen grows a width by delta bits, saturating at Inf.
func widen(w, delta uint) uint {
	if w == Inf || delta == Inf {
		return Inf
	}
	return w + delta
}

func (b Bits) binary(o Bits,
	wf func(x, y uint64, w uint) uint64,
	bf func(x, y *big.Int, w uint) *big.Int,
) Bits {
	w, signed := promote(b, o)
	if w <= MaxWordWidth && b.big == nil && o.big == nil {
		return Bits{width: w, signed: signed, word: wf(b.wordAt(w), o.wordAt(w), w)}
	}
	return normBits(w, signed, bf(b.bigAt(w), o.bigAt(w), w))
}

// Add returns the sum of b and o, truncated to the wider operand's width.
func (b Bits) Add(o Bits) Bits {
	return b.binary(o, wordAdd, bigAdd)
}

// Sub returns the difference of b and o, truncated to the wider operand's
// width.
func (b Bits) Sub(o Bits) Bits {
	return b.binary(o, wordSub, bigSub)
}

// Mul returns the product of b and o, truncated to the wider operand's
// width. Use WideningMul to retain every product bit.
func (b Bits) Mul(o Bits) Bits {
	return b.binary(o, wordMul, bigMul)
}

// Div returns the quotient of b and o, truncating toward zero when the
// result is signed. Division by zero fails with ErrDivideByZero.
func (b Bits) Div(o Bits) (Bits, error) {
	if o.IsZero() {
		return Bits{}, ErrDivideByZero
	}
	return b.binary(o,
		func(x, y uint64, w uint) uint64 { return wordDiv(x, y, w, b.signed && o.signed) },
		func(x, y *big.Int, w uint) *big.Int { return bigDiv(x, y, w, b.signed && o.signed) },
	), nil
}

// Rem returns the remainder of b divided by o, with the sign of the dividend
// when the result is signed. Division by zero fails with ErrDivideByZero.
func (b Bits) Rem(o Bits) (Bits, error) {
	if o.IsZero() {
		return Bits{}, ErrDivideByZero
	}
	return b.binary(o,
		func(x, y uint64, w uint) uint64 { return wordRem(x, y, w, b.signed && o.signed) },
		func(x, y *big.Int, w uint) *big.Int { return bigRem(x, y, w, b.signed && o.signed) },
	), nil
}

// And returns the bitwise AND of b and o at the wider operand's width.
func (b Bits) And(o Bits) Bits {
	return b.binary(o,
		func(x, y uint64, w uint) uint64 { return wordAnd(x, y) },
		func(x, y *big.Int, w uint) *big.Int { return bigAnd(x, y) },
	)
}

// Or returns the bitwise OR of b and o at the wider operand's width.
func (b Bits) Or(o Bits) Bits {
	return b.binary(o,
		func(x, y uint64, w uint) uint64 { return wordOr(x, y) },
		func(x, y *big.Int, w uint) *big.Int { return bigOr(x, y) },
	)
}

// Xor returns the bitwise XOR of b and o at the wider operand's width.
func (b Bits) Xor(o Bits) Bits {
	return b.binary(o,
		func(x, y uint64, w uint) uint64 { return wordXor(x, y) },
		func(x, y *big.Int, w uint) *big.Int { return bigXor(x, y) },
	)
}

// Not returns the bitwise inversion of b.
func (b Bits) Not() Bits {
	if b.big == nil {
		return Bits{width: b.width, signed: b.signed, word: wordNot(b.word, b.width)}
	}
	return normBits(b.width, b.signed, bigNot(b.big, b.width))
}

// Neg returns the two's-complement additive inverse of b at its own width.
// For unsigned values this is the modular inverse, not an error: negating 5
// at width 64 yields 2^64 - 5.
func (b Bits) Neg() Bits {
	if b.big == nil {
		return Bits{width: b.width, signed: b.signed, word: wordNeg(b.word, b.width)}
	}
	return normBits(b.width, b.signed, bigNeg(b.big, b.width))
}

// Shl shifts b left by s bits, discarding bits shifted beyond its width.
// Use WideningShl to retain them.
func (b Bits) Shl(s uint) Bits {
	if b.big == nil {
		return Bits{width: b.width, signed: b.signed, word: wordShl(b.word, s, b.width)}
	}
	return normBits(b.width, b.signed, bigShl(b.big, s, b.width))
}

// LShr shifts b right by s bits, zero-filling from the top regardless of
// signedness. Shifting by s >= Width() yields zero.
func (b Bits) LShr(s uint) Bits {
	if b.big == nil {
		return Bits{width: b.width, signed: b.signed, word: wordLShr(b.word, s)}
	}
	return normBits(b.width, b.signed, bigLShr(b.big, s))
}

// Sra shifts b right by s bits, replicating bit Width()-1 into the vacated
// positions. It is defined for unsigned-tagged values too: the sign bit is
// still bit Width()-1. Shifting by s >= Width() yields all sign bits.
func (b Bits) Sra(s uint) Bits {
	if b.big == nil {
		return Bits{width: b.width, signed: b.signed, word: wordSra(b.word, s, b.width)}
	}
	return normBits(b.width, b.signed, bigSra(b.big, s, b.width))
}

// WideningAdd returns the sum of b and o at one bit wider than the wider
// operand, so the carry bit is never lost.
func (b Bits) WideningAdd(o Bits) Bits {
	return b.wideningBinary(o, 1, wordAdd, bigAdd)
}

// WideningSub returns the difference of b and o at one bit wider than the
// wider operand, so the borrow is never lost.
func (b Bits) WideningSub(o Bits) Bits {
	return b.wideningBinary(o, 1, wordSub, bigSub)
}

// WideningMul returns the product of b and o at the sum of their widths, so
// no product bit is ever lost.
func (b Bits) WideningMul(o Bits) Bits {
	signed := b.signed && o.signed
	rw := widen(b.width, o.width)
	if rw <= MaxWordWidth && b.big == nil && o.big == nil {
		return Bits{width: rw, signed: signed, word: (b.wordAt(Width64) * o.wordAt(Width64)) & bitmask(rw)}
	}
	return normBits(rw, signed, bigMul(b.bigAt(rw), o.bigAt(rw), rw))
}

// WideningShl shifts b left by s bits at width Width()+s, retaining every
// shifted bit.
func (b Bits) WideningShl(s uint) Bits {
	rw := widen(b.width, s)
	if rw <= MaxWordWidth && b.big == nil {
		return Bits{width: rw, signed: b.signed, word: (b.wordAt(Width64) << s) & bitmask(rw)}
	}
	return normBits(rw, b.signed, bigShl(b.bigAt(rw), s, rw))
}

// wideningBinary computes at extra bits beyond the common width instead of
// truncating back to it.
func (b Bits) wideningBinary(o Bits, extra uint,
	wf func(x, y uint64, w uint) uint64,
	bf func(x, y *big.Int, w uint) *big.Int,
) Bits {
	w, signed := promote(b, o)
	rw := widen(w, extra)
	if rw <= MaxWordWidth && b.big == nil && o.big == nil {
		return Bits{width: rw, signed: signed, word: wf(b.wordAt(Width64), o.wordAt(Width64), rw)}
	}
	return normBits(rw, signed, bf(b.bigAt(rw), o.bigAt(rw), rw))
}

// Cmp returns an integer comparing the mathematical values of b and o:
// 0 if b == o, -1 if b < o, and +1 if b > o. Operands of different widths or
// signedness compare in true numeric order; nothing is truncated.
func (b Bits) Cmp(o Bits) int {
	if b.big == nil && o.big == nil {
		return wordCmp(b.word, b.width, b.signed, o.word, o.width, o.signed)
	}
	return b.toMath().Cmp(o.toMath())
}

// Eq returns true if b equals o.
func (b Bits) Eq(o Bits) bool { return b.Cmp(o) == 0 }

// Ne returns true if b does not equal o.
func (b Bits) Ne(o Bits) bool { return b.Cmp(o) != 0 }

// Lt returns true if b is less than o.
func (b Bits) Lt(o Bits) bool { return b.Cmp(o) < 0 }

// Le returns true if b is less than or equal to o.
func (b Bits) Le(o Bits) bool { return b.Cmp(o) <= 0 }

// Gt returns true if b is greater than o.
func (b Bits) Gt(o Bits) bool { return b.Cmp(o) > 0 }

// Ge returns true if b is greater than or equal to o.
func (b Bits) Ge(o Bits) bool { return b.Cmp(o) >= 0 }
