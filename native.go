package bitvec

// Native-store operations over machine words. A pattern is canonical for its
// width: the logical value occupies the low width bits and all upper bits are
// zero. Binary operations take operands already extended to a common width
// w, 1 <= w <= MaxWordWidth, and return canonical results at that width.

// signedWord reinterprets the low w bits of v as a two's-complement signed
// integer, sign-extending bit w-1 through bit 63.
func signedWord(v uint64, w uint) int64 {
	if w < Width64 && v>>(w-1) == 1 {
		return int64(v | ^bitmask(w))
	}
	return int64(v)
}

// extendWord converts a canonical pattern from width from to width to.
// Narrowing truncates; widening sign-extends when signed and the top bit is
// set, and zero-extends otherwise.
func extendWord(v uint64, from, to uint, signed bool) uint64 {
	if to <= from {
		return v & bitmask(to)
	}
	if signed && v>>(from-1) == 1 {
		return (v | ^bitmask(from)) & bitmask(to)
	}
	return v
}

func wordAdd(x, y uint64, w uint) uint64 {
	return (x + y) & bitmask(w)
}

func wordSub(x, y uint64, w uint) uint64 {
	return (x - y) & bitmask(w)
}

func wordMul(x, y uint64, w uint) uint64 {
	return (x * y) & bitmask(w)
}

// wordDiv divides x by y, truncating toward zero when signed. The divisor
// must be non-zero. The single overflowing case, minimum-value / -1, wraps to
// the minimum value as on hardware.
func wordDiv(x, y uint64, w uint, signed bool) uint64 {
	if !signed {
		return x / y
	}
	sx, sy := signedWord(x, w), signedWord(y, w)
	if sy == -1 {
		return wordNeg(x, w) // avoids the MinInt64 / -1 trap
	}
	return uint64(sx/sy) & bitmask(w)
}

// wordRem returns the remainder of x divided by y, with the sign of the
// dividend when signed. The divisor must be non-zero.
func wordRem(x, y uint64, w uint, signed bool) uint64 {
	if !signed {
		return x % y
	}
	sx, sy := signedWord(x, w), signedWord(y, w)
	if sy == -1 {
		return 0
	}
	return uint64(sx%sy) & bitmask(w)
}

func wordAnd(x, y uint64) uint64 { return x & y }
func wordOr(x, y uint64) uint64  { return x | y }
func wordXor(x, y uint64) uint64 { return x ^ y }

func wordNot(v uint64, w uint) uint64 {
	return ^v & bitmask(w)
}

// wordNeg returns the two's-complement additive inverse of v at width w.
func wordNeg(v uint64, w uint) uint64 {
	return (^v + 1) & bitmask(w)
}

// wordShl shifts v left by s bits, discarding bits shifted beyond width w.
func wordShl(v uint64, s, w uint) uint64 {
	if s >= w {
		return 0
	}
	return (v << s) & bitmask(w)
}

// wordLShr shifts v right by s bits, zero-filling from the top regardless of
// signedness. Shifting by s >= w yields zero.
func wordLShr(v uint64, s uint) uint64 {
	return v >> s
}

// wordSra shifts v right by s bits, replicating the sign bit (bit w-1) into
// the vacated positions. Shifting by s >= w yields all sign bits.
func wordSra(v uint64, s, w uint) uint64 {
	return uint64(signedWord(v, w)>>s) & bitmask(w)
}

// wordCmp compares two canonical patterns under their own widths and
// signedness, in true numeric order.
func wordCmp(x uint64, xw uint, xsigned bool, y uint64, yw uint, ysigned bool) int {
	xneg := xsigned && x>>(xw-1) == 1
	yneg := ysigned && y>>(yw-1) == 1
	switch {
	case xneg && !yneg:
		return -1
	case !xneg && yneg:
		return 1
	case xneg && yneg:
		sx, sy := signedWord(x, xw), signedWord(y, yw)
		switch {
		case sx < sy:
			return -1
		case sx > sy:
			return 1
		}
		return 0
	}
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}
