package bitvec

import "math/big"

// Extended-store operations over big.Int patterns. As with the native store,
// a pattern is canonical for its width: non-negative and below 2^w. The one
// exception is width Inf, where the stored integer is the mathematical value
// itself and no truncation is applied. Operands are never mutated; truncBig
// reduces the freshly allocated result in place.

// maskBig returns 2^w - 1.
func maskBig(w uint) *big.Int {
	m := big.NewInt(1)
	m.Lsh(m, w)
	return m.Sub(m, big.NewInt(1))
}

// truncBig reduces v to its canonical pattern at width w, in place.
// big.Int implements infinite two's-complement semantics for negative
// values, so And with the width mask is exact for them too.
func truncBig(v *big.Int, w uint) *big.Int {
	if w == Inf {
		return v
	}
	return v.And(v, maskBig(w))
}

// signedBig reinterprets the pattern v of width w as a two's-complement
// signed integer.
func signedBig(v *big.Int, w uint) *big.Int {
	if w == Inf || v.Bit(int(w-1)) == 0 {
		return new(big.Int).Set(v)
	}
	m := big.NewInt(1)
	m.Lsh(m, w)
	return m.Sub(v, m) // v - 2^w
}

// extendBig converts a canonical pattern from width from to width to,
// sign-extending when signed and the top bit is set.
func extendBig(v *big.Int, from, to uint, signed bool) *big.Int {
	if from == Inf {
		return truncBig(new(big.Int).Set(v), to)
	}
	if signed {
		return truncBig(signedBig(v, from), to)
	}
	return truncBig(new(big.Int).Set(v), to)
}

func bigAdd(x, y *big.Int, w uint) *big.Int {
	return truncBig(new(big.Int).Add(x, y), w)
}

func bigSub(x, y *big.Int, w uint) *big.Int {
	return truncBig(new(big.Int).Sub(x, y), w)
}

func bigMul(x, y *big.Int, w uint) *big.Int {
	return truncBig(new(big.Int).Mul(x, y), w)
}

// bigDiv divides x by y, truncating toward zero when signed. The divisor
// must be non-zero.
func bigDiv(x, y *big.Int, w uint, signed bool) *big.Int {
	if !signed {
		return truncBig(new(big.Int).Quo(x, y), w)
	}
	return truncBig(new(big.Int).Quo(signedBig(x, w), signedBig(y, w)), w)
}

// bigRem returns the remainder of x divided by y, with the sign of the
// dividend when signed. The divisor must be non-zero.
func bigRem(x, y *big.Int, w uint, signed bool) *big.Int {
	if !signed {
		return truncBig(new(big.Int).Rem(x, y), w)
	}
	return truncBig(new(big.Int).Rem(signedBig(x, w), signedBig(y, w)), w)
}

func bigAnd(x, y *big.Int) *big.Int { return new(big.Int).And(x, y) }
func bigOr(x, y *big.Int) *big.Int  { return new(big.Int).Or(x, y) }
func bigXor(x, y *big.Int) *big.Int { return new(big.Int).Xor(x, y) }

func bigNot(v *big.Int, w uint) *big.Int {
	if w == Inf {
		return new(big.Int).Not(v)
	}
	return new(big.Int).Xor(v, maskBig(w))
}

func bigNeg(v *big.Int, w uint) *big.Int {
	return truncBig(new(big.Int).Neg(v), w)
}

func bigShl(v *big.Int, s, w uint) *big.Int {
	return truncBig(new(big.Int).Lsh(v, s), w)
}

// bigLShr zero-fills from the top: the canonical pattern simply shrinks.
// At width Inf this coincides with an arithmetic shift.
func bigLShr(v *big.Int, s uint) *big.Int {
	return new(big.Int).Rsh(v, s)
}

// bigSra replicates the sign bit; big.Int's Rsh on a negative value is
// already an arithmetic shift under two's-complement semantics.
func bigSra(v *big.Int, s, w uint) *big.Int {
	sv := signedBig(v, w)
	return truncBig(sv.Rsh(sv, s), w)
}
