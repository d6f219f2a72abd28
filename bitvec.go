// Package bitvec implements width-parameterized fixed-point integers for
// instruction-set simulation and hardware-description semantics.
//
// A value occupies a declared number of bits, from 1 up to arbitrary
// precision, with exact two's-complement wraparound at that width. Widths up
// to MaxWordWidth are backed by a machine word; wider values are backed by a
// big.Int. Both stores produce bit-identical results. Runtime-width registers
// (Reg) and values with per-bit unknown state (XBits, XReg) build on the same
// operation set.
package bitvec

import (
	"errors"
	"fmt"
	"math"
)

// Standard widths.
const (
	WidthBool = 1
	Width8    = 8
	Width16   = 16
	Width32   = 32
	Width64   = 64
)

// MaxWordWidth is the widest value a native machine word can back.
// Wider values use extended (big.Int) storage.
const MaxWordWidth = 64

// Inf declares an arbitrary-precision value. Values of width Inf always use
// extended storage, are never truncated, and store their mathematical value
// directly (which may be negative when the value is signed).
const Inf = uint(math.MaxUint)

var (
	ErrDivideByZero = errors.New("division by zero")
	ErrWidthRange   = errors.New("width out of range")
	ErrUnknownBits  = errors.New("operation depends on unknown bits")
)

// assert panics if condition is false.
func assert(condition bool, format string, args ...interface{}) {
	if !condition {
		panic(fmt.Sprintf("assert: "+format, args...))
	}
}

// bitmask returns a mask covering the low width bits. Width must not exceed 64.
func bitmask(width uint) uint64 {
	return (1 << width) - 1
}
