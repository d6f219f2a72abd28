package bitvec

import (
	"fmt"
	"strconv"
)

// String returns the decimal rendering of the mathematical value.
func (b Bits) String() string {
	if b.big == nil {
		if b.signed {
			return strconv.FormatInt(signedWord(b.word, b.width), 10)
		}
		return strconv.FormatUint(b.word, 10)
	}
	return b.toMath().String()
}

// Format implements fmt.Formatter. %d and %v render the mathematical value;
// %b, %o, %x and %X render the canonical unsigned pattern. Field width,
// zero padding and the # prefix flag follow fmt's rules for integers, so
// %#06x gives a 0x-prefixed, zero-padded hexadecimal dump.
func (b Bits) Format(f fmt.State, verb rune) {
	switch verb {
	case 'd', 'v':
		b.toMath().Format(f, 'd')
	case 'b', 'o', 'x', 'X':
		b.pattern().Format(f, verb)
	default:
		fmt.Fprintf(f, "%%!%c(bitvec.Bits=%s)", verb, b.String())
	}
}

// String returns the decimal rendering of the register's value.
func (r Reg) String() string { return r.Bits().String() }

// Format implements fmt.Formatter with the same verbs as Bits.
func (r Reg) Format(f fmt.State, verb rune) { r.Bits().Format(f, verb) }
