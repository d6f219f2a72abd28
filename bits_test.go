package bitvec_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/hwsim/bitvec"
)

func TestNew(t *testing.T) {
	t.Run("MasksToWidth", func(t *testing.T) {
		if got := bitvec.New(256, 8).Uint64(); got != 0 {
			t.Fatalf("unexpected value: %d", got)
		}
		if got := bitvec.New(257, 8).Uint64(); got != 1 {
			t.Fatalf("unexpected value: %d", got)
		}
	})
	t.Run("Width", func(t *testing.T) {
		if got := bitvec.New(0, 13).Width(); got != 13 {
			t.Fatalf("unexpected width: %d", got)
		}
	})
	t.Run("Unsigned", func(t *testing.T) {
		if bitvec.New(1, 8).IsSigned() {
			t.Fatalf("expected unsigned")
		}
	})
	t.Run("WideWidth", func(t *testing.T) {
		if got := bitvec.New(1, 129).Width(); got != 129 {
			t.Fatalf("unexpected width: %d", got)
		}
	})
}

func TestNewSigned(t *testing.T) {
	t.Run("Pattern", func(t *testing.T) {
		if got := bitvec.NewSigned(-5, 8).Uint64(); got != 251 {
			t.Fatalf("unexpected pattern: %d", got)
		}
	})
	t.Run("Signed", func(t *testing.T) {
		if !bitvec.NewSigned(-5, 8).IsSigned() {
			t.Fatalf("expected signed")
		}
	})
	t.Run("Wide", func(t *testing.T) {
		v := bitvec.NewSigned(-1, 129)
		if got := v.Uint64(); got != 0xFFFFFFFFFFFFFFFF {
			t.Fatalf("unexpected low bits: %#x", got)
		}
		if got := v.SignedBigInt().Int64(); got != -1 {
			t.Fatalf("unexpected value: %d", got)
		}
	})
}

func TestBool(t *testing.T) {
	if got := bitvec.Bool(true); got.Width() != 1 || got.Uint64() != 1 {
		t.Fatalf("unexpected value: %s", got)
	}
	if got := bitvec.Bool(false); got.Width() != 1 || got.Uint64() != 0 {
		t.Fatalf("unexpected value: %s", got)
	}
}

func TestFromBigInt(t *testing.T) {
	t.Run("Positive", func(t *testing.T) {
		if got := bitvec.FromBigInt(big.NewInt(300), 8).Uint64(); got != 44 {
			t.Fatalf("unexpected value: %d", got)
		}
	})
	t.Run("NegativePattern", func(t *testing.T) {
		// Two's-complement reduction of a negative input.
		if got := bitvec.FromBigInt(big.NewInt(-1), 8).Uint64(); got != 255 {
			t.Fatalf("unexpected value: %d", got)
		}
	})
	t.Run("NegativeAtInf", func(t *testing.T) {
		// No reduction at infinite width: the mathematical value stays
		// negative and bit queries see the two's-complement tail.
		v := bitvec.FromBigInt(big.NewInt(-5), bitvec.Inf)
		if got := v.SignedBigInt().Int64(); got != -5 {
			t.Fatalf("unexpected value: %d", got)
		}
		if v.Sign() != -1 {
			t.Fatalf("unexpected sign: %d", v.Sign())
		}
		// -5 = ...11011 in two's complement.
		if v.Bit(0) != 1 || v.Bit(1) != 1 || v.Bit(2) != 0 || v.Bit(3) != 1 {
			t.Fatalf("unexpected pattern")
		}
	})
}

func TestParse(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		v, err := bitvec.Parse("1010_0110", 8)
		if err != nil {
			t.Fatal(err)
		}
		if got := v.Uint64(); got != 0xA6 {
			t.Fatalf("unexpected value: %#x", got)
		}
	})
	t.Run("ShortLiteral", func(t *testing.T) {
		v, err := bitvec.Parse("11", 8)
		if err != nil {
			t.Fatal(err)
		}
		if got := v.Uint64(); got != 3 {
			t.Fatalf("unexpected value: %d", got)
		}
	})
	t.Run("Wide", func(t *testing.T) {
		v, err := bitvec.Parse("1"+zeros(100), 101)
		if err != nil {
			t.Fatal(err)
		}
		want := new(big.Int).Lsh(big.NewInt(1), 100)
		if v.BigInt().Cmp(want) != 0 {
			t.Fatalf("unexpected value: %s", v.BigInt())
		}
	})
	t.Run("TooLong", func(t *testing.T) {
		if _, err := bitvec.Parse("101010101", 8); !errors.Is(err, bitvec.ErrWidthRange) {
			t.Fatalf("unexpected error: %v", err)
		}
	})
	t.Run("InvalidDigit", func(t *testing.T) {
		if _, err := bitvec.Parse("10102", 8); err == nil {
			t.Fatalf("expected error")
		}
	})
	t.Run("Empty", func(t *testing.T) {
		if _, err := bitvec.Parse("__", 8); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func zeros(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '0'
	}
	return string(b)
}

func TestZExt(t *testing.T) {
	t.Run("Widen", func(t *testing.T) {
		if got := bitvec.New(0xFF, 8).ZExt(16).Uint64(); got != 0xFF {
			t.Fatalf("unexpected value: %#x", got)
		}
	})
	t.Run("WidenSignedValueStillZeroFills", func(t *testing.T) {
		if got := bitvec.NewSigned(-1, 8).ZExt(16).Uint64(); got != 0xFF {
			t.Fatalf("unexpected value: %#x", got)
		}
	})
	t.Run("Truncate", func(t *testing.T) {
		if got := bitvec.New(0x1FF, 16).ZExt(8).Uint64(); got != 0xFF {
			t.Fatalf("unexpected value: %#x", got)
		}
	})
	t.Run("CrossesStorage", func(t *testing.T) {
		v := bitvec.New(0xFFFFFFFFFFFFFFFF, 64).ZExt(128)
		want := new(big.Int).SetUint64(0xFFFFFFFFFFFFFFFF)
		if v.BigInt().Cmp(want) != 0 {
			t.Fatalf("unexpected value: %s", v.BigInt())
		}
	})
}

func TestSExt(t *testing.T) {
	t.Run("NegativeWidens", func(t *testing.T) {
		if got := bitvec.New(0x80, 8).SExt(16).Uint64(); got != 0xFF80 {
			t.Fatalf("unexpected value: %#x", got)
		}
	})
	t.Run("PositiveWidens", func(t *testing.T) {
		if got := bitvec.New(0x7F, 8).SExt(16).Uint64(); got != 0x7F {
			t.Fatalf("unexpected value: %#x", got)
		}
	})
	t.Run("Truncate", func(t *testing.T) {
		if got := bitvec.New(0xABCD, 16).SExt(8).Uint64(); got != 0xCD {
			t.Fatalf("unexpected value: %#x", got)
		}
	})
	t.Run("AcrossStorage", func(t *testing.T) {
		v := bitvec.NewSigned(-2, 64).SExt(100)
		if got := v.SignedBigInt().Int64(); got != -2 {
			t.Fatalf("unexpected value: %d", got)
		}
	})
}

func TestConvert(t *testing.T) {
	t.Run("ExtensionFollowsSourceSignedness", func(t *testing.T) {
		// Signed source sign-extends even when the target is unsigned.
		if got := bitvec.NewSigned(-1, 8).Convert(16, false).Uint64(); got != 0xFFFF {
			t.Fatalf("unexpected value: %#x", got)
		}
		// Unsigned source zero-extends even when the target is signed.
		if got := bitvec.New(0xFF, 8).Convert(16, true).Uint64(); got != 0xFF {
			t.Fatalf("unexpected value: %#x", got)
		}
	})
	t.Run("Retag", func(t *testing.T) {
		v := bitvec.New(0xFF, 8).Convert(8, true)
		if !v.IsSigned() || v.Int64() != -1 {
			t.Fatalf("unexpected value: %d", v.Int64())
		}
	})
	t.Run("RoundTrip", func(t *testing.T) {
		// Assigning into a wider target and back reproduces the pattern.
		for _, v := range []uint64{0, 1, 0x7F, 0x80, 0xFF} {
			orig := bitvec.NewSigned(int64(int8(uint8(v))), 8)
			back := orig.Convert(32, true).Convert(8, true)
			if back.Uint64() != orig.Uint64() {
				t.Fatalf("round trip %#x: got %#x", orig.Uint64(), back.Uint64())
			}
		}
	})
}

func TestExtract(t *testing.T) {
	t.Run("Middle", func(t *testing.T) {
		if got := bitvec.New(0xABCD, 16).Extract(4, 8).Uint64(); got != 0xBC {
			t.Fatalf("unexpected value: %#x", got)
		}
	})
	t.Run("Wide", func(t *testing.T) {
		v := bitvec.New(1, 100).Shl(99).Extract(96, 4)
		if got := v.Uint64(); got != 0x8 {
			t.Fatalf("unexpected value: %#x", got)
		}
	})
}

func TestConcat(t *testing.T) {
	t.Run("Native", func(t *testing.T) {
		v := bitvec.New(0xAB, 8).Concat(bitvec.New(0xCD, 8))
		if v.Width() != 16 || v.Uint64() != 0xABCD {
			t.Fatalf("unexpected value: %#x (width %d)", v.Uint64(), v.Width())
		}
	})
	t.Run("CrossesStorage", func(t *testing.T) {
		v := bitvec.New(1, 40).Concat(bitvec.New(0, 40))
		if v.Width() != 80 {
			t.Fatalf("unexpected width: %d", v.Width())
		}
		want := new(big.Int).Lsh(big.NewInt(1), 40)
		if v.BigInt().Cmp(want) != 0 {
			t.Fatalf("unexpected value: %s", v.BigInt())
		}
	})
}

func TestInt64(t *testing.T) {
	t.Run("SignExtendsFromTopBit", func(t *testing.T) {
		// Reinterpretation honors bit width-1 regardless of the tag.
		if got := bitvec.New(0x80, 8).Int64(); got != -128 {
			t.Fatalf("unexpected value: %d", got)
		}
	})
	t.Run("Positive", func(t *testing.T) {
		if got := bitvec.New(0x7F, 8).Int64(); got != 127 {
			t.Fatalf("unexpected value: %d", got)
		}
	})
	t.Run("WideTakesLow64", func(t *testing.T) {
		v := bitvec.NewSigned(-1, 100)
		if got := v.Int64(); got != -1 {
			t.Fatalf("unexpected value: %d", got)
		}
	})
}

func TestBitQueries(t *testing.T) {
	v := bitvec.New(0b1010, 4)
	if v.Bit(0) != 0 || v.Bit(1) != 1 || v.Bit(2) != 0 || v.Bit(3) != 1 {
		t.Fatalf("unexpected bits")
	}
	if !bitvec.New(0, 8).IsZero() || bitvec.New(1, 8).IsZero() {
		t.Fatalf("unexpected IsZero")
	}
	if !bitvec.New(0xFF, 8).IsAllOnes() || bitvec.New(0xFE, 8).IsAllOnes() {
		t.Fatalf("unexpected IsAllOnes")
	}
	if bitvec.NewSigned(-1, 100).Sign() != -1 || bitvec.New(5, 8).Sign() != 1 || bitvec.New(0, 8).Sign() != 0 {
		t.Fatalf("unexpected Sign")
	}
	// An unsigned all-ones value is a large positive number, not -1.
	if bitvec.New(0xFF, 8).Sign() != 1 {
		t.Fatalf("unexpected Sign for unsigned all-ones")
	}
}
