package bitvec_test

import (
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"

	"github.com/hwsim/bitvec"
)

func TestBitsString(t *testing.T) {
	t.Run("Unsigned", func(t *testing.T) {
		if got, want := bitvec.New(200, 8).String(), "200"; got != want {
			t.Fatalf("String()=%q, want %q", got, want)
		}
	})

	t.Run("Signed", func(t *testing.T) {
		if got, want := bitvec.NewSigned(-56, 8).String(), "-56"; got != want {
			t.Fatalf("String()=%q, want %q", got, want)
		}
	})

	t.Run("Extended", func(t *testing.T) {
		if got, want := bitvec.New(1, 100).Shl(90).String(), "1237940039285380274899124224"; got != want {
			t.Fatalf("String()=%q, want %q", got, want)
		}
	})

	t.Run("SignedExtended", func(t *testing.T) {
		if got, want := bitvec.NewSigned(-1, 100).String(), "-1"; got != want {
			t.Fatalf("String()=%q, want %q", got, want)
		}
	})
}

func TestBitsFormat(t *testing.T) {
	for _, tt := range []struct {
		format string
		value  bitvec.Bits
		want   string
	}{
		{"%d", bitvec.New(200, 8), "200"},
		{"%v", bitvec.New(200, 8), "200"},
		{"%d", bitvec.NewSigned(-56, 8), "-56"},
		{"%x", bitvec.New(200, 8), "c8"},
		{"%X", bitvec.New(200, 8), "C8"},
		{"%b", bitvec.New(200, 8), "11001000"},
		{"%o", bitvec.New(200, 8), "310"},

		// Pattern verbs always render the unsigned two's-complement
		// pattern, even for negative values.
		{"%x", bitvec.NewSigned(-56, 8), "c8"},
		{"%b", bitvec.NewSigned(-1, 8), "11111111"},

		{"%#x", bitvec.New(200, 8), "0xc8"},
		{"%#06x", bitvec.New(200, 8), "0x00c8"},
		{"%08b", bitvec.New(5, 8), "00000101"},
		{"%5d", bitvec.New(42, 8), "   42"},

		{"%x", bitvec.New(1, 100).Shl(90), "40000000000000000000000"},
	} {
		t.Run(fmt.Sprintf("%s_%s", tt.format, tt.want), func(t *testing.T) {
			got := fmt.Sprintf(tt.format, tt.value)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("format mismatch (-want +got):\n%s\nvalue: %s", diff, spew.Sdump(tt.value))
			}
		})
	}
}

func TestBitsFormatBadVerb(t *testing.T) {
	if got, want := fmt.Sprintf("%c", bitvec.New(200, 8)), "%!c(bitvec.Bits=200)"; got != want {
		t.Fatalf("format=%q, want %q", got, want)
	}
}

func TestRegFormat(t *testing.T) {
	r, err := bitvec.NewSignedReg(-56, 8)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := r.String(), "-56"; got != want {
		t.Fatalf("String()=%q, want %q", got, want)
	} else if got, want := fmt.Sprintf("%#x", r), "0xc8"; got != want {
		t.Fatalf("format=%q, want %q", got, want)
	}
}
