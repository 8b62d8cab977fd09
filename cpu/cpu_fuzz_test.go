package cpu

import (
	"fmt"
	"testing"
)

func FuzzDecodeEncode(f *testing.F) {
	for _, word := range []uint32{0x00620800, 0x04A4FFF6, 0x44000000, 0xFC000000, 0x3C22FFFC} {
		f.Add(word)
	}

	f.Fuzz(func(t *testing.T, word uint32) {
		code := Code(word)
		text, err := DecodeLine(code.Hex())
		if err != nil {
			t.Fatalf("%08X: %v", word, err)
		}

		if !code.Opcode().Valid() {
			if text != fmt.Sprintf("UNKNOWN 0x%08X", word) {
				t.Fatalf("%08X: decoded as %q", word, text)
			}
			return
		}

		hex, err := EncodeLine(text)
		if err != nil {
			t.Fatalf("%08X: %q: %v", word, text, err)
		}

		again, err := DecodeLine(hex)
		if err != nil {
			t.Fatalf("%08X: %v", word, err)
		}
		if again != text {
			t.Fatalf("%08X: %q became %q", word, text, again)
		}
	})
}
