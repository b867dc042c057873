package colorformats

import (
	"encoding/binary"
	"math"

	"golang.org/x/sys/cpu"

	"github.com/kovidgoyal/colorformats/types"
)

type byteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// nativeOrder is the byte order of the machine we are running on. Encoded
// colors are not portable across machines of differing endianness.
var nativeOrder = func() byteOrder {
	if cpu.IsBigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}()

func appendUint16(dst []byte, vals ...uint16) []byte {
	for _, v := range vals {
		dst = nativeOrder.AppendUint16(dst, v)
	}
	return dst
}

func appendFloat32(dst []byte, vals ...float32) []byte {
	for _, v := range vals {
		dst = nativeOrder.AppendUint32(dst, math.Float32bits(v))
	}
	return dst
}

func getUint16(b []byte, i int) uint16 {
	return nativeOrder.Uint16(b[2*i:])
}

func getFloat32(b []byte, i int) float32 {
	return math.Float32frombits(nativeOrder.Uint32(b[4*i:]))
}

// checkLength returns a *LengthError unless len(b) is one of the valid
// footprints of f.
func checkLength(f types.Format, b []byte) error {
	valid := f.ValidLengths()
	for _, n := range valid {
		if len(b) == n {
			return nil
		}
	}
	return &LengthError{Type: f.String(), Expected: valid, Got: len(b)}
}
