package image

import (
	"encoding/binary"
	"io"
)

// ReadBinary reads a raw image of big-endian 16-bit words.
func ReadBinary(r io.Reader) (words []uint16, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return
	}

	if len(data)%2 != 0 {
		err = ErrImageOdd
		return
	}

	words = make([]uint16, len(data)/2)
	for n := range words {
		words[n] = binary.BigEndian.Uint16(data[n*2:])
	}

	return
}

// WriteBinary writes a raw image of big-endian 16-bit words.
func WriteBinary(w io.Writer, words []uint16) (err error) {
	data := make([]byte, 0, len(words)*2)
	for _, word := range words {
		data = binary.BigEndian.AppendUint16(data, word)
	}

	_, err = w.Write(data)
	return
}
