package image

import (
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ezrec/cpu16/internal"
)

// Load reads an image from a file. The format is chosen by the file
// extension: '.star' is a starlark script, '.bin' is raw binary, and
// anything else is hex text.
func Load(path string) (words []uint16, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("%v: %w", path, err)
		}
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".star":
		var src []byte
		src, err = os.ReadFile(path)
		if err != nil {
			return
		}
		sc := &Script{}
		words, err = sc.Run(path, src)
	case ".bin":
		var inf *os.File
		inf, err = os.Open(path)
		if err != nil {
			return
		}
		defer inf.Close()
		words, err = ReadBinary(inf)
	default:
		var inf *os.File
		inf, err = os.Open(path)
		if err != nil {
			return
		}
		defer inf.Close()
		words, err = ReadHex(inf)
	}

	return
}

// Concat joins images in order.
func Concat(images ...[]uint16) (words []uint16) {
	seqs := make([]iter.Seq[uint16], len(images))
	for n, image := range images {
		seqs[n] = slices.Values(image)
	}

	words = slices.Collect(internal.Concat(seqs...))
	return
}
