package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/cpu16/cpu"
	"github.com/ezrec/cpu16/image"
)

func TestWriteImage(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	words := image.Demo()

	for _, name := range []string{"demo.hex", "demo.bin"} {
		path := filepath.Join(dir, name)
		err := writeImage(path, words)
		assert.NoError(err, name)

		loaded, err := image.Load(path)
		assert.NoError(err, name)
		assert.Equal(words, loaded, name)
	}

	text, err := os.ReadFile(filepath.Join(dir, "demo.hex"))
	assert.NoError(err)
	assert.True(strings.HasPrefix(string(text), "4800  ; 000: ldh r0, 0x00\n"), string(text))
}

func TestWriteImage_Error(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "missing", "demo.hex")
	err := writeImage(path, image.Demo())
	assert.ErrorIs(err, os.ErrNotExist)
	assert.Contains(err.Error(), path)
}

func TestAnnotate(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("hlt", annotate(0, 0x7800))
	assert.Equal("?", annotate(1, 0x8000))
}

func TestParseAddrs(t *testing.T) {
	assert := assert.New(t)

	addrs, err := parseAddrs("64, 0x10,,255")
	assert.NoError(err)
	assert.Equal([]cpu.Addr{64, 16, 255}, addrs)

	_, err = parseAddrs("256")
	assert.Error(err)
}
