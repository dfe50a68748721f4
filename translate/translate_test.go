package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"golang.org/x/text/language"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	SetLanguage(language.AmericanEnglish)

	assert.Equal("unexpected end of program", From("unexpected end of program"))
	assert.Equal("line 3 'x' y", From("line %d '%v' %v", 3, "x", "y"))
	assert.Equal("bad opcode 0x8000", From("bad opcode 0x%04x", uint16(0x8000)))
}
