package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.NotNil(Printer())
	assert.Same(Printer(), Printer())
	assert.Equal("unknown mnemonic 'FOO'", From("unknown mnemonic '%v'", "FOO"))
}

func TestTags(t *testing.T) {
	assert := assert.New(t)

	found := tags([]string{"en-US", "not a locale!", "fr"})
	assert.Equal([]language.Tag{language.AmericanEnglish, language.French}, found)
	assert.Empty(tags(nil))
}
