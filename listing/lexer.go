package listing

import (
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/ezrec/mipslite/cpu"
)

// mnemonicPattern matches any opcode mnemonic, ignoring case.
func mnemonicPattern() string {
	var names []string
	for name := range cpu.Opcodes() {
		names = append(names, regexp.QuoteMeta(name))
	}
	return `(?i)\b(?:` + strings.Join(names, "|") + `)\b`
}

func rules() chroma.Rules {
	return chroma.Rules{
		"root": {
			{Pattern: `#[^\n]*`, Type: chroma.Comment},
			{Pattern: `\s+`, Type: chroma.TextWhitespace},
			{Pattern: `(?i)\.equ\b`, Type: chroma.KeywordPseudo},
			{Pattern: mnemonicPattern(), Type: chroma.Keyword},
			{Pattern: `\b` + cpu.MNEMONIC_UNKNOWN + `\b`, Type: chroma.Error},
			{Pattern: `\b[Rr]\d+\b`, Type: chroma.NameVariable},
			{Pattern: `\$\([^$]*\)`, Type: chroma.LiteralStringInterpol},
			{Pattern: `\b0[xX][0-9A-Fa-f]+\b`, Type: chroma.LiteralNumberHex},
			{Pattern: `\b[0-9A-F]{8}\b`, Type: chroma.LiteralNumberHex},
			{Pattern: `[-+]?\d+\b`, Type: chroma.LiteralNumberInteger},
			{Pattern: `[,:]`, Type: chroma.Punctuation},
			{Pattern: `\w+`, Type: chroma.Name},
			{Pattern: `.`, Type: chroma.Text},
		},
	}
}

// Lexer tokenises MIPS-lite assembly text and listings.
var Lexer = lexers.Register(chroma.MustNewLexer(
	&chroma.Config{
		Name:      "MIPS-lite",
		Aliases:   []string{"mipslite"},
		Filenames: []string{"*.s"},
	},
	rules,
))
