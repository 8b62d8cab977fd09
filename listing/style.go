package listing

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// Style colours listings on a dark terminal.
var Style = styles.Register(chroma.MustNewStyle("mipslite-dark", chroma.StyleEntries{
	chroma.Text:                  "#FFFFFF",
	chroma.Background:            "bg:#1e1e1e",
	chroma.Comment:               "italic #7F848E",
	chroma.Keyword:               "bold #FFFFFF",
	chroma.KeywordPseudo:         "#C678DD",
	chroma.NameVariable:          "#7C9C9D",
	chroma.Name:                  "#E5C07B",
	chroma.LiteralNumberHex:      "#FF5F87",
	chroma.LiteralNumberInteger:  "#FF5F87",
	chroma.LiteralStringInterpol: "#EACD53",
	chroma.Punctuation:           "#FFFFFF",
	chroma.Error:                 "bold #FF0000",
}))
