package assemble

import "fmt"

// baseStylesheet is attached to every book. Indented paragraphs and
// justified text follow Chinese web-fiction reading conventions.
const baseStylesheet = `body { line-height: 1.8; text-align: justify; margin: 0 5px; }
p { text-indent: 2em; margin: 0.8em 0; }
h1 { font-weight: bold; text-align: center; margin: 2em 0 1em 0; font-size: 1.5em; }
img { max-width: 100%; height: auto; }
`

// Stylesheet returns the book stylesheet. When a font file name is
// given, an @font-face rule binds it as the default body typeface; the
// URL is relative to the css/ directory of the packaged container.
func Stylesheet(fontName string) string {
	if fontName == "" {
		return "body { font-family: sans-serif; }\n" + baseStylesheet
	}

	return fmt.Sprintf(
		"@font-face { font-family: \"CustomFont\"; src: url(\"../fonts/%s\"); }\n"+
			"body { font-family: \"CustomFont\", sans-serif; }\n",
		fontName,
	) + baseStylesheet
}
