/*
Package fontmeta inspects the metadata of TrueType and OpenType fonts.

A font file is an sfnt container: a table directory followed by tables.
fontmeta reads the directory and decodes the two tables carrying a font's
identity: 'name' (family, style, copyright, license and other localized
strings) and 'head' (font revision, creation and modification time).

Fonts are treated as read-only byte images. Nothing is ever written.

There is a certain amount of tolerance for fonts in the wild:

▪︎ A table which is absent is not an error of the font; it is reported as
a missing table.

▪︎ A table which cannot be decoded does not prevent the other table from
being decoded.

▪︎ A broken container (not an sfnt, truncated directory, duplicate tags)
fails the inspection as a whole.

# Status

Font collections (*.ttc) are not supported.

# Links

OpenType explained:
https://docs.microsoft.com/en-us/typography/opentype/

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontmeta

import (
	"github.com/npillmayer/fontmeta/ot"
	"github.com/npillmayer/fontmeta/otquery"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'fontmeta'
func tracer() tracing.Trace {
	return tracing.Select("fontmeta")
}

// FromBinary parses the table directory of raw OpenType bytes.
//
// The input is expected to contain a complete single-font SFNT stream.
// It must not change after parsing for the font to be usable.
func FromBinary(data []byte) (*ot.Font, error) {
	return ot.Parse(data)
}

// FamilyName extracts family and subfamily names from a font's `name` table.
//
// Returned values are empty if no matching records exist or if records cannot be
// decoded. Only Unicode and Windows records are considered.
func FamilyName(f *ot.Font) (family, subfamily string) {
	for nameId, stringValue := range otquery.NamesRange(f) {
		switch nameId {
		case sfnt.NameIDFamily:
			if family == "" {
				family = stringValue
			}
		case sfnt.NameIDSubfamily:
			if subfamily == "" {
				subfamily = stringValue
			}
		}
	}
	return
}
