/*
Package ot provides access to the table directory of sfnt fonts, i.e.
TrueType and OpenType font files.

Package `ot` will not interpret any table of a font, but rather just expose
the tables to the client: a bounds-checked byte reader and the mapping from
table tags to byte ranges. Decoders for individual tables are homed in the
sister package `otquery`. From this point of view, `ot` is a low-level package.

Fonts in the wild contain entries that, strictly speaking, infringe upon the
OpenType specification. Package `ot` distinguishes three cases:

▪︎ Problems which make the font unusable as a whole (not an sfnt, truncated
directory, duplicate tags). Parse returns an error.

▪︎ Problems confined to a single table (a table record pointing beyond the end
of the file). The error is reported when the table's data is requested.

▪︎ Irregularities which do not prevent reading (misaligned tables, unsorted
directory, checksum mismatch). These are collected as warnings.

# Status

No font collections (*.ttc, *.otc) are supported.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ot

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontmeta.ot'
func tracer() tracing.Trace {
	return tracing.Select("fontmeta.ot")
}
