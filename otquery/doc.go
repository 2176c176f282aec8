/*
Package otquery decodes the metadata tables of an sfnt font.

Package ot exposes the table directory of a font; otquery takes the byte
ranges of tables 'name' and 'head' and turns them into Go values: localized
strings, font revision and timestamps.

Decoding a table either succeeds or fails as a whole. Irregularities which
do not prevent decoding (e.g., UTF-16 strings of odd length) are collected
as warnings with the decoded table.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otquery

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontmeta.query'
func tracer() tracing.Trace {
	return tracing.Select("fontmeta.query")
}
