package ot

// knownTables lists the table tags defined by the Apple TrueType and the
// Microsoft OpenType specifications. Tables not in this list are still
// accepted by the parser; they are merely flagged in the trace.
var knownTables = func() map[Tag]struct{} {
	tags := []string{
		// Apple TrueType Reference Manual
		"acnt", "ankr", "avar", "bdat", "bhed", "bloc", "bsln", "cmap", "cvar", "cvt ",
		"EBSC", "fdsc", "feat", "fmtx", "fond", "fpgm", "fvar", "gasp", "gcid", "glyf",
		"gvar", "hdmx", "head", "hhea", "hmtx", "just", "kern", "kerx", "lcar", "loca",
		"ltag", "maxp", "meta", "mort", "morx", "name", "opbd", "OS/2", "post", "prep",
		"prop", "sbix", "trak", "vhea", "vmtx", "xref", "Zapf",
		// Microsoft OpenType
		"BASE", "CBDT", "CBLC", "CFF ", "CFF2", "COLR", "CPAL", "DSIG", "EBDT", "EBLC",
		"GDEF", "GPOS", "GSUB", "HVAR", "JSTF", "LTSH", "MATH", "MERG", "MVAR", "PCLT",
		"STAT", "SVG ", "VDMX", "VORG", "VVAR",
	}
	m := make(map[Tag]struct{}, len(tags))
	for _, t := range tags {
		m[T(t)] = struct{}{}
	}
	return m
}()

// RequiredTables are the tables an OpenType font must contain according to
// the OpenType specification.
var RequiredTables = []string{
	"cmap", "head", "hhea", "hmtx", "maxp", "name", "OS/2", "post",
}

// KnownTable reports whether tag names a table of the Apple or Microsoft
// specification.
func KnownTable(tag Tag) bool {
	_, ok := knownTables[tag]
	return ok
}
