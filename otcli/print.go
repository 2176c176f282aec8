package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/fontmeta/otquery"
)

// printNames writes one line per name record, in file order:
//
//	<platform> name[<id>]\t[<title>:\t]"<text>"
func printNames(w io.Writer, nt *otquery.NameTable) {
	for _, rec := range nt.Records {
		fmt.Fprintf(w, "%s name[%d]\t", platformLabel(rec.Platform), rec.NameID)
		if title, ok := nameTitle(rec.NameID); ok {
			fmt.Fprintf(w, "%s:\t", title)
		}
		fmt.Fprintf(w, "\"%s\"\n", rec.Text)
	}
}

func printHead(w io.Writer, head *otquery.HeadTableInfo) {
	fmt.Fprintf(w, "head: Revision %s\n", head.FontRevision)
	fmt.Fprintf(w, "head: Created %s\n", head.Created)
	fmt.Fprintf(w, "head: Modified %s\n", head.Modified)
}
