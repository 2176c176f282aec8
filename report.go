package fontmeta

import (
	"errors"

	"github.com/npillmayer/fontmeta/internal/fontload"
	"github.com/npillmayer/fontmeta/ot"
	"github.com/npillmayer/fontmeta/otquery"
)

// Report is the result of inspecting a font.
//
// For each of the tables 'name' and 'head' a report holds either the decoded
// table or the error which prevented decoding. An absent table is reported as
// an error wrapping ot.ErrMissingTable.
type Report struct {
	Font    *ot.Font
	Name    *otquery.NameTable
	NameErr error
	Head    *otquery.HeadTableInfo
	HeadErr error
}

// Inspect parses the table directory of a font and decodes tables 'name'
// and 'head'.
//
// An error is returned only if the font as a whole is unusable, i.e. for
// errors of the container or of the table directory. Problems with individual
// tables are kept in the report.
func Inspect(data []byte) (*Report, error) {
	otf, err := ot.Parse(data)
	if err != nil {
		return nil, err
	}
	r := &Report{Font: otf}
	r.Name, r.NameErr = otquery.NameTableOf(otf)
	r.Head, r.HeadErr = otquery.HeadTableOf(otf)
	tracer().Debugf("inspected font with tables %v", otf.TableTags())
	return r, nil
}

// InspectFile loads a font file and inspects it. Errors reading the file wrap
// fontload.ErrFileOpen.
func InspectFile(path string) (*Report, error) {
	ff, err := fontload.LoadFontFile(path)
	if err != nil {
		return nil, err
	}
	tracer().Infof("inspecting font %s", ff.Fontname)
	return Inspect(ff.Binary)
}

// Errors lists the problems found in a font: first broken table records of
// tables other than 'name' and 'head' (in directory order), then the errors
// for 'name' and 'head'.
func (r *Report) Errors() []error {
	var errs []error
	for _, err := range r.Font.Errors() {
		var fe *ot.FontError
		if errors.As(err, &fe) && (fe.Table == ot.T("name") || fe.Table == ot.T("head")) {
			continue // reported with the table
		}
		errs = append(errs, err)
	}
	if r.NameErr != nil {
		errs = append(errs, r.NameErr)
	}
	if r.HeadErr != nil {
		errs = append(errs, r.HeadErr)
	}
	return errs
}

// Failed is true if the font has a missing or malformed table.
func (r *Report) Failed() bool {
	return len(r.Errors()) > 0
}

// Warnings collects the warnings of the table directory and of both tables.
func (r *Report) Warnings() []ot.FontWarning {
	warnings := append([]ot.FontWarning{}, r.Font.Warnings()...)
	if r.Name != nil {
		warnings = append(warnings, r.Name.Warnings...)
	}
	if r.Head != nil {
		warnings = append(warnings, r.Head.Warnings...)
	}
	return warnings
}
