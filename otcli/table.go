package main

import (
	"github.com/npillmayer/fontmeta/otquery"
	"golang.org/x/image/font/sfnt"
)

// platformLabel returns a label of 9 columns for a platform ID.
func platformLabel(p otquery.PlatformID) string {
	switch p {
	case otquery.PlatformIDUnicode:
		return "Unicode  "
	case otquery.PlatformIDMacintosh:
		return "Macintosh"
	case otquery.PlatformIDISO:
		return "unused   "
	case otquery.PlatformIDWindows:
		return "Microsoft"
	}
	return "_unknown_"
}

var nameTitles = map[sfnt.NameID]string{
	sfnt.NameIDCopyright:                  "Copyright",
	sfnt.NameIDFamily:                     "Font family",
	sfnt.NameIDSubfamily:                  "Sub-family",
	sfnt.NameIDUniqueIdentifier:           "Sub-family ID",
	sfnt.NameIDFull:                       "Full name",
	sfnt.NameIDVersion:                    "Version",
	sfnt.NameIDPostScript:                 "PostScript name",
	sfnt.NameIDTrademark:                  "Trademark",
	sfnt.NameIDManufacturer:               "Manufacture",
	sfnt.NameIDDesigner:                   "Designer",
	sfnt.NameIDDescription:                "Description",
	sfnt.NameIDVendorURL:                  "Vendor URL",
	sfnt.NameIDDesignerURL:                "Designer URL",
	sfnt.NameIDLicense:                    "License",
	sfnt.NameIDLicenseURL:                 "License URL",
	15:                                    "reserved",
	sfnt.NameIDTypographicFamily:          "Preferred family",
	sfnt.NameIDTypographicSubfamily:       "Preferred sub-family",
	sfnt.NameIDCompatibleFull:             "Compatible fullname",
	sfnt.NameIDSampleText:                 "Sample text",
	sfnt.NameIDVariationsPostScriptPrefix: "Variations PostScript prefix",
}

// nameTitle returns the title printed for a name ID. IDs from 256 upwards
// are font-specific and have no title.
func nameTitle(id sfnt.NameID) (string, bool) {
	if title, ok := nameTitles[id]; ok {
		return title, true
	}
	switch {
	case id >= 20 && id <= 24:
		return "_open type_", true
	case id >= 26 && id <= 255:
		return "_reserved for the future_", true
	}
	return "", false
}
