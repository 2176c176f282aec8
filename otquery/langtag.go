package otquery

import (
	"golang.org/x/text/language"
)

// Language resolves the language of a name record.
//
// For format 1 tables, language IDs from 0x8000 upwards refer to the
// table's language tag records. Otherwise the language ID is interpreted
// per platform: Windows LCIDs and Macintosh language codes are mapped for a
// selection of common languages. Everything else resolves to language.Und.
func (rec NameRecord) Language(nt *NameTable) language.Tag {
	if rec.LanguageID >= 0x8000 {
		if nt == nil || nt.Format != 1 {
			return language.Und
		}
		i := int(rec.LanguageID - 0x8000)
		if i >= len(nt.LangTags) {
			return language.Und
		}
		return parseLangTag(nt.LangTags[i].Tag)
	}
	var bcp string
	switch rec.Platform {
	case PlatformIDWindows:
		bcp = windowsLanguages[rec.LanguageID]
	case PlatformIDMacintosh:
		bcp = macLanguages[rec.LanguageID]
	}
	return parseLangTag(bcp)
}

func parseLangTag(bcp string) language.Tag {
	if bcp == "" {
		return language.Und
	}
	tag, err := language.Parse(bcp)
	if err != nil {
		tracer().Debugf("cannot parse language tag %q: %v", bcp, err)
		return language.Und
	}
	return tag
}

// Macintosh language codes
// https://docs.microsoft.com/en-us/typography/opentype/spec/name#macintosh-language-ids
var macLanguages = map[uint16]string{
	0:   "en",      // English
	1:   "fr",      // French
	2:   "de",      // German
	3:   "it",      // Italian
	4:   "nl",      // Dutch
	5:   "sv",      // Swedish
	6:   "es",      // Spanish
	7:   "da",      // Danish
	8:   "pt",      // Portuguese
	9:   "no",      // Norwegian
	10:  "he",      // Hebrew
	11:  "ja",      // Japanese
	12:  "ar",      // Arabic
	13:  "fi",      // Finnish
	14:  "el",      // Greek
	15:  "is",      // Icelandic
	16:  "mt",      // Maltese
	17:  "tr",      // Turkish
	18:  "hr",      // Croatian
	19:  "zh-Hant", // Chinese (traditional)
	20:  "ur",      // Urdu
	21:  "hi",      // Hindi
	22:  "th",      // Thai
	23:  "ko",      // Korean
	24:  "lt",      // Lithuanian
	25:  "pl",      // Polish
	26:  "hu",      // Hungarian
	27:  "et",      // Estonian
	28:  "lv",      // Latvian
	30:  "fo",      // Faroese
	31:  "fa",      // Farsi/Persian
	32:  "ru",      // Russian
	33:  "zh-Hans", // Chinese (simplified)
	34:  "nl-BE",   // Flemish
	35:  "ga",      // Irish Gaelic
	36:  "sq",      // Albanian
	37:  "ro",      // Romanian
	38:  "cs",      // Czech
	39:  "sk",      // Slovak
	40:  "sl",      // Slovenian
	41:  "yi",      // Yiddish
	42:  "sr",      // Serbian
	43:  "mk",      // Macedonian
	44:  "bg",      // Bulgarian
	45:  "uk",      // Ukrainian
	46:  "be",      // Byelorussian
	47:  "uz",      // Uzbek
	48:  "kk",      // Kazakh
	67:  "bn",      // Bengali
	80:  "vi",      // Vietnamese
	81:  "id",      // Indonesian
	83:  "ms",      // Malay (Roman script)
	128: "cy",      // Welsh
	129: "eu",      // Basque
	130: "ca",      // Catalan
	131: "la",      // Latin
}

// Windows language IDs (LCIDs)
// https://docs.microsoft.com/en-us/typography/opentype/spec/name#windows-language-ids
var windowsLanguages = map[uint16]string{
	0x0401: "ar-SA", // Arabic, Saudi Arabia
	0x0402: "bg-BG", // Bulgarian
	0x0403: "ca-ES", // Catalan
	0x0404: "zh-TW", // Chinese, Taiwan
	0x0405: "cs-CZ", // Czech
	0x0406: "da-DK", // Danish
	0x0407: "de-DE", // German, Germany
	0x0408: "el-GR", // Greek
	0x0409: "en-US", // English, United States
	0x040A: "es-ES", // Spanish, traditional sort
	0x040B: "fi-FI", // Finnish
	0x040C: "fr-FR", // French, France
	0x040D: "he-IL", // Hebrew
	0x040E: "hu-HU", // Hungarian
	0x040F: "is-IS", // Icelandic
	0x0410: "it-IT", // Italian, Italy
	0x0411: "ja-JP", // Japanese
	0x0412: "ko-KR", // Korean
	0x0413: "nl-NL", // Dutch, Netherlands
	0x0414: "nb-NO", // Norwegian (Bokmal)
	0x0415: "pl-PL", // Polish
	0x0416: "pt-BR", // Portuguese, Brazil
	0x0418: "ro-RO", // Romanian
	0x0419: "ru-RU", // Russian
	0x041A: "hr-HR", // Croatian
	0x041B: "sk-SK", // Slovak
	0x041C: "sq-AL", // Albanian
	0x041D: "sv-SE", // Swedish
	0x041E: "th-TH", // Thai
	0x041F: "tr-TR", // Turkish
	0x0420: "ur-PK", // Urdu
	0x0421: "id-ID", // Indonesian
	0x0422: "uk-UA", // Ukrainian
	0x0423: "be-BY", // Belarusian
	0x0424: "sl-SI", // Slovenian
	0x0425: "et-EE", // Estonian
	0x0426: "lv-LV", // Latvian
	0x0427: "lt-LT", // Lithuanian
	0x0429: "fa-IR", // Persian
	0x042A: "vi-VN", // Vietnamese
	0x042D: "eu-ES", // Basque
	0x042F: "mk-MK", // Macedonian
	0x0439: "hi-IN", // Hindi
	0x043E: "ms-MY", // Malay, Malaysia
	0x0445: "bn-IN", // Bengali, India
	0x0452: "cy-GB", // Welsh
	0x0804: "zh-CN", // Chinese, PRC
	0x0807: "de-CH", // German, Switzerland
	0x0809: "en-GB", // English, United Kingdom
	0x080A: "es-MX", // Spanish, Mexico
	0x080C: "fr-BE", // French, Belgium
	0x0810: "it-CH", // Italian, Switzerland
	0x0813: "nl-BE", // Dutch, Belgium
	0x0814: "nn-NO", // Norwegian (Nynorsk)
	0x0816: "pt-PT", // Portuguese, Portugal
	0x0C04: "zh-HK", // Chinese, Hong Kong
	0x0C07: "de-AT", // German, Austria
	0x0C09: "en-AU", // English, Australia
	0x0C0A: "es-ES", // Spanish, modern sort
	0x0C0C: "fr-CA", // French, Canada
	0x1009: "en-CA", // English, Canada
	0x1404: "zh-MO", // Chinese, Macao
	0x1409: "en-NZ", // English, New Zealand
	0x1809: "en-IE", // English, Ireland
}
