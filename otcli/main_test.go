package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/fontmeta/internal/fonttest"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"golang.org/x/image/font/gofont/goregular"
)

// 2024-01-01T00:00:00Z in seconds since 1904
const newYear2024 = 0xE1B7B100

// --- Test Suite Preparation ------------------------------------------------

type CLITestEnviron struct {
	suite.Suite
	dir string
}

// listen for 'go test' command --> run test methods
func TestCLI(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontmeta.cli")
	defer teardown()
	suite.Run(t, new(CLITestEnviron))
}

// run once, before test suite methods
func (env *CLITestEnviron) SetupSuite() {
	env.dir = env.T().TempDir()
}

func (env *CLITestEnviron) writeFont(name string, data []byte) string {
	path := filepath.Join(env.dir, name)
	env.Require().NoError(os.WriteFile(path, data, 0o644))
	return path
}

func (env *CLITestEnviron) run(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(append([]string{"otcli"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func acmeName(nameID uint16) []byte {
	return fonttest.NameTable(0, []fonttest.NameRecord{
		{PlatformID: 3, EncodingID: 1, LanguageID: 0x0409, NameID: nameID, Data: fonttest.UTF16BE("Acme Sans")},
	})
}

func acmeHead(magic uint32) []byte {
	return fonttest.HeadTable(fonttest.Head{
		FontRevision: 0x00018000,
		Magic:        magic,
		Created:      newYear2024,
		Modified:     newYear2024,
	})
}

// --- Tests -----------------------------------------------------------------

func (env *CLITestEnviron) TestValidFont() {
	path := env.writeFont("acme.ttf", fonttest.New().
		Add("name", acmeName(1)).
		Add("head", acmeHead(0)).
		Bytes())
	code, stdout, stderr := env.run(path)
	env.Equal(0, code)
	env.Empty(stderr)
	env.Equal("Microsoft name[1]\tFont family:\t\"Acme Sans\"\n"+
		"head: Revision 1.5\n"+
		"head: Created 2024-01-01T00:00:00Z\n"+
		"head: Modified 2024-01-01T00:00:00Z\n", stdout)
}

func (env *CLITestEnviron) TestUsage() {
	var stdout, stderr bytes.Buffer
	code := run([]string{"/usr/local/bin/fontinfo"}, &stdout, &stderr)
	env.Equal(0, code)
	env.Contains(stdout.String(), "/usr/local/bin/fontinfo")
	env.Contains(stdout.String(), "<filename>")
	env.Empty(stderr.String())
	//
	stdout.Reset()
	code = run(nil, &stdout, &stderr)
	env.Equal(0, code)
	env.Contains(stdout.String(), "<filename>")
}

func (env *CLITestEnviron) TestNotAFont() {
	path := env.writeFont("deadbeef.ttf", []byte{0xDE, 0xAD, 0xBE, 0xEF, 0, 0, 0, 0, 0, 0, 0, 0})
	code, stdout, stderr := env.run(path)
	env.Equal(1, code)
	env.Empty(stdout)
	env.Contains(stderr, "not a font")
	env.Equal(1, strings.Count(stderr, "\n"), "expected a single line on stderr")
}

func (env *CLITestEnviron) TestTruncatedName() {
	path := env.writeFont("truncated.ttf", fonttest.New().
		Add("name", acmeName(1)).
		Add("head", acmeHead(0)).
		DeclareLength("name", 4096).
		Bytes())
	code, stdout, stderr := env.run(path)
	env.Equal(1, code)
	env.Contains(stderr, "table out of bounds")
	env.Contains(stderr, "'name'")
	env.Equal("head: Revision 1.5\n"+
		"head: Created 2024-01-01T00:00:00Z\n"+
		"head: Modified 2024-01-01T00:00:00Z\n", stdout)
}

func (env *CLITestEnviron) TestNameWithoutTitle() {
	path := env.writeFont("id500.ttf", fonttest.New().
		Add("name", acmeName(500)).
		Add("head", acmeHead(0)).
		Bytes())
	code, stdout, _ := env.run(path)
	env.Equal(0, code)
	env.True(strings.HasPrefix(stdout, "Microsoft name[500]\t\"Acme Sans\"\n"), stdout)
}

func (env *CLITestEnviron) TestHeadMagicMismatch() {
	path := env.writeFont("badmagic.ttf", fonttest.New().
		Add("name", acmeName(1)).
		Add("head", acmeHead(0xDEADBEEF)).
		Bytes())
	code, stdout, stderr := env.run(path)
	env.Equal(1, code)
	env.Contains(stderr, "head magic mismatch")
	env.Equal("Microsoft name[1]\tFont family:\t\"Acme Sans\"\n", stdout)
}

func (env *CLITestEnviron) TestMissingTables() {
	path := env.writeFont("nohead.ttf", fonttest.New().Add("name", acmeName(1)).Bytes())
	code, stdout, stderr := env.run(path)
	env.Equal(1, code)
	env.Equal("Microsoft name[1]\tFont family:\t\"Acme Sans\"\n", stdout)
	env.Contains(stderr, "missing table: 'head'")
}

func (env *CLITestEnviron) TestFileOpen() {
	code, stdout, stderr := env.run(filepath.Join(env.dir, "no-such-font.ttf"))
	env.Equal(1, code)
	env.Empty(stdout)
	env.Contains(stderr, "no-such-font.ttf")
	env.Equal(1, strings.Count(stderr, "\n"))
}

func (env *CLITestEnviron) TestCollection() {
	path := env.writeFont("fonts.ttc", []byte("ttcf\x00\x01\x00\x00\x00\x00\x00\x01"))
	code, stdout, stderr := env.run(path)
	env.Equal(1, code)
	env.Empty(stdout)
	env.Contains(stderr, "unsupported container")
}

func (env *CLITestEnviron) TestExtraArgumentsIgnored() {
	path := env.writeFont("extra.ttf", fonttest.New().
		Add("name", acmeName(1)).
		Add("head", acmeHead(0)).
		Bytes())
	code, stdout, _ := env.run(path)
	code2, stdout2, _ := env.run(path, "--verbose", "more")
	env.Equal(code, code2)
	env.Equal(stdout, stdout2)
}

func (env *CLITestEnviron) TestPlatformsAndTitles() {
	name := fonttest.NameTable(0, []fonttest.NameRecord{
		{PlatformID: 0, EncodingID: 3, NameID: 0, Data: fonttest.UTF16BE(`"Quoted" ©`)},
		{PlatformID: 1, EncodingID: 0, NameID: 2, Data: []byte("Regular")},
		{PlatformID: 2, EncodingID: 0, NameID: 15, Data: []byte("iso")},
		{PlatformID: 3, EncodingID: 1, LanguageID: 0x0409, NameID: 22, Data: nil},
		{PlatformID: 3, EncodingID: 1, LanguageID: 0x0409, NameID: 25, Data: fonttest.UTF16BE("Acme")},
		{PlatformID: 3, EncodingID: 1, LanguageID: 0x0409, NameID: 26, Data: fonttest.UTF16BE("x")},
		{PlatformID: 3, EncodingID: 1, LanguageID: 0x0409, NameID: 255, Data: append(fonttest.UTF16BE("odd"), 0x20)},
		{PlatformID: 3, EncodingID: 1, LanguageID: 0x0409, NameID: 256, Data: fonttest.UTF16BE("v")},
		{PlatformID: 7, EncodingID: 1, NameID: 1, Data: []byte{0xAB, 0x01}},
	})
	path := env.writeFont("platforms.ttf", fonttest.New().
		Add("name", name).
		Add("head", acmeHead(0)).
		Bytes())
	code, stdout, _ := env.run(path)
	env.Equal(0, code)
	lines := strings.Split(stdout, "\n")
	env.Require().Len(lines, 9+3+1)
	env.Equal([]string{
		"Unicode   name[0]\tCopyright:\t\"\"Quoted\" ©\"",
		"Macintosh name[2]\tSub-family:\t\"Regular\"",
		"unused    name[15]\treserved:\t\"iso\"",
		"Microsoft name[22]\t_open type_:\t\"\"",
		"Microsoft name[25]\tVariations PostScript prefix:\t\"Acme\"",
		"Microsoft name[26]\t_reserved for the future_:\t\"x\"",
		"Microsoft name[255]\t_reserved for the future_:\t\"odd\"",
		"Microsoft name[256]\t\"v\"",
		"_unknown_ name[1]\tFont family:\t\"<AB 01>\"",
	}, lines[:9])
}

func (env *CLITestEnviron) TestIdempotence() {
	path := env.writeFont("goregular.ttf", goregular.TTF)
	code, stdout, stderr := env.run(path)
	env.Equal(0, code, stderr)
	env.Contains(stdout, "Font family:\t\"Go\"")
	env.Contains(stdout, "head: Revision ")
	_, stdout2, _ := env.run(path)
	env.Equal(stdout, stdout2)
}
