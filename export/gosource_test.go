package export

import "bytes"
import "strconv"
import "strings"
import "testing"

import "github.com/fontbake/fontbake"

func testAtlas() *fontbake.Atlas {
	atlas := &fontbake.Atlas {
		Width: 8, Height: 8,
		First: 'A', Last: 'C',
		FontName: "Fake Font", Size: 8, LineHeight: 10,
	}
	atlas.Pixels = make([]byte, atlas.Width*atlas.Height)
	for i := range atlas.Pixels {
		atlas.Pixels[i] = byte(i * 4)
	}
	atlas.Glyphs = []fontbake.Glyph {
		{ Width: 3, Height: 4, OffsetX: 0, OffsetY: -4, Advance: 4, AtlasX: 0, AtlasY: 0 },
		{ Width: 2, Height: 3, OffsetX: 1, OffsetY: -3, Advance: 4, AtlasX: 4, AtlasY: 0 },
		{ Advance: 3 }, // inkless
	}
	return atlas
}

// Minimal parser for the generated source form, just enough to verify
// the round trip. Any line it doesn't understand makes the test fail.
type parsedSource struct {
	constOrder []string
	consts     map[string]int
	glyphs     []fontbake.Glyph
	pixels     []byte
}

func parseGoSource(t *testing.T, src string) parsedSource {
	t.Helper()
	parsed := parsedSource{ consts: make(map[string]int) }

	section := ""
	for _, line := range strings.Split(src, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "const ("):
			section = "const"
		case strings.HasPrefix(trimmed, "var Glyphs"):
			section = "glyphs"
		case strings.HasPrefix(trimmed, "var Alpha"):
			section = "alpha"
		case trimmed == ")" || trimmed == "}":
			section = ""
		case section == "const":
			fields := strings.Fields(trimmed)
			if len(fields) != 3 || fields[1] != "=" {
				t.Fatalf("unparsable const line: %q", line)
			}
			value, err := strconv.Atoi(fields[2])
			if err != nil { t.Fatalf("unparsable const line: %q", line) }
			parsed.constOrder = append(parsed.constOrder, fields[0])
			parsed.consts[fields[0]] = value
		case section == "glyphs":
			record := strings.TrimSuffix(strings.TrimPrefix(trimmed, "{"), "},")
			fields := strings.Split(record, ", ")
			if len(fields) != 7 {
				t.Fatalf("unparsable glyph line: %q", line)
			}
			values := make([]int, 7)
			for i, field := range fields {
				value, err := strconv.Atoi(field)
				if err != nil { t.Fatalf("unparsable glyph line: %q", line) }
				values[i] = value
			}
			parsed.glyphs = append(parsed.glyphs, fontbake.Glyph {
				Width: values[0], Height: values[1],
				OffsetX: values[2], OffsetY: values[3],
				Advance: values[4], AtlasX: values[5], AtlasY: values[6],
			})
		case section == "alpha":
			for _, field := range strings.Fields(trimmed) {
				value, err := strconv.ParseUint(strings.TrimSuffix(field, ","), 0, 8)
				if err != nil { t.Fatalf("unparsable alpha line: %q", line) }
				parsed.pixels = append(parsed.pixels, byte(value))
			}
		}
	}
	return parsed
}

func TestGoSourceRoundTrip(t *testing.T) {
	atlas := testAtlas()
	var buffer bytes.Buffer
	err := WriteGoSource(&buffer, atlas, "debugfont")
	if err != nil { t.Fatalf("unexpected error: %s", err) }

	parsed := parseGoSource(t, buffer.String())
	if parsed.consts["AtlasWidth"] != atlas.Width {
		t.Fatalf("expected AtlasWidth %d, got %d", atlas.Width, parsed.consts["AtlasWidth"])
	}
	if parsed.consts["AtlasHeight"] != atlas.Height {
		t.Fatalf("expected AtlasHeight %d, got %d", atlas.Height, parsed.consts["AtlasHeight"])
	}
	if parsed.consts["FirstChar"] != int(atlas.First) {
		t.Fatalf("expected FirstChar %d, got %d", atlas.First, parsed.consts["FirstChar"])
	}
	if parsed.consts["LastChar"] != int(atlas.Last) {
		t.Fatalf("expected LastChar %d, got %d", atlas.Last, parsed.consts["LastChar"])
	}
	if parsed.consts["LineHeight"] != atlas.LineHeight {
		t.Fatalf("expected LineHeight %d, got %d", atlas.LineHeight, parsed.consts["LineHeight"])
	}

	if len(parsed.glyphs) != len(atlas.Glyphs) {
		t.Fatalf("expected %d glyphs, got %d", len(atlas.Glyphs), len(parsed.glyphs))
	}
	for i, glyph := range atlas.Glyphs {
		if parsed.glyphs[i] != glyph {
			t.Fatalf("glyph #%d: expected %v, got %v", i, glyph, parsed.glyphs[i])
		}
	}

	if !bytes.Equal(parsed.pixels, atlas.Pixels) {
		t.Fatal("pixel buffer doesn't round trip")
	}
}

// The first two integer constants must be the atlas width and height,
// in that order, so consumers that only care about dimensions can rely
// on it.
func TestGoSourceLeadingConstants(t *testing.T) {
	var buffer bytes.Buffer
	err := WriteGoSource(&buffer, testAtlas(), "")
	if err != nil { t.Fatalf("unexpected error: %s", err) }

	parsed := parseGoSource(t, buffer.String())
	if len(parsed.constOrder) < 2 {
		t.Fatalf("expected at least two constants, got %v", parsed.constOrder)
	}
	if parsed.constOrder[0] != "AtlasWidth" || parsed.constOrder[1] != "AtlasHeight" {
		t.Fatalf("expected AtlasWidth and AtlasHeight first, got %v", parsed.constOrder)
	}
}

func TestGoSourceDeterminism(t *testing.T) {
	var bufferA, bufferB bytes.Buffer
	atlas := testAtlas()
	if err := WriteGoSource(&bufferA, atlas, "debugfont"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if err := WriteGoSource(&bufferB, atlas, "debugfont"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !bytes.Equal(bufferA.Bytes(), bufferB.Bytes()) {
		t.Fatal("two serializations of the same atlas differ")
	}
}

// Byte literals use uppercase hex digits, like the table formats this
// generator descends from.
func TestGoSourceUppercaseBytes(t *testing.T) {
	var buffer bytes.Buffer
	err := WriteGoSource(&buffer, testAtlas(), "")
	if err != nil { t.Fatalf("unexpected error: %s", err) }

	// the fixture's gradient reaches 252, so 0xFC must appear
	if !strings.Contains(buffer.String(), "0xFC,") {
		t.Fatal("expected uppercase byte literals in the pixel table")
	}
	if strings.Contains(buffer.String(), "0xfc,") {
		t.Fatal("expected no lowercase byte literals in the pixel table")
	}
}

func TestGoSourceDefaultPackage(t *testing.T) {
	var buffer bytes.Buffer
	err := WriteGoSource(&buffer, testAtlas(), "")
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if !strings.Contains(buffer.String(), "\npackage " + DefaultPackage + "\n") {
		t.Fatal("expected the default package clause")
	}
}
