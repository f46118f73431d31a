// fontbake bakes a TrueType/OpenType font into an ascii bitmap atlas
// and writes it out as embeddable Go source or as a PNG preview:
//   fontbake -size 18 myfont.ttf debugfont.go
//   fontbake -size 18 myfont.ttf preview.png
//   fontbake myfont.ttf > debugfont.go
package main

import "os"
import "fmt"
import "flag"

import "github.com/fontbake/fontbake"
import "github.com/fontbake/fontbake/export"

func main() {
	size  := flag.Int("size", 18, "pixel size to rasterize the font at")
	first := flag.Int("first", ' ', "first code point to bake")
	last  := flag.Int("last", '~', "last code point to bake (inclusive)")
	width := flag.Int("width", fontbake.DefaultMaxRowWidth, "max atlas row width in pixels")
	pkg   := flag.String("pkg", export.DefaultPackage, "package name for the generated Go source")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 || len(args) > 2 {
		usage()
		os.Exit(2)
	}

	atlas, err := fontbake.BuildFromPath(args[0], fontbake.Options {
		Size: *size,
		First: rune(*first),
		Last: rune(*last),
		MaxRowWidth: *width,
	})
	if err != nil { fail(err) }

	if len(args) == 2 {
		err = export.WriteFile(atlas, args[1], *pkg)
	} else {
		err = export.WriteGoSource(os.Stdout, atlas, *pkg)
	}
	if err != nil { fail(err) }
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: fontbake [flags] <font-path> [<destination-path>]\n")
	fmt.Fprintf(os.Stderr, "destination formats: .go (embeddable source), .png (preview image),\n")
	fmt.Fprintf(os.Stderr, "no destination (embeddable source to stdout)\n\n")
	flag.PrintDefaults()
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "fontbake:", err)
	os.Exit(1)
}
