package export

import "os"
import "fmt"
import "bytes"
import "errors"
import "path/filepath"

import "github.com/fontbake/fontbake"

// Returned by [WriteFile] when the destination extension doesn't
// correspond to any known output format.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Serializes the given atlas to the given path, picking the output
// format from the path extension: ".go" for the embeddable Go source
// form, ".png" for a grayscale preview image. Any other extension
// fails with [ErrUnsupportedFormat].
//
// The pkgName is only used by the Go source form; an empty value
// defaults to [DefaultPackage].
//
// Serialization happens fully in memory before the file is touched,
// and failed writes remove the destination, so no partial output is
// ever left behind.
func WriteFile(atlas *fontbake.Atlas, path string, pkgName string) error {
	var buffer bytes.Buffer
	var err error
	switch filepath.Ext(path) {
	case ".go":
		err = WriteGoSource(&buffer, atlas, pkgName)
	case ".png":
		err = WritePNG(&buffer, atlas)
	default:
		return fmt.Errorf("%w '%s'", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil { return err }

	err = os.WriteFile(path, buffer.Bytes(), 0666)
	if err != nil {
		_ = os.Remove(path)
		return err
	}
	return nil
}
