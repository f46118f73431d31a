// The export subpackage serializes baked atlases, either as a Go
// source file with embedded data tables (so the font can be compiled
// directly into a program) or as a grayscale PNG for visual
// inspection.
//
// The Go source form is the one with a contract: its output is
// byte-for-byte deterministic for identical atlases, and consumers
// index the emitted glyph table with codePoint - FirstChar. The PNG
// form is only meant for humans staring at packing results.
package export
