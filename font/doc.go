// The font subpackage contains helper methods to parse fonts and
// obtain information from them (name, family, missing glyphs).
//
// The atlas builder uses these helpers internally, but they are
// exported because generator front ends often want them too, e.g.
// to report which font a file actually contains.
package font
