// Package rdconv converts the RE2 syntax reference, written in a small fixed
// dialect of HTML, into R documentation (Rd) markup.
//
// The conversion is a single pass over the token stream produced by the
// golang.org/x/net/html tokenizer. Each tag maps to a fixed pair of opening and
// closing fragments; anchors, table rows and table cells get special handling,
// and text is escaped for Rd.
//
// Key Types:
//
// - Translator: Consumes start-tag, end-tag and text events and writes Rd fragments
// - Tag: Closed enumeration of the supported HTML elements
// - Config: Header metadata and logging options for a conversion run
// - TranslateError: Error carrying the source line of the token that failed
//
// Main Functions:
//
// - Convert: Translates an HTML document held in memory
// - ConvertFile: Reads and translates an HTML document from disk
// - LoadConfig: Reads header metadata from a YAML file
//
// The input is expected to match the shape of the hand-maintained reference.
// Anything else (an unknown tag, a link with real text, a nested anchor) stops
// the run with an error instead of producing approximate output.
package rdconv
