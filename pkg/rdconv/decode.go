package rdconv

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decodeInput converts an HTML document to UTF-8.
// Valid UTF-8 is used as is. Otherwise the encoding is taken from a byte
// order mark or a <meta> charset declaration, falling back to windows-1252.
func decodeInput(src []byte) ([]byte, string, error) {
	if utf8.Valid(src) {
		return bytes.TrimPrefix(src, utf8BOM), "utf-8", nil
	}

	enc, name, _ := charset.DetermineEncoding(src, "")
	decoded, _, err := transform.Bytes(enc.NewDecoder(), src)
	if err != nil {
		return nil, name, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return bytes.TrimPrefix(decoded, utf8BOM), name, nil
}
