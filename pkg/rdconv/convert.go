package rdconv

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"golang.org/x/net/html"
)

//go:embed templates/header.tmpl
var templateFS embed.FS

var headerTemplate = template.Must(template.ParseFS(templateFS, "templates/header.tmpl"))

// footer closes the \description{} block opened by the header.
const footer = "}\n\n"

// ConvertFile reads the HTML document at path and writes its Rd translation to w
func ConvertFile(w io.Writer, path string, config Config) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return Convert(w, src, config)
}

// Convert writes the Rd translation of an HTML document to w: the header,
// the translated body, then the footer. Output produced before an error is
// still written to w.
func Convert(w io.Writer, src []byte, config Config) error {
	bw := bufio.NewWriter(w)
	err := convert(bw, src, config)
	if ferr := bw.Flush(); ferr != nil && err == nil {
		err = fmt.Errorf("failed to write output: %w", ferr)
	}
	return err
}

func convert(w io.Writer, src []byte, config Config) error {
	body, encName, err := decodeInput(src)
	if err != nil {
		return err
	}
	logf(config, "input encoding: %s", encName)

	if err := WriteHeader(w, config.Header); err != nil {
		return err
	}
	if err := translateBody(w, body, config); err != nil {
		return err
	}
	if _, err := io.WriteString(w, footer); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// WriteHeader renders the Rd metadata block that precedes the body
func WriteHeader(w io.Writer, h Header) error {
	if err := headerTemplate.Execute(w, h); err != nil {
		return fmt.Errorf("error rendering header: %w", err)
	}
	return nil
}

// translateBody feeds the tokens of body to a Translator in document order
func translateBody(w io.Writer, body []byte, config Config) error {
	tr := NewTranslator(w)
	z := html.NewTokenizer(bytes.NewReader(body))
	line := 1
	tokens := 0

	for {
		tt := z.Next()
		tokLine := line
		line += bytes.Count(z.Raw(), []byte("\n"))

		var err error
		var token string
		switch tt {
		case html.ErrorToken:
			if z.Err() != io.EOF {
				return fmt.Errorf("line %d: failed to tokenize input: %w", tokLine, z.Err())
			}
			logf(config, "translated %d tokens", tokens)
			if err := tr.Finish(); err != nil {
				return &TranslateError{Line: tokLine, Token: "EOF", Err: err}
			}
			return nil
		case html.StartTagToken:
			tok := z.Token()
			token = "<" + tok.Data + ">"
			err = tr.StartTag(tok.Data, tok.Attr)
		case html.SelfClosingTagToken:
			tok := z.Token()
			token = "<" + tok.Data + "/>"
			if err = tr.StartTag(tok.Data, tok.Attr); err == nil {
				err = tr.EndTag(tok.Data)
			}
		case html.EndTagToken:
			tok := z.Token()
			token = "</" + tok.Data + ">"
			err = tr.EndTag(tok.Data)
		case html.TextToken:
			tok := z.Token()
			token = shorten(tok.Data)
			if strings.Contains(tok.Data, redactedText) {
				logf(config, "line %d: dropping text %q", tokLine, token)
			}
			err = tr.Text(tok.Data)
		default:
			// Comments and doctypes carry nothing to translate.
			continue
		}
		tokens++

		if err != nil {
			return &TranslateError{Line: tokLine, Token: token, Err: err}
		}
	}
}

// shorten trims long text tokens for error messages
func shorten(s string) string {
	const maxLen = 40
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen]) + "..."
}
