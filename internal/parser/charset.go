package parser

import (
	"io"
	"mime"
	"strings"

	"golang.org/x/net/html/charset"
)

// NewUTF8Reader wraps a response body so it yields UTF-8 regardless of the
// charset declared in contentType.
//
// JSON is UTF-8 by definition, so a body without a charset parameter (or with
// charset=utf-8) is returned unchanged. Any other declared charset
// (ISO-8859-1, Windows-1252, ...) is converted.
func NewUTF8Reader(body io.Reader, contentType string) (io.Reader, error) {
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return body, nil
	}

	label := strings.ToLower(strings.TrimSpace(params["charset"]))
	if label == "" || label == "utf-8" || label == "utf8" {
		return body, nil
	}

	return charset.NewReaderLabel(label, body)
}
