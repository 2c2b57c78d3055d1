// Package output prints human readable summaries using typed log entries
// rendered by the CLI log handler.
package output

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/mitchellh/go-wordwrap"
)

// ParagraphWidth is the width at which [Paragraph] wraps text.
const ParagraphWidth = 72

// Row is a row of a table.
type Row = [2]string

// SectionTitle logs a section title.
func SectionTitle(text string) {
	log.WithFields(log.Fields{
		"type":  "section_title",
		"title": text,
	}).Info(text)
}

// Table logs a boxed table with the given title and rows.
func Table(title string, rows ...Row) {
	log.WithFields(log.Fields{
		"type": "table",
		"rows": rows,
	}).Info(title)
}

// List logs a numbered list of items.
func List(title string, items []string) {
	log.WithFields(log.Fields{
		"type":  "list",
		"items": items,
	}).Info(title)
}

// JSON logs a pretty-printed JSON document.
func JSON(title string, raw json.RawMessage) {
	log.WithFields(log.Fields{
		"type": "json",
		"json": raw,
	}).Info(title)
}

// Paragraph logs text wrapped at [ParagraphWidth] columns, one entry per line.
func Paragraph(text string) {
	for _, line := range strings.Split(wordwrap.WrapString(text, ParagraphWidth), "\n") {
		log.Info(line)
	}
}

// Rupiah formats an amount in Indonesian Rupiah, e.g., "Rp 5,000".
func Rupiah(amount int) string {
	return "Rp " + humanize.Comma(int64(amount))
}

// RawString returns a human readable representation of a raw JSON value:
// strings are unquoted, missing values become "N/A", and anything else
// is printed in compact form.
func RawString(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) <= 0 || bytes.Equal(trimmed, []byte("null")) {
		return "N/A"
	}
	if trimmed[0] == '"' {
		if s, err := strconv.Unquote(string(trimmed)); err == nil {
			return s
		}
	}
	var out bytes.Buffer
	if err := json.Compact(&out, trimmed); err != nil {
		return string(trimmed)
	}
	return out.String()
}
