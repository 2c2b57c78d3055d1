package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/apex/log"
	"github.com/fatih/color"
	colorable "github.com/mattn/go-colorable"
	"github.com/nadia-api/nadia-cli/internal/util"
)

// Default handler outputting to stderr.
var Default = New(os.Stderr)

var bold = color.New(color.Bold)

// Colors mapping.
var Colors = [...]*color.Color{
	log.DebugLevel: color.New(color.FgWhite),
	log.InfoLevel:  color.New(color.FgBlue),
	log.WarnLevel:  color.New(color.FgYellow),
	log.ErrorLevel: color.New(color.FgRed),
	log.FatalLevel: color.New(color.FgRed),
}

// Strings mapping.
var Strings = [...]string{
	log.DebugLevel: "•",
	log.InfoLevel:  "•",
	log.WarnLevel:  "•",
	log.ErrorLevel: "⨯",
	log.FatalLevel: "⨯",
}

// Handler implementation.
type Handler struct {
	mu      sync.Mutex
	Writer  io.Writer
	Padding int
}

// New handler.
func New(w io.Writer) *Handler {
	if f, ok := w.(*os.File); ok {
		return &Handler{
			Writer:  colorable.NewColorable(f),
			Padding: 3,
		}
	}

	return &Handler{
		Writer:  w,
		Padding: 3,
	}
}

func logSectionTitle(w io.Writer, e *log.Entry) error {
	colWidth := 24

	title, _ := e.Fields.Get("title").(string)
	if title == "" {
		title = e.Message
	}
	if n := util.EscapeAwareRuneCountInString(title); n > colWidth {
		colWidth = n
	}
	fmt.Fprintln(w, "┏"+strings.Repeat("━", colWidth+2)+"┓")
	fmt.Fprintf(w, "┃ %s ┃\n", util.RightPad(title, colWidth))
	fmt.Fprintln(w, "┗"+strings.Repeat("━", colWidth+2)+"┛")
	return nil
}

// tableRows returns the rows of a table entry, preferring the ordered
// "rows" field and falling back to the other fields in name order.
func tableRows(f log.Fields) [][2]string {
	if rows, ok := f.Get("rows").([][2]string); ok {
		return rows
	}
	var rows [][2]string
	for _, name := range f.Names() {
		if name == "type" {
			continue
		}
		rows = append(rows, [2]string{name, fmt.Sprintf("%v", f.Get(name))})
	}
	return rows
}

func logTable(w io.Writer, e *log.Entry) error {
	color := color.New(color.FgBlue)

	var lines []string
	colWidth := 0
	if e.Message != "" {
		lines = append(lines, bold.Sprint(e.Message))
		colWidth = util.EscapeAwareRuneCountInString(e.Message)
	}
	for _, row := range tableRows(e.Fields) {
		line := fmt.Sprintf("%s: %s", color.Sprint(row[0]), row[1])
		lineLength := util.EscapeAwareRuneCountInString(line)
		lines = append(lines, line)
		if colWidth < lineLength {
			colWidth = lineLength
		}
	}

	fmt.Fprintln(w, "┏"+strings.Repeat("━", colWidth+2)+"┓")
	for _, line := range lines {
		fmt.Fprintf(w, "┃ %s ┃\n",
			util.RightPad(line, colWidth),
		)
	}
	fmt.Fprintln(w, "┗"+strings.Repeat("━", colWidth+2)+"┛")
	return nil
}

func logList(w io.Writer, e *log.Entry) error {
	items, _ := e.Fields.Get("items").([]string)
	if e.Message != "" {
		fmt.Fprintln(w, bold.Sprint(e.Message))
	}
	for idx, item := range items {
		fmt.Fprintf(w, "%4d. %s\n", idx+1, item)
	}
	return nil
}

func logJSON(w io.Writer, e *log.Entry) error {
	raw, _ := e.Fields.Get("json").(json.RawMessage)
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		out.Reset()
		out.Write(raw)
	}
	if e.Message != "" {
		fmt.Fprintln(w, bold.Sprint(e.Message))
	}
	fmt.Fprintln(w, out.String())
	return nil
}

// TypedLog is used for handling special "typed" logs to the CLI
func (h *Handler) TypedLog(t string, e *log.Entry) error {
	switch t {
	case "table":
		return logTable(h.Writer, e)
	case "list":
		return logList(h.Writer, e)
	case "json":
		return logJSON(h.Writer, e)
	case "section_title":
		return logSectionTitle(h.Writer, e)
	default:
		return h.DefaultLog(e)
	}
}

// DefaultLog is the default way of printing out logs
func (h *Handler) DefaultLog(e *log.Entry) error {
	color := Colors[e.Level]
	level := Strings[e.Level]
	names := e.Fields.Names()

	s := color.Sprintf("%s %-25s", bold.Sprintf("%*s", h.Padding+1, level), e.Message)
	for _, name := range names {
		if name == "source" || name == "type" {
			continue
		}
		s += fmt.Sprintf(" %s=%v", color.Sprint(name), e.Fields.Get(name))
	}

	fmt.Fprintln(h.Writer, s)
	return nil
}

// HandleLog implements log.Handler.
func (h *Handler) HandleLog(e *log.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	t, isTyped := e.Fields["type"].(string)
	if isTyped {
		return h.TypedLog(t, e)
	}

	return h.DefaultLog(e)
}
