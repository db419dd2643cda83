package monitor

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ErrNothingToShow is returned when there are no rows left to render. An
// empty table is never printed.
var ErrNothingToShow = errors.New("Nothing to show")

var newlineRun = regexp.MustCompile(`[\r\n]+`)

// RenderTable writes the rows as a column-aligned table. Every column is
// padded to the widest value it holds, measured in display cells rather
// than bytes so UTF-8 data lines up. Columns are separated by two spaces.
//
// A row with an annotation is preceded by a blank line and the annotation
// text prefixed with "# ", with runs of newlines collapsed to a space.
func RenderTable(w io.Writer, rows []DisplayRow) error {
	if len(rows) == 0 {
		return ErrNothingToShow
	}

	var widths [4]int
	for _, row := range rows {
		for i, field := range row.Fields {
			if width := runewidth.StringWidth(field); width > widths[i] {
				widths[i] = width
			}
		}
	}

	for _, row := range rows {
		if row.Annotation != "" {
			renderAnnotation(w, row.Annotation)
		}

		padded := make([]string, len(row.Fields))
		for i, field := range row.Fields {
			padded[i] = runewidth.FillRight(field, widths[i])
		}

		fmt.Fprintln(w, strings.Join(padded, "  "))
	}

	return nil
}

func renderAnnotation(w io.Writer, annotation string) {
	annotation = strings.TrimSuffix(annotation, "\n")
	annotation = newlineRun.ReplaceAllString(annotation, " ")

	fmt.Fprintln(w)
	for _, line := range strings.Split(annotation, "\n") {
		fmt.Fprintf(w, "# %s\n", line)
	}
}
