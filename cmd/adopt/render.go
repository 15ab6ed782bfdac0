package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type outputFormat int

const (
	formatTable outputFormat = iota
	formatMarkdown
)

func parseFormat(s string) outputFormat {
	if strings.EqualFold(strings.TrimSpace(s), "markdown") {
		return formatMarkdown
	}
	return formatTable
}

// renderTable escribe una tabla go-pretty en out.
func renderTable(out io.Writer, f outputFormat, header table.Row, rows []table.Row) {
	w := table.NewWriter()
	w.AppendHeader(header)
	w.AppendRows(rows)

	var s string
	switch f {
	case formatMarkdown:
		s = w.RenderMarkdown()
	default:
		w.SetStyle(table.StyleLight)
		w.Style().Format.Header = text.FormatDefault
		s = w.Render()
	}
	fmt.Fprintln(out, s)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}
