// Package output печатает результаты команд dashctl.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const (
	FormatSimple = "simple"
	FormatTable  = "table"
	FormatJSON   = "json"
)

var (
	done    = color.New(color.FgGreen).SprintFunc()
	pending = color.New(color.FgYellow).SprintFunc()
	accent  = color.New(color.FgCyan, color.Bold).SprintFunc()
	faint   = color.New(color.Faint).SprintFunc()
)

// Format возвращает формат вывода из флага --format.
func Format(cmd *cobra.Command) string {
	f, err := cmd.Flags().GetString("format")
	if err != nil || f == "" {
		return FormatSimple
	}
	return f
}

func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Table пишет строки через tabwriter. Первая строка заголовок.
func Table(w io.Writer, header []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	writeRow(tw, header)
	for _, row := range rows {
		writeRow(tw, row)
	}
	return tw.Flush()
}

func writeRow(w io.Writer, cols []string) {
	for _, c := range cols {
		fmt.Fprintf(w, "%s\t", c)
	}
	fmt.Fprintln(w)
}

// Mark цветная отметка выполнения.
func Mark(ok bool) string {
	if ok {
		return done("✓")
	}
	return pending("•")
}

func Pin(pinned bool) string {
	if pinned {
		return accent("★")
	}
	return " "
}

func Accent(s string) string {
	return accent(s)
}

func Faint(s string) string {
	return faint(s)
}

func Date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

// Duration форматирует секунды как 1h02m03s.
func Duration(seconds int64) string {
	return (time.Duration(seconds) * time.Second).String()
}

// ShortID первые символы ULID, достаточные для поиска по префиксу.
func ShortID(id string) string {
	if len(id) > 10 {
		return id[:10]
	}
	return id
}
