package log

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Available text styles
var (
	Bold    = color.New(color.Bold).SprintFunc()
	Blue    = color.New(color.FgBlue).SprintFunc()
	Green   = color.New(color.FgGreen).SprintFunc()
	Yellow  = color.New(color.FgYellow).SprintFunc()
	Magenta = color.New(color.FgMagenta).SprintFunc()
)

// LabelWidth is the column labels are right-aligned to.
const LabelWidth = 10

func pad(label string) string {
	padding := LabelWidth - len(label)
	if padding < 0 {
		padding = 0
	}
	return strings.Repeat(" ", padding) + label + ": "
}

// Print formats and writes a message with the given colorFunc for highlighted text
func Print(w io.Writer, prefix, format string, colorFunc func(...interface{}) string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	_, err := fmt.Fprintln(w, Bold(prefix, colorFunc(msg)))
	return err
}

// PrintPair writes a key-value pair with the key in bold and value in the specified color
func PrintPair(w io.Writer, key, value string, colorFunc func(...interface{}) string) error {
	_, err := fmt.Fprintln(w, Bold(pad(key), colorFunc(value)))
	return err
}

// PrintValue writes a simple value with the given color
func PrintValue(w io.Writer, label string, value interface{}, colorFunc func(...interface{}) string) error {
	return PrintPair(w, label, fmt.Sprintf("%v", value), colorFunc)
}

// PrintFloat writes a float value with the given precision
func PrintFloat(w io.Writer, label string, value float64, precision int, colorFunc func(...interface{}) string) error {
	return PrintPair(w, label, fmt.Sprintf("%.*f", precision, value), colorFunc)
}
