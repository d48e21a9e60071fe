package errors

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Formatter renders RunErrors for the terminal. Color usage is decided once
// at startup and threaded in here rather than read from ambient state.
type Formatter struct {
	errorLabel  *color.Color
	errorMsg    *color.Color
	categoryFmt *color.Color
	fixLabel    *color.Color
	bullet      *color.Color
}

// NewFormatter creates a Formatter with colors explicitly enabled or disabled.
func NewFormatter(colorEnabled bool) *Formatter {
	f := &Formatter{
		errorLabel:  color.New(color.FgRed, color.Bold),
		errorMsg:    color.New(color.FgRed),
		categoryFmt: color.New(color.FgYellow),
		fixLabel:    color.New(color.FgGreen, color.Bold),
		bullet:      color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{f.errorLabel, f.errorMsg, f.categoryFmt, f.fixLabel, f.bullet} {
		if colorEnabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return f
}

// Format formats a RunError for display in the terminal.
func (f *Formatter) Format(err *RunError) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(f.errorLabel.Sprint("ERROR"))
	sb.WriteString(" [")
	sb.WriteString(f.categoryFmt.Sprint(err.Category.String()))
	sb.WriteString("]: ")
	sb.WriteString(f.errorMsg.Sprint(err.Message))
	sb.WriteString("\n")

	if len(err.Remediation) > 0 {
		sb.WriteString("\n")
		sb.WriteString(f.fixLabel.Sprint("To fix this:"))
		sb.WriteString("\n")
		for _, step := range err.Remediation {
			sb.WriteString("  ")
			sb.WriteString(f.bullet.Sprint("•"))
			sb.WriteString(" ")
			sb.WriteString(step)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// Fprint prints a formatted RunError to the given writer.
func (f *Formatter) Fprint(w io.Writer, err *RunError) {
	if err == nil {
		return
	}
	fmt.Fprint(w, f.Format(err))
}

// FprintAny prints any error through the formatter. Plain errors are rendered
// as Runtime category.
func (f *Formatter) FprintAny(w io.Writer, err error) {
	if err == nil {
		return
	}
	runErr := AsRunError(err)
	if runErr == nil {
		runErr = &RunError{Category: Runtime, Message: err.Error()}
	}
	f.Fprint(w, runErr)
}
