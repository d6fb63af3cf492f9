package summarizer

import (
	"fmt"
	"strings"
)

// TextFormatter formats a Summary as plain console text.
type TextFormatter struct {
	opts options
}

// NewTextFormatter creates a new TextFormatter.
func NewTextFormatter(opts ...Option) *TextFormatter {
	return &TextFormatter{
		opts: buildOptions(opts),
	}
}

// Format implements the Formatter interface.
func (f *TextFormatter) Format(summary *Summary) string {
	t := f.opts.translator
	var b strings.Builder

	fmt.Fprintf(&b, "%s: %d/%d\n", t("Completed"), summary.Totals.Succeeded, summary.Totals.Attempted)
	fmt.Fprintf(&b, "%s: %dx%d @ %d fps\n", t("Format"), summary.Settings.Resolution, summary.Settings.Resolution, summary.Settings.TargetFPS)
	fmt.Fprintf(&b, "%s: %d\n", t("Frames written"), summary.Totals.FramesWritten)

	if summary.Totals.Failed > 0 {
		fmt.Fprintf(&b, "%s:\n", t("Failed files"))
		for _, file := range summary.Files {
			if !file.Succeeded() {
				fmt.Fprintf(&b, "  %s: %s\n", file.RelativePath, file.Error)
			}
		}
	}

	return b.String()
}

var _ Formatter = (*TextFormatter)(nil)
