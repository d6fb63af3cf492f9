package summarizer

import (
	"fmt"
	"strings"
)

// MarkdownFormatter formats a Summary as a Markdown document.
type MarkdownFormatter struct {
	opts options
}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter(opts ...Option) *MarkdownFormatter {
	return &MarkdownFormatter{
		opts: buildOptions(opts),
	}
}

// Format implements the Formatter interface.
func (f *MarkdownFormatter) Format(summary *Summary) string {
	t := f.opts.translator
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t("Transcode Summary"))
	fmt.Fprintf(&b, "%s: %s\n\n", t("Generated"), summary.GeneratedAt.Format("2006-01-02 15:04:05"))

	fmt.Fprintf(&b, "## %s\n\n", t("Settings"))
	fmt.Fprintf(&b, "- %s: %s\n", t("Input"), summary.Settings.InputDir)
	fmt.Fprintf(&b, "- %s: %s\n", t("Output"), summary.Settings.OutputDir)
	fmt.Fprintf(&b, "- %s: %dx%d @ %d fps\n", t("Format"), summary.Settings.Resolution, summary.Settings.Resolution, summary.Settings.TargetFPS)
	if summary.Settings.MaxFiles > 0 {
		fmt.Fprintf(&b, "- %s: %d\n", t("File cap"), summary.Settings.MaxFiles)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## %s\n\n", t("Results"))
	fmt.Fprintf(&b, "- %s: %d/%d\n", t("Succeeded"), summary.Totals.Succeeded, summary.Totals.Attempted)
	fmt.Fprintf(&b, "- %s: %d\n", t("Failed"), summary.Totals.Failed)
	fmt.Fprintf(&b, "- %s: %d\n", t("Frames read"), summary.Totals.FramesRead)
	fmt.Fprintf(&b, "- %s: %d\n", t("Frames written"), summary.Totals.FramesWritten)
	b.WriteString("\n")

	if len(summary.Files) > 0 {
		fmt.Fprintf(&b, "## %s\n\n", t("Files"))
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n", t("File"), t("Source"), t("Skip"), t("Frames"), t("Status"))
		b.WriteString("| --- | --- | --- | --- | --- |\n")
		for _, file := range summary.Files {
			fmt.Fprintf(&b, "| %s | %s | %d | %d | %s |\n",
				file.RelativePath,
				f.formatSource(file),
				file.FrameSkip,
				file.FramesWritten,
				f.formatStatus(file),
			)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (f *MarkdownFormatter) formatSource(file FileSummary) string {
	if file.SourceWidth == 0 && file.SourceHeight == 0 {
		return "-"
	}
	return fmt.Sprintf("%dx%d @ %.2f fps", file.SourceWidth, file.SourceHeight, file.SourceFPS)
}

func (f *MarkdownFormatter) formatStatus(file FileSummary) string {
	t := f.opts.translator
	if file.Succeeded() {
		return t("OK")
	}
	return fmt.Sprintf("%s: %s", t("FAILED"), file.Error)
}

var _ Formatter = (*MarkdownFormatter)(nil)
