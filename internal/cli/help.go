package cli

import (
	"regexp"
	"strings"

	"github.com/spf13/cobra"
)

type helpLineKind int

const (
	helpPlain helpLineKind = iota
	helpSection
	helpFooter
	helpEntry
)

var (
	sectionRe = regexp.MustCompile(`^[A-Z][A-Za-z ]+:$`)
	footerRe  = regexp.MustCompile(`^Use "`)
	// entryRe matches command and flag listings: indent, name, description.
	entryRe = regexp.MustCompile(`^( +)(\S.*?)( {2,}.*)$`)
)

func classifyHelpLine(line string) helpLineKind {
	trimmed := strings.TrimSpace(line)
	switch {
	case sectionRe.MatchString(trimmed):
		return helpSection
	case footerRe.MatchString(trimmed):
		return helpFooter
	case entryRe.MatchString(line):
		return helpEntry
	}
	return helpPlain
}

func colorizeHelpLine(line string) string {
	switch classifyHelpLine(line) {
	case helpSection:
		return Info(line)
	case helpFooter:
		return Silent(line)
	case helpEntry:
		m := entryRe.FindStringSubmatch(line)
		return m[1] + Primary(m[2]) + Text(m[3])
	}
	return Text(line)
}

// colorizedHelp renders cobra's usage text with the CLI colours.
func colorizedHelp(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()

	var buf strings.Builder
	cmd.SetOut(&buf)
	cmd.InitDefaultHelpFlag()
	_ = cmd.Usage()
	cmd.SetOut(out)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	for i, line := range lines {
		lines[i] = colorizeHelpLine(line)
	}
	cmd.Print(strings.Join(lines, "\n") + "\n")
}
