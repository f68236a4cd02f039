package controller

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/shock/pyliner/internal/model"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	elidedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// SimpleUI implements UI using the cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// TraceRoots prints the resolved search roots, one per line.
func (s *SimpleUI) TraceRoots(roots []m.Path) {
	s.printf("Search roots (%d):\n", len(roots))

	for _, root := range roots {
		s.printf("  %s\n", root)
	}
}

// DisplaySummary renders the per-import summary table.
func (s *SimpleUI) DisplaySummary(records []m.InlineRecord) error {
	if len(records) == 0 {
		s.printf("No local imports found\n")
		return nil
	}

	s.printf("\n%s", renderSummaryTable(records))

	return nil
}

// DisplaySuccess confirms the written output file.
func (s *SimpleUI) DisplaySuccess(output m.Path) {
	s.printf("%s\n", successStyle.Render(fmt.Sprintf("Inlined content written to %s", output)))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func renderSummaryTable(records []m.InlineRecord) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Module", "File", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	inlined := 0

	for _, record := range records {
		if record.Status == m.StatusInlined {
			inlined++
		}

		table.Append([]string{record.Ref, string(record.File), string(record.Status)})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(records)),
		"",
		fmt.Sprintf("Inlined %d", inlined),
	})

	table.Render()

	return tableBuffer.String()
}
