package controller

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "github.com/shock/pyliner/internal/model"
)

// TUI implements UI on a terminal. Short summaries print directly; summaries
// taller than the screen open a Bubble Tea pager.
type TUI struct {
	cmd *cobra.Command
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{cmd: cmd}
}

// TraceRoots prints the resolved search roots, one per line.
func (p *TUI) TraceRoots(roots []m.Path) {
	fmt.Fprintf(p.cmd.OutOrStdout(), "Search roots (%d):\n", len(roots))

	for _, root := range roots {
		fmt.Fprintf(p.cmd.OutOrStdout(), "  %s\n", root)
	}
}

// DisplaySummary shows the per-import summary, paginating when it does not
// fit on screen.
func (p *TUI) DisplaySummary(records []m.InlineRecord) error {
	model := newSummaryModel(records)

	output := p.cmd.OutOrStdout()

	if f, ok := output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.width = width
			model.height = height
		}
	}

	if !model.needsPagination() {
		_, err := fmt.Fprint(output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplaySuccess confirms the written output file.
func (p *TUI) DisplaySuccess(output m.Path) {
	fmt.Fprintf(p.cmd.OutOrStdout(), "%s\n",
		successStyle.Render(fmt.Sprintf("Inlined content written to %s", output)))
}

// summaryModel is the Bubble Tea model for the inlining summary pager.
type summaryModel struct {
	records  []m.InlineRecord
	height   int
	width    int
	offset   int
	quitting bool
}

func newSummaryModel(records []m.InlineRecord) summaryModel {
	return summaryModel{records: records}
}

func (sm summaryModel) Init() tea.Cmd {
	return nil
}

func (sm summaryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		sm.height = msg.Height
		sm.width = msg.Width

		return sm, nil

	case tea.KeyMsg:
		return sm.handleKeyPress(msg)
	}

	return sm, nil
}

func (sm summaryModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type { //nolint:exhaustive // Only quit keys are typed keys.
	case tea.KeyCtrlC, tea.KeyEsc:
		sm.quitting = true
		return sm, tea.Quit
	default:
	}

	switch msg.String() {
	case "q":
		sm.quitting = true
		return sm, tea.Quit

	case "down", "j":
		sm.offset++
		if max := sm.maxOffset(); sm.offset > max {
			sm.offset = max
		}

	case "up", "k":
		sm.offset--
		if sm.offset < 0 {
			sm.offset = 0
		}

	case "g", "home":
		sm.offset = 0

	case "G", "end":
		sm.offset = sm.maxOffset()

	case "d", "pgdown":
		sm.offset += sm.itemsPerPage()
		if max := sm.maxOffset(); sm.offset > max {
			sm.offset = max
		}

	case "u", "pgup":
		sm.offset -= sm.itemsPerPage()
		if sm.offset < 0 {
			sm.offset = 0
		}
	}

	return sm, nil
}

// itemsPerPage calculates how many records fit on screen, reserving space
// for the header, totals, and footer.
func (sm summaryModel) itemsPerPage() int {
	if sm.height == 0 {
		return 10
	}

	reserved := 8

	available := sm.height - reserved
	if available < 1 {
		return 1
	}

	return available
}

func (sm summaryModel) maxOffset() int {
	max := len(sm.records) - sm.itemsPerPage()
	if max < 0 {
		return 0
	}

	return max
}

func (sm summaryModel) needsPagination() bool {
	return sm.height > 0 && len(sm.records) > sm.itemsPerPage()
}

func (sm summaryModel) View() string {
	var b strings.Builder

	b.WriteString("  Inlined modules:\n\n")

	if len(sm.records) == 0 {
		b.WriteString("  No local imports found\n")
		return b.String()
	}

	display := sm.records
	paginated := sm.needsPagination()

	start := sm.offset

	if paginated {
		end := start + sm.itemsPerPage()
		if end > len(sm.records) {
			end = len(sm.records)
		}

		display = sm.records[start:end]
	}

	inlined := 0

	for _, record := range sm.records {
		if record.Status == m.StatusInlined {
			inlined++
		}
	}

	for _, record := range display {
		line := fmt.Sprintf("  %s %s", statusIcon(record.Status), record.Ref)

		if record.File != "" {
			line += fmt.Sprintf(" -> %s", record.File)
		}

		if record.Status != m.StatusInlined {
			line = elidedStyle.Render(line)
		}

		b.WriteString(line + "\n")
	}

	fmt.Fprintf(&b, "\n  Total: %d import(s), %d inlined\n", len(sm.records), inlined)

	if paginated {
		end := start + len(display)
		fmt.Fprintf(&b, "\n  Showing %d-%d of %d\n", start+1, end, len(sm.records))
		b.WriteString("  ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit\n")
	}

	return b.String()
}

func statusIcon(status m.InlineStatus) string {
	switch status {
	case m.StatusInlined:
		return "✓"
	case m.StatusElided:
		return "↩"
	default:
		return "·"
	}
}
