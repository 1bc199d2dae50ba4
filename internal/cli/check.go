package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/pktviz/pktviz/pkg/diagram"
	"github.com/pktviz/pktviz/pkg/layout"
	"github.com/pktviz/pktviz/pkg/pipeline"
)

// checkOpts holds the command-line flags for the check command.
type checkOpts struct {
	bitsPerRow  int
	interactive bool
}

// newCheckCmd creates the check command for validating a diagram without
// rendering it. It reports the parsed fields and how they wrap into rows.
func newCheckCmd() *cobra.Command {
	opts := checkOpts{}

	cmd := &cobra.Command{
		Use:   "check [file|url|-]",
		Short: "Validate a packet diagram and inspect its fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().IntVar(&opts.bitsPerRow, "bits-per-row", 0, fmt.Sprintf("bits per row (default %d)", layout.DefaultBitsPerRow))
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse fields interactively")

	return cmd
}

// runCheck parses and lays out the diagram, reporting errors or a field
// summary.
func runCheck(ctx context.Context, input string, opts *checkOpts) error {
	source, sourcePath, err := resolveInput(input)
	if err != nil {
		return err
	}

	pOpts := pipeline.Options{
		Source:     source,
		SourcePath: sourcePath,
		BitsPerRow: opts.bitsPerRow,
	}

	d, err := pipeline.Parse(ctx, pOpts)
	if err != nil {
		printError("Invalid diagram: %v", err)
		return err
	}

	layoutOpts := pOpts.LayoutOptions().Resolve()
	var packet layout.Packet
	if err := layout.Populate(d, layoutOpts, &packet); err != nil {
		printError("Invalid diagram: %v", err)
		return err
	}

	if opts.interactive {
		model := newFieldListModel(d, layoutOpts.BitsPerRow)
		_, err := tea.NewProgram(model).Run()
		return err
	}

	printSuccess("Diagram is valid")
	if d.Title != "" {
		printKeyValue("Title", d.Title)
	}
	printKeyValue("Fields", fmt.Sprintf("%d", len(d.Fields)))
	printKeyValue("Bits", fmt.Sprintf("%d", d.TotalBits()))
	printKeyValue("Rows", fmt.Sprintf("%d (%d bits per row)", packet.WordCount(), layoutOpts.BitsPerRow))
	printNewline()
	fmt.Println(fieldTable(d))
	printNewline()
	printNextStep("Render it", fmt.Sprintf("pktviz render %s", input))
	return nil
}

// fieldTable renders the parsed fields as a bordered table.
func fieldTable(d *diagram.Diagram) string {
	rows := make([][]string, 0, len(d.Fields))
	for _, f := range d.Fields {
		bitRange := fmt.Sprintf("%d-%d", f.Start, f.End)
		if f.Start == f.End {
			bitRange = fmt.Sprintf("%d", f.Start)
		}
		rows = append(rows, []string{bitRange, fmt.Sprintf("%d", f.Bits()), f.Label})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Bits", "Width", "Field").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 2 {
				return StyleValue
			}
			return StyleDim
		}).
		Render()
}
