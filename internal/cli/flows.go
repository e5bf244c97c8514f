package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/mlopsdemo/internal/domain"
)

var flowsCmd = &cobra.Command{
	Use:   "flows",
	Short: "List deployment flows and their steps",
	RunE:  runFlows,
}

var flowsVerbose bool

func init() {
	flowsCmd.Flags().BoolVarP(&flowsVerbose, "verbose", "v", false, "Show step details")
}

func runFlows(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx := context.Background()
	app, err := NewAppContext(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close(ctx) }()

	flows, err := app.Catalog.ListFlows(ctx)
	if err != nil {
		return fmt.Errorf("failed to list flows: %w", err)
	}
	return renderFlows(cmd.OutOrStdout(), flows, flowsVerbose)
}

func renderFlows(w io.Writer, flows []domain.DeploymentFlow, verbose bool) error {
	var b strings.Builder
	for i, f := range flows {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s %s %s\n", f.Icon, flowStyle(f).Render(f.Name), mutedStyle.Render("("+f.ID+")"))
		fmt.Fprintf(&b, "   %s\n", mutedStyle.Render(f.Description))
		for j, st := range f.Steps {
			fmt.Fprintf(&b, "   %d. %s %s", j+1, st.Title, statusStyle(st.Status).Render(st.Status.String()))
			if st.Duration != nil {
				fmt.Fprintf(&b, " %s", mutedStyle.Render(*st.Duration))
			}
			b.WriteString("\n")
			if verbose {
				for _, d := range st.Details {
					b.WriteString(detailStyle.Render("- "+d) + "\n")
				}
			}
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
