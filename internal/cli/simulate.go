package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/mlopsdemo/internal/domain"
	"github.com/emiliopalmerini/mlopsdemo/internal/sim"
	"github.com/emiliopalmerini/mlopsdemo/internal/util"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the deployment step simulator in the terminal",
	Long: `Run one simulated deployment: the cursor advances one step per period
until the last step is reached.

Examples:
  mlopsdemo simulate                       # flow1, default step period
  mlopsdemo simulate --flow flow3 --step 500ms`,
	RunE: runSimulate,
}

var (
	simulateFlow string
	simulateStep time.Duration
)

func init() {
	simulateCmd.Flags().StringVarP(&simulateFlow, "flow", "f", "flow1", "Deployment flow id")
	simulateCmd.Flags().DurationVar(&simulateStep, "step", 0, "Step period (defaults to the configured step period)")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	period := cfg.StepPeriod
	if simulateStep > 0 {
		period = simulateStep
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app, err := NewAppContext(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close(context.Background()) }()

	flows, err := app.Catalog.ListFlows(ctx)
	if err != nil {
		return fmt.Errorf("failed to list flows: %w", err)
	}

	st, err := simulate(ctx, cmd.OutOrStdout(), flows, simulateFlow, period)
	if err != nil {
		return err
	}
	app.Exporter.RecordSimulatorRun(ctx, st.FlowID)
	return nil
}

// simulate runs flowID to its last step, printing the cursor after every
// advance. It returns the final state, or ctx's error when interrupted.
func simulate(ctx context.Context, w io.Writer, flows []domain.DeploymentFlow, flowID string, period time.Duration) (sim.StepState, error) {
	stepper := sim.NewStepper(ctx, flows, period)
	defer stepper.Stop()

	if !stepper.SelectFlow(flowID) {
		return sim.StepState{}, fmt.Errorf("unknown flow %q", flowID)
	}
	flow := stepper.Flow()

	steps := make(chan sim.StepState, len(flow.Steps)+1)
	stepper.OnStep(func(st sim.StepState) { steps <- st })

	fmt.Fprintf(w, "%s %s\n", flow.Icon, flowStyle(flow).Render(flow.Name))
	stepper.Start()
	printStep(w, flow, stepper.State())

	check := time.NewTicker(period)
	defer check.Stop()

	for {
		select {
		case st := <-steps:
			printStep(w, flow, st)
		case <-check.C:
			st := stepper.State()
			if st.Playing {
				continue
			}
			// every advance is reported before the tick that ends the run
			for len(steps) > 0 {
				printStep(w, flow, <-steps)
			}
			fmt.Fprintln(w, titleStyle.Render("Deployment complete"))
			return st, nil
		case <-ctx.Done():
			return stepper.State(), ctx.Err()
		}
	}
}

func printStep(w io.Writer, flow domain.DeploymentFlow, st sim.StepState) {
	if len(flow.Steps) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("   (no steps)"))
		return
	}
	step := flow.Steps[st.Current]
	label := fmt.Sprintf("[%d/%d] %s", st.Current+1, len(flow.Steps), step.Title)
	fmt.Fprintf(w, "   %s ", mutedStyle.Render(util.FormatClock(time.Now())))
	fmt.Fprintf(w, "%s %s\n", currentStyle.Render(label), mutedStyle.Render(step.Description))
}
