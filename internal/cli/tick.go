package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	memhost "farmerbot/internal/adapter/host/memory"
	"farmerbot/internal/adapter/random"
	"farmerbot/internal/app/tick"
	"farmerbot/internal/config"
	"farmerbot/internal/domain/farmer"

	"github.com/spf13/cobra"
)

type tickOptions struct {
	fixture    string
	tuning     string
	seed       int64
	jsonOutput bool
}

func (a *App) newTickCmd() *cobra.Command {
	opts := &tickOptions{}
	cmd := &cobra.Command{
		Use:   "tick",
		Short: "Run one tick offline against a fixture farm",
		Long: `Run one tick against a YAML fixture holding the bot and its farm, and
print what the bot would do. Nothing leaves the process.

Examples:
  farmerbot tick -f testdata/harvest.yaml
  farmerbot tick -f farm.yaml --seed 7 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTick(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVarP(&opts.fixture, "fixture", "f", "", "Path to the fixture file (required)")
	cmd.Flags().StringVar(&opts.tuning, "tuning", "", "Path to a tuning file")
	cmd.Flags().Int64Var(&opts.seed, "seed", 1, "Random seed for the spatial search")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Print the decision as JSON")
	_ = cmd.MarkFlagRequired("fixture")
	return cmd
}

func (a *App) runTick(ctx context.Context, opts *tickOptions) error {
	fx, err := memhost.LoadFixture(opts.fixture)
	if err != nil {
		return err
	}
	tuning := farmer.DefaultTuning()
	if opts.tuning != "" {
		if tuning, err = config.LoadTuning(opts.tuning); err != nil {
			return err
		}
	}

	host := memhost.New(fx.Farm)
	uc := tick.UseCase{
		Farm:     host,
		Market:   host,
		Actuator: host,
		Log:      host,
		Rand:     random.New(opts.seed),
		Tuning:   tuning,
	}
	resp, err := uc.Execute(ctx, tick.Request{Bot: fx.Bot})
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resp.Decision)
	}

	d := resp.Decision
	fmt.Fprintf(a.stdout, "action: %s\n", describeAction(d))
	if d.Target != nil {
		fmt.Fprintf(a.stdout, "target: (%d,%d) %s\n", d.Target.X, d.Target.Y, d.Target.Work)
	}
	fmt.Fprintf(a.stdout, "candidates: %d\n", d.CandidateCount)
	fmt.Fprintf(a.stdout, "host calls: %s\n", strings.Join(host.Calls(), ", "))
	for _, l := range host.Logs() {
		fmt.Fprintf(a.stdout, "log [%s]: %s\n", l.Level, l.Message)
	}
	return nil
}

func describeAction(d farmer.Decision) string {
	if d.Action == nil {
		return "none"
	}
	if d.Action.Plant != "" {
		return fmt.Sprintf("%s %s", d.Action.Kind, d.Action.Plant)
	}
	return string(d.Action.Kind)
}
