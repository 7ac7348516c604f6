package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/alexiusacademia/swbparts/internal/config"
	"github.com/alexiusacademia/swbparts/internal/intake"
	"github.com/alexiusacademia/swbparts/internal/parts"
	"github.com/alexiusacademia/swbparts/internal/prompt"
	"github.com/alexiusacademia/swbparts/internal/report"
	"github.com/alexiusacademia/swbparts/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "swbparts",
	Short: "Switchboard Sheet-Metal Parts Report",
	Long: `swbparts - Switchboard Sheet-Metal Parts Report

An interactive tool that collects switchboard section dimensions
and produces a PDF parts report for the fabrication shop.

For each switchboard you are asked for:
  - Sales order, customer, job name or address and switchboard name
  - Number of sections
  - Width, height and depth of every section (S = standard, L = corner)

The report lists the sheet-metal pieces for every section and totals
the pieces needed for each distinct width, height and depth.

Settings (environment or .env file):
  SWBPARTS_OUTPUT_DIR  directory for reports (default "output")
  SWBPARTS_CHART       include the totals chart page (default true)`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runReport,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	return run(cmd.InOrStdin(), cmd.OutOrStdout(), cfg)
}

// run drives one interactive session: collect, summarize, then write the PDF
func run(in io.Reader, out io.Writer, cfg config.Config) error {
	printBanner(out)

	p := prompt.New(in, out)

	boards, err := intake.NewCollector(p).CollectAll()
	if err != nil {
		return err
	}

	printSummary(out, boards, parts.Aggregate(boards))

	target, err := intake.ChooseReportPath(p, cfg.OutputDir)
	if err != nil {
		return err
	}

	rpt, err := report.New(target.Name, boards, report.Options{Chart: cfg.Chart})
	if err != nil {
		return err
	}

	if err := rpt.WriteFile(target.Path); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nReport generated: %s\n", target.Path)
	return nil
}

func printBanner(out io.Writer) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
	fmt.Fprintln(out, "  ║                                                           ║")
	fmt.Fprintf(out, "  ║   swbparts v%-46s║\n", version.Version)
	fmt.Fprintln(out, "  ║   Switchboard Sheet-Metal Parts Report                    ║")
	fmt.Fprintln(out, "  ║                                                           ║")
	fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
	fmt.Fprintf(out, "  %s\n", version.Copyright())
	fmt.Fprintln(out)
}
