package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cpmech/gofra/design"
	"github.com/cpmech/gofra/fem"
)

var checkSettings string

var checkCmd = &cobra.Command{
	Use:   "check <model.json>",
	Short: "Run analysis followed by AISC 360 design checks",
	Long: `Run static analysis of a 3D frame model and check every element
against the design code configured in the settings (AISC 360 by
default). Checks are reported per load case with the controlling
limit state and utilization ratio of each element.

Examples:
  # Analyze and check with default settings
  gofra check frame.json

  # Custom resistance and effective length factors
  gofra check frame.json --settings design.json`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&checkSettings, "settings", "s", "", "Settings file (JSON)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	analyzeSettings = checkSettings
	model, sets, err := loadInputs(args[0])
	if err != nil {
		return err
	}
	a, err := fem.NewAnalysis(model, sets, verbose)
	if err != nil {
		return err
	}
	rep, err := a.Run()
	if err != nil {
		return err
	}

	engine := design.NewEngine(a.Dom, &sets.Design, verbose)
	anyFail := false
	for _, name := range sortedCaseNames(rep.Cases) {
		results, err := engine.CheckAll(rep.Cases[name])
		if err != nil {
			return err
		}
		printChecks(name, results)
		if design.Summarize(results).NumFail > 0 {
			anyFail = true
		}
	}
	for name, err := range rep.Failed {
		fmt.Printf("\nload case %q FAILED: %v\n", name, err)
	}
	if len(rep.Failed) > 0 {
		return fmt.Errorf("%d load case(s) failed", len(rep.Failed))
	}
	if anyFail {
		return fmt.Errorf("design checks failed")
	}
	return nil
}

func printChecks(name string, results map[int]*design.ElementResult) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     DESIGN CHECKS - LOAD CASE: %s\n", name)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  elem\ttype\tsection\tcontrolling\tratio\tstatus")
	var eids []int
	for id := range results {
		eids = append(eids, id)
	}
	sort.Ints(eids)
	for _, id := range eids {
		r := results[id]
		fmt.Fprintf(w, "  %d\t%s\t%s\t%s\t%.3f\t%s\n",
			id, r.ElemType, r.Section, r.ControllingCheck, r.ControllingRatio, r.Status)
	}
	w.Flush()

	s := design.Summarize(results)
	fmt.Printf("\n  summary: %d PASS, %d WARNING, %d FAIL (max ratio = %.3f", s.NumPass, s.NumWarn, s.NumFail, s.MaxRatio)
	if s.Critical >= 0 {
		fmt.Printf(", element %d", s.Critical)
	}
	fmt.Println(")")
	for _, id := range eids {
		for _, rec := range results[id].Recommendations {
			fmt.Printf("  element %d: %s\n", id, rec)
		}
	}
}
