package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cpmech/gofra/fem"
	"github.com/cpmech/gofra/inp"
)

var (
	analyzeSettings string
	analyzeCase     string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <model.json>",
	Short: "Run static analysis of a 3D frame model",
	Long: `Run linear or nonlinear static analysis of a 3D frame model and
print nodal displacements, support reactions and member forces per
load case.

The model file defines nodes, elements, materials, sections and load
cases. Analysis options (analysis type, tolerances, load stepping)
come from a separate settings file; defaults are used when no settings
file is given.

Examples:
  # Linear analysis of all load cases
  gofra analyze frame.json

  # Nonlinear analysis with custom settings, one load case only
  gofra analyze frame.json --settings nonlinear.json --case WIND`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&analyzeSettings, "settings", "s", "", "Settings file (JSON)")
	analyzeCmd.Flags().StringVarP(&analyzeCase, "case", "c", "", "Solve a single load case by name")
}

// loadInputs reads the model and the (optional) settings file
func loadInputs(fnModel string) (*inp.Model, *inp.Settings, error) {
	model, err := inp.ReadModel(fnModel)
	if err != nil {
		return nil, nil, err
	}
	sets := inp.NewSettings()
	if analyzeSettings != "" {
		if sets, err = inp.ReadSettings(analyzeSettings); err != nil {
			return nil, nil, err
		}
	}
	return model, sets, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	model, sets, err := loadInputs(args[0])
	if err != nil {
		return err
	}
	a, err := fem.NewAnalysis(model, sets, verbose)
	if err != nil {
		return err
	}

	// single case
	if analyzeCase != "" {
		res, err := a.RunCase(analyzeCase)
		if err != nil {
			return err
		}
		printCase(analyzeCase, res)
		return nil
	}

	// all cases
	rep, err := a.Run()
	if err != nil {
		return err
	}
	for _, name := range sortedCaseNames(rep.Cases) {
		printCase(name, rep.Cases[name])
	}
	for name, err := range rep.Failed {
		fmt.Printf("\nload case %q FAILED: %v\n", name, err)
	}
	if len(rep.Failed) > 0 {
		return fmt.Errorf("%d load case(s) failed", len(rep.Failed))
	}
	return nil
}

func sortedCaseNames(cases map[string]*fem.CaseResults) (names []string) {
	for name := range cases {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

func printCase(name string, res *fem.CaseResults) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     LOAD CASE: %s\n", name)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	if res.IllConditioned {
		fmt.Printf("  WARNING: ill-conditioned stiffness matrix (cond = %.3e)\n", res.Cond)
	}
	if cvg := res.Convergence; cvg != nil {
		fmt.Printf("  converged: %v (%d steps, %d iterations, residual = %.3e)\n",
			cvg.Converged, len(cvg.LoadSteps), cvg.Iterations, cvg.Residual)
	}
	fmt.Printf("  max displacement = %.6e   max stress = %.6e\n\n", res.MaxDisp, res.MaxStress)

	// nodal results
	fmt.Println("NODAL DISPLACEMENTS AND REACTIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  node\tdx\tdy\tdz\tRx\tRy\tRz")
	var nids []int
	for id := range res.NodeResults {
		nids = append(nids, id)
	}
	sort.Ints(nids)
	for _, id := range nids {
		nr := res.NodeResults[id]
		d, r := nr.Displacements, nr.Reactions
		fmt.Fprintf(w, "  %d\t%.4e\t%.4e\t%.4e\t%.4e\t%.4e\t%.4e\n",
			id, d[0], d[1], d[2], r[0], r[1], r[2])
	}
	w.Flush()
	fmt.Println()

	// element results
	fmt.Println("MEMBER FORCES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  elem\taxial\tshear-y\tshear-z\ttorsion\tmoment-y\tmoment-z")
	var eids []int
	for id := range res.ElementResults {
		eids = append(eids, id)
	}
	sort.Ints(eids)
	for _, id := range eids {
		er := res.ElementResults[id]
		fmt.Fprintf(w, "  %d\t%.4e\t%.4e\t%.4e\t%.4e\t%.4e\t%.4e\n",
			id, er.AxialForce, er.ShearY, er.ShearZ, er.Torsion, er.MomentY, er.MomentZ)
	}
	w.Flush()
}
