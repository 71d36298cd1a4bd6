package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/web3dev-labs/polkastarter/internal/config"
	"github.com/web3dev-labs/polkastarter/internal/frontend"
	"github.com/web3dev-labs/polkastarter/internal/fsutil"
	"github.com/web3dev-labs/polkastarter/internal/process"
	"github.com/web3dev-labs/polkastarter/internal/scaffold"
)

var errSetupInvalid = errors.New("frontend setup prerequisites are not met")

var checkWorkflows bool

func init() {
	doctorCmd.Flags().BoolVar(&checkWorkflows, "check-workflows", false, "Also validate .github/workflows/*.yml in the project")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor [project-dir]",
	Short: "Check that a project is ready for frontend setup",
	Long: `Verify that the project's front directory exists and that git and a
package manager are installed. Node.js is checked too but only warned about.
Exits non-zero when any error is found.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		projectDir, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("resolving project directory: %w", err)
		}

		v := &frontend.Validator{
			Runner:                 &process.ExecRunner{},
			FS:                     fsutil.New(logger),
			PackageManager:         config.PackageManager(),
			FallbackPackageManager: config.FallbackPackageManager(),
		}
		res, err := v.Validate(cmd.Context(), projectDir)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		printValidation(out, projectDir, res)

		if checkWorkflows {
			if err := runWorkflowCheck(out, projectDir); err != nil {
				return err
			}
		}

		if !res.Valid {
			return errSetupInvalid
		}
		return nil
	},
}

func printValidation(w io.Writer, projectDir string, res *frontend.ValidationResult) {
	fmt.Fprintf(w, "Project: %s\n", projectDir)

	fmt.Fprintln(w, "Tools:")
	for _, t := range res.Tools {
		switch {
		case !t.Available:
			fmt.Fprintf(w, "  [MISS] %s not found\n", t.Name)
		case t.Version != "":
			fmt.Fprintf(w, "  [ OK ] %s %s\n", t.Name, t.Version)
		default:
			fmt.Fprintf(w, "  [ OK ] %s\n", t.Name)
		}
	}

	if len(res.Errors) > 0 || len(res.Warnings) > 0 {
		fmt.Fprintln(w, "Findings:")
	}
	for _, e := range res.Errors {
		fmt.Fprintf(w, "  [FAIL] %s\n", e)
	}
	for _, warn := range res.Warnings {
		fmt.Fprintf(w, "  [WARN] %s\n", warn)
	}

	if res.Valid {
		fmt.Fprintln(w, "Ready for frontend setup.")
	}
}

// runWorkflowCheck validates every workflow file under projectDir.
func runWorkflowCheck(w io.Writer, projectDir string) error {
	fmt.Fprintln(w, "Workflows:")

	paths, err := filepath.Glob(filepath.Join(projectDir, ".github", "workflows", "*.yml"))
	if err != nil {
		return fmt.Errorf("listing workflows: %w", err)
	}
	if len(paths) == 0 {
		fmt.Fprintln(w, "  [INFO] No workflows found")
		return nil
	}
	sort.Strings(paths)

	failed := 0
	for _, p := range paths {
		name := filepath.Base(p)
		data, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("reading workflow %s: %w", p, err)
		}

		res, err := scaffold.ValidateWorkflow(data)
		if err != nil {
			fmt.Fprintf(w, "  [FAIL] %s: %v\n", name, err)
			failed++
			continue
		}
		if res.Valid {
			fmt.Fprintf(w, "  [ OK ] %s\n", name)
			continue
		}

		failed++
		fmt.Fprintf(w, "  [FAIL] %s: %d validation issue(s):\n", name, len(res.Issues))
		for _, issue := range res.Issues {
			if issue.Path != "" {
				fmt.Fprintf(w, "    - %s: %s\n", issue.Path, issue.Message)
			} else {
				fmt.Fprintf(w, "    - %s\n", issue.Message)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d workflow(s) failed validation", failed)
	}
	return nil
}
