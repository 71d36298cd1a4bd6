package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/web3dev-labs/polkastarter/internal/branding"
	"github.com/web3dev-labs/polkastarter/internal/config"
	"github.com/web3dev-labs/polkastarter/internal/frontend"
	"github.com/web3dev-labs/polkastarter/internal/fsutil"
	"github.com/web3dev-labs/polkastarter/internal/process"
	"github.com/web3dev-labs/polkastarter/internal/prompt"
	"github.com/web3dev-labs/polkastarter/internal/scaffold"
)

// createOptions are the root command flags.
type createOptions struct {
	Name         string
	ParentDir    string
	SkipFrontend bool
	Quiet        bool
}

var createOpts createOptions

// creator runs the project creation flow against injectable I/O.
type creator struct {
	In     io.Reader
	Out    io.Writer
	Err    io.Writer
	Runner process.Runner
	Log    *zap.Logger
	// Banner is called before prompting; nil skips it.
	Banner func()
}

func newCreator(cmd *cobra.Command) *creator {
	return &creator{
		In:     cmd.InOrStdin(),
		Out:    cmd.OutOrStdout(),
		Err:    cmd.ErrOrStderr(),
		Runner: &process.ExecRunner{Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()},
		Log:    logger,
		Banner: func() { printBanner(cmd) },
	}
}

// Run creates the skeleton and then the frontend. A failed frontend setup
// is reported with manual recovery steps and is not an error.
func (c *creator) Run(ctx context.Context, opts createOptions) error {
	if c.Banner != nil {
		c.Banner()
	}

	name := strings.TrimSpace(opts.Name)
	if name == "" {
		var err error
		name, err = prompt.ProjectName(c.In, c.Out)
		if err != nil {
			return fmt.Errorf("creating project: %w", err)
		}
	}

	parent := opts.ParentDir
	if parent == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolving working directory: %w", err)
		}
		parent = wd
	}
	projectDir := filepath.Join(parent, name)

	if err := c.createSkeleton(ctx, projectDir, name); err != nil {
		return fmt.Errorf("creating project: %w", err)
	}

	if opts.SkipFrontend {
		fmt.Fprintf(c.Out, "\n📁 Frontend skipped. Your project structure is ready at: %s\n", projectDir)
		return nil
	}

	setup := &frontend.Setup{
		Runner:         c.Runner,
		FS:             fsutil.New(c.Log),
		Out:            c.Out,
		Log:            c.Log,
		RepoURL:        config.ScaffolderRepoURL(),
		Template:       config.ScaffolderTemplate(),
		PackageManager: config.PackageManager(),
		Quiet:          opts.Quiet,
	}
	if _, err := setup.Run(ctx, projectDir, name); err != nil {
		c.printRecovery(projectDir, name, err)
		return nil
	}

	c.printSummary(name)
	return nil
}

func (c *creator) createSkeleton(ctx context.Context, projectDir, name string) error {
	fmt.Fprintf(c.Out, "Creating project structure for %q...\n", name)

	gen := &scaffold.Generator{FS: fsutil.New(c.Log)}
	if err := gen.CreateStructure(ctx, projectDir); err != nil {
		return err
	}
	res, err := gen.CreateFiles(ctx, projectDir, scaffold.NewData(name))
	if err != nil {
		return err
	}
	for _, w := range res.Warnings {
		c.Log.Warn("generated workflow does not match schema", zap.String("issue", w))
	}

	fmt.Fprintf(c.Out, "Project %q created successfully at %s!\n", name, projectDir)
	fmt.Fprintln(c.Out, "\nCreated files:")
	for _, f := range res.Files {
		fmt.Fprintf(c.Out, "- %s\n", filepath.ToSlash(f))
	}
	return nil
}

func (c *creator) printSummary(name string) {
	fmt.Fprintf(c.Out, "\n🎉 Complete! Your Polkadot project %q is ready!\n", name)
	fmt.Fprintln(c.Out, "\n📁 Project structure:")
	fmt.Fprintln(c.Out, "   ├── contracts/")
	fmt.Fprintln(c.Out, "   │   ├── develop/    # Smart contract development")
	fmt.Fprintln(c.Out, "   │   └── deploy/     # Contract deployment scripts")
	fmt.Fprintln(c.Out, "   ├── front/          # React frontend with Polkadot integration")
	fmt.Fprintln(c.Out, "   ├── cloud-functions/ # Cloud function implementations")
	fmt.Fprintln(c.Out, "   ├── .cursor/        # Cursor IDE configuration")
	fmt.Fprintln(c.Out, "   └── .github/        # CI/CD workflows")
	fmt.Fprintln(c.Out, "\n🚀 Next steps:")
	fmt.Fprintf(c.Out, "   1. cd %s/front\n", name)
	fmt.Fprintln(c.Out, "   2. npm run dev")
	fmt.Fprintln(c.Out, "\n📖 Check the README.md for more details!")
}

func (c *creator) printRecovery(projectDir, name string, err error) {
	fmt.Fprintln(c.Err, "\n⚠️  Project structure created successfully, but frontend setup encountered an issue:")
	fmt.Fprintf(c.Err, "   %v\n", err)

	var exitErr *process.ExitError
	if errors.As(err, &exitErr) {
		c.Log.Debug("failed tool output", zap.String("op", exitErr.Op), zap.String("stdout", exitErr.Result.Stdout))
	}

	fmt.Fprintln(c.Out, "\n✨ You can manually setup the frontend later by running:")
	fmt.Fprintf(c.Out, "   cd %s/front\n", name)
	fmt.Fprintf(c.Out, "   npx --yes --package=%s create-polkadot-dapp --project-name temp-frontend --template %s\n",
		branding.ScaffolderPackageURL(), config.ScaffolderTemplate())
	fmt.Fprintln(c.Out, "   Then move the contents of temp-frontend/frontend/ to the current directory")
	fmt.Fprintf(c.Out, "\n📁 Your project structure is ready at: %s\n", projectDir)
}
