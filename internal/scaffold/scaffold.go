package scaffold

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/web3dev-labs/polkastarter/internal/branding"
	"github.com/web3dev-labs/polkastarter/internal/fsutil"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Directories of the skeleton, relative to the project root.
var Directories = []string{
	filepath.Join("contracts", "develop"),
	filepath.Join("contracts", "deploy"),
	"front",
	"cloud-functions",
	filepath.Join(".cursor", "rules"),
	filepath.Join(".github", "workflows"),
}

// fileSpec maps an embedded template to its output path.
type fileSpec struct {
	Template string
	Output   string
}

// Files of the skeleton, in the order they are reported.
var files = []fileSpec{
	{"project-structure.mdc.tmpl", filepath.Join(".cursor", "rules", "project-structure.mdc")},
	{"frontend-build.yml.tmpl", filepath.Join(".github", "workflows", "frontend-build.yml")},
	{"docs-build.yml.tmpl", filepath.Join(".github", "workflows", "docs-build.yml")},
	{"README.md.tmpl", "README.md"},
}

// Data holds the template variables. Templates use [[ ]] delimiters so the
// ${{ }} expressions of GitHub workflows pass through untouched.
type Data struct {
	Name          string
	Generator     string
	ScaffolderURL string
	NodeVersion   string
}

// NewData returns the template data for a project name.
func NewData(name string) *Data {
	return &Data{
		Name:          name,
		Generator:     branding.CLIName(),
		ScaffolderURL: branding.ScaffolderPackageURL(),
		NodeVersion:   "18",
	}
}

// Result holds the outcome of CreateFiles.
type Result struct {
	ProjectDir string
	// Files are the written paths relative to ProjectDir.
	Files    []string
	Warnings []string
}

// Generator creates project skeletons on disk.
type Generator struct {
	FS *fsutil.Helper
}

// CreateStructure creates the skeleton directories under projectDir.
func (g *Generator) CreateStructure(ctx context.Context, projectDir string) error {
	paths := make([]string, 0, len(Directories))
	for _, d := range Directories {
		paths = append(paths, filepath.Join(projectDir, d))
	}
	return g.FS.EnsureDirectories(ctx, paths)
}

// CreateFiles renders and writes the boilerplate files for data.Name.
func (g *Generator) CreateFiles(ctx context.Context, projectDir string, data *Data) (*Result, error) {
	rendered, err := Render(data)
	if err != nil {
		return nil, err
	}

	result := &Result{ProjectDir: projectDir}
	writes := make([]fsutil.FileToWrite, 0, len(rendered))
	for _, f := range rendered {
		writes = append(writes, fsutil.FileToWrite{
			Path:    filepath.Join(projectDir, f.Path),
			Content: f.Content,
		})
		result.Files = append(result.Files, f.Path)

		if strings.HasSuffix(f.Path, ".yml") {
			result.Warnings = append(result.Warnings, workflowWarnings(f.Path, []byte(f.Content))...)
		}
	}

	if err := g.FS.WriteFiles(ctx, writes); err != nil {
		return nil, err
	}
	return result, nil
}

// Render executes every template and returns the files with paths relative
// to the project root.
func Render(data *Data) ([]fsutil.FileToWrite, error) {
	out := make([]fsutil.FileToWrite, 0, len(files))
	for _, f := range files {
		raw, err := templateFS.ReadFile("templates/" + f.Template)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", f.Template, err)
		}

		tmpl, err := template.New(f.Template).Delims("[[", "]]").Parse(string(raw))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", f.Template, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("executing template %s: %w", f.Template, err)
		}
		out = append(out, fsutil.FileToWrite{Path: f.Output, Content: buf.String()})
	}
	return out, nil
}

func workflowWarnings(path string, data []byte) []string {
	res, err := ValidateWorkflow(data)
	if err != nil {
		return []string{fmt.Sprintf("%s: could not validate workflow: %v", path, err)}
	}
	var warnings []string
	for _, issue := range res.Issues {
		msg := issue.Message
		if issue.Path != "" {
			msg = issue.Path + ": " + msg
		}
		warnings = append(warnings, path+": "+msg)
	}
	return warnings
}
