package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/strkit/template"
)

var (
	renderFile   string
	renderVars   string
	renderSet    []string
	renderStrict bool
)

var renderCmd = &cobra.Command{
	Use:   "render [template]",
	Short: "Render a template with string helpers",
	Long: `Renders a template. Every operation is available as a helper, and
Handlebars-style {{name}}, {{#if x}} and {{#each xs}} blocks are accepted.

Examples:
  strkit render '{{upper name}}' --set name=ada
  strkit render -f page.tmpl --vars vars.yaml
  strkit render '<p>{{htmlencode body}}</p>' --set 'body=a<b'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderFile, "file", "f", "", "read the template from a file (- for stdin)")
	renderCmd.Flags().StringVar(&renderVars, "vars", "", "YAML file with template variables")
	renderCmd.Flags().StringArrayVar(&renderSet, "set", nil, "set a variable (key=value), repeatable")
	renderCmd.Flags().BoolVar(&renderStrict, "strict", false, "fail when a referenced variable is missing")
}

func runRender(cmd *cobra.Command, args []string) error {
	text, err := readTemplate(cmd, args)
	if err != nil {
		return err
	}
	vars, err := renderVariables()
	if err != nil {
		return err
	}

	ctx, err := newContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	engine := template.NewEngine(ctx)
	if renderStrict {
		required, err := engine.Parse(text)
		if err != nil {
			return err
		}
		if err := template.ValidateVariables(required, vars); err != nil {
			return err
		}
	}

	out, err := engine.Render(text, vars)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	if !strings.HasSuffix(out, "\n") {
		fmt.Fprintln(cmd.OutOrStdout())
	}
	return nil
}

func readTemplate(cmd *cobra.Command, args []string) (string, error) {
	switch {
	case len(args) == 1 && renderFile != "":
		return "", fmt.Errorf("give the template as an argument or with --file, not both")
	case len(args) == 1:
		return args[0], nil
	case renderFile == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read template: %w", err)
		}
		return string(data), nil
	case renderFile != "":
		data, err := os.ReadFile(renderFile)
		if err != nil {
			return "", fmt.Errorf("read template: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("no template given")
	}
}

// renderVariables merges --vars and --set. --set wins on conflicts.
func renderVariables() (map[string]any, error) {
	vars := map[string]any{}
	if renderVars != "" {
		data, err := os.ReadFile(renderVars)
		if err != nil {
			return nil, fmt.Errorf("read variables: %w", err)
		}
		if err := yaml.Unmarshal(data, &vars); err != nil {
			return nil, fmt.Errorf("parse variables %s: %w", renderVars, err)
		}
		if vars == nil {
			vars = map[string]any{}
		}
	}
	for _, kv := range renderSet {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set %q: want key=value", kv)
		}
		vars[key] = value
	}
	return vars, nil
}
