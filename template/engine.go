package template

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"text/template"

	"github.com/randalmurphal/strkit/ops"
	"github.com/randalmurphal/strkit/strval"
)

// Engine renders templates against an ops execution context.
// Like the context, an Engine is not safe for concurrent use.
type Engine struct {
	ctx     *ops.Context
	funcs   template.FuncMap
	helpers []string
}

// NewEngine creates an engine whose helpers run in ctx. A nil ctx uses the
// Go heap and no scratch buffer.
func NewEngine(ctx *ops.Context) *Engine {
	if ctx == nil {
		ctx = &ops.Context{Alloc: strval.Heap{}, Logger: slog.Default()}
	}
	funcs := opFuncs(ctx)

	helpers := make([]string, 0, len(funcs))
	for name := range funcs {
		helpers = append(helpers, name)
	}
	sort.Strings(helpers)

	return &Engine{ctx: ctx, funcs: funcs, helpers: helpers}
}

// Render executes the template with the given variables.
// Handlebars-like syntax is converted to Go template syntax first.
func (e *Engine) Render(templateStr string, variables map[string]any) (string, error) {
	tmpl, err := e.parse(templateStr)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	if execErr := tmpl.Execute(&buf, variables); execErr != nil {
		return "", fmt.Errorf("%w: %w", ErrExecute, execErr)
	}
	return buf.String(), nil
}

// Parse validates the template and returns the variable names it refers to.
func (e *Engine) Parse(templateStr string) ([]string, error) {
	if _, err := e.parse(templateStr); err != nil {
		return nil, err
	}
	return extractVariables(templateStr, e.helpers), nil
}

// Helpers returns the helper names available to templates, sorted.
//
// Two-argument helpers take their arguments in call order. In a pipeline the
// piped value is passed last: {{.s | concat "x"}} is concat("x", s), not
// concat(s, "x"). Write {{concat .s "x"}} to put s first.
func (e *Engine) Helpers() []string {
	out := make([]string, len(e.helpers))
	copy(out, e.helpers)
	return out
}

// AddFunc adds a custom template function. Custom functions are not
// rewritten from Handlebars syntax; call them with Go syntax ({{fn .x}}).
func (e *Engine) AddFunc(name string, fn any) {
	e.funcs[name] = fn
}

func (e *Engine) parse(templateStr string) (*template.Template, error) {
	if templateStr == "" {
		return nil, ErrEmpty
	}
	converted := convertSyntax(templateStr, e.helpers)

	tmpl, err := template.New("strkit").Funcs(e.funcs).Parse(converted)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return tmpl, nil
}

// ValidateVariables checks that all required variables are provided.
// Returns an error wrapping ErrVariable if any required variable is missing.
func ValidateVariables(required []string, provided map[string]any) error {
	for _, name := range required {
		if _, ok := provided[name]; !ok {
			return fmt.Errorf("%w: %s", ErrVariable, name)
		}
	}
	return nil
}
