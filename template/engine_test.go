package template

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/randalmurphal/strkit/config"
	"github.com/randalmurphal/strkit/ops"
	"github.com/randalmurphal/strkit/strval"
)

func newContext(t *testing.T, cfg config.Config) *ops.Context {
	t.Helper()
	ctx, err := ops.NewContext(cfg, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	t.Cleanup(ctx.Close)
	return ctx
}

func TestEngine_Render_SimpleVariables(t *testing.T) {
	e := NewEngine(nil)

	tests := []struct {
		name      string
		template  string
		variables map[string]any
		want      string
	}{
		{
			name:      "single variable",
			template:  "Hello, {{name}}!",
			variables: map[string]any{"name": "World"},
			want:      "Hello, World!",
		},
		{
			name:      "missing variable",
			template:  "Hello, {{name}}!",
			variables: map[string]any{},
			want:      "Hello, <no value>!",
		},
		{
			name:      "nested map access",
			template:  "Name: {{.task.name}}",
			variables: map[string]any{"task": map[string]any{"name": "Test"}},
			want:      "Name: Test",
		},
		{
			name:      "nil variables map",
			template:  "plain",
			variables: nil,
			want:      "plain",
		},
		{
			name:      "conditional",
			template:  "{{#if urgent}}URGENT: {{/if}}{{title}}",
			variables: map[string]any{"urgent": true, "title": "fix"},
			want:      "URGENT: fix",
		},
		{
			name:      "iteration",
			template:  "{{#each items}}[{{.}}]{{/each}}",
			variables: map[string]any{"items": []string{"a", "b"}},
			want:      "[a][b]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Render(tt.template, tt.variables)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEngine_Render_Helpers(t *testing.T) {
	e := NewEngine(newContext(t, config.Default()))

	vars := map[string]any{
		"name":   "Ada",
		"title":  "--Intro--",
		"body":   "a<b>c&d",
		"padded": "  \t\nhi\r\n ",
		"accent": "ééhello",
		"word":   "abcdef",
	}

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"upper", "{{upper name}}", "ADA"},
		{"lower", "{{lower name}}", "ada"},
		{"strip with literal", `{{strip title "-"}}`, "Intro"},
		{"lstrip utf8", `{{lstrip accent "é"}}`, "hello"},
		{"rstrip", `{{rstrip title "-"}}`, "--Intro"},
		{"trim", "[{{trim padded}}]", "[hi]"},
		{"htmlencode", "<p>{{htmlencode body}}</p>", "<p>a&lt;b&gt;c&amp;d</p>"},
		{"concat", `{{concat name "!"}}`, "Ada!"},
		{"find", `{{find word "cd"}}`, "2"},
		{"find missing", `{{find word "defg"}}`, "-1"},
		{"boolean helper", `{{startswith word "abc"}}`, "true"},
		{"boolean in condition", `{{if endswith .word "ef"}}yes{{else}}no{{end}}`, "yes"},
		{"predicate", "{{isalpha name}}", "true"},
		{"go syntax", "{{upper .name}}", "ADA"},
		{"pipeline", "{{.name | lower}}", "ada"},
		{"nested", `{{upper (strip .title "-")}}`, "INTRO"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Render(tt.template, vars)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEngine_Render_PipelineArgumentOrder(t *testing.T) {
	e := NewEngine(nil)
	vars := map[string]any{"s": "ab"}

	tests := []struct {
		template string
		want     string
	}{
		{`{{.s | concat "x"}}`, "xab"},
		{`{{concat .s "x"}}`, "abx"},
		{`{{.s | startswith "abc"}}`, "true"},
		{`{{startswith .s "abc"}}`, "false"},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			got, err := e.Render(tt.template, vars)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEngine_Render_ReleasesValues(t *testing.T) {
	ctx := newContext(t, config.Default())
	e := NewEngine(ctx)

	_, err := e.Render(`{{strip s ""}} {{upper s}} {{htmlencode s}} {{find s "x"}}`,
		map[string]any{"s": "<x>"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	alloc := ctx.Alloc.(*strval.LimitAllocator)
	// Only the scratch buffer stays allocated.
	if alloc.Live() != 1 {
		t.Errorf("live buffers = %d, want 1", alloc.Live())
	}
}

func TestEngine_Render_Errors(t *testing.T) {
	e := NewEngine(nil)

	tests := []struct {
		name     string
		template string
		vars     map[string]any
		wantErr  error
	}{
		{
			name:     "empty template",
			template: "",
			wantErr:  ErrEmpty,
		},
		{
			name:     "invalid syntax",
			template: "{{#if}}missing condition{{/if}}",
			wantErr:  ErrParse,
		},
		{
			name:     "unknown function",
			template: "{{reverse .x}}",
			wantErr:  ErrParse,
		},
		{
			name:     "helper given a missing variable",
			template: "{{upper missing}}",
			vars:     map[string]any{},
			wantErr:  ErrExecute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Render(tt.template, tt.vars)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error %q should wrap %q", err.Error(), tt.wantErr.Error())
			}
		})
	}
}

func TestEngine_Render_OutOfMemory(t *testing.T) {
	cfg := config.Default()
	cfg.Allocator.LimitBytes = 128
	e := NewEngine(newContext(t, cfg))

	_, err := e.Render("{{concat s s}}", map[string]any{"s": strings.Repeat("x", 40)})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, ErrExecute) {
		t.Errorf("error %q should wrap %q", err, ErrExecute)
	}
	if !strings.Contains(err.Error(), "out of memory") {
		t.Errorf("error %q should mention out of memory", err)
	}
}

func TestEngine_Parse(t *testing.T) {
	e := NewEngine(nil)

	tests := []struct {
		name     string
		template string
		want     []string
		wantErr  bool
	}{
		{"simple", "{{greeting}}, {{name}}!", []string{"greeting", "name"}, false},
		{"helper args", `{{strip title "-"}} {{concat a b}}`, []string{"title", "a", "b"}, false},
		{"blocks", "{{#if done}}{{task}}{{/if}}", []string{"task", "done"}, false},
		{"empty", "", nil, true},
		{"broken", "{{#if}}x{{/if}}", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Parse(tt.template)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !equalSlices(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEngine_Helpers(t *testing.T) {
	e := NewEngine(nil)
	got := e.Helpers()
	if len(got) != len(ops.Available()) {
		t.Fatalf("got %d helpers, want %d", len(got), len(ops.Available()))
	}
	for _, want := range []string{"strip", "htmlencode", "find", "isalnum"} {
		found := false
		for _, h := range got {
			if h == want {
				found = true
			}
		}
		if !found {
			t.Errorf("helper %q missing", want)
		}
	}
}

func TestEngine_AddFunc(t *testing.T) {
	e := NewEngine(nil)
	e.AddFunc("double", func(s string) string {
		return s + s
	})

	got, err := e.Render("{{double .name}}", map[string]any{"name": "ab"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "abab" {
		t.Errorf("got %q, want %q", got, "abab")
	}
}

func TestValidateVariables(t *testing.T) {
	err := ValidateVariables([]string{"a", "b"}, map[string]any{"a": 1, "b": 2})
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err = ValidateVariables([]string{"a", "c"}, map[string]any{"a": 1})
	if !errors.Is(err, ErrVariable) {
		t.Errorf("expected ErrVariable, got %v", err)
	}
	if !strings.Contains(err.Error(), "c") {
		t.Errorf("error %q should name the missing variable", err)
	}
}

func equalSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
