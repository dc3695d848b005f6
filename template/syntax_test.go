package template

import "testing"

var testHelpers = []string{"strip", "upper", "concat"}

func TestConvertSyntax(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"{{name}}", "{{.name}}"},
		{"{{#if done}}yes{{/if}}", "{{if .done}}yes{{end}}"},
		{"{{#if done}}yes{{else}}no{{/if}}", "{{if .done}}yes{{else}}no{{end}}"},
		{"{{#each items}}{{.}}{{/each}}", "{{range .items}}{{.}}{{end}}"},
		{"Keep {{else}} and {{end}} unchanged", "Keep {{else}} and {{end}} unchanged"},
		{`{{strip title "-"}}`, `{{strip .title "-"}}`},
		{`{{concat a b}}`, `{{concat .a .b}}`},
		{`{{upper .name}}`, `{{upper .name}}`},
		{`{{unknown name}}`, `{{unknown name}}`},
		{`{{if upper .x}}y{{end}}`, `{{if upper .x}}y{{end}}`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := convertSyntax(tt.input, testHelpers)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConvertArguments(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"name", ".name"},
		{`name "lit"`, `.name "lit"`},
		{"name 10", ".name 10"},
		{"flag true", ".flag true"},
		{".already x", ".already .x"},
		{"`raw str` y", "`raw str` .y"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := convertArguments(tt.input)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSplitArguments(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a b c", []string{"a", "b", "c"}},
		{`a "b c" d`, []string{"a", `"b c"`, "d"}},
		{"a `b c` d", []string{"a", "`b c`", "d"}},
		{"", nil},
		{"  spaced  out  ", []string{"spaced", "out"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := splitArguments(tt.input)
			if !equalSlices(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLiteralClassifiers(t *testing.T) {
	numbers := map[string]bool{"42": true, "-3.5": true, "": false, "-": false, "4a": false}
	for in, want := range numbers {
		if got := isNumber(in); got != want {
			t.Errorf("isNumber(%q) = %v, want %v", in, got, want)
		}
	}

	quoted := map[string]bool{`"x"`: true, "`x`": true, `'x'`: false, `"x`: false, `"`: false}
	for in, want := range quoted {
		if got := isQuotedString(in); got != want {
			t.Errorf("isQuotedString(%q) = %v, want %v", in, got, want)
		}
	}

	idents := map[string]bool{"name": true, "_x1": true, "1x": false, "a-b": false, "": false}
	for in, want := range idents {
		if got := isValidIdentifier(in); got != want {
			t.Errorf("isValidIdentifier(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestExtractVariables(t *testing.T) {
	tests := []struct {
		template string
		want     []string
	}{
		{"{{name}}", []string{"name"}},
		{"{{name}} {{name}}", []string{"name"}},
		{"{{#if done}}{{task}}{{/if}}", []string{"task", "done"}},
		{`{{strip text "x"}}`, []string{"text"}},
		{`{{unknown text}}`, nil},
		{"plain text", nil},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			got := extractVariables(tt.template, testHelpers)
			if !equalSlices(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
