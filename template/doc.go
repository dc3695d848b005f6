// Package template renders text templates whose helper functions are the
// strkit string operations.
//
// The engine accepts Go template syntax and a simplified Handlebars-like
// syntax that is converted before execution.
//
// # Syntax
//
// Simple variables use double braces:
//
//	Hello, {{name}}!
//
// Conditionals use #if and /if:
//
//	{{#if urgent}}URGENT: {{/if}}{{title}}
//
// Iteration uses #each and /each:
//
//	{{#each items}}{{.}} {{/each}}
//
// Helpers are called with arguments; bare words become variables:
//
//	{{strip title "-"}}
//	{{htmlencode body}}
//
// # Helpers
//
// Every operation registered in package ops is a helper with the same name
// and argument order: concat, lstrip, rstrip, strip, trim, startswith,
// endswith, find, upper, lower, htmlencode, isdigit, isalpha, isspace,
// isalnum. Helpers take strings and return a string, an int (find) or a bool.
// A failing operation aborts rendering with ErrExecute.
//
// In a pipeline the piped value becomes the last argument, so
// {{.s | strip "-"}} strips s from "-" rather than the other way round. Use
// the call form for two-argument helpers.
//
// # Example
//
//	ctx, _ := ops.NewContext(config.Default(), nil)
//	engine := template.NewEngine(ctx)
//	out, err := engine.Render("<h1>{{htmlencode title}}</h1>", map[string]any{"title": "a<b"})
//	// out: "<h1>a&lt;b</h1>"
package template
