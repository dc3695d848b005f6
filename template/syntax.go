package template

import (
	"regexp"
	"strings"
)

// goTemplateKeywords are Go template reserved words that should not be
// converted to variable references.
var goTemplateKeywords = map[string]bool{
	"else":     true,
	"end":      true,
	"if":       true,
	"range":    true,
	"with":     true,
	"define":   true,
	"template": true,
	"block":    true,
}

var (
	ifPattern     = regexp.MustCompile(`\{\{#if\s+(\w+)\}\}`)
	eachPattern   = regexp.MustCompile(`\{\{#each\s+(\w+)\}\}`)
	varPattern    = regexp.MustCompile(`\{\{([a-zA-Z_]\w*)\}\}`)
	helperPattern = regexp.MustCompile(`\{\{([a-zA-Z_]\w*)\s+([^{}]+)\}\}`)
	blockPattern  = regexp.MustCompile(`\{\{#(?:if|each)\s+([a-zA-Z_]\w*)\}\}`)
)

// convertSyntax converts Handlebars-like syntax to Go template syntax.
//
// Conversions:
//   - {{variable}} -> {{.variable}}
//   - {{#if x}}...{{/if}} -> {{if .x}}...{{end}}
//   - {{#each items}}...{{/each}} -> {{range .items}}...{{end}}
//   - {{helper arg1 arg2}} -> {{helper .arg1 .arg2}} for names in helpers
func convertSyntax(input string, helpers []string) string {
	result := ifPattern.ReplaceAllString(input, "{{if .$1}}")
	result = strings.ReplaceAll(result, "{{/if}}", "{{end}}")
	result = eachPattern.ReplaceAllString(result, "{{range .$1}}")
	result = strings.ReplaceAll(result, "{{/each}}", "{{end}}")

	result = varPattern.ReplaceAllStringFunc(result, func(match string) string {
		name := match[2 : len(match)-2]
		if goTemplateKeywords[name] {
			return match
		}
		return "{{." + name + "}}"
	})

	return convertHelperCalls(result, helpers)
}

// convertHelperCalls rewrites the arguments of calls to known helpers.
// {{helper arg1 "lit"}} -> {{helper .arg1 "lit"}}
func convertHelperCalls(input string, helpers []string) string {
	known := make(map[string]bool, len(helpers))
	for _, h := range helpers {
		known[h] = true
	}

	return helperPattern.ReplaceAllStringFunc(input, func(match string) string {
		sub := helperPattern.FindStringSubmatch(match)
		if !known[sub[1]] {
			return match
		}
		return "{{" + sub[1] + " " + convertArguments(strings.TrimSpace(sub[2])) + "}}"
	})
}

// convertArguments prefixes bare identifiers with a dot. Numbers, quoted
// strings, booleans and expressions already starting with a dot are left
// alone.
func convertArguments(args string) string {
	parts := splitArguments(args)
	for i, part := range parts {
		if strings.HasPrefix(part, ".") || isNumber(part) || isQuotedString(part) {
			continue
		}
		if part == "true" || part == "false" {
			continue
		}
		if isValidIdentifier(part) {
			parts[i] = "." + part
		}
	}
	return strings.Join(parts, " ")
}

// splitArguments splits on spaces outside of quotes.
func splitArguments(args string) []string {
	var parts []string
	var current strings.Builder
	var quote rune

	flush := func() {
		if current.Len() > 0 {
			parts = append(parts, current.String())
			current.Reset()
		}
	}

	for _, ch := range args {
		switch {
		case quote == 0 && (ch == '"' || ch == '`'):
			quote = ch
			current.WriteRune(ch)
		case quote != 0 && ch == quote:
			quote = 0
			current.WriteRune(ch)
		case quote == 0 && ch == ' ':
			flush()
		default:
			current.WriteRune(ch)
		}
	}
	flush()

	return parts
}

// isNumber checks if a string is an integer or decimal, optionally negative.
func isNumber(s string) bool {
	if s == "" || s == "-" {
		return false
	}
	for i, ch := range s {
		if (ch == '-' && i == 0) || ch == '.' {
			continue
		}
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}

// isQuotedString checks if a string is wrapped in matching double quotes or
// backquotes, the two string literal forms Go templates accept.
func isQuotedString(s string) bool {
	if len(s) < 2 {
		return false
	}
	first, last := s[0], s[len(s)-1]
	return first == last && (first == '"' || first == '`')
}

// isValidIdentifier checks if a string is a valid variable name.
func isValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, ch := range s {
		switch {
		case ch == '_', ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z':
		case ch >= '0' && ch <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// extractVariables returns the variable names a template refers to, in
// order of first appearance and without duplicates.
func extractVariables(templateStr string, helpers []string) []string {
	seen := make(map[string]bool)
	var result []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			result = append(result, name)
		}
	}

	for _, match := range varPattern.FindAllStringSubmatch(templateStr, -1) {
		if !goTemplateKeywords[match[1]] {
			add(match[1])
		}
	}

	for _, match := range blockPattern.FindAllStringSubmatch(templateStr, -1) {
		add(match[1])
	}

	known := make(map[string]bool, len(helpers))
	for _, h := range helpers {
		known[h] = true
	}
	for _, match := range helperPattern.FindAllStringSubmatch(templateStr, -1) {
		if !known[match[1]] {
			continue
		}
		for _, arg := range splitArguments(strings.TrimSpace(match[2])) {
			if arg == "true" || arg == "false" {
				continue
			}
			if isValidIdentifier(arg) {
				add(arg)
			}
		}
	}

	return result
}
