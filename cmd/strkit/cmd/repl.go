package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/strkit/config"
	"github.com/randalmurphal/strkit/ops"
)

const prompt = "strkit> "

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Run operations interactively",
	Long: `Reads one call per line: the operation name followed by its arguments.
Arguments containing spaces or escapes use Go double-quoted syntax.

With --config, the file is watched and changes apply to the next call.

Examples:
  strkit> upper hello
  HELLO
  strkit> strip "  padded  " " "
  padded
  strkit> htmlencode "<b>"
  &lt;b&gt;`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	sigCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	ctx, err := newContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	// The reader exits at end of input or at its next line once sigCtx is
	// done. A Read already blocked on a terminal cannot be interrupted and
	// lasts until the process exits.
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-sigCtx.Done():
				return
			}
		}
	}()

	var updates <-chan config.Update
	if cfgFile != "" {
		updates = config.Watch(sigCtx, cfgFile)
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, prompt)
	for {
		select {
		case <-sigCtx.Done():
			fmt.Fprintln(out)
			return nil

		case u, ok := <-updates:
			if !ok {
				updates = nil
				continue
			}
			applyUpdate(ctx, u)

		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				return nil
			}
			if quit := evalLine(out, ctx, line); quit {
				return nil
			}
			fmt.Fprint(out, prompt)
		}
	}
}

// applyUpdate reconfigures ctx from a watched config change. A broken file
// keeps the previous settings.
func applyUpdate(ctx *ops.Context, u config.Update) {
	if u.Err != nil {
		ctx.Logger.Warn("config reload failed", slog.String("path", cfgFile), slog.Any("error", u.Err))
		return
	}
	cfg := u.Config
	if verbose {
		cfg.Log.Level = "debug"
	}
	if err := ctx.Reconfigure(cfg); err != nil {
		ctx.Logger.Warn("config rejected", slog.String("path", cfgFile), slog.Any("error", err))
		return
	}
	ctx.Logger.Info("config reloaded", slog.String("path", cfgFile))
}

// evalLine runs one input line and reports whether the session should end.
func evalLine(out io.Writer, ctx *ops.Context, line string) bool {
	fields, err := splitLine(line)
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return false
	}
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprintln(out, strings.Join(ops.Available(), " "))
		return false
	}

	res, err := callOp(ctx, fields[0], fields[1:])
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return false
	}
	fmt.Fprintln(out, res)
	return false
}

// splitLine splits on spaces and tabs. A field starting with a double quote
// runs to the matching unescaped quote and is unquoted with Go rules.
func splitLine(line string) ([]string, error) {
	var fields []string
	i := 0
	for i < len(line) {
		switch c := line[i]; {
		case c == ' ' || c == '\t':
			i++
		case c == '"':
			end := i + 1
			for end < len(line) && line[end] != '"' {
				if line[end] == '\\' {
					end++
				}
				end++
			}
			if end >= len(line) {
				return nil, fmt.Errorf("unterminated quote")
			}
			s, err := strconv.Unquote(line[i : end+1])
			if err != nil {
				return nil, fmt.Errorf("bad quoted argument %s: %w", line[i:end+1], err)
			}
			fields = append(fields, s)
			i = end + 1
		default:
			end := i
			for end < len(line) && line[end] != ' ' && line[end] != '\t' {
				end++
			}
			fields = append(fields, line[i:end])
			i = end
		}
	}
	return fields, nil
}
