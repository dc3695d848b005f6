package ops

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/randalmurphal/strkit/build"
	"github.com/randalmurphal/strkit/config"
	"github.com/randalmurphal/strkit/strval"
)

// Context is the execution context operations run in. It owns the allocator
// new values come from and the scratch buffer HTMLEncode reuses.
//
// A Context is not safe for concurrent use; give each goroutine its own.
type Context struct {
	Alloc   strval.Allocator
	Scratch *build.Scratch
	Logger  *slog.Logger

	level *slog.LevelVar
}

// NewContext builds a context from cfg. A nil logger gets a text logger on
// stderr whose level follows cfg.Log.Level, including after Reconfigure.
func NewContext(cfg config.Config, logger *slog.Logger) (*Context, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level := new(slog.LevelVar)
	level.Set(cfg.LogLevel())
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}

	alloc := strval.NewLimitAllocator(cfg.Allocator.LimitBytes, logger)
	sc, err := build.NewScratch(alloc, cfg.Scratch.InitialSize)
	if err != nil {
		return nil, fmt.Errorf("allocate scratch buffer: %w", err)
	}

	return &Context{
		Alloc:   alloc,
		Scratch: sc,
		Logger:  logger,
		level:   level,
	}, nil
}

// Level returns the configured log level. It only governs the logger when
// NewContext created that logger.
func (c *Context) Level() slog.Level {
	if c.level == nil {
		return slog.LevelInfo
	}
	return c.level.Level()
}

// Reconfigure applies a new allocator limit, scratch size and log level.
// Values created earlier keep the allocator they came from. The scratch
// buffer is rebuilt on the new allocator; if that fails nothing changes.
func (c *Context) Reconfigure(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	alloc := strval.NewLimitAllocator(cfg.Allocator.LimitBytes, c.Logger)
	sc, err := build.NewScratch(alloc, cfg.Scratch.InitialSize)
	if err != nil {
		return fmt.Errorf("allocate scratch buffer: %w", err)
	}
	if c.Scratch != nil {
		c.Scratch.Release()
	}
	c.Alloc = alloc
	c.Scratch = sc
	if c.level != nil {
		c.level.Set(cfg.LogLevel())
	}
	c.Logger.Debug("context reconfigured",
		slog.Int("limit_bytes", cfg.Allocator.LimitBytes),
		slog.String("log_level", cfg.Log.Level))
	return nil
}

// Close releases the scratch buffer.
func (c *Context) Close() {
	if c.Scratch != nil {
		c.Scratch.Release()
		c.Scratch = nil
	}
}

// NewString copies s into a value drawn from the context's allocator.
func (c *Context) NewString(s string) (*strval.Value, error) {
	v, err := strval.FromString(c.Alloc, s)
	if err != nil {
		return nil, strval.NoMemory("string")
	}
	return v, nil
}

// Call runs the named operation. See the package-level Call.
func (c *Context) Call(name string, args ...*strval.Value) (Result, error) {
	return Call(c, name, args...)
}

// defaultContext is used when Call receives a nil context.
func defaultContext() *Context {
	return &Context{Alloc: strval.Heap{}, Logger: slog.Default()}
}
