// Package state defines shared program state.
package state

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"

	"mdflow/common"
	"mdflow/config"
	"mdflow/interpret"
	"mdflow/theme"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	// used by layout subcommand
	Overwrite     bool
	NoDirs        bool
	Transliterate bool
	Format        common.OutputFmt
	Parallel      int
	CodePage      encoding.Encoding

	start         time.Time
	restoreStdLog func()
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, &LocalEnv{start: time.Now()})
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

// Interpreter builds interpreter out of configured theme. Parallel set from
// command line takes precedence over configuration.
func (e *LocalEnv) Interpreter() (*interpret.Interpreter, error) {
	th := theme.DarkDefault()
	parallel := e.Parallel
	if e.Cfg != nil {
		var err error
		if th, err = theme.FromConfig(&e.Cfg.Theme); err != nil {
			return nil, err
		}
		if parallel == 0 {
			parallel = e.Cfg.Interpreter.Parallel
		}
	}
	return interpret.New(th, interpret.WithLogger(e.Log), interpret.WithParallel(parallel)), nil
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}
