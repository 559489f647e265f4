// Package interpreter evaluates xlang programs by walking their statement
// trees directly.
package interpreter

import (
	"io"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"

	"github.com/SamuelScheit/xlang/pkg/ast"
	"github.com/SamuelScheit/xlang/pkg/runtime"
)

// Options configures an Interpreter. The zero value evaluates against a
// fresh environment holding the default builtins and prints to os.Stdout.
type Options struct {
	// Env is the top-level environment. It is used as is, so a caller can
	// share one environment across several runs.
	Env *runtime.Environment

	// Builtins are host capabilities bound into Env when not already bound.
	// Nil selects DefaultBuiltins.
	Builtins map[string]runtime.Value

	Stdout io.Writer
	Logger log.Logger

	// MaxCallDepth bounds nested user function calls. Zero means unlimited.
	MaxCallDepth int
}

// Interpreter runs one program against one top-level environment.
type Interpreter struct {
	program  []ast.Statement
	global   *runtime.Environment
	stdout   io.Writer
	log      log.Logger
	maxDepth int

	depth   int
	elapsed time.Duration
}

// New prepares program for evaluation.
func New(program []ast.Statement, opts Options) *Interpreter {
	env := opts.Env
	if env == nil {
		env = runtime.NewEnvironment()
	}
	builtins := opts.Builtins
	if builtins == nil {
		builtins = DefaultBuiltins()
	}
	for name, value := range builtins {
		if !env.Has(name) {
			env.Define(name, value)
		}
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Root()
	}
	return &Interpreter{
		program:  program,
		global:   env,
		stdout:   stdout,
		log:      logger,
		maxDepth: opts.MaxCallDepth,
	}
}

// Evaluate runs program against env (nil for a fresh one) with default
// options and returns the value of the last executed statement.
func Evaluate(program []ast.Statement, env *runtime.Environment) (runtime.Value, error) {
	return New(program, Options{Env: env}).Run()
}

// GlobalEnvironment returns the top-level environment.
func (i *Interpreter) GlobalEnvironment() *runtime.Environment {
	return i.global
}

// Elapsed reports the wall-clock duration of the last Run.
func (i *Interpreter) Elapsed() time.Duration {
	return i.elapsed
}

// Run executes each top-level statement in order and returns the value of
// the last one. An empty program yields undefined.
func (i *Interpreter) Run() (runtime.Value, error) {
	start := time.Now()
	defer func() {
		i.elapsed = time.Since(start)
		i.log.Debug("Program finished", "statements", len(i.program), "elapsed", common.PrettyDuration(i.elapsed))
	}()
	return i.evaluateStatements(i.program, i.global)
}

func (i *Interpreter) evaluateStatements(body []ast.Statement, env *runtime.Environment) (runtime.Value, error) {
	result := runtime.Undefined
	for _, stmt := range body {
		val, err := i.evaluateStatement(stmt, env)
		if err != nil {
			return nil, err
		}
		result = val
	}
	return result, nil
}
