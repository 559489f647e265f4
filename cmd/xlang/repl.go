package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/log"
	"github.com/peterh/liner"
	"gopkg.in/urfave/cli.v1"

	"github.com/SamuelScheit/xlang/pkg/driver"
	"github.com/SamuelScheit/xlang/pkg/interpreter"
	"github.com/SamuelScheit/xlang/pkg/parser"
	"github.com/SamuelScheit/xlang/pkg/runtime"
)

const replPrompt = "> "

// prompter is the line-editing surface the REPL needs from liner.
type prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// repl evaluates input lines against one environment shared by the whole
// session.
type repl struct {
	*session
	env *runtime.Environment
}

func newREPL(s *session) *repl {
	return &repl{session: s, env: runtime.NewEnvironment()}
}

func replAction(ctx *cli.Context) error {
	s, err := newSession(ctx, "")
	if err != nil {
		return err
	}
	historyPath, err := s.cfg.HistoryPath()
	if err != nil {
		return err
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	if f, err := os.Open(historyPath); err == nil {
		if _, err := line.ReadHistory(f); err != nil {
			log.Warn("Failed to read REPL history", "path", historyPath, "err", err)
		}
		f.Close()
	}

	fmt.Fprintf(s.stdout, "xlang %s, :help for commands\n", cliToolVersion)
	err = newREPL(s).loop(line)

	if mkErr := os.MkdirAll(filepath.Dir(historyPath), 0o755); mkErr != nil {
		log.Warn("Failed to create history directory", "path", historyPath, "err", mkErr)
		return err
	}
	if f, createErr := os.Create(historyPath); createErr == nil {
		if _, writeErr := line.WriteHistory(f); writeErr != nil {
			log.Warn("Failed to write REPL history", "path", historyPath, "err", writeErr)
		}
		f.Close()
	}
	return err
}

// loop reads lines until end of input, an abort or :quit.
func (r *repl) loop(p prompter) error {
	for {
		input, err := p.Prompt(replPrompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		p.AppendHistory(input)
		if quit := r.handle(input); quit {
			return nil
		}
	}
}

// handle processes one line and reports whether the session should end.
func (r *repl) handle(input string) bool {
	trimmed := strings.TrimSpace(input)
	if !strings.HasPrefix(trimmed, ":") {
		r.evaluate(input)
		return false
	}
	command, arg := trimmed, ""
	if idx := strings.IndexAny(trimmed, " \t"); idx >= 0 {
		command, arg = trimmed[:idx], strings.TrimSpace(trimmed[idx+1:])
	}
	switch command {
	case ":quit", ":q", ":exit":
		return true
	case ":help":
		fmt.Fprintln(r.stdout, ":env          list bindings")
		fmt.Fprintln(r.stdout, ":load <file>  run a file in this session")
		fmt.Fprintln(r.stdout, ":reset        drop all bindings")
		fmt.Fprintln(r.stdout, ":quit         leave")
	case ":env":
		for _, name := range r.env.Keys() {
			val, _ := r.env.Get(name)
			fmt.Fprintf(r.stdout, "%s = %s\n", name, formatResult(val))
		}
	case ":reset":
		r.env = runtime.NewEnvironment()
	case ":load":
		if arg == "" {
			r.diag.reportError(errors.New(":load needs a file path"))
			return false
		}
		program, err := r.loader.Load(arg)
		if err != nil {
			r.diag.reportError(err)
			return false
		}
		r.run(program)
	default:
		r.diag.reportError(fmt.Errorf("unknown command %s", command))
	}
	return false
}

// evaluate runs one line of source. A missing trailing semicolon is
// supplied so bare expressions can be typed directly.
func (r *repl) evaluate(input string) {
	program, err := r.loader.LoadSource("<repl>", input)
	var synErr *parser.SyntaxError
	if errors.As(err, &synErr) && synErr.AtEnd && !strings.HasSuffix(strings.TrimSpace(input), ";") {
		if retry, retryErr := r.loader.LoadSource("<repl>", input+";"); retryErr == nil {
			program, err = retry, nil
		}
	}
	if err != nil {
		r.diag.reportError(err)
		return
	}
	r.run(program)
}

func (r *repl) run(program *driver.Program) {
	for _, warning := range program.Warnings {
		r.diag.reportWarning(warning)
	}
	result, err := interpreter.New(program.Statements, r.interpreterOptions(r.env)).Run()
	if err != nil {
		r.diag.reportError(err)
		return
	}
	if result.Kind() != runtime.KindUndefined {
		fmt.Fprintln(r.stdout, formatResult(result))
	}
}

func formatResult(val runtime.Value) string {
	if str, ok := val.(runtime.StringValue); ok {
		return strconv.Quote(str.Val)
	}
	return runtime.Stringify(val)
}
