package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/SamuelScheit/xlang/pkg/driver"
	"github.com/SamuelScheit/xlang/pkg/interpreter"
	"github.com/SamuelScheit/xlang/pkg/lexer"
	"github.com/SamuelScheit/xlang/pkg/parser"
)

// colorEnabled decides whether output written to w gets ANSI colors.
func colorEnabled(mode driver.ColorMode, w io.Writer) bool {
	switch mode {
	case driver.ColorAlways:
		return true
	case driver.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// colorWriter routes terminal output through go-colorable so escape codes
// also render on Windows consoles.
func colorWriter(w io.Writer, useColor bool) io.Writer {
	if f, ok := w.(*os.File); ok && useColor {
		return colorable.NewColorable(f)
	}
	return w
}

// setupLogging installs the root log handler.
func setupLogging(w io.Writer, verbosity string, useColor bool) error {
	lvl, err := log.LvlFromString(verbosity)
	if err != nil {
		return fmt.Errorf("invalid verbosity %q: %w", verbosity, err)
	}
	handler := log.StreamHandler(colorWriter(w, useColor), log.TerminalFormat(useColor))
	log.Root().SetHandler(log.LvlFilterHandler(lvl, handler))
	return nil
}

type diagnostics struct {
	w       io.Writer
	errorfn func(a ...interface{}) string
	warnfn  func(a ...interface{}) string
}

func newDiagnostics(w io.Writer, useColor bool) *diagnostics {
	errColor := color.New(color.FgRed, color.Bold)
	warnColor := color.New(color.FgYellow)
	if useColor {
		errColor.EnableColor()
		warnColor.EnableColor()
	} else {
		errColor.DisableColor()
		warnColor.DisableColor()
	}
	return &diagnostics{
		w:       colorWriter(w, useColor),
		errorfn: errColor.SprintFunc(),
		warnfn:  warnColor.SprintFunc(),
	}
}

func (d *diagnostics) reportError(err error) {
	fmt.Fprintf(d.w, "%s %s\n", d.errorfn("error:"), describeError(err))
}

func (d *diagnostics) reportWarning(warning *parser.SyntaxError) {
	fmt.Fprintf(d.w, "%s %s\n", d.warnfn("warning:"), warning.Error())
}

// describeError renders a pipeline error. Lexical and syntax errors carry
// their own position prefix.
func describeError(err error) string {
	var (
		lexErr *lexer.LexicalError
		synErr *parser.SyntaxError
		rtErr  *interpreter.RuntimeError
	)
	switch {
	case errors.As(err, &lexErr):
		return lexErr.Error()
	case errors.As(err, &synErr):
		return synErr.Error()
	case errors.As(err, &rtErr):
		return "runtime error: " + rtErr.Message
	default:
		return err.Error()
	}
}
