package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"github.com/ethereum/go-ethereum/log"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/urfave/cli.v1"

	"github.com/SamuelScheit/xlang/pkg/ast"
	"github.com/SamuelScheit/xlang/pkg/driver"
	"github.com/SamuelScheit/xlang/pkg/interpreter"
	"github.com/SamuelScheit/xlang/pkg/runtime"
)

const cliToolVersion = "0.1.0"

var errNoSource = errors.New("no source file given and no entry configured")

// diagnosticsKey stores the session's diagnostics in the app metadata so
// the final error is reported with the resolved color mode.
const diagnosticsKey = "diagnostics"

var (
	configFlag = cli.StringFlag{
		Name:  "config",
		Usage: "project config file (xlang.yml or xlang.toml)",
	}
	verbosityFlag = cli.StringFlag{
		Name:  "verbosity",
		Usage: "log level: trace, debug, info, warn, error, crit",
	}
	colorFlag = cli.StringFlag{
		Name:  "color",
		Usage: "colorize diagnostics: auto, always, never",
	}
	printResultFlag = cli.BoolFlag{
		Name:  "print-result",
		Usage: "print the value of the last statement",
	}
	maxDepthFlag = cli.IntFlag{
		Name:  "max-call-depth",
		Usage: "limit nested function calls (0 = unlimited)",
	}
	rawFlag = cli.BoolFlag{
		Name:  "raw",
		Usage: "dump the Go node structures instead of the prefix form",
	}
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	app := newApp(stdout, stderr)
	if err := app.Run(append([]string{app.Name}, args...)); err != nil {
		diag, ok := app.Metadata[diagnosticsKey].(*diagnostics)
		if !ok {
			diag = newDiagnostics(stderr, colorEnabled(driver.ColorAuto, stderr))
		}
		diag.reportError(err)
		return 1
	}
	return 0
}

func newApp(stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "xlang"
	app.Usage = "run xlang programs"
	app.Version = cliToolVersion
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Metadata = make(map[string]interface{})
	app.Flags = []cli.Flag{configFlag, verbosityFlag, colorFlag}
	app.ArgsUsage = "[file.xl]"
	app.Action = runAction
	app.Commands = []cli.Command{
		{
			Name:      "run",
			Usage:     "Lex, parse and evaluate a program",
			ArgsUsage: "[file.xl]",
			Flags:     []cli.Flag{printResultFlag, maxDepthFlag},
			Action:    runAction,
		},
		{
			Name:      "tokens",
			Usage:     "Print the token stream of a program",
			ArgsUsage: "<file.xl>",
			Action:    tokensAction,
		},
		{
			Name:      "ast",
			Usage:     "Print the syntax tree of a program",
			ArgsUsage: "<file.xl>",
			Flags:     []cli.Flag{rawFlag},
			Action:    astAction,
		},
		{
			Name:   "repl",
			Usage:  "Start an interactive session",
			Flags:  []cli.Flag{maxDepthFlag},
			Action: replAction,
		},
		{
			Name:  "version",
			Usage: "Print the version",
			Action: func(ctx *cli.Context) error {
				_, err := fmt.Fprintf(ctx.App.Writer, "xlang %s\n", cliToolVersion)
				return err
			},
		},
	}
	return app
}

// session holds what every command needs after flags and the project
// config have been combined.
type session struct {
	cfg    *driver.Config
	loader *driver.Loader
	stdout io.Writer
	diag   *diagnostics
}

func newSession(ctx *cli.Context, script string) (*session, error) {
	var (
		cfg *driver.Config
		err error
	)
	if path := ctx.GlobalString(configFlag.Name); path != "" {
		cfg, err = driver.LoadConfig(path)
	} else {
		start := "."
		if script != "" {
			start = filepath.Dir(script)
		}
		cfg, err = driver.ResolveConfig(start)
	}
	if err != nil {
		return nil, err
	}
	if v := ctx.GlobalString(verbosityFlag.Name); v != "" {
		cfg.Verbosity = v
	}
	if c := ctx.GlobalString(colorFlag.Name); c != "" {
		cfg.Color = driver.ColorMode(c)
	}
	if ctx.IsSet(maxDepthFlag.Name) {
		cfg.MaxCallDepth = ctx.Int(maxDepthFlag.Name)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stderr := ctx.App.ErrWriter
	useColor := colorEnabled(cfg.Color, stderr)
	if err := setupLogging(stderr, cfg.Verbosity, useColor); err != nil {
		return nil, err
	}
	loader, err := driver.NewLoader(cfg.CacheSize)
	if err != nil {
		return nil, err
	}
	log.Debug("Session configured", "config", cfg.Path, "verbosity", cfg.Verbosity, "color", cfg.Color)
	s := &session{
		cfg:    cfg,
		loader: loader,
		stdout: ctx.App.Writer,
		diag:   newDiagnostics(stderr, useColor),
	}
	ctx.App.Metadata[diagnosticsKey] = s.diag
	return s, nil
}

// sourcePath picks the script argument, falling back to the configured
// entry.
func (s *session) sourcePath(arg string) (string, error) {
	if arg != "" {
		return arg, nil
	}
	if entry := s.cfg.EntryPath(); entry != "" {
		return entry, nil
	}
	return "", errNoSource
}

func (s *session) load(ctx *cli.Context) (*driver.Program, error) {
	path, err := s.sourcePath(ctx.Args().First())
	if err != nil {
		return nil, err
	}
	program, err := s.loader.Load(path)
	if err != nil {
		return nil, err
	}
	for _, warning := range program.Warnings {
		s.diag.reportWarning(warning)
	}
	return program, nil
}

func (s *session) interpreterOptions(env *runtime.Environment) interpreter.Options {
	return interpreter.Options{
		Env:          env,
		Stdout:       s.stdout,
		Logger:       log.New("module", "interpreter"),
		MaxCallDepth: s.cfg.MaxCallDepth,
	}
}

func runAction(ctx *cli.Context) error {
	s, err := newSession(ctx, ctx.Args().First())
	if err != nil {
		return err
	}
	program, err := s.load(ctx)
	if err != nil {
		if errors.Is(err, errNoSource) {
			cli.ShowAppHelp(ctx)
		}
		return err
	}
	interp := interpreter.New(program.Statements, s.interpreterOptions(nil))
	result, err := interp.Run()
	if err != nil {
		return err
	}
	log.Info("Program executed", "path", program.Path, "elapsed", interp.Elapsed())
	if ctx.Bool(printResultFlag.Name) {
		_, err = fmt.Fprintln(s.stdout, runtime.Stringify(result))
	}
	return err
}

func tokensAction(ctx *cli.Context) error {
	s, err := newSession(ctx, ctx.Args().First())
	if err != nil {
		return err
	}
	program, err := s.load(ctx)
	if err != nil {
		return err
	}
	table := tablewriter.NewWriter(s.stdout)
	table.SetHeader([]string{"Pos", "Kind", "Lexeme", "Literal"})
	table.SetAutoFormatHeaders(false)
	for _, tok := range program.Tokens {
		literal := ""
		switch v := tok.Literal.(type) {
		case float64:
			literal = runtime.FormatNumber(v)
		case string:
			literal = strconv.Quote(v)
		}
		table.Append([]string{tok.Pos(), tok.Kind.String(), tok.Lexeme, literal})
	}
	table.Render()
	return nil
}

func astAction(ctx *cli.Context) error {
	s, err := newSession(ctx, ctx.Args().First())
	if err != nil {
		return err
	}
	program, err := s.load(ctx)
	if err != nil {
		return err
	}
	if ctx.Bool(rawFlag.Name) {
		dumper := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true, SortKeys: true}
		dumper.Fdump(s.stdout, program.Statements)
		return nil
	}
	_, err = fmt.Fprintln(s.stdout, ast.PrintProgram(program.Statements))
	return err
}
