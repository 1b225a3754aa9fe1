package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// CLI is the top-level command-line interface for msgformat.
type CLI struct {
	Verbose bool `help:"Log compiler activity to stderr" short:"v"`

	Render   renderCmd   `cmd:"" help:"Render a message template with data"`
	Validate validateCmd `cmd:"" help:"Check message templates for syntax errors"`
	Version  versionCmd  `cmd:"" help:"Show version information"`
}

// cliEnv is bound into every command's Run method.
type cliEnv struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger *zap.Logger
}

// exitError carries the process exit code for a failed command. A nil err
// means the command already reported the problem.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func fail(code int, msg string, err error) error {
	if err == nil {
		return &exitError{code: code, err: errors.New(msg)}
	}
	return &exitError{code: code, err: fmt.Errorf(FmtWrapError, msg, err)}
}

// kongExit is panicked by the kong exit hook and recovered in run.
type kongExit int

func main() {
	exitCode := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	os.Exit(exitCode)
}

// run is the main entry point for the CLI, separated for testing
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) (code int) {
	if len(args) == 0 {
		args = []string{"--help"}
	}

	defer func() {
		if r := recover(); r != nil {
			exit, ok := r.(kongExit)
			if !ok {
				panic(r)
			}
			code = int(exit)
		}
	}()

	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name(CLIName),
		kong.Description(CLIDescription),
		kong.Writers(stdout, stderr),
		kong.Exit(func(c int) { panic(kongExit(c)) }),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
	)
	if err != nil {
		printError(stderr, err)
		return ExitCodeError
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		printError(stderr, err)
		return ExitCodeUsageError
	}

	logger := newLogger(cli.Verbose, stderr)
	defer func() { _ = logger.Sync() }()

	env := &cliEnv{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		logger: logger,
	}

	if err := ktx.Run(env); err != nil {
		var exit *exitError
		if errors.As(err, &exit) {
			if exit.err != nil {
				printError(stderr, exit.err)
			}
			return exit.code
		}
		printError(stderr, err)
		return ExitCodeError
	}

	return ExitCodeSuccess
}

// newLogger returns a development logger writing to stderr when verbose,
// otherwise a no-op logger
func newLogger(verbose bool, stderr io.Writer) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}

	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(stderr), zapcore.DebugLevel)
	return zap.New(core, zap.Development())
}

func printError(w io.Writer, err error) {
	_, _ = color.New(color.FgRed, color.Bold).Fprint(w, FmtErrorPrefix)
	_, _ = fmt.Fprintln(w, err)
}
