package main

import (
	"errors"
	"io"

	"github.com/itsatony/go-msgformat"
)

// renderCmd compiles one template and renders it with the given data
type renderCmd struct {
	Template string   `help:"Template file (use '-' for stdin)" short:"t" xor:"source"`
	Message  string   `help:"Template source given inline" short:"m" xor:"source"`
	Data     string   `help:"JSON data string" short:"d"`
	DataFile string   `help:"JSON or YAML data file" short:"f"`
	Locale   []string `help:"Locale, repeatable as a fallback list" short:"l"`
	Output   string   `help:"Output file" short:"o" default:"-"`
}

// Run executes the render command.
func (c *renderCmd) Run(env *cliEnv) error {
	source, err := c.source(env.stdin)
	if err != nil {
		return err
	}

	data, err := loadData(c.Data, c.DataFile)
	if err != nil {
		return &exitError{code: ExitCodeInputError, err: err}
	}

	mf, err := msgformat.New(msgformat.WithLogger(env.logger))
	if err != nil {
		return fail(ExitCodeError, ErrMsgEngineFailed, err)
	}

	render, err := mf.Compile(source, c.Locale...)
	if err != nil {
		if msgformat.IsParseError(err) {
			return fail(ExitCodeValidationError, ErrMsgCompileFailed, err)
		}
		return fail(ExitCodeUsageError, ErrMsgCompileFailed, err)
	}

	result, err := render(data)
	if err != nil {
		return fail(ExitCodeError, ErrMsgRenderFailed, err)
	}

	if err := writeOutput(c.Output, []byte(result), env.stdout); err != nil {
		return fail(ExitCodeError, ErrMsgWriteOutputFailed, err)
	}

	return nil
}

// source returns the template text from --message or --template
func (c *renderCmd) source(stdin io.Reader) (string, error) {
	if c.Message != "" {
		return c.Message, nil
	}
	if c.Template == "" {
		return "", &exitError{code: ExitCodeUsageError, err: errors.New(ErrMsgMissingTemplate)}
	}

	raw, err := readInput(c.Template, stdin)
	if err != nil {
		return "", fail(ExitCodeInputError, ErrMsgReadFileFailed, err)
	}
	return string(raw), nil
}
