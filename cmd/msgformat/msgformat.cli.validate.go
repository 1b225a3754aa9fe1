package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/itsatony/go-cuserr"
	"github.com/itsatony/go-msgformat"
)

// validateCmd checks template files without rendering them
type validateCmd struct {
	Files  []string `arg:"" help:"Template files (use '-' for stdin)"`
	Format string   `help:"Output format: text, json" short:"F" enum:"text,json" default:"text"`
}

// validationOutput represents JSON output for validation
type validationOutput struct {
	Valid bool                   `json:"valid"`
	Files []validationFileOutput `json:"files"`
}

type validationFileOutput struct {
	File   string `json:"file"`
	Valid  bool   `json:"valid"`
	Error  string `json:"error,omitempty"`
	Line   int    `json:"line,omitempty"`
	Column int    `json:"column,omitempty"`
}

// Run executes the validate command.
func (c *validateCmd) Run(env *cliEnv) error {
	mf, err := msgformat.New(msgformat.WithLogger(env.logger))
	if err != nil {
		return fail(ExitCodeError, ErrMsgEngineFailed, err)
	}

	output := validationOutput{
		Valid: true,
		Files: make([]validationFileOutput, 0, len(c.Files)),
	}

	for _, path := range c.Files {
		raw, err := readInput(path, env.stdin)
		if err != nil {
			return fail(ExitCodeInputError, ErrMsgReadFileFailed, err)
		}

		result := validationFileOutput{File: displayName(path), Valid: true}
		if err := mf.Validate(string(raw)); err != nil {
			result.Valid = false
			result.Error = err.Error()
			result.Line, result.Column = errorPosition(err)
			output.Valid = false
		}
		output.Files = append(output.Files, result)
	}

	if c.Format == OutputFormatJSON {
		if err := outputValidationJSON(output, env.stdout); err != nil {
			return err
		}
	} else {
		outputValidationText(output, env.stdout)
	}

	if !output.Valid {
		return &exitError{code: ExitCodeValidationError}
	}
	return nil
}

func outputValidationText(output validationOutput, stdout io.Writer) {
	valid := color.New(color.FgGreen)
	invalid := color.New(color.FgRed)

	failed := 0
	for _, f := range output.Files {
		if f.Valid {
			_, _ = valid.Fprintf(stdout, ValidationTextValid+FmtNewline, f.File)
			continue
		}
		failed++
		_, _ = invalid.Fprintf(stdout, ValidationTextInvalid+FmtNewline, f.File, f.Error)
	}

	if failed > 0 {
		_, _ = fmt.Fprintf(stdout, ValidationTextSummary+FmtNewline, failed, len(output.Files))
	}
}

func outputValidationJSON(output validationOutput, stdout io.Writer) error {
	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fail(ExitCodeError, ErrMsgJSONMarshalFailed, err)
	}
	_, _ = fmt.Fprintln(stdout, string(jsonBytes))
	return nil
}

// errorPosition reads the line and column metadata of a parse error
func errorPosition(err error) (line, column int) {
	var customErr *cuserr.CustomError
	if !errors.As(err, &customErr) {
		return 0, 0
	}
	if v, ok := customErr.GetMetadata(msgformat.MetaKeyLine); ok {
		line, _ = strconv.Atoi(v)
	}
	if v, ok := customErr.GetMetadata(msgformat.MetaKeyColumn); ok {
		column, _ = strconv.Atoi(v)
	}
	return line, column
}

func displayName(path string) string {
	if path == InputSourceStdin {
		return FmtStdinName
	}
	return path
}
