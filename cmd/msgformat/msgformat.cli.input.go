package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// readInput reads content from a file or stdin
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == InputSourceStdin {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(path)
}

// writeOutput writes content to a file or stdout
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == FlagDefaultOutput || path == "" {
		_, err := stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, FilePermissions)
}

// loadData decodes the render data. A data file wins over an inline JSON
// string; YAML is chosen by file extension.
func loadData(jsonStr, filePath string) (map[string]any, error) {
	result := make(map[string]any)

	if filePath != "" {
		raw, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf(FmtWrapError, ErrMsgReadFileFailed, err)
		}

		switch strings.ToLower(filepath.Ext(filePath)) {
		case ExtYAML, ExtYML:
			if err := yaml.Unmarshal(raw, &result); err != nil {
				return nil, fmt.Errorf(FmtWrapError, ErrMsgInvalidYAML, err)
			}
		default:
			if err := json.Unmarshal(raw, &result); err != nil {
				return nil, fmt.Errorf(FmtWrapError, ErrMsgInvalidJSON, err)
			}
		}
		return result, nil
	}

	if jsonStr == "" {
		return result, nil
	}

	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return nil, fmt.Errorf(FmtWrapError, ErrMsgInvalidJSON, err)
	}
	return result, nil
}
