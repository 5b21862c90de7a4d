package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/runoshun/deputui/internal/domain"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// errTerminalInput is returned when JSON is expected on stdin but stdin is a terminal.
var errTerminalInput = errors.New("no input provided (stdin is a terminal); use --file or pipe JSON input")

// jsonInput reads a JSON document from --file or stdin.
type jsonInput[T any] struct {
	file string
}

// bind registers the --file flag on cmd.
func (in *jsonInput[T]) bind(cmd *cobra.Command, usage string) {
	cmd.Flags().StringVarP(&in.file, "file", "f", "", usage+" (reads from stdin if not provided)")
}

// read decodes the document. stdin is used when no file was given or the file is "-".
func (in *jsonInput[T]) read(stdin io.Reader) (T, error) {
	var value T
	var reader io.Reader

	if in.file != "" && in.file != "-" {
		f, err := os.Open(in.file)
		if err != nil {
			return value, fmt.Errorf("open file: %w", err)
		}
		defer func() { _ = f.Close() }()
		reader = f
	} else {
		if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return value, errTerminalInput
		}
		reader = stdin
	}

	if err := json.NewDecoder(reader).Decode(&value); err != nil {
		return value, fmt.Errorf("%w: decode JSON: %w", domain.ErrParse, err)
	}
	return value, nil
}
