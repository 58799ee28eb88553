package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	apperrors "github.com/mindweave/mindweave/pkg/errors"
)

// readOutline loads outline text from a file, or from stdin when path is "-".
// The text is validated before it is handed to the pipeline.
func readOutline(path string) (string, error) {
	var data []byte
	var err error

	if path == "-" {
		data, err = io.ReadAll(io.LimitReader(os.Stdin, apperrors.MaxOutlineBytes+1))
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return "", apperrors.New(apperrors.ErrCodeFileNotFound, "outline file not found: %s", path)
			}
			return "", fmt.Errorf("read %s: %w", path, err)
		}
	}

	text := string(data)
	if err := apperrors.ValidateOutlineText(text); err != nil {
		return "", err
	}
	return text, nil
}

// writeOutput writes data to path, creating parent directories as needed.
func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
