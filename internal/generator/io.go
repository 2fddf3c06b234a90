package generator

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/term"
)

// IsTerminal reports whether r is an interactive terminal.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == Stdio {
		if IsTerminal(stdin) {
			return nil, fmt.Errorf("%w: refusing to read input from an interactive terminal", ErrInvalidArguments)
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read stdin: %w", ErrInputRead, err)
		}
		return data, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: file path %q does not exist", ErrInputRead, path)
		}
		return nil, fmt.Errorf("%w: %w", ErrInputRead, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: file path %q is not a file", ErrInputRead, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read input file: %w", ErrInputRead, err)
	}
	return data, nil
}

// writeOutput writes data to path in one step: readers never see a
// partially written header. An existing file is only replaced when
// opts.Force is set or opts.Confirm agrees; replaced reports whether one was.
func writeOutput(path string, data []byte, opts Options) (replaced bool, err error) {
	if path == Stdio {
		if _, err := opts.Stdout.Write(data); err != nil {
			return false, fmt.Errorf("%w: failed to write stdout: %w", ErrOutputWrite, err)
		}
		return false, nil
	}

	_, statErr := os.Lstat(path)
	exists := statErr == nil
	force := opts.Force
	if exists && !force {
		if opts.Confirm == nil || !opts.Confirm(path) {
			return false, fmt.Errorf("%w: %s", ErrOutputExists, path)
		}
		force = true
	}

	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	if err := writeNew(tmp, data); err != nil {
		return false, fmt.Errorf("%w: %w", ErrOutputWrite, err)
	}
	defer os.Remove(tmp)

	if force {
		if err := os.Rename(tmp, path); err != nil {
			return false, fmt.Errorf("%w: %w", ErrOutputWrite, err)
		}
		return exists, nil
	}

	// Link fails if path appeared since the check above.
	err = os.Link(tmp, path)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, fs.ErrExist):
		return false, fmt.Errorf("%w: %s", ErrOutputExists, path)
	}

	slog.Debug("hard link unavailable, writing output directly", "path", path, "error", err)
	if err := writeNew(path, data); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, fmt.Errorf("%w: %s", ErrOutputExists, path)
		}
		return false, fmt.Errorf("%w: %w", ErrOutputWrite, err)
	}
	return false, nil
}

// writeNew creates path, failing if it exists, and writes data to it.
func writeNew(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}
