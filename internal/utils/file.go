package utils

import (
	"fmt"
	"io"
	"os"
)

// WithTempFile writes payload to a uniquely named file in dir, reopens it for
// reading and passes it to fn. The file is closed and removed when fn returns,
// whether or not fn or any earlier step failed.
func WithTempFile(dir, pattern string, payload io.Reader, fn func(f *os.File) error) (err error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	tmp, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		if rmErr := os.Remove(tmpName); rmErr != nil && !os.IsNotExist(rmErr) && err == nil {
			err = fmt.Errorf("failed to remove temp file: %w", rmErr)
		}
	}()

	if _, err := io.Copy(tmp, payload); err != nil {
		return err
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return err
	}

	return fn(tmp)
}
