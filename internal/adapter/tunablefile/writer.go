package tunablefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/couchcryptid/storm-controller/internal/domain"
)

// ErrFileExists is returned by Write when the target exists and overwrite is off.
var ErrFileExists = errors.New("tunables file already exists")

// Encode writes t as key:value lines, one per tunable, in file order.
func Encode(w io.Writer, t domain.Tunables) error {
	bw := bufio.NewWriter(w)
	for _, f := range t.Fields() {
		if _, err := fmt.Fprintf(bw, "%s:%s\n", f.Key, strconv.FormatFloat(f.Value, 'g', -1, 64)); err != nil {
			return fmt.Errorf("encode %s: %w", f.Key, err)
		}
	}
	return bw.Flush()
}

// Write creates the tunables file at path, making parent directories as needed.
func Write(path string, t domain.Tunables, overwrite bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create tunables dir: %w", err)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", ErrFileExists, path)
		}
		return fmt.Errorf("open tunables file: %w", err)
	}

	if err := Encode(f, t); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
