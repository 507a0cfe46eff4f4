// Package files opens the per-relation output files of file targets.
package files

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mmrzaf/dataz/internal/domain"
)

// Path returns the file holding relation name under dir.
func Path(dir, name, ext string) string {
	return filepath.Join(dir, name+"."+ext)
}

// Open opens the file of relation name for writing. Create and truncate
// replace any existing file; append keeps it. fresh reports whether the file
// is empty, in which case headers must be written.
func Open(dir, name, ext, mode string) (f *os.File, fresh bool, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, false, fmt.Errorf("create output directory: %w", err)
	}
	path := Path(dir, name, ext)

	flags := os.O_WRONLY | os.O_CREATE
	switch mode {
	case domain.TableModeCreate, domain.TableModeTruncate:
		flags |= os.O_TRUNC
	case domain.TableModeAppend:
		flags |= os.O_APPEND
	default:
		return nil, false, fmt.Errorf("unknown table mode: %s", mode)
	}

	f, err = os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, false, err
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, false, err
	}
	return f, st.Size() == 0, nil
}
