// Package writer persists rendered modules: either straight to the target
// .py file, or as a unified diff against whatever is already on disk.
package writer

import (
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/pycodegen/pygen/generator"
	godiffpatch "github.com/sourcegraph/go-diff-patch"
)

// TargetPath is the file a module renders into: <output>/<name>.py.
func TargetPath(m *generator.Module) string {
	return filepath.Join(m.OutputLocation(), m.Name()+".py")
}

// Write renders the module and writes it to its target path, which is
// returned.
func Write(m *generator.Module) (string, error) {
	path := TargetPath(m)
	if err := os.WriteFile(path, []byte(m.Render()), 0644); err != nil {
		return "", errors.Wrapf(err, "writing module %s", m.Name())
	}
	return path, nil
}

// WriteDiff renders the module and appends a unified diff between the
// existing target file and the new rendering to diffFile. The target file
// itself is left untouched; a missing target diffs against empty content.
func WriteDiff(m *generator.Module, diffFile string) error {
	target := TargetPath(m)
	original, err := os.ReadFile(target)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Wrapf(err, "reading %s", target)
	}

	f, err := os.OpenFile(diffFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, "opening diff file %s", diffFile)
	}
	defer f.Close()

	patch := godiffpatch.GeneratePatch(m.Name()+".py", string(original), m.Render())
	if _, err := f.WriteString(patch); err != nil {
		return errors.Wrapf(err, "writing diff file %s", diffFile)
	}

	log.Printf("changes written to %s", diffFile)
	return nil
}
