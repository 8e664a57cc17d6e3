package benchsheet

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/models"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/xlsx"
)

// WriteFile writes pkg to path atomically: the archive goes to a temporary
// file in the target directory which is then renamed into place. Missing
// parent directories are created.
func WriteFile(path string, pkg *xlsx.Package) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".benchsheet-*.xlsx")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = pkg.WriteTo(tmp); err != nil {
		return fmt.Errorf("failed to write package: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync package: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close package: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move package into place: %w", err)
	}
	return nil
}

// Generate builds, renders and writes the report for payload to path.
// Nothing is written when options are invalid.
func Generate(path string, payload models.Payload, opts Options) (*models.Report, error) {
	report, err := Build(payload, opts)
	if err != nil {
		return nil, err
	}
	pkg, err := Assemble(report, opts)
	if err != nil {
		return nil, err
	}
	if err := WriteFile(path, pkg); err != nil {
		return nil, err
	}
	return report, nil
}
