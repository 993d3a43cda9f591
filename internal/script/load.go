package script

import (
	"fmt"

	"github.com/spf13/afero"

	"nncalc/internal/domain"
)

// Load reads and parses the script at path.
func Load(fs afero.Fs, path string) ([]domain.Step, error) {
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	steps, err := Parse(string(b))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return steps, nil
}
