package script

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"nncalc/internal/domain"
)

// Entry records one applied step and the state it produced.
type Entry struct {
	Step  domain.Step     `json:"step"`
	State domain.Snapshot `json:"state"`
}

// Transcript is the record of one script run.
type Transcript struct {
	Source  string  `json:"source,omitempty"`
	Entries []Entry `json:"entries"`
}

// Final returns the state after the last step, if any ran.
func (t Transcript) Final() (domain.Snapshot, bool) {
	if len(t.Entries) == 0 {
		return domain.Snapshot{}, false
	}
	return t.Entries[len(t.Entries)-1].State, true
}

// WriteTranscript writes t as indented JSON via a temp file, then atomically
// replaces path.
func WriteTranscript(fs afero.Fs, path string, t Transcript) error {
	b, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("encode transcript: %w", err)
	}
	return writeFile(fs, path, b, 0o644)
}

// ReadTranscript loads a transcript written by WriteTranscript.
func ReadTranscript(fs afero.Fs, path string) (Transcript, error) {
	var t Transcript
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return t, err
	}
	if err := json.Unmarshal(b, &t); err != nil {
		return t, fmt.Errorf("decode transcript %s: %w", path, err)
	}
	return t, nil
}

func writeFile(fs afero.Fs, path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := afero.TempFile(fs, dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// Best-effort cleanup if anything fails before rename.
	defer func() { _ = fs.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := fs.Chmod(tmp, mode); err != nil {
		return err
	}
	return fs.Rename(tmp, path)
}
