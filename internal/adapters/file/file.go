package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog/log"
)

// DiskWriter stores generated artifacts on the local filesystem.
type DiskWriter struct{}

func NewDiskWriter() *DiskWriter {
	return &DiskWriter{}
}

// EnsureDir creates the output directory, including parents. Calling it on
// an existing directory is a no-op.
func (w *DiskWriter) EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		err = fmt.Errorf("error creating output directory %w", err)
		log.Error().Err(err).Str("dir", dir).Send()
		return err
	}

	return nil
}

// Write stores data under dir/name. The bytes go to a uuid-named temp file
// first and are renamed into place, so a crash never leaves a truncated
// artifact behind.
func (w *DiskWriter) Write(dir, name string, data []byte) error {
	id, err := uuid.NewV4()
	if err != nil {
		return err
	}

	log.Debug().Int("bytes", len(data)).Str("file", name).Msg("writing artifact")

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.tmp", id.String()))

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		err = fmt.Errorf("error writing temp artifact %w", err)
		log.Error().Err(err).Str("file", name).Send()
		return err
	}

	if err := os.Rename(tmp, filepath.Join(dir, name)); err != nil {
		if removeErr := os.Remove(tmp); removeErr != nil {
			log.Warn().Err(removeErr).Str("path", tmp).Msg("could not clean up temp artifact")
		}
		err = fmt.Errorf("error renaming artifact %w", err)
		log.Error().Err(err).Str("file", name).Send()
		return err
	}

	log.Debug().Str("path", filepath.Join(dir, name)).Msg("created artifact")

	return nil
}
