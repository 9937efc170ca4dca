package export

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"

	"sbx/osb"
	"sbx/storyboard"
)

// writeScript serializes storyboard next to its final destination and moves it
// in place only when everything was written, so failed export never leaves
// partial script behind.
func writeScript(sb *storyboard.Storyboard, outputName string, format osb.NumberFormat) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(outputName), "."+filepath.Base(outputName)+".*.tmp")
	if err != nil {
		return fmt.Errorf("unable to create temporary file: %w", err)
	}
	defer func() {
		if err != nil {
			err = multierr.Append(err, os.Remove(tmp.Name()))
		}
	}()

	if err = osb.NewWriter(tmp, format).WriteStoryboard(sb); err != nil {
		err = multierr.Append(err, tmp.Close())
		return fmt.Errorf("unable to write storyboard: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("unable to write storyboard: %w", err)
	}
	if err = os.Rename(tmp.Name(), outputName); err != nil {
		return fmt.Errorf("unable to move storyboard in place: %w", err)
	}
	return nil
}
