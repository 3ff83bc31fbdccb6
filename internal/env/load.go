package env

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// Load reads the given file (e.g. ".env") and sets environment variables for each
// KEY=VALUE line. Variables already set in the environment win.
// The file may be missing; that is not an error.
func Load(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
