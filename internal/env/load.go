package env

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Load reads .env files into the process environment. Missing files are
// ignored; variables already set in the environment win.
func Load(filenames ...string) {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, filename := range filenames {
		err := godotenv.Load(filename)
		if err == nil || errors.Is(err, fs.ErrNotExist) {
			continue
		}
		log.Error().Err(err).Str("file", filename).Msg("error loading .env file")
	}
}
