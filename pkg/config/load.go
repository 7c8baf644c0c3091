package config

import (
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/avulnerador/RogueMap-Gen/pkg/errors"
)

// File is the on-disk configuration layout.
type File struct {
	Map    MapConfig    `toml:"map"`
	Visual VisualConfig `toml:"visual"`
}

// DefaultFile returns a File holding the defaults.
func DefaultFile() File {
	return File{Map: Default(), Visual: DefaultVisual()}
}

// Load reads a TOML configuration file over the defaults and validates the
// map section. Unknown keys are rejected so typos do not silently fall
// back to defaults.
func Load(path string) (File, error) {
	f := DefaultFile()
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return File{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	return f, finish(md, f)
}

// Parse decodes TOML configuration from a string over the defaults.
func Parse(data string) (File, error) {
	f := DefaultFile()
	md, err := toml.Decode(data, &f)
	if err != nil {
		return File{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	return f, finish(md, f)
}

func finish(md toml.MetaData, f File) error {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		slices.Sort(keys)
		return errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	return f.Map.Validate()
}
