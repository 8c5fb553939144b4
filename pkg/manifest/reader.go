// Package manifest reads installation configuration files
package manifest

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/a8m/envsubst"
	"github.com/archctl/archctl/pkg/apis/archctl.io/v1beta1"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v2"
)

// Format is a configuration file syntax
type Format string

const (
	// TOML is the default configuration format
	TOML Format = "toml"
	// YAML configurations are accepted for files ending in .yaml or .yml
	YAML Format = "yaml"
)

// DefaultFilename is the configuration file looked up when none is given
const DefaultFilename = "config.toml"

// FormatFor picks the format from the file extension. Anything that is not
// yaml is read as toml.
func FormatFor(filename string) Format {
	switch strings.ToLower(path.Ext(filename)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return TOML
	}
}

// Reader reads an installation configuration from an input stream.
type Reader struct {
	// Format of the input, defaults to TOML
	Format Format
	// Origin is recorded into the parsed config
	Origin string
	// ExpandEnv enables ${VAR} expansion of the input before decoding. It is
	// off by default as pacman mirror urls carry $repo and $arch.
	ExpandEnv bool
}

func name(r io.Reader) string {
	if n, ok := r.(*os.File); ok {
		return n.Name()
	}
	return "config"
}

// Parse decodes a configuration from the input, applies defaults and runs the
// field validation. Unknown keys are rejected.
func (r *Reader) Parse(input io.Reader) (*v1beta1.Config, error) {
	content, err := io.ReadAll(input)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name(input), err)
	}

	if r.ExpandEnv {
		content, err = envsubst.Bytes(content)
		if err != nil {
			return nil, fmt.Errorf("failed to expand environment variables in %s: %w", name(input), err)
		}
	}

	cfg := &v1beta1.Config{}

	switch r.Format {
	case YAML:
		if err := yaml.UnmarshalStrict(content, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", name(input), err)
		}
	case TOML, "":
		dec := toml.NewDecoder(bytes.NewReader(content))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", name(input), err)
		}
		if err := cfg.SetDefaults(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported configuration format %q", r.Format)
	}

	cfg.Origin = r.Origin

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ParseString parses a configuration from the provided string.
func (r *Reader) ParseString(input string) (*v1beta1.Config, error) {
	return r.Parse(strings.NewReader(input))
}

// ParseBytes parses a configuration from the provided byte slice.
func (r *Reader) ParseBytes(input []byte) (*v1beta1.Config, error) {
	return r.Parse(bytes.NewReader(input))
}

// ReadFile reads the configuration from a file, "-" reads toml from stdin.
func ReadFile(fn string, expandEnv bool) (*v1beta1.Config, error) {
	if fn == "-" {
		stat, err := os.Stdin.Stat()
		if err != nil {
			return nil, fmt.Errorf("can't stat stdin: %w", err)
		}
		if (stat.Mode() & os.ModeCharDevice) != 0 {
			return nil, fmt.Errorf("can't read stdin")
		}
		r := &Reader{Format: TOML, Origin: "-", ExpandEnv: expandEnv}
		return r.Parse(os.Stdin)
	}

	f, err := os.Open(fn)
	if err != nil {
		return nil, fmt.Errorf("failed to locate configuration: %w", err)
	}
	defer f.Close()

	r := &Reader{Format: FormatFor(fn), Origin: fn, ExpandEnv: expandEnv}
	return r.Parse(f)
}
