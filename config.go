package snipper

import (
	"github.com/pkg/errors"
	"github.com/sourcegraph/snipper/internal/snippet"
	"gopkg.in/yaml.v2"
)

// Tags are the strings used to render highlighted matches and truncation points.
type Tags struct {
	Open      string `yaml:"open" json:"open"`
	Close     string `yaml:"close" json:"close"`
	Separator string `yaml:"separator" json:"separator"`
}

// Config is the snippet composition configuration. It is read-only once a Composer uses it.
//
// See DefaultConfig for the default values.
type Config struct {
	// LowerBound is the length (in characters) below which snippets are grown.
	LowerBound int `yaml:"lowerBound" json:"lowerBound"`

	// UpperBound is the length that merging and growth do not exceed.
	UpperBound int `yaml:"upperBound" json:"upperBound"`

	// PassageLength is the amount of context (in characters) the default dynamic passage generator
	// keeps around a query match.
	PassageLength int `yaml:"passageLength" json:"passageLength"`

	Tags Tags `yaml:"tags" json:"tags"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		LowerBound:    280,
		UpperBound:    320,
		PassageLength: 320,
		Tags: Tags{
			Open:      "<hi>",
			Close:     "</hi>",
			Separator: "<sep />",
		},
	}
}

// ParseConfig reads a YAML (or JSON) configuration. Keys that are absent keep their default value;
// unknown keys are an error.
func ParseConfig(data []byte) (Config, error) {
	conf := DefaultConfig()
	if err := yaml.UnmarshalStrict(data, &conf); err != nil {
		return Config{}, errors.WithMessage(err, "reading snipper configuration")
	}
	if err := conf.Validate(); err != nil {
		return Config{}, err
	}
	return conf, nil
}

// Validate reports whether the configuration is usable.
func (c Config) Validate() error {
	if err := c.bounds().Validate(); err != nil {
		return err
	}
	if c.PassageLength < 0 {
		return errors.Errorf("invalid passage length %d", c.PassageLength)
	}
	return nil
}

func (c Config) bounds() snippet.Bounds {
	return snippet.Bounds{Lower: c.LowerBound, Upper: c.UpperBound}
}
