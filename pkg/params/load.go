package params

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads constants from a YAML file. Keys absent from the file keep
// their Default value.
func Load(path string) (Constants, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Constants{}, fmt.Errorf("reading constants file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the default constant set.
func Parse(data []byte) (Constants, error) {
	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Constants{}, fmt.Errorf("parsing constants YAML: %w", err)
	}
	return c, nil
}

// Marshal encodes the constants as YAML, e.g. to seed a config file.
func (c Constants) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
