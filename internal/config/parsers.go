package config

import (
	"bytes"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"

	gterrors "github.com/matzehuels/gemtree/pkg/errors"
)

func parserFor(path string) (koanf.Parser, error) {
	switch filepath.Ext(path) {
	case ".toml":
		return tomlParser{}, nil
	case ".yaml", ".yml":
		return yamlParser{}, nil
	default:
		return nil, gterrors.New(gterrors.ErrCodeInvalidConfig, "unsupported config file type: %s", path)
	}
}

type tomlParser struct{}

func (tomlParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	var m map[string]interface{}
	if err := toml.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = map[string]interface{}{}
	}
	return m, nil
}

func (tomlParser) Marshal(m map[string]interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type yamlParser struct{}

func (yamlParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	var m map[string]interface{}
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = map[string]interface{}{}
	}
	return m, nil
}

func (yamlParser) Marshal(m map[string]interface{}) ([]byte, error) {
	return yaml.Marshal(m)
}
