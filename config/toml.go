package config

import (
	"bytes"

	"github.com/BurntSushi/toml"
)

// TOMLParser implements koanf.Parser on top of BurntSushi/toml.
type TOMLParser struct{}

func TOML() *TOMLParser {
	return &TOMLParser{}
}

func (p *TOMLParser) Unmarshal(b []byte) (map[string]any, error) {
	out := make(map[string]any)
	if err := toml.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *TOMLParser) Marshal(o map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
