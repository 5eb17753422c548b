package classfile

import (
	"github.com/BurntSushi/toml"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	classkit "github.com/reoring/classkit"
)

// Format selects the document encoding.
type Format int

const (
	YAML Format = iota
	JSON
	TOML
)

// Document is a declarative class-hierarchy description.
type Document struct {
	Classes []ClassDef `yaml:"classes" json:"classes" toml:"classes"`
}

// ClassDef declares one class. Bases name earlier entries in the same
// document or the built-in roots; an empty list means Base.
type ClassDef struct {
	Name    string         `yaml:"name" json:"name" toml:"name"`
	Bases   []string       `yaml:"bases,omitempty" json:"bases,omitempty" toml:"bases"`
	Params  []ParamDef     `yaml:"params,omitempty" json:"params,omitempty" toml:"params"`
	Attrs   map[string]any `yaml:"attrs,omitempty" json:"attrs,omitempty" toml:"attrs"`
	Protect []string       `yaml:"protect,omitempty" json:"protect,omitempty" toml:"protect"`
}

// ParamDef declares one parameter. A nil Default (absent or explicit null)
// means the parameter has no default and starts missing.
type ParamDef struct {
	Name      string `yaml:"name" json:"name" toml:"name"`
	Type      string `yaml:"type" json:"type" toml:"type"`
	Default   any    `yaml:"default,omitempty" json:"default,omitempty" toml:"default"`
	Protected bool   `yaml:"protected,omitempty" json:"protected,omitempty" toml:"protected"`
	Abstract  bool   `yaml:"abstract,omitempty" json:"abstract,omitempty" toml:"abstract"`
}

// Annotation type names accepted in ParamDef.Type. They align with the JSON
// Schema core vocabulary so schema projection stays a direct mapping.
var knownTypes = map[string]struct{}{
	"string":  {},
	"number":  {},
	"integer": {},
	"boolean": {},
	"object":  {},
	"array":   {},
	"any":     {},
}

// Decode parses raw document bytes in the given format.
func Decode(data []byte, format Format) (*Document, error) {
	var doc Document
	var err error
	switch format {
	case JSON:
		err = json.Unmarshal(data, &doc)
	case TOML:
		err = toml.Unmarshal(data, &doc)
	default:
		err = yaml.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, classkit.Issues{{
			Code:    classkit.CodeParseError,
			Message: "cannot decode classfile document",
			Hint:    err.Error(),
		}}
	}
	return &doc, nil
}
