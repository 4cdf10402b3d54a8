package menu

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type linksFile struct {
	Links []Item `yaml:"links"`
}

// LoadFile reads links from a YAML document of the form:
//
//	links:
//	  - label: About
//	    target: about
//	    summary: Who we are.
func LoadFile(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read links file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a links document. Unknown fields are rejected.
func Parse(data []byte) ([]Item, error) {
	var doc linksFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse links file: %w", err)
	}
	return Normalize(doc.Links)
}
