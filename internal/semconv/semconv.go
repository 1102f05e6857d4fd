// Copyright (c) 2026 The Semconvkit Authors.
// SPDX-License-Identifier: Apache-2.0

// Package semconv defines the raw semantic convention registry model as it
// appears in YAML source files, before any reference resolution. The model
// is strict: unknown keys anywhere in a document are a decoding error so
// that typos in hand-written registries never pass silently.
package semconv

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// Document is the top-level structure of one semantic convention file.
type Document struct {
	Groups []*Group `yaml:"groups" json:"groups"`
}

func (d *Document) UnmarshalYAML(node *yaml.Node) error {
	if err := checkFields(node, "document", []string{"groups"}); err != nil {
		return err
	}
	type plain Document
	return node.Decode((*plain)(d))
}

// ParseDocument decodes a single YAML semantic convention document.
func ParseDocument(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// checkFields rejects unknown mapping keys before the node is decoded into
// a struct. yaml.Decoder.KnownFields does not reach inside custom
// unmarshalers, so every strict type funnels through here.
func checkFields(node *yaml.Node, typeName string, known []string) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: %s must be a mapping", node.Line, typeName)
	}
	for i := 0; i < len(node.Content); i += 2 {
		key := node.Content[i]
		if !slices.Contains(known, key.Value) {
			return fmt.Errorf("line %d: unknown field %q in %s", key.Line, key.Value, typeName)
		}
	}
	return nil
}

func jsonMarshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
