// Package format encodes descriptor reports for the command line.
package format

import (
	"encoding"
	"fmt"
	"io"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(report *Report) error
}

// NewEncoder returns the encoder registered under name: "line", "json" or
// "yaml".
func NewEncoder(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "line":
		return NewLineEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	case "yaml":
		return NewYAMLEncoder(w), nil
	}
	return nil, fmt.Errorf("unknown format: %s (expected line, json, or yaml)", name)
}

func encode(w io.Writer, m encoding.TextMarshaler) error {
	text, err := m.MarshalText()
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}
