package format

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLEncoder writes each report as its own YAML document.
type YAMLEncoder struct {
	w      io.Writer
	report *Report
}

func NewYAMLEncoder(w io.Writer) *YAMLEncoder {
	return &YAMLEncoder{w: w}
}

func (e *YAMLEncoder) Encode(report *Report) error {
	e.report = report
	return encode(e.w, e)
}

func (e *YAMLEncoder) MarshalText() ([]byte, error) {
	data, err := yaml.Marshal(e.report)
	if err != nil {
		return nil, err
	}
	return append([]byte("---\n"), data...), nil
}
