package submission

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Format names accepted by NewEncoder.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatNone = "none"
)

// Encoder writes validated records to a stream.
type Encoder struct {
	format  string
	jsonEnc *json.Encoder
	yamlEnc *yaml.Encoder
}

// NewEncoder creates an encoder for the given format. JSON output is one
// object per line; YAML output is one document per record.
func NewEncoder(w io.Writer, format string) (*Encoder, error) {
	e := &Encoder{format: format}
	switch format {
	case FormatJSON:
		e.jsonEnc = json.NewEncoder(w)
	case FormatYAML:
		e.yamlEnc = yaml.NewEncoder(w)
		e.yamlEnc.SetIndent(2)
	case FormatNone:
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
	return e, nil
}

// Encode validates rec and writes it.
func (e *Encoder) Encode(rec Record) error {
	if err := Validate(rec); err != nil {
		return err
	}
	switch e.format {
	case FormatJSON:
		return e.jsonEnc.Encode(rec)
	case FormatYAML:
		return e.yamlEnc.Encode(rec)
	}
	return nil
}

// Close flushes any buffered output.
func (e *Encoder) Close() error {
	if e.yamlEnc != nil {
		return e.yamlEnc.Close()
	}
	return nil
}
