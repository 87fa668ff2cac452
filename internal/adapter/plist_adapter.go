package adapter

import (
	"bytes"
	"fmt"

	"howett.net/plist"

	m "pushup.dev/pkg/pushup/internal/model"
)

// PlistAdapter decodes and encodes Info.plist documents.
type PlistAdapter interface {
	// Decode parses data into a dictionary and returns the format it was
	// stored in. Empty input yields an empty XML dictionary.
	Decode(data []byte) (m.Dict, m.PlistFormat, error)

	// Encode serializes dict in the given format.
	Encode(dict m.Dict, format m.PlistFormat) ([]byte, error)
}

// LocalPlistAdapter is the howett.net/plist backed PlistAdapter.
type LocalPlistAdapter struct{}

// NewLocalPlistAdapter creates a LocalPlistAdapter.
func NewLocalPlistAdapter() *LocalPlistAdapter {
	return &LocalPlistAdapter{}
}

// Decode parses a property list of any supported format.
func (a *LocalPlistAdapter) Decode(data []byte) (m.Dict, m.PlistFormat, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return m.Dict{}, m.PlistFormat(plist.XMLFormat), nil
	}

	dict := m.Dict{}

	format, err := plist.Unmarshal(data, &dict)
	if err != nil {
		return nil, 0, fmt.Errorf("decode plist: %w", err)
	}

	return dict, m.PlistFormat(format), nil
}

// Encode writes dict back. Text formats are indented with tabs like Xcode does.
func (a *LocalPlistAdapter) Encode(dict m.Dict, format m.PlistFormat) ([]byte, error) {
	var (
		out []byte
		err error
	)

	if format == m.PlistFormat(plist.BinaryFormat) {
		out, err = plist.Marshal(dict, int(format))
	} else {
		out, err = plist.MarshalIndent(dict, int(format), "\t")
	}

	if err != nil {
		return nil, fmt.Errorf("encode plist: %w", err)
	}

	if format == m.PlistFormat(plist.XMLFormat) && !bytes.HasSuffix(out, []byte("\n")) {
		out = append(out, '\n')
	}

	return out, nil
}
