package adapter

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/beevik/etree"

	m "pushup.dev/pkg/pushup/internal/model"
)

// ErrUnexpectedRoot is returned when a values file is not a <resources> document.
var ErrUnexpectedRoot = errors.New("strings.xml root element is not <resources>")

// StringsXMLAdapter edits Android values files.
type StringsXMLAdapter interface {
	// SetString sets item in the document, replacing any existing item with
	// the same name. changed is false when the document already holds an
	// identical item, in which case out is the input unchanged.
	SetString(data []byte, item m.StringResource) (out []byte, changed bool, err error)
}

// LocalStringsXMLAdapter is the etree backed StringsXMLAdapter.
type LocalStringsXMLAdapter struct{}

// NewLocalStringsXMLAdapter creates a LocalStringsXMLAdapter.
func NewLocalStringsXMLAdapter() *LocalStringsXMLAdapter {
	return &LocalStringsXMLAdapter{}
}

// SetString upserts a <string> item. Missing documents are created.
func (a *LocalStringsXMLAdapter) SetString(data []byte, item m.StringResource) ([]byte, bool, error) {
	doc := etree.NewDocument()

	if len(bytes.TrimSpace(data)) > 0 {
		if err := doc.ReadFromBytes(data); err != nil {
			return nil, false, fmt.Errorf("parse strings.xml: %w", err)
		}
	}

	root := doc.Root()

	switch {
	case root == nil:
		doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
		root = doc.CreateElement("resources")
	case root.Tag != "resources":
		return nil, false, fmt.Errorf("%w: <%s>", ErrUnexpectedRoot, root.Tag)
	}

	translatable := "true"
	if !item.Translatable {
		translatable = "false"
	}

	var el *etree.Element

	for _, candidate := range root.SelectElements("string") {
		if candidate.SelectAttrValue("name", "") == item.Name {
			el = candidate
			break
		}
	}

	if el != nil && el.Text() == item.Value && el.SelectAttrValue("translatable", "true") == translatable {
		return data, false, nil
	}

	if el == nil {
		el = root.CreateElement("string")
		el.CreateAttr("name", item.Name)
	}

	if item.Translatable {
		el.RemoveAttr("translatable")
	} else {
		el.CreateAttr("translatable", "false")
	}

	el.SetText(item.Value)
	doc.Indent(4)

	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, false, fmt.Errorf("write strings.xml: %w", err)
	}

	return out, true, nil
}
