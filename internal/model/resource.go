package model

// StringResource is one <string> item of an Android values file.
type StringResource struct {
	Name         string
	Value        string
	Translatable bool
}

// PlistFormat identifies the serialization of a property list so it can be
// written back the way it was read.
type PlistFormat int

// Dict is a decoded property list dictionary.
type Dict = map[string]any
