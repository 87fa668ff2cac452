package domain

import (
	"path/filepath"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	m "pushup.dev/pkg/pushup/internal/model"
)

const diffContextLines = 3

// unifiedDiff renders the change between two versions of path.
func unifiedDiff(path m.Path, before, after string) string {
	name := strings.TrimPrefix(filepath.ToSlash(string(path)), "/")

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "a/" + name,
		ToFile:   "b/" + name,
		Context:  diffContextLines,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return ""
	}

	return text
}
