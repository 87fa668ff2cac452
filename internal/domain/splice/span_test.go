package splice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegexLocate(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		content string
		want    string
		found   bool
	}{
		{
			name:    "whole match",
			expr:    `class \w+ \{`,
			content: "import x\nclass Foo {\n}\n",
			want:    "class Foo {",
			found:   true,
		},
		{
			name:    "first capture group narrows the span",
			expr:    `override fun onCreate\(\)\s*\{\s*(super\.onCreate\(\))`,
			content: "  override fun onCreate() {\n    super.onCreate()\n  }\n",
			want:    "super.onCreate()",
			found:   true,
		},
		{
			name:    "first of several matches",
			expr:    `fun \w+`,
			content: "fun a()\nfun b()\n",
			want:    "fun a",
			found:   true,
		},
		{
			name:    "matches in comments and strings are skipped",
			expr:    `fun \w+`,
			content: "// fun a\n/* fun b\n */\nval s = \"fun c\"\nfun d()\n",
			want:    "fun d",
			found:   true,
		},
		{
			name:    "only a commented match",
			expr:    `class Bar`,
			content: "// class Bar {\nclass Foo {}",
			found:   false,
		},
		{
			name:    "no match",
			expr:    `class Bar`,
			content: "class Foo {}",
			found:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span, ok := Regex(tt.expr).Locate(tt.content)
			require.Equal(t, tt.found, ok)

			if ok {
				assert.Equal(t, tt.want, tt.content[span.Start:span.End])
			}
		})
	}
}

func TestBlockLocate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		found   bool
	}{
		{
			name: "nested braces",
			content: "class A {\n  override func bundleURL() -> URL? {\n    if x { return y }\n    return z\n  }\n  func other() {}\n}\n",
			want:  "override func bundleURL() -> URL? {\n    if x { return y }\n    return z\n  }",
			found: true,
		},
		{
			name:    "braces inside strings and comments are ignored",
			content: "override func bundleURL() -> URL? {\n  // } not the end\n  print(\"}\\\"{\")\n  /* { */\n  return nil\n}\nrest",
			want:    "override func bundleURL() -> URL? {\n  // } not the end\n  print(\"}\\\"{\")\n  /* { */\n  return nil\n}",
			found:   true,
		},
		{
			name:    "triple quoted strings are skipped",
			content: "override func bundleURL() -> URL? {\n  let s = \"\"\"\n  }\n  \"\"\"\n}\n",
			want:    "override func bundleURL() -> URL? {\n  let s = \"\"\"\n  }\n  \"\"\"\n}",
			found:   true,
		},
		{
			name:    "commented header is skipped",
			content: "  // TODO: override func bundleURL() -> URL? for staging builds\n  override func sourceURL(for bridge: RCTBridge) -> URL? {\n    bridge.bundleURL\n  }\n\n  override func bundleURL() -> URL? {\n    return nil\n  }\n",
			want:    "override func bundleURL() -> URL? {\n    return nil\n  }",
			found:   true,
		},
		{
			name:    "header only in a comment",
			content: "/* override func bundleURL() -> URL? */\nfunc other() {\n}\n",
			found:   false,
		},
		{
			name:    "header without body",
			content: "protocol P {\n  func bundleURL() -> URL?\n}\n",
			found:   false,
		},
		{
			name:    "unbalanced body",
			content: "override func bundleURL() -> URL? {\n  return nil\n",
			found:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr := `override func bundleURL\(\)\s*->\s*URL\?`
			if tt.name == "header without body" {
				expr = `func bundleURL\(\)\s*->\s*URL\?`
			}

			span, ok := Block(expr).Locate(tt.content)
			require.Equal(t, tt.found, ok)

			if ok {
				assert.Equal(t, tt.want, tt.content[span.Start:span.End])
			}
		})
	}
}

func TestMemberLocate(t *testing.T) {
	header := `override fun getPackages\(\)\s*:\s*List<ReactPackage>`

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "single line expression body",
			content: "class A {\n    override fun getPackages(): List<ReactPackage> = listOf()   \n}\n",
			want:    "override fun getPackages(): List<ReactPackage> = listOf()",
		},
		{
			name:    "expression continued after equals",
			content: "  override fun getPackages(): List<ReactPackage> =\n      PackageList(this).packages.apply {\n        // add(MyPackage())\n      }\n\n  override fun getJSMainModuleName(): String = \"index\"\n",
			want:    "override fun getPackages(): List<ReactPackage> =\n      PackageList(this).packages.apply {\n        // add(MyPackage())\n      }",
		},
		{
			name:    "call chain on following lines",
			content: "override fun getPackages(): List<ReactPackage> = PackageList(this)\n    .packages\n    ?.toList()\nval x = 1\n",
			want:    "override fun getPackages(): List<ReactPackage> = PackageList(this)\n    .packages\n    ?.toList()",
		},
		{
			name:    "block body",
			content: "  override fun getPackages(): List<ReactPackage> {\n    val packages = PackageList(this).packages\n    return packages\n  }\n\n  override fun other() {}\n",
			want:    "override fun getPackages(): List<ReactPackage> {\n    val packages = PackageList(this).packages\n    return packages\n  }",
		},
		{
			name:    "ends at the enclosing closing brace",
			content: "object : Host { override fun getPackages(): List<ReactPackage> = listOf() }",
			want:    "override fun getPackages(): List<ReactPackage> = listOf()",
		},
		{
			name:    "end of file",
			content: "override fun getPackages(): List<ReactPackage> = listOf()\n\n",
			want:    "override fun getPackages(): List<ReactPackage> = listOf()",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span, ok := Member(header).Locate(tt.content)
			require.True(t, ok)
			assert.Equal(t, tt.want, tt.content[span.Start:span.End])
		})
	}

	_, ok := Member(header).Locate("class A {}")
	assert.False(t, ok)

	content := "// override fun getPackages(): List<ReactPackage> was removed\noverride fun getPackages(): List<ReactPackage> = listOf()\n"
	span, ok := Member(header).Locate(content)
	require.True(t, ok)
	assert.Equal(t, len("// override fun getPackages(): List<ReactPackage> was removed\n"), span.Start)
}

func TestInCode(t *testing.T) {
	src := "a // b\nc /* d */ e \"f\" g"

	assert.True(t, inCode(src, strings.Index(src, "a")))
	assert.False(t, inCode(src, strings.Index(src, "b")))
	assert.True(t, inCode(src, strings.Index(src, "c")))
	assert.False(t, inCode(src, strings.Index(src, "d")))
	assert.True(t, inCode(src, strings.Index(src, "e")))
	assert.False(t, inCode(src, strings.Index(src, "f")))
	assert.True(t, inCode(src, strings.Index(src, "g")))
}

func TestLocatorString(t *testing.T) {
	assert.Equal(t, `a\(\)`, Regex(`a\(\)`).String())
	assert.Equal(t, `block(b)`, Block(`b`).String())
	assert.Equal(t, `member(c)`, Member(`c`).String())
}
