package tree

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() Tree {
	return Tree{
		Root: "demo",
		Nodes: []Node{
			Dir("src",
				FileList("controllers", "a.ts", "b.ts"),
				File("app.ts"),
			),
			File("README.md"),
		},
	}
}

func TestConstructorsSetKind(t *testing.T) {
	assert.Equal(t, KindDir, Dir("x").Kind)
	assert.Equal(t, KindFileList, FileList("x", "a").Kind)
	assert.Equal(t, KindFile, File("x").Kind)
	assert.Equal(t, []string{"a", "b"}, FileList("x", "a", "b").Files)
}

func TestValidateAcceptsSample(t *testing.T) {
	require.NoError(t, sample().Validate())
}

func TestValidateRejectsBadNames(t *testing.T) {
	cases := map[string]Tree{
		"empty root":      {Root: ""},
		"slash in root":   {Root: "a/b"},
		"dotdot node":     {Root: "r", Nodes: []Node{File("..")}},
		"slash in file":   {Root: "r", Nodes: []Node{FileList("d", "x/y.ts")}},
		"nested bad name": {Root: "r", Nodes: []Node{Dir("d", Dir("e", File(`a\b`)))}},
	}
	for name, tr := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, tr.Validate())
		})
	}
}

func TestValidateRejectsDuplicateSiblings(t *testing.T) {
	tr := Tree{Root: "r", Nodes: []Node{Dir("src"), File("src")}}
	err := tr.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"src"`)

	tr = Tree{Root: "r", Nodes: []Node{FileList("d", "a.ts", "a.ts")}}
	require.Error(t, tr.Validate())
}

func TestValidateAllowsSameNameAtDifferentLevels(t *testing.T) {
	tr := Tree{Root: "r", Nodes: []Node{Dir("a", File("a")), File("b")}}
	assert.NoError(t, tr.Validate())
}

func TestCount(t *testing.T) {
	dirs, files := sample().Count()
	assert.Equal(t, 2, dirs)
	assert.Equal(t, 4, files)
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sample()))

	want := "demo/\n" +
		"├── src/\n" +
		"│   ├── controllers/\n" +
		"│   │   ├── a.ts\n" +
		"│   │   └── b.ts\n" +
		"│   └── app.ts\n" +
		"└── README.md\n"
	assert.Equal(t, want, buf.String())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "file-list", KindFileList.String())
	assert.Equal(t, "kind(7)", Kind(7).String())
}
