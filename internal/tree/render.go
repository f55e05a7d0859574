package tree

import (
	"bufio"
	"io"
)

// Маркеры ветвления в стиле утилиты tree.
const (
	branchMid  = "├── "
	branchLast = "└── "
	indentMid  = "│   "
	indentLast = "    "
)

// Render печатает дерево в формате tree: первая строка — корень с "/",
// далее узлы с отступами и ветками ├──/└──. Каталоги помечаются суффиксом "/".
func Render(w io.Writer, t Tree) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(t.Root + "/\n")
	renderLevel(bw, "", t.Nodes)
	return bw.Flush()
}

func renderLevel(bw *bufio.Writer, prefix string, nodes []Node) {
	for i, n := range nodes {
		last := i == len(nodes)-1
		branch, indent := branchMid, indentMid
		if last {
			branch, indent = branchLast, indentLast
		}

		switch n.Kind {
		case KindDir:
			bw.WriteString(prefix + branch + n.Name + "/\n")
			renderLevel(bw, prefix+indent, n.Children)
		case KindFileList:
			bw.WriteString(prefix + branch + n.Name + "/\n")
			files := make([]Node, 0, len(n.Files))
			for _, f := range n.Files {
				files = append(files, File(f))
			}
			renderLevel(bw, prefix+indent, files)
		default:
			bw.WriteString(prefix + branch + n.Name + "\n")
		}
	}
}
