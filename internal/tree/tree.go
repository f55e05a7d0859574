package tree

import (
	"fmt"

	"apiscaffold/internal/safety"
)

// Kind — вид узла описания.
type Kind int

const (
	KindDir      Kind = iota // каталог с вложенным описанием
	KindFileList             // каталог с плоским списком пустых файлов
	KindFile                 // один пустой файл
)

func (k Kind) String() string {
	switch k {
	case KindDir:
		return "dir"
	case KindFileList:
		return "file-list"
	case KindFile:
		return "file"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Node — один элемент описания. Какие поля значимы, определяет Kind:
// Children только у KindDir, Files только у KindFileList.
type Node struct {
	Name     string
	Kind     Kind
	Children []Node
	Files    []string
}

// Dir описывает каталог с вложенными узлами.
func Dir(name string, children ...Node) Node {
	return Node{Name: name, Kind: KindDir, Children: children}
}

// FileList описывает каталог, в котором создаются пустые файлы files.
func FileList(name string, files ...string) Node {
	return Node{Name: name, Kind: KindFileList, Files: files}
}

// File описывает один пустой файл.
func File(name string) Node {
	return Node{Name: name, Kind: KindFile}
}

// Tree — имя корня проекта и узлы первого уровня по порядку.
type Tree struct {
	Root  string
	Nodes []Node
}

// Validate проверяет имена и уникальность соседей на каждом уровне.
func (t Tree) Validate() error {
	if err := safety.ValidateName(t.Root); err != nil {
		return fmt.Errorf("корень: %w", err)
	}
	return validateLevel(t.Root, t.Nodes)
}

func validateLevel(parent string, nodes []Node) error {
	seen := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		if err := safety.ValidateName(n.Name); err != nil {
			return fmt.Errorf("%s: %w", parent, err)
		}
		if _, dup := seen[n.Name]; dup {
			return fmt.Errorf("%s: повторяющееся имя %q", parent, n.Name)
		}
		seen[n.Name] = struct{}{}

		path := parent + "/" + n.Name
		switch n.Kind {
		case KindDir:
			if err := validateLevel(path, n.Children); err != nil {
				return err
			}
		case KindFileList:
			files := make(map[string]struct{}, len(n.Files))
			for _, f := range n.Files {
				if err := safety.ValidateName(f); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				if _, dup := files[f]; dup {
					return fmt.Errorf("%s: повторяющееся имя %q", path, f)
				}
				files[f] = struct{}{}
			}
		case KindFile:
		default:
			return fmt.Errorf("%s: неизвестный вид узла %v", path, n.Kind)
		}
	}
	return nil
}

// Count возвращает число каталогов и файлов, которые описывает дерево
// (без самого корня).
func (t Tree) Count() (dirs, files int) {
	var walk func(nodes []Node)
	walk = func(nodes []Node) {
		for _, n := range nodes {
			switch n.Kind {
			case KindDir:
				dirs++
				walk(n.Children)
			case KindFileList:
				dirs++
				files += len(n.Files)
			case KindFile:
				files++
			}
		}
	}
	walk(t.Nodes)
	return dirs, files
}
