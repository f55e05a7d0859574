package fsops

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"apiscaffold/internal/safety"
	"apiscaffold/internal/tree"
)

// ErrConflict — по целевому пути уже лежит объект другого вида.
var ErrConflict = errors.New("конфликт")

// ApplyArgs — параметры применения описания к файловой системе.
type ApplyArgs struct {
	Fs        afero.Fs  // nil — реальная ФС
	Out       io.Writer // строки прогресса; nil — stdout
	Log       zerolog.Logger
	Tree      tree.Tree
	DestRoot  string
	DryRun    bool
	Quiet     bool
	DirPerm   os.FileMode
	FilePerm  os.FileMode
	ExecGlobs []string
}

// Stats — сколько объектов обработано за проход.
type Stats struct {
	Dirs  int
	Files int
}

// Apply обходит описание в глубину (родитель раньше детей) и создаёт
// каталоги и пустые файлы. Первая ошибка останавливает обход, откат не делается.
func Apply(a ApplyArgs) (Stats, error) {
	if a.Fs == nil {
		a.Fs = afero.NewOsFs()
	}
	if a.Out == nil {
		a.Out = os.Stdout
	}
	if a.DirPerm == 0 {
		a.DirPerm = 0o755
	}
	if a.FilePerm == 0 {
		a.FilePerm = 0o644
	}

	var st Stats

	// Корень в Stats не входит.
	if err := ensureDir(a, a.DestRoot); err != nil {
		return st, err
	}
	a.Log.Debug().Str("root", a.DestRoot).Msg("корень готов")

	if err := applyLevel(a, &st, nil, a.Tree.Nodes); err != nil {
		return st, err
	}
	return st, nil
}

func applyLevel(a ApplyArgs, st *Stats, parents []string, nodes []tree.Node) error {
	for _, n := range nodes {
		rel := append(parents[:len(parents):len(parents)], n.Name)
		target, err := safety.SafeJoin(a.DestRoot, rel...)
		if err != nil {
			return err
		}

		switch n.Kind {
		case tree.KindDir:
			if err := ensureDir(a, target); err != nil {
				return err
			}
			st.Dirs++
			if err := applyLevel(a, st, rel, n.Children); err != nil {
				return err
			}

		case tree.KindFileList:
			if err := ensureDir(a, target); err != nil {
				return err
			}
			st.Dirs++
			for _, name := range n.Files {
				fp, err := safety.SafeJoin(target, name)
				if err != nil {
					return err
				}
				if err := ensureFile(a, fp); err != nil {
					return err
				}
				st.Files++
			}

		case tree.KindFile:
			if err := ensureFile(a, target); err != nil {
				return err
			}
			st.Files++

		default:
			return fmt.Errorf("неизвестный вид узла %v: %s", n.Kind, target)
		}
	}
	return nil
}

func ensureDir(a ApplyArgs, path string) error {
	info, err := safety.Lstat(a.Fs, path)
	if err == nil {
		if err := safety.EnsureNoSymlink(path, info); err != nil {
			return fmt.Errorf("%w: %w", ErrConflict, err)
		}
	}
	switch {
	case err == nil && info.IsDir():
		// Чужие права на существующем каталоге не трогаем.
		out(a, "dir exists: %s", path)
		return nil

	case err == nil:
		return fmt.Errorf("%w: по пути %s уже существует файл, а нужен каталог", ErrConflict, path)

	case os.IsNotExist(err):
		if a.DryRun {
			out(a, "mkdir -p %s", path)
			return nil
		}
		if err := a.Fs.MkdirAll(path, a.DirPerm); err != nil {
			return fmt.Errorf("mkdir %s: %w", path, err)
		}
		if err := chmod(a, path, a.DirPerm); err != nil {
			return err
		}
		a.Log.Debug().Str("path", path).Msg("каталог создан")
		out(a, "dir: %s", path)
		return nil

	default:
		return fmt.Errorf("stat %s: %w", path, err)
	}
}

func ensureFile(a ApplyArgs, path string) error {
	mode := chooseFileMode(a, path)

	info, err := safety.Lstat(a.Fs, path)
	if err == nil {
		if err := safety.EnsureNoSymlink(path, info); err != nil {
			return fmt.Errorf("%w: %w", ErrConflict, err)
		}
	}
	switch {
	case err == nil && info.IsDir():
		return fmt.Errorf("%w: по пути %s уже есть каталог, а нужен файл", ErrConflict, path)

	case err == nil:
		// Файл существует: усекаем до нуля.
		if a.DryRun {
			out(a, "truncate %s", path)
			return nil
		}
		if err := touch(a, path, os.O_WRONLY|os.O_TRUNC, mode); err != nil {
			return fmt.Errorf("truncate %s: %w", path, err)
		}
		if err := chmod(a, path, mode); err != nil {
			return err
		}
		a.Log.Debug().Str("path", path).Int64("old_size", info.Size()).Msg("файл усечён")
		out(a, "file truncated: %s", path)
		return nil

	case os.IsNotExist(err):
		if a.DryRun {
			out(a, "touch %s", path)
			return nil
		}
		if err := touch(a, path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, mode); err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		if err := chmod(a, path, mode); err != nil {
			return err
		}
		a.Log.Debug().Str("path", path).Stringer("mode", mode).Msg("файл создан")
		out(a, "file: %s", path)
		return nil

	default:
		return fmt.Errorf("stat %s: %w", path, err)
	}
}

func touch(a ApplyArgs, path string, flag int, mode os.FileMode) error {
	f, err := a.Fs.OpenFile(path, flag, mode)
	if err != nil {
		return err
	}
	return f.Close()
}

// chooseFileMode: 0755 для путей, подходящих под ExecGlobs, иначе FilePerm.
// Шаблоны сравниваются с путём относительно DestRoot.
func chooseFileMode(a ApplyArgs, path string) os.FileMode {
	rel := path
	if r, err := filepath.Rel(a.DestRoot, path); err == nil {
		rel = r
	}
	relSl := filepath.ToSlash(rel)
	base := filepath.Base(path)

	for _, pat := range a.ExecGlobs {
		p := filepath.ToSlash(pat)
		if ok, _ := filepath.Match(p, relSl); ok {
			return 0o755
		}
		if ok, _ := filepath.Match(p, base); ok {
			return 0o755
		}
	}
	return a.FilePerm
}

// chmod выставляет права поверх umask.
func chmod(a ApplyArgs, path string, mode os.FileMode) error {
	if err := a.Fs.Chmod(path, mode); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	return nil
}

func out(a ApplyArgs, format string, args ...interface{}) {
	if a.Quiet {
		return
	}
	fmt.Fprintf(a.Out, format+"\n", args...)
}
