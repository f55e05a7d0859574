package safety

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ErrOutsideRoot — путь после объединения оказался вне корня проекта.
var ErrOutsideRoot = errors.New("путь вне корня проекта")

// ErrSymlink — по целевому пути лежит символическая ссылка.
var ErrSymlink = errors.New("символическая ссылка")

// Lstat не следует по ссылкам, если ФС это умеет (afero.Lstater);
// иначе сводится к обычному Stat.
func Lstat(fsys afero.Fs, path string) (os.FileInfo, error) {
	if l, ok := fsys.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(path)
		return info, err
	}
	return fsys.Stat(path)
}

// EnsureNoSymlink возвращает ErrSymlink, если info описывает ссылку.
// Через ссылку запись могла бы уйти за пределы корня.
func EnsureNoSymlink(path string, info os.FileInfo) error {
	if info != nil && info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("%w: %s", ErrSymlink, path)
	}
	return nil
}

// ValidateName проверяет, что имя — один сегмент пути: непустой,
// не "." и не "..", без разделителей и нулевых байтов.
func ValidateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("пустое имя")
	case name == "." || name == "..":
		return fmt.Errorf("недопустимое имя: %q", name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("имя не должно содержать разделителей пути: %q", name)
	case strings.ContainsRune(name, 0):
		return fmt.Errorf("имя содержит нулевой байт: %q", name)
	case filepath.IsAbs(name) || filepath.VolumeName(name) != "":
		return fmt.Errorf("абсолютные пути запрещены: %q", name)
	}
	return nil
}

// SafeJoin объединяет root и parts; результат обязан остаться внутри root.
func SafeJoin(root string, parts ...string) (string, error) {
	cleanRoot := filepath.Clean(root)
	p := filepath.Join(append([]string{cleanRoot}, parts...)...)

	rel, err := filepath.Rel(cleanRoot, p)
	if err != nil {
		return "", err
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", fmt.Errorf("%w: %s", ErrOutsideRoot, p)
	}
	return p, nil
}
