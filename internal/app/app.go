package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"apiscaffold/internal/fsops"
	"apiscaffold/internal/tree"
)

// Options — все настройки запуска утилиты.
type Options struct {
	Base      string
	Tree      tree.Tree
	DryRun    bool
	Quiet     bool
	DirPerm   os.FileMode
	FilePerm  os.FileMode
	ExecGlobs []string

	Fs     afero.Fs  // nil — реальная ФС
	Stdout io.Writer // nil — os.Stdout
	Log    zerolog.Logger
}

// Run — главная функция приложения: проверяет описание и применяет его
// к базовому каталогу.
func Run(o Options) error {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Base == "" {
		o.Base = "."
	}

	// 1) Описание должно быть корректным ещё до первой операции с ФС.
	if err := o.Tree.Validate(); err != nil {
		return fmt.Errorf("описание структуры некорректно: %w", err)
	}

	// 2) Готовим корневой путь назначения.
	rootPath := filepath.Join(o.Base, o.Tree.Root)
	shown := rootPath
	if abs, err := filepath.Abs(rootPath); err == nil {
		shown = abs
	}
	if !o.Quiet {
		fmt.Fprintf(o.Stdout, "Создание структуры проекта в: %s\n", shown)
	}
	o.Log.Info().Str("root", shown).Bool("dry_run", o.DryRun).Msg("старт")

	// 3) Применяем описание к файловой системе.
	st, err := fsops.Apply(fsops.ApplyArgs{
		Fs:        o.Fs,
		Out:       o.Stdout,
		Log:       o.Log,
		Tree:      o.Tree,
		DestRoot:  rootPath,
		DryRun:    o.DryRun,
		Quiet:     o.Quiet,
		DirPerm:   o.DirPerm,
		FilePerm:  o.FilePerm,
		ExecGlobs: o.ExecGlobs,
	})
	if err != nil {
		o.Log.Error().Err(err).Int("dirs", st.Dirs).Int("files", st.Files).Msg("остановлено на ошибке")
		return err
	}
	o.Log.Info().Int("dirs", st.Dirs).Int("files", st.Files).Msg("готово")

	// 4) Готово.
	if !o.Quiet && !o.DryRun {
		fmt.Fprintf(o.Stdout, "\nГотово: %s (каталогов: %d, файлов: %d)\n", shown, st.Dirs, st.Files)
	}
	return nil
}
