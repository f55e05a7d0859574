package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"apiscaffold/internal/app"
	"apiscaffold/internal/config"
	"apiscaffold/internal/layout"
	"apiscaffold/internal/logging"
	"apiscaffold/internal/tree"
)

// Версию можно переопределить через -ldflags "-X main.version=1.0.0"
var version = "dev"

func main() {
	cfgPath := flag.String("config", config.DefaultPath, "INI-файл с настройками (отсутствие файла не ошибка)")
	dry := flag.Bool("dry", false, "Dry-run: только показать, что будет создано")
	verbose := flag.Bool("v", false, "Подробный вывод (уровень логов debug)")
	quiet := flag.Bool("q", false, "Тихий режим (подавить строки прогресса)")
	dpermStr := flag.String("dperm", "", "Права для каталогов (восьмерично, например 0755)")
	fpermStr := flag.String("fperm", "", "Права для файлов (восьмерично, например 0644)")
	execGlob := flag.String("exec-glob", "", "Список glob-шаблонов для исполняемых файлов (через запятую)")
	logLevel := flag.String("log-level", "", "Уровень логов: debug, info, warn, error")
	logJSON := flag.Bool("log-json", false, "Логи в JSON вместо консольного формата")
	showTree := flag.Bool("tree", false, "Напечатать описание структуры и выйти")

	help := flag.Bool("help", false, "Показать справку и выйти")
	helpShort := flag.Bool("h", false, "Показать справку и выйти (синоним -help)")
	showVersion := flag.Bool("version", false, "Показать версию и выйти")

	flag.Usage = func() {
		name := filepath.Base(os.Args[0])
		fmt.Fprintf(os.Stdout, `
%s — создаёт пустой каркас проекта %s: каталоги и файлы нулевой длины.

Использование:
  %s [флаги] [БАЗОВЫЙ_КАТАЛОГ]

Проект создаётся в БАЗОВЫЙ_КАТАЛОГ/%s (по умолчанию — текущий каталог).
Повторный запуск безопасен: каталоги остаются, файлы усекаются до нуля.

Флаги:
`, name, layout.ProjectName, name, layout.ProjectName)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stdout, `
Примеры:
  %[1]s
  %[1]s -dry ./dst
  %[1]s -tree
  %[1]s -config apiscaffold.ini -log-json /tmp/work
`, name)
	}

	flag.Parse()

	if *help || *helpShort {
		flag.Usage()
		return
	}
	if *showVersion {
		fmt.Println(version)
		return
	}

	t := layout.FinanceAPI()
	if *showTree {
		if err := tree.Render(os.Stdout, t); err != nil {
			fail(err)
		}
		return
	}

	if flag.NArg() > 1 {
		fail(fmt.Errorf("ожидается не более одного базового каталога, получено %d", flag.NArg()))
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fail(err)
	}

	// Явно заданные флаги важнее файла настроек.
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["dry"] {
		cfg.DryRun = *dry
	}
	if set["dperm"] {
		if cfg.DirPerm, err = config.ParsePerm(*dpermStr, cfg.DirPerm); err != nil {
			fail(fmt.Errorf("неверные права -dperm: %w", err))
		}
	}
	if set["fperm"] {
		if cfg.FilePerm, err = config.ParsePerm(*fpermStr, cfg.FilePerm); err != nil {
			fail(fmt.Errorf("неверные права -fperm: %w", err))
		}
	}
	if set["exec-glob"] {
		cfg.ExecGlobs = config.SplitGlobs(*execGlob)
	}
	if set["log-level"] {
		cfg.LogLevel = *logLevel
	} else if *verbose {
		cfg.LogLevel = "debug"
	}
	if set["log-json"] {
		cfg.LogJSON = *logJSON
	}
	if flag.NArg() == 1 {
		cfg.Out = flag.Arg(0)
	}

	log, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogJSON)
	if err != nil {
		fail(err)
	}

	opts := app.Options{
		Base:      cfg.Out,
		Tree:      t,
		DryRun:    cfg.DryRun,
		Quiet:     *quiet,
		DirPerm:   cfg.DirPerm,
		FilePerm:  cfg.FilePerm,
		ExecGlobs: cfg.ExecGlobs,
		Log:       log.With().Str("version", version).Logger(),
	}

	if err := app.Run(opts); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "ошибка: %v\n", err)
	os.Exit(1)
}
