package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/ini.v1"
)

// DefaultPath — файл настроек, который читается, если не задан -config.
const DefaultPath = "apiscaffold.ini"

// EnvLogLevel переопределяет уровень логирования из файла.
const EnvLogLevel = "APISCAFFOLD_LOG_LEVEL"

// Config — настройки запуска, собранные из файла и окружения.
type Config struct {
	Out       string
	DirPerm   os.FileMode
	FilePerm  os.FileMode
	ExecGlobs []string
	DryRun    bool
	LogLevel  string
	LogJSON   bool
}

// Default: текущий каталог, каталоги 0755, файлы 0644, уровень info.
func Default() Config {
	return Config{
		Out:      ".",
		DirPerm:  0o755,
		FilePerm: 0o644,
		LogLevel: "info",
	}
}

// Load читает INI-файл path поверх значений по умолчанию. Отсутствующий
// файл — не ошибка. Перед чтением окружения подгружается .env, если он есть.
//
//	[scaffold]
//	out       = ./dst
//	dir_perm  = 0755
//	file_perm = 0644
//	exec_glob = *.sh,bin/*
//	dry_run   = false
//
//	[log]
//	level = debug
//	json  = true
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		f, err := ini.LooseLoad(path)
		if err != nil {
			return cfg, fmt.Errorf("не удалось прочитать настройки %q: %w", path, err)
		}
		if err := apply(&cfg, f); err != nil {
			return cfg, fmt.Errorf("настройки %q: %w", path, err)
		}
	}

	if lvl := strings.TrimSpace(os.Getenv(EnvLogLevel)); lvl != "" {
		cfg.LogLevel = lvl
	}
	return cfg, nil
}

func apply(cfg *Config, f *ini.File) error {
	sc := f.Section("scaffold")
	if sc.HasKey("out") {
		if out := strings.TrimSpace(sc.Key("out").String()); out != "" {
			cfg.Out = out
		}
	}
	if sc.HasKey("dir_perm") {
		p, err := ParsePerm(sc.Key("dir_perm").String(), cfg.DirPerm)
		if err != nil {
			return fmt.Errorf("dir_perm: %w", err)
		}
		cfg.DirPerm = p
	}
	if sc.HasKey("file_perm") {
		p, err := ParsePerm(sc.Key("file_perm").String(), cfg.FilePerm)
		if err != nil {
			return fmt.Errorf("file_perm: %w", err)
		}
		cfg.FilePerm = p
	}
	if sc.HasKey("exec_glob") {
		cfg.ExecGlobs = SplitGlobs(sc.Key("exec_glob").String())
	}
	cfg.DryRun = sc.Key("dry_run").MustBool(cfg.DryRun)

	lg := f.Section("log")
	cfg.LogLevel = strings.TrimSpace(lg.Key("level").MustString(cfg.LogLevel))
	cfg.LogJSON = lg.Key("json").MustBool(cfg.LogJSON)
	return nil
}

// ParsePerm разбирает права доступа; пустая строка даёт def.
func ParsePerm(s string, def os.FileMode) (os.FileMode, error) {
	ss := strings.TrimSpace(s)
	if ss == "" {
		return def, nil
	}
	// base=0 понимает 0755/0o755; "755" без префикса тоже считаем восьмеричным
	if !strings.HasPrefix(ss, "0") {
		ss = "0" + ss
	}
	u, err := strconv.ParseUint(ss, 0, 32)
	if err != nil {
		return 0, err
	}
	if u > 0o777 {
		return 0, fmt.Errorf("права вне диапазона: %s", s)
	}
	return os.FileMode(u), nil
}

// SplitGlobs делит список шаблонов через запятую, пропуская пустые.
func SplitGlobs(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
