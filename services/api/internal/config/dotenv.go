package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// dotEnvMaxParents bounds how far up the tree LoadDotEnv looks.
const dotEnvMaxParents = 6

// LoadDotEnv fills unset variables from the nearest .env in the working
// directory or one of its parents. It only logs failures: a missing or
// broken file leaves configuration to the real environment.
func LoadDotEnv(logger logrus.FieldLogger) {
	wd, err := os.Getwd()
	if err != nil {
		logger.WithError(err).Warn("dotenv: cannot resolve working directory")
		return
	}
	path, ok := nearestDotEnv(wd)
	if !ok {
		logger.Debug("dotenv: no .env found")
		return
	}

	log := logger.WithField("path", path)
	vars, err := readDotEnv(path)
	if err != nil {
		log.WithError(err).Warn("dotenv: ignoring unreadable file")
		return
	}
	set := applyDotEnv(vars, os.LookupEnv, os.Setenv)
	log.WithField("vars", set).Info("dotenv: loaded")
}

func nearestDotEnv(dir string) (string, bool) {
	for range dotEnvMaxParents {
		candidate := filepath.Join(dir, ".env")
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false
}

func readDotEnv(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()
	return parseDotEnv(f)
}

// parseDotEnv reads KEY=VALUE lines. Blank lines, comments and lines without
// "=" are skipped; an "export " prefix and matching outer quotes are dropped.
func parseDotEnv(r io.Reader) (map[string]string, error) {
	vars := make(map[string]string)
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := sc.Text()
		if n == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			continue
		}
		key, value, found := strings.Cut(strings.TrimPrefix(line, "export "), "=")
		key = strings.TrimSpace(key)
		if !found || key == "" {
			continue
		}
		vars[key] = unquote(strings.TrimSpace(value))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan dotenv: %w", err)
	}
	return vars, nil
}

// applyDotEnv sets each variable the environment does not already define and
// returns how many it set.
func applyDotEnv(vars map[string]string, lookup func(string) (string, bool), set func(string, string) error) int {
	n := 0
	for k, v := range vars {
		if _, exists := lookup(k); exists {
			continue
		}
		if set(k, v) == nil {
			n++
		}
	}
	return n
}

func unquote(v string) string {
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		return v[1 : len(v)-1]
	}
	return v
}
