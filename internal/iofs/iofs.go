// Package iofs provides file system operations: application directories,
// discovery of input JSON files and reading of JSON lines.
package iofs

import (
	"bufio"
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar"
	"github.com/gnames/gnfmt"
	"github.com/gnames/playetl/pkg/config"
)

// maxLineSize limits the size of one JSON line. Log lines are well
// under 1KB, the limit only guards against a file without newlines.
const maxLineSize = 16 * 1024 * 1024

// EnsureDirs creates config and log directories of the application.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// FindJSONFiles returns absolute paths of all *.json files under root,
// at any depth, sorted lexicographically. Hidden files (names starting
// with a dot, like macOS "._" resource forks) are skipped, files inside
// hidden directories are kept. An existing directory without matches
// gives an empty slice. A missing root is an error that wraps
// fs.ErrNotExist.
func FindJSONFiles(root string) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, FindFilesError(root, err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, DirNotFoundError(root, err)
		}
		return nil, FindFilesError(root, err)
	}
	if !info.IsDir() {
		return nil, DirNotFoundError(root,
			&fs.PathError{Op: "stat", Path: absRoot, Err: fs.ErrNotExist})
	}

	var res []string
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ok, err := isJSONFile(d.Name())
		if err != nil {
			return err
		}
		if ok {
			res = append(res, path)
		}
		return nil
	})
	if err != nil {
		return nil, FindFilesError(root, err)
	}

	sort.Strings(res)
	if res == nil {
		res = []string{}
	}
	return res, nil
}

// isJSONFile matches a base name against *.json, ignoring hidden files.
func isJSONFile(name string) (bool, error) {
	if strings.HasPrefix(name, ".") {
		return false, nil
	}
	return doublestar.Match("*.json", name)
}

// ReadJSONLines decodes every non-empty line of a file into T.
// A file with one pretty-printed JSON document is not supported,
// every record must occupy exactly one line.
func ReadJSONLines[T any](path string) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ReadFileError(path, err)
	}
	defer f.Close()

	enc := gnfmt.GNjson{}
	var res []T

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	var lineNum int
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		var rec T
		if err = enc.Decode(line, &rec); err != nil {
			return nil, ParseJSONError(path, lineNum, err)
		}
		res = append(res, rec)
	}
	if err = scanner.Err(); err != nil {
		return nil, ReadFileError(path, err)
	}
	return res, nil
}
