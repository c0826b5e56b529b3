package iofs

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/playetl/pkg/errcode"
)

func CreateDirError(dir string, err error) error {
	msg := "Cannot create %s"
	vars := []any{dir}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot create directory: %w",
			fn.Name(), err),
	}
}

func CopyFileError(file string, err error) error {
	msg := "Cannot write config file to %s"
	vars := []any{file}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CopyFileError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot copy file: %w",
			fn.Name(), err),
	}
}

func ReadFileError(path string, err error) error {
	msg := "Cannot read <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReadFileError,
		Err: fmt.Errorf("from %s: cannot read %s: %w",
			fn.Name(), path, err),
		Msg:  msg,
		Vars: vars,
	}
}

// DirNotFoundError is returned when an input root directory does not
// exist. The wrapped error matches fs.ErrNotExist.
func DirNotFoundError(dir string, err error) error {
	msg := `Directory <em>%s</em> does not exist

<em>How to fix:</em>
  Set data.song_dir and data.log_dir in config.yaml
  or use --song-dir and --log-dir flags`
	return &gn.Error{
		Code: errcode.DirNotFoundError,
		Msg:  msg,
		Vars: []any{dir},
		Err:  fmt.Errorf("directory %s not found: %w", dir, err),
	}
}

// FindFilesError is returned when the directory tree cannot be walked.
func FindFilesError(dir string, err error) error {
	return &gn.Error{
		Code: errcode.FindFilesError,
		Msg:  "Cannot list JSON files in <em>%s</em>",
		Vars: []any{dir},
		Err:  fmt.Errorf("cannot find files in %s: %w", dir, err),
	}
}

// ParseJSONError is returned when a line of an input file is not
// a valid JSON record.
func ParseJSONError(path string, line int, err error) error {
	return &gn.Error{
		Code: errcode.ParseJSONError,
		Msg:  "Cannot parse JSON in <em>%s</em>, line %d",
		Vars: []any{path, line},
		Err: fmt.Errorf("cannot parse %s at line %d: %w",
			path, line, err),
	}
}
