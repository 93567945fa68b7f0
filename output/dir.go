package output

import "os"
import "errors"
import "io/fs"

// Returned by [EnsureDir]() when the path is already taken by
// something that isn't a directory. The existing file is never
// modified.
type NotDirError struct {
	Path string
}

func (self *NotDirError) Error() string {
	return "'" + self.Path + "' already exists and is not a directory"
}

// Returned by [EnsureDir]() when the directory doesn't exist and
// can't be created.
type CreateDirError struct {
	Path string
	Err  error
}

func (self *CreateDirError) Error() string {
	return "failed to create directory '" + self.Path + "': " + self.Err.Error()
}

func (self *CreateDirError) Unwrap() error { return self.Err }

// Makes sure that the given path is a directory, creating it if
// necessary. Only the last path element is created; missing parents
// make the creation fail.
func EnsureDir(path string) error {
	info, err := os.Stat(path)
	if err == nil {
		if !info.IsDir() { return &NotDirError{ Path: path } }
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return &CreateDirError{ Path: path, Err: err }
	}

	err = os.Mkdir(path, 0o755)
	if err != nil { return &CreateDirError{ Path: path, Err: err } }
	return nil
}
