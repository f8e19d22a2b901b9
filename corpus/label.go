package corpus

import "path/filepath"

// LabelFunc derives a row label from a tablature file path
type LabelFunc func(path string) string

// FolderLabel labels a file by the name of its immediate parent directory,
// so "samples/Am/song.txt" is labeled "Am".
func FolderLabel(path string) string {
	return filepath.Base(filepath.Dir(filepath.Clean(path)))
}
