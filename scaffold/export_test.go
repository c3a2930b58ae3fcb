package scaffold

import "io/fs"

// SetWriteFile replaces how s writes files.
func SetWriteFile(s *Scaffolder, fn func(string, []byte, fs.FileMode) error) {
	s.writeFile = fn
}
