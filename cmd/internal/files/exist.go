package files

import (
	"io"
	"os"
)

const Stdin = "-"

func ExistFile(path string) (ok bool) {
	_, err := os.Stat(path)
	if err == nil {
		ok = true
		return
	}
	if os.IsNotExist(err) {
		return
	}
	ok = true
	return
}

// Read reads path, or standard input when path is "-".
func Read(path string) (p []byte, err error) {
	if path == Stdin {
		p, err = io.ReadAll(os.Stdin)
		return
	}
	p, err = os.ReadFile(path)
	return
}
