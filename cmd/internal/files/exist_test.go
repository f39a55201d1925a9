package files_test

import (
	"github.com/aacfactory/cryptopals/cmd/internal/files"
	"os"
	"path/filepath"
	"testing"
)

func TestRead(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "plain.txt")
	if files.ExistFile(name) {
		t.Error("file must not exist yet")
		return
	}
	if err := os.WriteFile(name, []byte("YELLOW SUBMARINE"), 0644); err != nil {
		t.Error(err)
		return
	}
	if !files.ExistFile(name) {
		t.Error("file must exist")
		return
	}
	p, err := files.Read(name)
	if err != nil {
		t.Error(err)
		return
	}
	if string(p) != "YELLOW SUBMARINE" {
		t.Errorf("unexpected content %q", p)
	}
}
