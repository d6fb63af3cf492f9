package osfilesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSystem_WriteAndReadFile(t *testing.T) {
	fs := New()
	tmpDir := t.TempDir()

	testPath := filepath.Join(tmpDir, "test.txt")
	testData := []byte("hello world")

	if err := fs.WriteFile(testPath, testData); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := fs.ReadFile(testPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	if string(data) != string(testData) {
		t.Errorf("expected %q, got %q", testData, data)
	}
}

func TestFileSystem_WriteFileCreatesParentDirs(t *testing.T) {
	fs := New()
	tmpDir := t.TempDir()

	testPath := filepath.Join(tmpDir, "a", "b", "c", "test.txt")
	if err := fs.WriteFile(testPath, []byte("test")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	exists, err := fs.Exists(testPath)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("expected file to exist")
	}
}

func TestFileSystem_AppendLineAccumulates(t *testing.T) {
	fs := New()
	tmpDir := t.TempDir()

	logPath := filepath.Join(tmpDir, "failed.txt")
	if err := fs.AppendLine(logPath, "a.mp4 (resize failed)"); err != nil {
		t.Fatalf("AppendLine failed: %v", err)
	}
	if err := fs.AppendLine(logPath, "b.mp4 (resize failed)"); err != nil {
		t.Fatalf("AppendLine failed: %v", err)
	}

	data, err := fs.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	want := "a.mp4 (resize failed)\nb.mp4 (resize failed)\n"
	if string(data) != want {
		t.Errorf("expected %q, got %q", want, data)
	}
}

func TestFileSystem_IsDir(t *testing.T) {
	fs := New()
	tmpDir := t.TempDir()

	isDir, err := fs.IsDir(tmpDir)
	if err != nil {
		t.Fatalf("IsDir failed: %v", err)
	}
	if !isDir {
		t.Error("expected temp dir to be a directory")
	}

	filePath := filepath.Join(tmpDir, "test.txt")
	os.WriteFile(filePath, []byte("test"), 0644)

	isDir, err = fs.IsDir(filePath)
	if err != nil {
		t.Fatalf("IsDir failed: %v", err)
	}
	if isDir {
		t.Error("expected file to not be a directory")
	}

	isDir, err = fs.IsDir(filepath.Join(tmpDir, "missing"))
	if err != nil {
		t.Fatalf("IsDir failed: %v", err)
	}
	if isDir {
		t.Error("expected missing path to not be a directory")
	}
}

func TestFileSystem_Walk(t *testing.T) {
	fs := New()
	tmpDir := t.TempDir()

	os.MkdirAll(filepath.Join(tmpDir, "sub"), 0755)
	os.WriteFile(filepath.Join(tmpDir, "a.mp4"), []byte("x"), 0644)
	os.WriteFile(filepath.Join(tmpDir, "sub", "b.mp4"), []byte("x"), 0644)

	var files []string
	err := fs.Walk(tmpDir, func(path string, isDir bool) error {
		if !isDir {
			rel, _ := filepath.Rel(tmpDir, path)
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d: %v", len(files), files)
	}
	if files[0] != "a.mp4" || files[1] != filepath.Join("sub", "b.mp4") {
		t.Errorf("unexpected walk order: %v", files)
	}
}

func TestFileSystem_Remove(t *testing.T) {
	fs := New()
	tmpDir := t.TempDir()

	testPath := filepath.Join(tmpDir, "test.txt")
	os.WriteFile(testPath, []byte("test"), 0644)

	if err := fs.Remove(testPath); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	exists, _ := fs.Exists(testPath)
	if exists {
		t.Error("expected file to be removed")
	}
}
