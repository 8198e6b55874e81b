package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()

	testDir := filepath.Join(tempDir, "test", "nested", "directory")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatal("Test directory should not exist initially")
	}

	// Create directory
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	// Directory should exist now
	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Error("Directory should exist after creation")
	}

	// Calling again should not error
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Errorf("Creating existing directory should not error: %v", err)
	}
}

func TestGetConfigDir(t *testing.T) {
	dir, err := GetConfigDir()
	if err != nil {
		t.Skipf("no user config dir on this system: %v", err)
	}

	if !strings.HasSuffix(dir, AppDirName) {
		t.Errorf("Config dir should end with %s, got: %s", AppDirName, dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	tempDir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to chdir: %v", err)
	}
	defer os.Chdir(wd)

	name := "find-config-test.yaml"
	if found := FindConfigFile(name); found != "" {
		t.Errorf("Expected no config file, got %s", found)
	}

	if err := os.WriteFile(name, []byte("language: en\n"), 0o600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	if found := FindConfigFile(name); found != name {
		t.Errorf("Expected %s in working directory, got %s", name, found)
	}

	// Directories are not config files
	if err := os.Mkdir("dir.yaml", 0o755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	if found := FindConfigFile("dir.yaml"); found != "" {
		t.Errorf("Directory should not be returned as config file, got %s", found)
	}
}
