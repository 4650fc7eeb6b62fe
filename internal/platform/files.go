package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
)

// Operating system constants
const (
	OSAndroid = "android"
	OSIOS     = "ios"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Form file locations
const (
	AppDirName   = "formkit"
	FormsDirName = "forms"
)

// FormFileExtensions lists the extensions recognised as form files
var FormFileExtensions = []string{".yaml", ".yml"}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// GetFormsDir returns the directory where user form files are kept
func GetFormsDir() (string, error) {
	// Mobile builds have no user config dir; Fyne storage is used there instead
	if runtime.GOOS == OSAndroid || runtime.GOOS == OSIOS {
		return "", fmt.Errorf("forms directory is not available on %s", runtime.GOOS)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}

	return filepath.Join(configDir, AppDirName, FormsDirName), nil
}

// IsFormFile returns true if the path has a form file extension
func IsFormFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, known := range FormFileExtensions {
		if ext == known {
			return true
		}
	}
	return false
}

// ListFormFiles returns the form files in dir sorted by name. A missing
// directory yields an empty list.
func ListFormFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read forms directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !IsFormFile(entry.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}
