package platform

import "os"

// DefaultDirPermissions is the mode for directories created by the tool.
const DefaultDirPermissions = 0755

// CreateDirectoryIfNotExists creates directory if it doesn't exist.
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}
