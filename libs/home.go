package libs

import "os"

// GetHome returns the home directory of the current user, or the working
// directory when it can not be determined.
func GetHome() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}
