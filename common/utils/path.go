package utils

import (
	"path"
	"path/filepath"

	"github.com/kardianos/osext"
)

func GetExecutableDir() string {
	exfolder, err := osext.ExecutableFolder()
	Check(err, "Cannot get executable folder")

	return exfolder
}

// GetAbsoluteDir resolves relative against the executable folder; absolute paths are returned as is.
func GetAbsoluteDir(relative string) string {
	if filepath.IsAbs(relative) {
		return relative
	}

	return path.Join(GetExecutableDir(), relative)
}
