package cache

import (
	"path"

	"github.com/adrg/xdg"
)

// Dir returns the directory where archctl keeps its log files
func Dir() string {
	return path.Join(xdg.CacheHome, "archctl")
}
