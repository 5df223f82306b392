package reporting

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/coursesqa/courses-api-tests/config"
)

// EnvironmentFile is the name report viewers look for.
const EnvironmentFile = "environment.properties"

// WriteEnvironmentFile writes the settings, the OS and the Go version as key=value lines to
// dir/environment.properties, creating dir if needed.
func WriteEnvironmentFile(dir string, cfg *config.Config) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}
	items := cfg.Properties()
	items = append(items,
		fmt.Sprintf("os_info=%s, %s", runtime.GOOS, runtime.GOARCH),
		"go_version="+runtime.Version(),
	)
	path := filepath.Join(dir, EnvironmentFile)
	if err := os.WriteFile(path, []byte(strings.Join(items, "\n")), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
