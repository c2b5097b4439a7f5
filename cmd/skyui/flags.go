package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func validateInputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("input file is required")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("input file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("input path %s is a directory", abs)
	}

	return nil
}

func validateFormat(format string, allowed ...string) error {
	for _, candidate := range allowed {
		if format == candidate {
			return nil
		}
	}
	return fmt.Errorf("unknown format %q (expected one of %s)", format, strings.Join(allowed, ", "))
}
