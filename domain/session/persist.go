package session

import (
	"fmt"
	"os"
	"strings"
)

// tokenKey is the settings-file key this adapter manages. All other lines
// in the file are preserved verbatim.
const tokenKey = "SESSION_ID"

// SaveToken mirrors the token into the line-oriented key=value settings
// file at path. The SESSION_ID line is replaced in place when present,
// appended otherwise; a missing file is created.
func SaveToken(path, token string) error {
	line := tokenKey + "=" + token

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("reading settings file: %w", err)
		}
		if err := os.WriteFile(path, []byte(line+"\n"), 0o644); err != nil {
			return fmt.Errorf("writing settings file: %w", err)
		}
		return nil
	}

	lines := strings.Split(string(data), "\n")
	replaced := false
	for i, l := range lines {
		if strings.HasPrefix(strings.TrimSpace(l), tokenKey+"=") {
			lines[i] = line
			replaced = true
		}
	}
	if !replaced {
		// Append before a trailing empty line when the file ends with a
		// newline, so the file keeps ending with one.
		if n := len(lines); n > 0 && lines[n-1] == "" {
			lines = append(lines[:n-1], line, "")
		} else {
			lines = append(lines, line)
		}
	}

	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}
	return nil
}
