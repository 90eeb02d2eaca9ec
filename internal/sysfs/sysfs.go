// Package sysfs reads the small single-value text files exposed by
// sysfs and procfs.
package sysfs

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// ReadFirstLine returns the trimmed first line of a sysfs-style file
func ReadFirstLine(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(scanner.Text()), nil
}

// ValueFromFile returns the value of the first "key<sep>value" line in
// path, with surrounding whitespace and double quotes removed.
func ValueFromFile(path, key, sep string) (string, bool) {
	file, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, value, found := strings.Cut(line, sep)
		if !found || strings.TrimSpace(name) != key {
			continue
		}
		return strings.Trim(strings.TrimSpace(value), `"`), true
	}
	return "", false
}
