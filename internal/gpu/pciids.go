package gpu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/monify-labs/sysfetch/pkg/models"
)

var (
	// ErrNotFound is returned when the database has no entry for an adapter
	ErrNotFound = errors.New("gpu not found in id database")

	// ErrNoDatabase is returned when none of the database paths exist
	ErrNoDatabase = errors.New("no pci id database found")
)

// DefaultDatabasePaths are the conventional pci.ids locations, in order
var DefaultDatabasePaths = []string{
	"/usr/share/hwdata/pci.ids",
	"/usr/share/misc/pci.ids",
}

// Database resolves adapter names from a pci.ids style text file. The
// file is scanned on every lookup, never indexed.
type Database struct {
	paths []string
}

// NewDatabase returns a Database reading the first existing path
func NewDatabase(paths ...string) *Database {
	if len(paths) == 0 {
		paths = DefaultDatabasePaths
	}
	return &Database{paths: paths}
}

// Lookup resolves target (and optionally its subsystem) to a name
func (d *Database) Lookup(target models.DeviceIdentity, subsystem *models.SubsystemIdentity) (string, error) {
	file, err := d.open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	name, err := scanDatabase(file, target, subsystem)
	if err != nil {
		return "", fmt.Errorf("%s: %w", file.Name(), err)
	}
	return name, nil
}

// open returns the first database path that can be opened
func (d *Database) open() (*os.File, error) {
	for _, path := range d.paths {
		if file, err := os.Open(path); err == nil {
			return file, nil
		}
	}
	return nil, ErrNoDatabase
}

// scanDatabase walks the vendor -> device -> subsystem hierarchy.
//
//	1002  Advanced Micro Devices, Inc. [AMD/ATI]
//		67df  Ellesmere [Radeon RX 470/480/570/570X/580/580X/590]
//			1043 04c3  ROG Strix RX580
//
// Every vendor header resets the device match, whether or not the new
// vendor matches. A subsystem match returns at once; otherwise the first
// matched vendor and device names are joined.
func scanDatabase(r io.Reader, target models.DeviceIdentity, subsystem *models.SubsystemIdentity) (string, error) {
	var (
		vendorMatched bool
		deviceMatched bool
		vendorName    string
		resolved      string
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		switch {
		case strings.HasPrefix(line, "\t\t"):
			if !vendorMatched || !deviceMatched || subsystem == nil {
				continue
			}
			subvendor, rest := cutToken(line[2:])
			subdevice, name := cutToken(rest)
			if strings.EqualFold(subvendor, subsystem.SubvendorID) && strings.EqualFold(subdevice, subsystem.SubdeviceID) {
				return name, nil
			}

		case strings.HasPrefix(line, "\t"):
			if !vendorMatched {
				continue
			}
			deviceID, name := cutToken(line[1:])
			deviceMatched = strings.EqualFold(deviceID, target.DeviceID)
			if deviceMatched && resolved == "" {
				resolved = vendorName + " " + name
			}

		default:
			// The block that produced the device match is over; nothing
			// later can be a more specific answer.
			if resolved != "" {
				return resolved, nil
			}
			deviceMatched = false
			vendorID, name := cutToken(line)
			vendorMatched = strings.EqualFold(vendorID, target.VendorID)
			if vendorMatched {
				vendorName = name
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read id database: %w", err)
	}
	if resolved == "" {
		return "", ErrNotFound
	}
	return resolved, nil
}

// cutToken splits off the leading whitespace-delimited token and returns
// it with the trimmed remainder.
func cutToken(s string) (token, rest string) {
	s = strings.TrimLeft(s, " \t")
	end := strings.IndexAny(s, " \t")
	if end < 0 {
		return s, ""
	}
	return s[:end], strings.TrimSpace(s[end:])
}
