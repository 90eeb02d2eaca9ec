package gpu

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monify-labs/sysfetch/pkg/models"
)

const testDatabase = `#
#	List of PCI ID's
#

0e11  Compaq Computer Corporation
	0001  PCI to EISA Bridge
1002  AMD
	67df  Radeon RX 580
		1043 04c3  Strix RX580
		1682 c580  Radeon RX 580
	6fdf  Polaris 20 XL
10de  NVIDIA
	67df  Imaginary Clone
		1043 04c3  Wrong Board
	1c03  GP106 [GeForce GTX 1060 6GB]
		1043 85ac  GTX 1060 Strix
8086  Intel Corporation
	9a49  TigerLake-LP GT2 [Iris Xe Graphics]

C 03  Display controller
	00  VGA compatible controller
`

func writeDatabase(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pci.ids")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLookupSubsystemMatch(t *testing.T) {
	db := NewDatabase(writeDatabase(t, testDatabase))

	name, err := db.Lookup(
		models.DeviceIdentity{VendorID: "1002", DeviceID: "67df"},
		&models.SubsystemIdentity{SubvendorID: "1043", SubdeviceID: "04c3"},
	)
	require.NoError(t, err)
	assert.Equal(t, "Strix RX580", name)
}

func TestLookupDeviceWithoutSubsystemMatch(t *testing.T) {
	db := NewDatabase(writeDatabase(t, testDatabase))
	id := models.DeviceIdentity{VendorID: "1002", DeviceID: "67df"}

	name, err := db.Lookup(id, &models.SubsystemIdentity{SubvendorID: "dead", SubdeviceID: "beef"})
	require.NoError(t, err)
	assert.Equal(t, "AMD Radeon RX 580", name)

	name, err = db.Lookup(id, nil)
	require.NoError(t, err)
	assert.Equal(t, "AMD Radeon RX 580", name)
}

func TestLookupDeviceMatchDoesNotLeakIntoNextVendor(t *testing.T) {
	db := NewDatabase(writeDatabase(t, testDatabase))

	// NVIDIA declares the same device code with a matching subsystem,
	// which must not be attributed to the AMD adapter.
	name, err := db.Lookup(
		models.DeviceIdentity{VendorID: "1002", DeviceID: "6fdf"},
		&models.SubsystemIdentity{SubvendorID: "1043", SubdeviceID: "04c3"},
	)
	require.NoError(t, err)
	assert.Equal(t, "AMD Polaris 20 XL", name)
}

func TestLookupVendorResetWithoutDeviceMatch(t *testing.T) {
	content := strings.Join([]string{
		"1002  AMD",
		"\t67df  Radeon RX 580",
		"10de  NVIDIA",
		"\t1c03  GP106",
		"\t\t1043 04c3  Should Not Match",
	}, "\n")
	db := NewDatabase(writeDatabase(t, content))

	_, err := db.Lookup(
		models.DeviceIdentity{VendorID: "10de", DeviceID: "67df"},
		&models.SubsystemIdentity{SubvendorID: "1043", SubdeviceID: "04c3"},
	)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLookupSecondVendorSubsystem(t *testing.T) {
	db := NewDatabase(writeDatabase(t, testDatabase))

	name, err := db.Lookup(
		models.DeviceIdentity{VendorID: "10de", DeviceID: "1c03"},
		&models.SubsystemIdentity{SubvendorID: "1043", SubdeviceID: "85ac"},
	)
	require.NoError(t, err)
	assert.Equal(t, "GTX 1060 Strix", name)
}

func TestLookupCaseInsensitive(t *testing.T) {
	db := NewDatabase(writeDatabase(t, strings.ToUpper(testDatabase)))

	name, err := db.Lookup(models.DeviceIdentity{VendorID: "1002", DeviceID: "67df"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "AMD RADEON RX 580", name)
}

func TestLookupUnknownVendor(t *testing.T) {
	db := NewDatabase(writeDatabase(t, testDatabase))

	_, err := db.Lookup(models.DeviceIdentity{VendorID: "ffff", DeviceID: "0000"}, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLookupUnknownDevice(t *testing.T) {
	db := NewDatabase(writeDatabase(t, testDatabase))

	_, err := db.Lookup(models.DeviceIdentity{VendorID: "1002", DeviceID: "ffff"}, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLookupFirstExistingPathWins(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.ids")
	second := writeDatabase(t, "1002  Second\n\t67df  Card\n")
	third := writeDatabase(t, "1002  Third\n\t67df  Card\n")
	db := NewDatabase(missing, second, third)

	name, err := db.Lookup(models.DeviceIdentity{VendorID: "1002", DeviceID: "67df"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Second Card", name)
}

func TestLookupNoDatabase(t *testing.T) {
	dir := t.TempDir()
	db := NewDatabase(filepath.Join(dir, "a"), filepath.Join(dir, "b"))

	_, err := db.Lookup(models.DeviceIdentity{VendorID: "1002", DeviceID: "67df"}, nil)
	assert.ErrorIs(t, err, ErrNoDatabase)
}

func TestCutToken(t *testing.T) {
	token, rest := cutToken("1043 04c3  Strix RX580")
	assert.Equal(t, "1043", token)
	assert.Equal(t, "04c3  Strix RX580", rest)

	token, rest = cutToken("67df")
	assert.Equal(t, "67df", token)
	assert.Equal(t, "", rest)
}
