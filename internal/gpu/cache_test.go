package gpu

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monify-labs/sysfetch/internal/config"
	"github.com/monify-labs/sysfetch/pkg/models"
)

// fakeProber returns fixed identities
type fakeProber struct {
	id        *models.DeviceIdentity
	subsystem *models.SubsystemIdentity
}

func (f *fakeProber) ProbeDeviceIdentity() (models.DeviceIdentity, bool) {
	if f.id == nil {
		return models.DeviceIdentity{}, false
	}
	return *f.id, true
}

func (f *fakeProber) ProbeSubsystemIdentity() (models.SubsystemIdentity, bool) {
	if f.subsystem == nil {
		return models.SubsystemIdentity{}, false
	}
	return *f.subsystem, true
}

// fakeEnumerator counts how often the slow path runs. When owner is set
// it only names that adapter, like a driver that sees a single card.
type fakeEnumerator struct {
	name  string
	owner *models.DeviceIdentity
	calls int
	asked []models.DeviceIdentity
}

func (f *fakeEnumerator) PrettyName(id models.DeviceIdentity) (string, bool) {
	f.calls++
	f.asked = append(f.asked, id)
	if f.owner != nil && *f.owner != id {
		return "", false
	}
	return f.name, f.name != ""
}

func newTestStore(t *testing.T, prober Prober, enumerator Enumerator) (*Store, *bytes.Buffer) {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "sysfetch", "cache.yaml"), prober, enumerator)
	notices := &bytes.Buffer{}
	store.notices = notices
	return store, notices
}

func TestStoreRoundTrip(t *testing.T) {
	prober := &fakeProber{id: &models.DeviceIdentity{VendorID: "1002", DeviceID: "67df"}}
	enumerator := &fakeEnumerator{name: "AMD Radeon RX 580"}
	store, notices := newTestStore(t, prober, enumerator)

	written, err := store.Write()
	require.NoError(t, err)
	assert.Contains(t, notices.String(), "Created cache at "+store.Path())

	read, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, written, read)
	assert.Equal(t, &models.CacheRecord{
		GPUNamePretty: "AMD Radeon RX 580",
		GPUVendorID:   "1002",
		GPUDeviceID:   "67df",
	}, read)
}

func TestStoreWriteWithoutHardware(t *testing.T) {
	enumerator := &fakeEnumerator{name: "NVIDIA GeForce RTX 3060"}
	store, _ := newTestStore(t, &fakeProber{}, enumerator)

	record, err := store.Write()
	require.NoError(t, err)
	assert.Equal(t, &models.CacheRecord{}, record)
	assert.Zero(t, enumerator.calls)

	read, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, &models.CacheRecord{}, read)
}

func TestStoreWriteAsksForDetectedAdapter(t *testing.T) {
	igpu := models.DeviceIdentity{VendorID: "8086", DeviceID: "9a49"}
	enumerator := &fakeEnumerator{
		name:  "NVIDIA GeForce RTX 3060 Laptop GPU",
		owner: &models.DeviceIdentity{VendorID: "10de", DeviceID: "2520"},
	}
	store, _ := newTestStore(t, &fakeProber{id: &igpu}, enumerator)

	record, err := store.Write()
	require.NoError(t, err)
	assert.Equal(t, []models.DeviceIdentity{igpu}, enumerator.asked)
	assert.Equal(t, &models.CacheRecord{GPUVendorID: "8086", GPUDeviceID: "9a49"}, record)
}

func TestStoreReadMissing(t *testing.T) {
	store, _ := newTestStore(t, &fakeProber{}, &fakeEnumerator{})

	_, err := store.Read()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStoreReadCorrupt(t *testing.T) {
	store, _ := newTestStore(t, &fakeProber{}, &fakeEnumerator{})
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0755))

	for name, content := range map[string]string{
		"garbage":     "gpu_name_pretty: [unterminated\n",
		"missing key": "gpu_name_pretty: AMD\ngpu_vendor_id: \"1002\"\n",
		"unknown key": "gpu_name_pretty: AMD\ngpu_vendor_id: \"1002\"\ngpu_device_id: 67df\nextra: 1\n",
		"empty":       "",
	} {
		require.NoError(t, os.WriteFile(store.Path(), []byte(content), 0644))
		_, err := store.Read()
		assert.Error(t, err, name)
	}
}

func TestStoreWriteFailureReturnsRecord(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	prober := &fakeProber{id: &models.DeviceIdentity{VendorID: "10de", DeviceID: "1c03"}}
	store := NewStore(filepath.Join(blocker, "cache.yaml"), prober, &fakeEnumerator{name: "NVIDIA GTX 1060"})

	record, err := store.Write()
	assert.Error(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "NVIDIA GTX 1060", record.GPUNamePretty)
}

func TestCachePath(t *testing.T) {
	assert.Equal(t, config.FallbackCachePath, CachePath(""))
	assert.Equal(t, filepath.Join("/tmp/x", config.CacheFileName), CachePath("/tmp/x"))
}
