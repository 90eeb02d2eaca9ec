// Package gpu resolves a human readable name for the GPU adapter.
//
// The name is taken from a cache written once by a slow generic
// enumeration backend. The cache is trusted only while its vendor and
// device ids equal the ones probed on this run; otherwise the name is
// looked up in the pci.ids database instead.
package gpu

import (
	"github.com/sirupsen/logrus"

	"github.com/monify-labs/sysfetch/pkg/models"
)

// Resolver combines probe, cache and database into one lookup
type Resolver struct {
	prober Prober
	store  *Store
	db     *Database
	log    *logrus.Entry
}

// NewResolver creates a resolver
func NewResolver(prober Prober, store *Store, db *Database, log *logrus.Entry) *Resolver {
	return &Resolver{
		prober: prober,
		store:  store,
		db:     db,
		log:    log,
	}
}

// Resolve returns the display name of the GPU. It reports false when no
// adapter is detected or neither the cache nor the database knows it.
// forceRefresh regenerates the cache through the slow backend.
func (r *Resolver) Resolve(forceRefresh bool) (string, bool) {
	info, ok := r.ResolveInfo(forceRefresh)
	if !ok {
		return "", false
	}
	return info.Name, true
}

// ResolveInfo is Resolve that also returns the identity the name was
// resolved for, so callers need not read the ids again.
func (r *Resolver) ResolveInfo(forceRefresh bool) (*models.GPUInfo, bool) {
	id, ok := r.prober.ProbeDeviceIdentity()
	if !ok {
		r.log.Debug("No GPU adapter detected")
		return nil, false
	}

	name, ok := r.resolveName(id, forceRefresh)
	if !ok {
		return nil, false
	}
	return &models.GPUInfo{Name: name, Identity: id}, true
}

func (r *Resolver) resolveName(id models.DeviceIdentity, forceRefresh bool) (string, bool) {
	record := r.cachedRecord(forceRefresh)
	if record != nil && record.Matches(id) && record.GPUNamePretty != "" {
		return record.GPUNamePretty, true
	}

	// The cache is not rewritten here, so a stable but mismatched adapter
	// repeats this scan on every run.
	// TODO: decide whether a database hit should refresh the cache record.
	r.log.WithFields(logrus.Fields{
		"vendor_id": id.VendorID,
		"device_id": id.DeviceID,
	}).Debug("Cache does not match current adapter, using id database")

	var subsystem *models.SubsystemIdentity
	if sub, ok := r.prober.ProbeSubsystemIdentity(); ok {
		subsystem = &sub
	}

	name, err := r.db.Lookup(id, subsystem)
	if err != nil {
		r.log.WithError(err).Debug("GPU name lookup failed")
		return "", false
	}
	return name, true
}

// cachedRecord returns the stored record, regenerating it when it cannot
// be read or a refresh is forced. Write failures fall back to the fresh
// in-memory record.
func (r *Resolver) cachedRecord(forceRefresh bool) *models.CacheRecord {
	record, err := r.store.Read()
	if err == nil && !forceRefresh {
		return record
	}
	if err != nil {
		r.log.WithError(err).Debug("Cache unavailable, regenerating")
	}

	fresh, err := r.store.Write()
	if err != nil {
		r.log.WithError(err).WithField("path", r.store.Path()).Warn("Failed to write GPU cache")
		return fresh
	}

	record, err = r.store.Read()
	if err != nil {
		r.log.WithError(err).Warn("Failed to read back GPU cache")
		return fresh
	}
	return record
}
