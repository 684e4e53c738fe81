package device

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/imdario/mergo"
	"github.com/robgonnella/yunmon/internal/discovery"
	"github.com/robgonnella/yunmon/internal/exception"
	"github.com/robgonnella/yunmon/internal/logger"
	"gorm.io/datatypes"
)

// HistoryService represents our device.Service implementation
type HistoryService struct {
	repo   Repo
	retain int
	log    logger.Logger
}

// NewService returns a new instance of HistoryService. Only the newest
// retain snapshots are kept, zero keeps all of them.
func NewService(repo Repo, retain int) *HistoryService {
	return &HistoryService{
		repo:   repo,
		retain: retain,
		log:    logger.New().With("device-history"),
	}
}

// RecordSnapshot updates the record of every device in the snapshot and
// stores the snapshot itself
func (s *HistoryService) RecordSnapshot(snapshot discovery.Snapshot, takenAt time.Time) error {
	for _, key := range snapshot.Keys() {
		d := snapshot[key]

		rec := &Record{
			Key:       key,
			IP:        d.IP,
			Mask:      d.Mask,
			MAC:       d.MAC,
			FirstSeen: takenAt,
			LastSeen:  takenAt,
		}

		existing, err := s.repo.GetDeviceByKey(key)

		if err != nil && !errors.Is(err, exception.ErrRecordNotFound) {
			return err
		}

		if existing != nil {
			rec.FirstSeen = existing.FirstSeen

			// keep last known attributes when the current cycle has none
			if err := mergo.Merge(rec, existing); err != nil {
				return err
			}
		}

		if _, err := s.repo.SaveDevice(rec); err != nil {
			return err
		}
	}

	devices, err := json.Marshal(snapshot)

	if err != nil {
		return err
	}

	_, err = s.repo.AddSnapshot(&SnapshotModel{
		TakenAt: takenAt,
		Devices: datatypes.JSON(devices),
	})

	if err != nil {
		return err
	}

	s.log.Debug().Int("count", len(snapshot)).Msg("recorded snapshot")

	if s.retain > 0 {
		return s.repo.PruneSnapshots(s.retain)
	}

	return nil
}

// GetAll returns every recorded device
func (s *HistoryService) GetAll() ([]*Record, error) {
	return s.repo.GetAllDevices()
}

// Get returns a single recorded device
func (s *HistoryService) Get(key string) (*Record, error) {
	return s.repo.GetDeviceByKey(key)
}

// GetAllInTargets returns all recorded devices that have ips within the
// provided list of network targets. Targets are either CIDR blocks or
// single ips. Invalid targets return an error wrapping
// exception.ErrInvalidTarget.
func (s *HistoryService) GetAllInTargets(targets []string) ([]*Record, error) {
	networks, err := parseTargets(targets)

	if err != nil {
		return nil, err
	}

	all, err := s.GetAll()

	if err != nil {
		return nil, err
	}

	result := []*Record{}

	for _, rec := range all {
		ip := net.ParseIP(rec.IP)

		if ip == nil {
			continue
		}

		for _, n := range networks {
			if n.Contains(ip) {
				result = append(result, rec)
				break
			}
		}
	}

	return result, nil
}

// single ips become a full length network so matching is always containment
func parseTargets(targets []string) ([]*net.IPNet, error) {
	networks := []*net.IPNet{}

	for _, t := range targets {
		if strings.Contains(t, "/") {
			_, n, err := net.ParseCIDR(t)

			if err != nil {
				return nil, fmt.Errorf("%w: %s", exception.ErrInvalidTarget, t)
			}

			networks = append(networks, n)

			continue
		}

		ip := net.ParseIP(t)

		if ip == nil {
			return nil, fmt.Errorf("%w: %s", exception.ErrInvalidTarget, t)
		}

		bits := net.IPv6len * 8

		if v4 := ip.To4(); v4 != nil {
			ip = v4
			bits = net.IPv4len * 8
		}

		networks = append(networks, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
	}

	return networks, nil
}

// LatestSnapshot returns the most recently recorded snapshot and the time
// it was taken
func (s *HistoryService) LatestSnapshot() (discovery.Snapshot, time.Time, error) {
	model, err := s.repo.LatestSnapshot()

	if err != nil {
		return nil, time.Time{}, err
	}

	snapshot := discovery.Snapshot{}

	if err := json.Unmarshal(model.Devices, &snapshot); err != nil {
		return nil, time.Time{}, err
	}

	return snapshot, model.TakenAt, nil
}
