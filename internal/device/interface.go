package device

import (
	"time"

	"github.com/robgonnella/yunmon/internal/discovery"
	"gorm.io/datatypes"
)

//go:generate mockgen -destination=../mock/device/mock_device.go -package=mock_device . Repo,Service

// Record the last known attributes of a device seen by discovery
type Record struct {
	Key       string    `gorm:"primaryKey;column:device_key" json:"key"`
	IP        string    `json:"ip"`
	Mask      string    `json:"mask"`
	MAC       string    `json:"mac"`
	FirstSeen time.Time `json:"firstSeen"`
	LastSeen  time.Time `json:"lastSeen"`
}

// SnapshotModel a discovery snapshot as stored in the database
type SnapshotModel struct {
	ID      int `gorm:"primaryKey;autoIncrement"`
	TakenAt time.Time
	Devices datatypes.JSON
}

// Repo interface for persisting device history
type Repo interface {
	GetAllDevices() ([]*Record, error)
	GetDeviceByKey(key string) (*Record, error)
	SaveDevice(rec *Record) (*Record, error)
	AddSnapshot(model *SnapshotModel) (*SnapshotModel, error)
	LatestSnapshot() (*SnapshotModel, error)
	PruneSnapshots(retain int) error
}

// Service interface for recording and querying device history
type Service interface {
	RecordSnapshot(snapshot discovery.Snapshot, takenAt time.Time) error
	GetAll() ([]*Record, error)
	Get(key string) (*Record, error)
	GetAllInTargets(targets []string) ([]*Record, error)
	LatestSnapshot() (discovery.Snapshot, time.Time, error)
}
