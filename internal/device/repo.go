package device

import (
	"errors"

	"github.com/robgonnella/yunmon/internal/exception"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// SqliteRepo is our repo implementation for sqlite
type SqliteRepo struct {
	db *gorm.DB
}

// NewSqliteRepo returns a new sqlite device repo
func NewSqliteRepo(db *gorm.DB) *SqliteRepo {
	return &SqliteRepo{
		db: db,
	}
}

// OpenSqliteDatabase opens the sqlite database file and migrates the
// device history tables
func OpenSqliteDatabase(dbFile string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbFile), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})

	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&Record{}, &SnapshotModel{}); err != nil {
		return nil, err
	}

	return db, nil
}

// GetAllDevices returns all device records from the database
func (r *SqliteRepo) GetAllDevices() ([]*Record, error) {
	records := []*Record{}

	if result := r.db.Order("device_key").Find(&records); result.Error != nil {
		return nil, result.Error
	}

	return records, nil
}

// GetDeviceByKey returns a single device record
func (r *SqliteRepo) GetDeviceByKey(key string) (*Record, error) {
	if key == "" {
		return nil, errors.New("device key cannot be empty")
	}

	rec := Record{Key: key}

	if result := r.db.First(&rec); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, exception.ErrRecordNotFound
		}

		return nil, result.Error
	}

	return &rec, nil
}

// SaveDevice creates or updates a device record
func (r *SqliteRepo) SaveDevice(rec *Record) (*Record, error) {
	if rec.Key == "" {
		return nil, errors.New("device key cannot be empty")
	}

	if result := r.db.Save(rec); result.Error != nil {
		return nil, result.Error
	}

	return rec, nil
}

// AddSnapshot stores a new snapshot
func (r *SqliteRepo) AddSnapshot(model *SnapshotModel) (*SnapshotModel, error) {
	if result := r.db.Create(model); result.Error != nil {
		return nil, result.Error
	}

	return model, nil
}

// LatestSnapshot returns the most recently stored snapshot
func (r *SqliteRepo) LatestSnapshot() (*SnapshotModel, error) {
	model := SnapshotModel{}

	if result := r.db.Last(&model); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, exception.ErrRecordNotFound
		}

		return nil, result.Error
	}

	return &model, nil
}

// PruneSnapshots deletes all but the newest retain snapshots
func (r *SqliteRepo) PruneSnapshots(retain int) error {
	if retain <= 0 {
		return errors.New("retain must be greater than zero")
	}

	keep := []int{}

	result := r.db.Model(&SnapshotModel{}).
		Order("id desc").
		Limit(retain).
		Pluck("id", &keep)

	if result.Error != nil {
		return result.Error
	}

	if len(keep) == 0 {
		return nil
	}

	return r.db.Where("id NOT IN ?", keep).Delete(&SnapshotModel{}).Error
}
