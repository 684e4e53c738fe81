package device_test

import (
	"os"
	"testing"
	"time"

	"github.com/robgonnella/yunmon/internal/device"
	"github.com/robgonnella/yunmon/internal/exception"
	"github.com/robgonnella/yunmon/internal/test_util"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestDeviceSqliteRepo(t *testing.T) {
	testDBFile := "device.db"

	defer func() {
		os.RemoveAll(testDBFile)
	}()

	db, err := test_util.GetDBConnection(testDBFile)

	if err != nil {
		t.Logf("failed to create test db: %s", err.Error())
		t.FailNow()
	}

	if err := test_util.Migrate(db, &device.Record{}, &device.SnapshotModel{}); err != nil {
		t.Logf("failed to migrate test db: %s", err.Error())
		t.FailNow()
	}

	repo := device.NewSqliteRepo(db)

	seen := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	newRecord := &device.Record{
		Key:       "eth0",
		IP:        "192.168.1.5",
		Mask:      "255.255.255.0",
		MAC:       "aa:bb:cc:dd:ee:ff",
		FirstSeen: seen,
		LastSeen:  seen,
	}

	t.Run("GetDeviceByKey returns record not found error", func(st *testing.T) {
		_, err := repo.GetDeviceByKey("noop")

		assert.Error(st, err)
		assert.Equal(st, exception.ErrRecordNotFound, err)
	})

	t.Run("LatestSnapshot returns record not found error", func(st *testing.T) {
		_, err := repo.LatestSnapshot()

		assert.Error(st, err)
		assert.Equal(st, exception.ErrRecordNotFound, err)
	})

	t.Run("saves device", func(st *testing.T) {
		savedRecord, err := repo.SaveDevice(newRecord)

		assert.NoError(st, err)
		assert.Equal(st, newRecord, savedRecord)
	})

	t.Run("rejects device without key", func(st *testing.T) {
		_, err := repo.SaveDevice(&device.Record{IP: "10.0.0.1"})

		assert.Error(st, err)
	})

	t.Run("gets device by key", func(st *testing.T) {
		foundRecord, err := repo.GetDeviceByKey("eth0")

		assert.NoError(st, err)
		assert.Equal(st, newRecord.IP, foundRecord.IP)
		assert.Equal(st, newRecord.Mask, foundRecord.Mask)
		assert.Equal(st, newRecord.MAC, foundRecord.MAC)
		assert.True(st, newRecord.FirstSeen.Equal(foundRecord.FirstSeen))
	})

	t.Run("updates existing device", func(st *testing.T) {
		updated := *newRecord
		updated.IP = "192.168.1.6"
		updated.LastSeen = seen.Add(time.Minute)

		_, err := repo.SaveDevice(&updated)

		assert.NoError(st, err)

		foundRecord, err := repo.GetDeviceByKey("eth0")

		assert.NoError(st, err)
		assert.Equal(st, "192.168.1.6", foundRecord.IP)
		assert.True(st, updated.LastSeen.Equal(foundRecord.LastSeen))
	})

	t.Run("gets all devices ordered by key", func(st *testing.T) {
		_, err := repo.SaveDevice(&device.Record{Key: "br-lan", IP: "10.0.0.1"})

		assert.NoError(st, err)

		records, err := repo.GetAllDevices()

		assert.NoError(st, err)
		assert.Equal(st, 2, len(records))
		assert.Equal(st, "br-lan", records[0].Key)
		assert.Equal(st, "eth0", records[1].Key)
	})

	t.Run("adds snapshots and returns latest", func(st *testing.T) {
		for i := 0; i < 5; i++ {
			_, err := repo.AddSnapshot(&device.SnapshotModel{
				TakenAt: seen.Add(time.Duration(i) * time.Minute),
				Devices: datatypes.JSON([]byte(`{}`)),
			})

			assert.NoError(st, err)
		}

		latest, err := repo.LatestSnapshot()

		assert.NoError(st, err)
		assert.True(st, seen.Add(4*time.Minute).Equal(latest.TakenAt))
	})

	t.Run("prunes old snapshots", func(st *testing.T) {
		latestBefore, err := repo.LatestSnapshot()

		assert.NoError(st, err)

		err = repo.PruneSnapshots(2)

		assert.NoError(st, err)

		var count int64

		db.Model(&device.SnapshotModel{}).Count(&count)

		assert.Equal(st, int64(2), count)

		latestAfter, err := repo.LatestSnapshot()

		assert.NoError(st, err)
		assert.Equal(st, latestBefore.ID, latestAfter.ID)
	})

	t.Run("rejects invalid retention", func(st *testing.T) {
		assert.Error(st, repo.PruneSnapshots(0))
	})
}
