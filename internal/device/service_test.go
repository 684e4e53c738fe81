package device_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/robgonnella/yunmon/internal/device"
	"github.com/robgonnella/yunmon/internal/discovery"
	"github.com/robgonnella/yunmon/internal/exception"
	mock_device "github.com/robgonnella/yunmon/internal/mock/device"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestDeviceHistoryService(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	mockRepo := mock_device.NewMockRepo(ctrl)

	service := device.NewService(mockRepo, 3)

	firstSeen := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	takenAt := firstSeen.Add(time.Hour)

	testRecord := &device.Record{
		Key:       "eth0",
		IP:        "192.168.1.5",
		Mask:      "255.255.255.0",
		MAC:       "aa:bb:cc:dd:ee:ff",
		FirstSeen: firstSeen,
		LastSeen:  firstSeen,
	}

	t.Run("gets all devices", func(st *testing.T) {
		expected := []*device.Record{testRecord}

		mockRepo.EXPECT().GetAllDevices().Return(expected, nil)

		found, err := service.GetAll()

		assert.NoError(st, err)
		assert.Equal(st, expected, found)
	})

	t.Run("gets device by key", func(st *testing.T) {
		mockRepo.EXPECT().GetDeviceByKey("eth0").Return(testRecord, nil)

		found, err := service.Get("eth0")

		assert.NoError(st, err)
		assert.Equal(st, testRecord, found)
	})

	t.Run("records new device", func(st *testing.T) {
		snapshot := discovery.Snapshot{
			"wlan0": discovery.Device{IP: "10.0.0.2", MAC: "11:22:33:44:55:66"},
		}

		mockRepo.EXPECT().GetDeviceByKey("wlan0").Return(nil, exception.ErrRecordNotFound)
		mockRepo.EXPECT().SaveDevice(&device.Record{
			Key:       "wlan0",
			IP:        "10.0.0.2",
			MAC:       "11:22:33:44:55:66",
			FirstSeen: takenAt,
			LastSeen:  takenAt,
		}).DoAndReturn(func(rec *device.Record) (*device.Record, error) {
			return rec, nil
		})
		mockRepo.EXPECT().AddSnapshot(&device.SnapshotModel{
			TakenAt: takenAt,
			Devices: datatypes.JSON([]byte(`{"wlan0":{"IP":"10.0.0.2","Mask":"","MAC":"11:22:33:44:55:66"}}`)),
		}).DoAndReturn(func(m *device.SnapshotModel) (*device.SnapshotModel, error) {
			return m, nil
		})
		mockRepo.EXPECT().PruneSnapshots(3).Return(nil)

		err := service.RecordSnapshot(snapshot, takenAt)

		assert.NoError(st, err)
	})

	t.Run("keeps first seen and last known attributes of existing device", func(st *testing.T) {
		snapshot := discovery.Snapshot{
			"eth0": discovery.Device{IP: "192.168.1.9"},
		}

		mockRepo.EXPECT().GetDeviceByKey("eth0").Return(testRecord, nil)
		mockRepo.EXPECT().SaveDevice(&device.Record{
			Key:       "eth0",
			IP:        "192.168.1.9",
			Mask:      "255.255.255.0",
			MAC:       "aa:bb:cc:dd:ee:ff",
			FirstSeen: firstSeen,
			LastSeen:  takenAt,
		}).DoAndReturn(func(rec *device.Record) (*device.Record, error) {
			return rec, nil
		})
		mockRepo.EXPECT().AddSnapshot(gomock.Any()).DoAndReturn(func(m *device.SnapshotModel) (*device.SnapshotModel, error) {
			return m, nil
		})
		mockRepo.EXPECT().PruneSnapshots(3).Return(nil)

		err := service.RecordSnapshot(snapshot, takenAt)

		assert.NoError(st, err)
	})

	t.Run("returns repo error when recording", func(st *testing.T) {
		expectedErr := errors.New("database is locked")

		mockRepo.EXPECT().GetDeviceByKey("eth0").Return(nil, expectedErr)

		err := service.RecordSnapshot(discovery.Snapshot{"eth0": {}}, takenAt)

		assert.ErrorIs(st, err, expectedErr)
	})

	t.Run("does not prune when retaining everything", func(st *testing.T) {
		unlimited := device.NewService(mockRepo, 0)

		mockRepo.EXPECT().AddSnapshot(gomock.Any()).DoAndReturn(func(m *device.SnapshotModel) (*device.SnapshotModel, error) {
			return m, nil
		})

		err := unlimited.RecordSnapshot(discovery.Snapshot{}, takenAt)

		assert.NoError(st, err)
	})

	t.Run("gets all devices in network targets", func(st *testing.T) {
		targets := []string{"192.168.1.10", "172.16.1.1/24"}

		rec1 := *testRecord
		rec2 := *testRecord
		rec3 := *testRecord
		rec4 := *testRecord

		rec1.IP = "192.168.1.10"
		rec2.IP = "172.16.1.42"
		rec3.IP = "192.168.1.11"
		rec4.IP = ""

		mockRepo.EXPECT().GetAllDevices().Return([]*device.Record{&rec1, &rec2, &rec3, &rec4}, nil)

		found, err := service.GetAllInTargets(targets)

		assert.NoError(st, err)
		assert.Equal(st, []*device.Record{&rec1, &rec2}, found)
	})

	t.Run("matches wide network targets without expanding them", func(st *testing.T) {
		v4 := device.Record{Key: "eth0", IP: "10.0.0.5"}
		v6 := device.Record{Key: "eth1", IP: "fe80::1"}

		mockRepo.EXPECT().GetAllDevices().Return([]*device.Record{&v4, &v6}, nil).Times(2)

		start := time.Now()

		found, err := service.GetAllInTargets([]string{"0.0.0.0/0"})

		assert.NoError(st, err)
		assert.Equal(st, []*device.Record{&v4}, found)

		found, err = service.GetAllInTargets([]string{"::/0"})

		assert.NoError(st, err)
		assert.Equal(st, []*device.Record{&v6}, found)

		assert.Less(st, time.Since(start), time.Second)
	})

	t.Run("rejects invalid target", func(st *testing.T) {
		for _, target := range []string{"not-an-ip", "10.0.0.0/33", "10.0.0.0/"} {
			_, err := service.GetAllInTargets([]string{target})

			assert.ErrorIs(st, err, exception.ErrInvalidTarget)
		}
	})

	t.Run("returns repo errors unchanged", func(st *testing.T) {
		repoErr := errors.New("database is locked")

		mockRepo.EXPECT().GetAllDevices().Return(nil, repoErr)

		_, err := service.GetAllInTargets([]string{"10.0.0.0/8"})

		assert.ErrorIs(st, err, repoErr)
		assert.NotErrorIs(st, err, exception.ErrInvalidTarget)
	})

	t.Run("returns latest snapshot", func(st *testing.T) {
		mockRepo.EXPECT().LatestSnapshot().Return(&device.SnapshotModel{
			ID:      7,
			TakenAt: takenAt,
			Devices: datatypes.JSON([]byte(`{"eth0":{"IP":"192.168.1.5","Mask":"255.255.255.0","MAC":"aa:bb:cc:dd:ee:ff"}}`)),
		}, nil)

		snapshot, at, err := service.LatestSnapshot()

		assert.NoError(st, err)
		assert.Equal(st, takenAt, at)
		assert.Equal(st, discovery.Snapshot{
			"eth0": discovery.Device{
				IP:   "192.168.1.5",
				Mask: "255.255.255.0",
				MAC:  "aa:bb:cc:dd:ee:ff",
			},
		}, snapshot)
	})

	t.Run("returns not found when nothing was recorded", func(st *testing.T) {
		mockRepo.EXPECT().LatestSnapshot().Return(nil, exception.ErrRecordNotFound)

		_, _, err := service.LatestSnapshot()

		assert.ErrorIs(st, err, exception.ErrRecordNotFound)
	})
}
