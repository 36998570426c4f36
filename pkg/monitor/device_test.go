package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lunchbox.dev/lunchbox-monitoring-service/pkg/common"
	"lunchbox.dev/lunchbox-monitoring-service/pkg/models"
	_ "lunchbox.dev/lunchbox-monitoring-service/pkg/testing"
)

func TestCreateLunchboxAndFindByAPIKey(t *testing.T) {
	common.SetTestLoggerNop()

	monitorObj := GetTestMonitorWithMemorySqliteDialector(t)

	lunchbox, err := monitorObj.Device.CreateLunchbox("kids-box", "front pocket", "parent")
	require.NoError(t, err)
	assert.NotZero(t, lunchbox.ID)
	assert.True(t, lunchbox.IsActive)
	assert.Len(t, lunchbox.DeviceAPIKey, 32)

	found, err := monitorObj.Device.FindActiveByAPIKey(lunchbox.DeviceAPIKey)
	require.NoError(t, err)
	assert.Equal(t, lunchbox.ID, found.ID)
}

func TestFindActiveByAPIKey_EmptyKeyRejected(t *testing.T) {
	common.SetTestLoggerNop()

	monitorObj := GetTestMonitorWithMemorySqliteDialector(t)

	_, err := monitorObj.Device.FindActiveByAPIKey("")
	assert.ErrorIs(t, err, ErrInvalidAPIKey)
}

func TestRotateAPIKey(t *testing.T) {
	common.SetTestLoggerNop()

	monitorObj := GetTestMonitorWithMemorySqliteDialector(t)

	lunchbox, err := monitorObj.Device.CreateLunchbox("rotate-box", "", "parent")
	require.NoError(t, err)
	oldKey := lunchbox.DeviceAPIKey

	newKey, err := monitorObj.Device.RotateAPIKey(lunchbox.ID)
	require.NoError(t, err)
	assert.NotEqual(t, oldKey, newKey)

	// old credential stops authenticating immediately
	_, err = monitorObj.Device.FindActiveByAPIKey(oldKey)
	assert.ErrorIs(t, err, ErrInvalidAPIKey)

	found, err := monitorObj.Device.FindActiveByAPIKey(newKey)
	require.NoError(t, err)
	assert.Equal(t, lunchbox.ID, found.ID)
}

func TestRotateAPIKey_UnknownLunchbox(t *testing.T) {
	common.SetTestLoggerNop()

	monitorObj := GetTestMonitorWithMemorySqliteDialector(t)

	_, err := monitorObj.Device.RotateAPIKey(999999)
	assert.Error(t, err)
}

func TestNewAPIKey_Uniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		key := NewAPIKey()
		assert.Len(t, key, 32)
		assert.False(t, seen[key])
		seen[key] = true
	}
}

func TestLunchboxDeactivation(t *testing.T) {
	common.SetTestLoggerNop()

	monitorObj := GetTestMonitorWithMemorySqliteDialector(t)

	lunchbox, err := monitorObj.Device.CreateLunchbox("deactivate-box", "", "parent")
	require.NoError(t, err)

	require.NoError(t, monitorObj.Db.Conn.Model(&models.Lunchbox{}).
		Where("id = ?", lunchbox.ID).
		Update("is_active", false).Error)

	_, err = monitorObj.Device.FindActiveByAPIKey(lunchbox.DeviceAPIKey)
	assert.ErrorIs(t, err, ErrInvalidAPIKey)
}
