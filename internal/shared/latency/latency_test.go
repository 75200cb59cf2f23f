package latency_test

import (
	"context"
	"testing"
	"time"

	"hris-dashboard/internal/shared/latency"

	"github.com/stretchr/testify/assert"
)

func TestNone(t *testing.T) {
	d := latency.None()
	assert.NoError(t, d.Wait(context.Background(), latency.OpGetAll))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, d.Wait(ctx, latency.OpGetAll), context.Canceled)
}

func TestFixed_WaitsForProfile(t *testing.T) {
	d := latency.NewFixed(latency.Profile{latency.OpCreate: 20 * time.Millisecond}, 1)

	start := time.Now()
	assert.NoError(t, d.Wait(context.Background(), latency.OpCreate))
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestFixed_ZeroScaleSkipsWait(t *testing.T) {
	d := latency.NewFixed(latency.EmployeeProfile, 0)

	start := time.Now()
	assert.NoError(t, d.Wait(context.Background(), latency.OpCreate))
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestFixed_HonoursCancellation(t *testing.T) {
	d := latency.NewFixed(latency.Profile{latency.OpGetAll: time.Minute}, 1)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := d.Wait(ctx, latency.OpGetAll)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDefaultProfiles_AreDistinctPerEntity(t *testing.T) {
	assert.Equal(t, 300*time.Millisecond, latency.EmployeeProfile[latency.OpGetAll])
	assert.Equal(t, 250*time.Millisecond, latency.LeaveProfile[latency.OpGetAll])
	assert.Equal(t, 280*time.Millisecond, latency.DocumentProfile[latency.OpGetAll])
	assert.Equal(t, 200*time.Millisecond, latency.DepartmentProfile[latency.OpGetAll])
	assert.Equal(t, 150*time.Millisecond, latency.DepartmentProfile[latency.OpGetByID])
}
