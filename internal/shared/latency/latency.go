// Package latency simulates network round-trips in front of the in-memory
// stores. Services wait on a Delayer before touching their store; tests inject
// None so suites stay fast and deterministic.
package latency

import (
	"context"
	"time"
)

type Op string

const (
	OpGetAll  Op = "get_all"
	OpGetByID Op = "get_by_id"
	OpCreate  Op = "create"
	OpUpdate  Op = "update"
	OpDelete  Op = "delete"
)

// Profile holds the simulated duration of each operation of one entity.
type Profile map[Op]time.Duration

type Delayer interface {
	Wait(ctx context.Context, op Op) error
}

type fixed struct {
	profile Profile
	scale   float64
}

// NewFixed waits profile[op]*scale for every call. A scale <= 0 disables the
// wait entirely.
func NewFixed(profile Profile, scale float64) Delayer {
	return &fixed{profile: profile, scale: scale}
}

func (f *fixed) Wait(ctx context.Context, op Op) error {
	d := time.Duration(float64(f.profile[op]) * f.scale)
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type none struct{}

// None never waits; it only reports an already-cancelled context.
func None() Delayer { return none{} }

func (none) Wait(ctx context.Context, _ Op) error { return ctx.Err() }

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

// Default profiles mirror the round-trips the dashboard was tuned against.
var (
	EmployeeProfile = Profile{
		OpGetAll: ms(300), OpGetByID: ms(200), OpCreate: ms(400), OpUpdate: ms(300), OpDelete: ms(250),
	}
	LeaveProfile = Profile{
		OpGetAll: ms(250), OpGetByID: ms(200), OpCreate: ms(350), OpUpdate: ms(300), OpDelete: ms(250),
	}
	DocumentProfile = Profile{
		OpGetAll: ms(280), OpGetByID: ms(200), OpCreate: ms(400), OpUpdate: ms(300), OpDelete: ms(250),
	}
	DepartmentProfile = Profile{
		OpGetAll: ms(200), OpGetByID: ms(150), OpCreate: ms(300), OpUpdate: ms(250), OpDelete: ms(200),
	}
)
