// File: internal/stats/service_test.go
package stats

import (
	"context"
	"errors"
	"testing"

	"sabuconnect_backend/internal/category"
	"sabuconnect_backend/internal/common"
	"sabuconnect_backend/internal/listing"
	"sabuconnect_backend/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// The stubs below implement just the count methods the stats service
// touches; the embedded interface makes any other call panic, so a refactor
// that starts calling something new is caught immediately.

type userStub struct {
	user.Repository
	providers, users int64
	fail             error
}

func (s *userStub) CountByRole(_ context.Context, _ common.Role) (int64, error) {
	if s.fail != nil {
		return 0, s.fail
	}
	return s.providers, nil
}

func (s *userStub) Count(_ context.Context) (int64, error) {
	if s.fail != nil {
		return 0, s.fail
	}
	return s.users, nil
}

type listingStub struct {
	listing.Repository
	active int64
	fail   error
}

func (s *listingStub) CountByStatus(_ context.Context, _ listing.Status) (int64, error) {
	if s.fail != nil {
		return 0, s.fail
	}
	return s.active, nil
}

type categoryStub struct {
	category.Repository
	cats int64
	fail error
}

func (s *categoryStub) Count(_ context.Context) (int64, error) {
	if s.fail != nil {
		return 0, s.fail
	}
	return s.cats, nil
}

func TestGetStats_AllCounts(t *testing.T) {
	svc := NewService(
		&userStub{providers: 12, users: 240},
		&listingStub{active: 87},
		&categoryStub{cats: 9},
		zap.NewNop(),
	)

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Stats{Providers: 12, ActiveListings: 87, Users: 240, Categories: 9}, stats)
}

func TestGetStats_AnyFailureYieldsZeroPayload(t *testing.T) {
	boom := errors.New("store down")

	cases := []struct {
		name string
		svc  Service
	}{
		{"user counts fail", NewService(&userStub{fail: boom}, &listingStub{active: 87}, &categoryStub{cats: 9}, zap.NewNop())},
		{"listing count fails", NewService(&userStub{providers: 12, users: 240}, &listingStub{fail: boom}, &categoryStub{cats: 9}, zap.NewNop())},
		{"category count fails", NewService(&userStub{providers: 12, users: 240}, &listingStub{active: 87}, &categoryStub{fail: boom}, zap.NewNop())},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stats, err := tc.svc.GetStats(context.Background())
			require.Error(t, err)
			assert.Equal(t, Stats{}, stats, "failure must not leak partial counts")
		})
	}
}
