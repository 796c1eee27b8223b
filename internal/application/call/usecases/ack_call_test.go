package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorenzobigazzi0/cassa/internal/domain/call"
	"github.com/lorenzobigazzi0/cassa/internal/domain/shared/events"
	"github.com/lorenzobigazzi0/cassa/internal/shared/errors"
	"github.com/lorenzobigazzi0/cassa/internal/shared/logger"
)

func TestAckCallUseCase_Execute(t *testing.T) {
	stored := call.ReconstructCall(7, call.CallBarman, 2, nil, nil, nil, nil, false, time.Now(), nil)
	var updates int
	repo := &mockCallRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*call.Call, error) {
			require.Equal(t, uint(7), id)
			return stored, nil
		},
		UpdateAckFunc: func(ctx context.Context, c *call.Call) error {
			updates++
			return nil
		},
	}
	publisher := &recordingPublisher{}
	uc := NewAckCallUseCase(repo, publisher, logger.NewNopLogger())
	first := time.Date(2025, 6, 1, 21, 5, 0, 0, time.UTC)
	uc.now = func() time.Time { return first }

	snap, err := uc.Execute(context.Background(), AckCallCommand{CallID: 7})
	require.NoError(t, err)
	assert.True(t, snap.IsAck)
	require.NotNil(t, snap.AckedAt)
	assert.Equal(t, first, *snap.AckedAt)
	assert.Equal(t, events.StaffChannels, publisher.channels())
	assert.Equal(t, events.NewCallAcked(7), publisher.events[0].Event)

	// A second ack is accepted, moves acked_at and is broadcast again.
	uc.now = func() time.Time { return first.Add(time.Minute) }
	again, err := uc.Execute(context.Background(), AckCallCommand{CallID: 7})
	require.NoError(t, err)
	require.NotNil(t, again.AckedAt)
	assert.Equal(t, first.Add(time.Minute), *again.AckedAt)
	assert.Equal(t, 2, updates)
	assert.Len(t, publisher.events, 2*len(events.StaffChannels))
}

func TestAckCallUseCase_NotFound(t *testing.T) {
	repo := &mockCallRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*call.Call, error) {
			return nil, errors.NewNotFoundError("call not found")
		},
		UpdateAckFunc: func(ctx context.Context, c *call.Call) error {
			t.Fatal("update must not run for a missing call")
			return nil
		},
	}
	publisher := &recordingPublisher{}

	_, err := NewAckCallUseCase(repo, publisher, logger.NewNopLogger()).Execute(context.Background(), AckCallCommand{CallID: 404})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	assert.Empty(t, publisher.events)
}
