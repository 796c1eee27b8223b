package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorenzobigazzi0/cassa/internal/domain/call"
	"github.com/lorenzobigazzi0/cassa/internal/domain/order"
	vo "github.com/lorenzobigazzi0/cassa/internal/domain/order/valueobjects"
	"github.com/lorenzobigazzi0/cassa/internal/domain/shared/events"
	"github.com/lorenzobigazzi0/cassa/internal/domain/table"
	"github.com/lorenzobigazzi0/cassa/internal/domain/user"
	"github.com/lorenzobigazzi0/cassa/internal/shared/errors"
	"github.com/lorenzobigazzi0/cassa/internal/shared/logger"
	"github.com/lorenzobigazzi0/cassa/internal/shared/services/sanitizer"
)

type createCallFixture struct {
	calls     *mockCallRepository
	users     *mockUserRepository
	tables    *mockTableRepository
	orders    *mockOrderRepository
	publisher *recordingPublisher
	saved     *call.Call
}

func newCreateCallFixture() *createCallFixture {
	f := &createCallFixture{
		users: &mockUserRepository{GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return user.ReconstructUser(id, "emma", "Emma", user.RoleWaiter, "hash", true, time.Now()), nil
		}},
		tables: &mockTableRepository{FindByNumberFunc: func(ctx context.Context, number int) (*table.Table, error) {
			return table.ReconstructTable(uint(number+100), number, nil, true, nil, nil, nil), nil
		}},
		orders: &mockOrderRepository{GetByPublicIDFunc: func(ctx context.Context, publicID string) (*order.Order, error) {
			return order.ReconstructOrder(55, publicID, 107, 2, 2, 0, nil, vo.StatusOpen, time.Now(), nil, nil, nil)
		}},
		publisher: &recordingPublisher{},
	}
	f.calls = &mockCallRepository{CreateFunc: func(ctx context.Context, c *call.Call) error {
		c.SetID(31)
		f.saved = c
		return nil
	}}
	return f
}

func (f *createCallFixture) useCase() *CreateCallUseCase {
	uc := NewCreateCallUseCase(f.calls, f.users, f.tables, f.orders, f.publisher, sanitizer.NewTextSanitizer(), logger.NewNopLogger())
	uc.now = func() time.Time { return time.Date(2025, 6, 1, 21, 0, 0, 0, time.UTC) }
	return uc
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func uintPtr(u uint) *uint    { return &u }

func TestCreateCallUseCase_WaiterCallRoutesToFloor(t *testing.T) {
	f := newCreateCallFixture()

	snap, err := f.useCase().Execute(context.Background(), CreateCallCommand{
		CallType:      "CALL_WAITER",
		FromUserID:    5,
		ToUserID:      uintPtr(2),
		TableNumber:   intPtr(7),
		OrderPublicID: strPtr("48213"),
		Message:       strPtr("  <b>tavolo 7</b> chiede il conto "),
	})
	require.NoError(t, err)

	assert.Equal(t, uint(31), snap.ID)
	assert.Equal(t, "CALL_WAITER", snap.CallType)
	require.NotNil(t, snap.FromUserID)
	assert.Equal(t, uint(5), *snap.FromUserID)
	assert.Equal(t, uint(2), *snap.ToUserID)
	assert.Equal(t, uint(107), *snap.TableID)
	assert.Equal(t, uint(55), *snap.OrderID)
	assert.Equal(t, "tavolo 7 chiede il conto", *snap.Message)
	assert.False(t, snap.IsAck)
	assert.Nil(t, snap.AckedAt)

	assert.Equal(t, []events.Channel{events.ChannelWaiter, events.ChannelCassa, events.ChannelAdmin}, f.publisher.channels())
	ev, ok := f.publisher.events[0].Event.(events.CallCreatedEvent)
	require.True(t, ok)
	assert.Equal(t, "call_created", ev.Type)
	assert.Equal(t, "call.created", ev.Event)
	assert.Same(t, snap, ev.Call)
}

func TestCreateCallUseCase_BarCallRoutesToBar(t *testing.T) {
	f := newCreateCallFixture()

	snap, err := f.useCase().Execute(context.Background(), CreateCallCommand{
		CallType:   "CALL_BARMAN",
		FromUserID: 2,
	})
	require.NoError(t, err)

	assert.Nil(t, snap.ToUserID)
	assert.Nil(t, snap.TableID)
	assert.Nil(t, snap.OrderID)
	assert.Nil(t, snap.Message)
	assert.Equal(t, []events.Channel{events.ChannelBar, events.ChannelAdmin}, f.publisher.channels())
}

func TestCreateCallUseCase_UnknownReferencesStoredAsAbsent(t *testing.T) {
	f := newCreateCallFixture()
	f.users.GetByIDFunc = func(ctx context.Context, id uint) (*user.User, error) {
		return nil, errors.NewNotFoundError("user not found")
	}
	f.tables.FindByNumberFunc = nil
	f.orders.GetByPublicIDFunc = func(ctx context.Context, publicID string) (*order.Order, error) {
		return nil, errors.NewNotFoundError("order not found")
	}

	snap, err := f.useCase().Execute(context.Background(), CreateCallCommand{
		CallType:      "CALL_BARMAN",
		FromUserID:    2,
		ToUserID:      uintPtr(99),
		TableNumber:   intPtr(400),
		OrderPublicID: strPtr("00000"),
		Message:       strPtr("<script></script>   "),
	})
	require.NoError(t, err)

	assert.Nil(t, snap.ToUserID)
	assert.Nil(t, snap.TableID)
	assert.Nil(t, snap.OrderID)
	assert.Nil(t, snap.Message)
	require.NotNil(t, f.saved)
	assert.Nil(t, f.saved.TableID())
}

func TestCreateCallUseCase_Failures(t *testing.T) {
	tests := []struct {
		name    string
		cmd     CreateCallCommand
		setup   func(f *createCallFixture)
		checkFn func(t *testing.T, err error)
	}{
		{
			name: "unknown call type",
			cmd:  CreateCallCommand{CallType: "CALL_CHEF", FromUserID: 2},
			checkFn: func(t *testing.T, err error) {
				assert.True(t, errors.IsValidationError(err))
			},
		},
		{
			name: "missing caller",
			cmd:  CreateCallCommand{CallType: "CALL_WAITER"},
			checkFn: func(t *testing.T, err error) {
				assert.True(t, errors.IsValidationError(err))
			},
		},
		{
			name: "order lookup error is not swallowed",
			cmd:  CreateCallCommand{CallType: "CALL_WAITER", FromUserID: 2, OrderPublicID: strPtr("48213")},
			setup: func(f *createCallFixture) {
				f.orders.GetByPublicIDFunc = func(ctx context.Context, publicID string) (*order.Order, error) {
					return nil, errors.NewInternalError("database unavailable")
				}
			},
			checkFn: func(t *testing.T, err error) {
				assert.False(t, errors.IsNotFoundError(err))
				assert.Contains(t, err.Error(), "database unavailable")
			},
		},
		{
			name: "persistence failure",
			cmd:  CreateCallCommand{CallType: "CALL_WAITER", FromUserID: 2},
			setup: func(f *createCallFixture) {
				f.calls.CreateFunc = func(ctx context.Context, c *call.Call) error {
					return errors.NewInternalError("insert failed")
				}
			},
			checkFn: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "insert failed")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCreateCallFixture()
			if tt.setup != nil {
				tt.setup(f)
			}

			snap, err := f.useCase().Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.Nil(t, snap)
			assert.Empty(t, f.publisher.events)
			tt.checkFn(t, err)
		})
	}
}
