package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/lorenzobigazzi0/cassa/internal/domain/order/valueobjects"
)

func newTestOrder(t *testing.T, status vo.OrderStatus, done ...bool) *Order {
	t.Helper()
	items := make([]*Item, 0, len(done))
	for i, d := range done {
		items = append(items, ReconstructItem(uint(100+i), 1, i+1, spritzID, "Spritz", nil, 1, d))
	}
	o, err := ReconstructOrder(1, "04711", 7, 2, 2, 0, nil, status, time.Now().UTC(), nil, nil, items)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	now := time.Date(2024, 6, 1, 19, 30, 0, 0, time.UTC)
	item, err := NewItem(1, spritzID, "Spritz", nil, 2)
	require.NoError(t, err)

	o, err := NewOrder("12345", 3, 2, 4, 1, nil, []*Item{item}, now)
	require.NoError(t, err)
	assert.Equal(t, vo.StatusOpen, o.Status())
	assert.Equal(t, now, o.CreatedAt())
	assert.Nil(t, o.ReadyAt())

	o.SetID(9)
	assert.Equal(t, uint(9), o.Items()[0].OrderID())
}

func TestNewOrder_Invalid(t *testing.T) {
	now := time.Now()
	gap := ReconstructItem(0, 0, 2, spritzID, "Spritz", nil, 1, false)

	tests := []struct {
		name  string
		build func() (*Order, error)
	}{
		{"missing public id", func() (*Order, error) { return NewOrder("", 1, 1, 0, 0, nil, nil, now) }},
		{"missing table", func() (*Order, error) { return NewOrder("1", 0, 1, 0, 0, nil, nil, now) }},
		{"negative covers", func() (*Order, error) { return NewOrder("1", 1, 1, -1, 0, nil, nil, now) }},
		{"line gap", func() (*Order, error) { return NewOrder("1", 1, 1, 0, 0, nil, []*Item{gap}, now) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			assert.Error(t, err)
		})
	}
}

func TestRefreshReadiness_SoleItemDone(t *testing.T) {
	o := newTestOrder(t, vo.StatusOpen, true)
	now := time.Now().UTC()

	assert.True(t, o.RefreshReadiness(now))
	assert.Equal(t, vo.StatusReady, o.Status())
	require.NotNil(t, o.ReadyAt())
	assert.Equal(t, now, *o.ReadyAt())

	// a second refresh does not stamp again
	assert.False(t, o.RefreshReadiness(now.Add(time.Minute)))
	assert.Equal(t, now, *o.ReadyAt())
}

func TestRefreshReadiness_NotAllDone(t *testing.T) {
	o := newTestOrder(t, vo.StatusOpen, true, false)
	assert.False(t, o.RefreshReadiness(time.Now()))
	assert.Equal(t, vo.StatusOpen, o.Status())
}

func TestRefreshReadiness_UnmarkAfterReadyKeepsStatus(t *testing.T) {
	o := newTestOrder(t, vo.StatusOpen, true, true)
	require.True(t, o.RefreshReadiness(time.Now()))

	item, ok := o.Item(101)
	require.True(t, ok)
	item.SetDone(false)

	assert.False(t, o.RefreshReadiness(time.Now()))
	assert.Equal(t, vo.StatusReady, o.Status())
}

func TestRefreshReadiness_PrintedOrderUntouched(t *testing.T) {
	o := newTestOrder(t, vo.StatusPrinted, true)
	assert.False(t, o.RefreshReadiness(time.Now()))
	assert.Equal(t, vo.StatusPrinted, o.Status())
	assert.Nil(t, o.ReadyAt())
}

func TestRefreshReadiness_NoItems(t *testing.T) {
	o := newTestOrder(t, vo.StatusOpen)
	assert.False(t, o.RefreshReadiness(time.Now()))
}

func TestMarkPrinted(t *testing.T) {
	tests := []struct {
		from    vo.OrderStatus
		changed bool
		want    vo.OrderStatus
	}{
		{vo.StatusOpen, true, vo.StatusPrinted},
		{vo.StatusReady, true, vo.StatusPrinted},
		{vo.StatusPrinted, false, vo.StatusPrinted},
		{vo.StatusClosed, false, vo.StatusClosed},
	}
	for _, tt := range tests {
		t.Run(string(tt.from), func(t *testing.T) {
			o := newTestOrder(t, tt.from, false)
			assert.Equal(t, tt.changed, o.MarkPrinted())
			assert.Equal(t, tt.want, o.Status())
		})
	}
}

func TestClose(t *testing.T) {
	o := newTestOrder(t, vo.StatusPrinted, true)
	require.NoError(t, o.Close(time.Now()))
	assert.True(t, o.Status().IsClosed())
	assert.NotNil(t, o.ClosedAt())
	assert.Error(t, o.Close(time.Now()))
}

type sequenceGenerator struct {
	codes []string
	calls int
}

func (g *sequenceGenerator) Generate() (string, error) {
	c := g.codes[g.calls%len(g.codes)]
	g.calls++
	return c, nil
}

func TestAssignPublicID(t *testing.T) {
	ctx := context.Background()

	t.Run("first candidate free", func(t *testing.T) {
		gen := &sequenceGenerator{codes: []string{"11111", "22222"}}
		id, err := AssignPublicID(ctx, gen, func(context.Context, string) (bool, error) { return false, nil })
		require.NoError(t, err)
		assert.Equal(t, "11111", id)
		assert.Equal(t, 1, gen.calls)
	})

	t.Run("collision redraws", func(t *testing.T) {
		gen := &sequenceGenerator{codes: []string{"11111", "22222"}}
		taken := map[string]bool{"11111": true}
		id, err := AssignPublicID(ctx, gen, func(_ context.Context, c string) (bool, error) { return taken[c], nil })
		require.NoError(t, err)
		assert.Equal(t, "22222", id)
	})

	t.Run("bounded checks accept final draw", func(t *testing.T) {
		gen := &sequenceGenerator{codes: []string{"a", "b", "c", "d", "e"}}
		checks := 0
		id, err := AssignPublicID(ctx, gen, func(context.Context, string) (bool, error) {
			checks++
			return true, nil
		})
		require.NoError(t, err)
		assert.Equal(t, PublicIDAttempts, checks)
		assert.Equal(t, "d", id)
	})

	t.Run("storage error", func(t *testing.T) {
		gen := &sequenceGenerator{codes: []string{"11111"}}
		_, err := AssignPublicID(ctx, gen, func(context.Context, string) (bool, error) {
			return false, errors.New("db down")
		})
		assert.Error(t, err)
	})
}
