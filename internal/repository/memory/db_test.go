package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/andresuchdata/printfloor/internal/domain"
	"github.com/andresuchdata/printfloor/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTxCommitsOnSuccess(t *testing.T) {
	db := NewDB()
	ctx := context.Background()

	err := db.WithTx(ctx, func(tx repository.Tx) error {
		tx.PrependOrder(domain.Order{ID: "o1", Customer: "HIKH"})
		tx.PrependOrder(domain.Order{ID: "o2", Customer: "HIKU"})
		return nil
	})
	require.NoError(t, err)

	var orders []domain.Order
	require.NoError(t, db.View(ctx, func(tx repository.Tx) error {
		orders = tx.Orders()
		return nil
	}))

	require.Len(t, orders, 2)
	assert.Equal(t, "o2", orders[0].ID, "newest first")
	assert.Equal(t, "o1", orders[1].ID)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	db := NewDB()
	ctx := context.Background()
	boom := errors.New("boom")

	require.NoError(t, db.WithTx(ctx, func(tx repository.Tx) error {
		tx.PrependDevelopmentItem(domain.DevelopmentItem{ID: "d1", Status: domain.DevelopmentPending})
		return nil
	}))

	err := db.WithTx(ctx, func(tx repository.Tx) error {
		item, _ := tx.FindDevelopmentItem("d1")
		item.Status = domain.DevelopmentApproved
		tx.ReplaceDevelopmentItem(item)
		tx.PrependOrder(domain.Order{ID: "o1"})
		return boom
	})
	assert.ErrorIs(t, err, boom)

	require.NoError(t, db.View(ctx, func(tx repository.Tx) error {
		item, ok := tx.FindDevelopmentItem("d1")
		require.True(t, ok)
		assert.Equal(t, domain.DevelopmentPending, item.Status)
		assert.Empty(t, tx.Orders())
		return nil
	}))
}

func TestOutputsAreReturnedAsCopies(t *testing.T) {
	db := NewDB()
	ctx := context.Background()
	hourly := []domain.HourlyProduction{{TimeSlot: "08:30 - 09:30", Printing: 10}}

	require.NoError(t, db.WithTx(ctx, func(tx repository.Tx) error {
		tx.PrependOutput(domain.DailyOutputRecord{ID: "r1", HourlyData: hourly, TotalPrinting: 10})
		return nil
	}))

	hourly[0].Printing = 500

	require.NoError(t, db.View(ctx, func(tx repository.Tx) error {
		outputs := tx.Outputs()
		require.Len(t, outputs, 1)
		assert.Equal(t, 10, outputs[0].HourlyData[0].Printing)

		outputs[0].HourlyData[0].Printing = 700
		assert.Equal(t, 10, tx.Outputs()[0].HourlyData[0].Printing)
		return nil
	}))
}

func TestReplaceAndDelete(t *testing.T) {
	db := NewDB()
	ctx := context.Background()

	require.NoError(t, db.WithTx(ctx, func(tx repository.Tx) error {
		tx.PrependPlan(domain.LoadingPlanItem{ID: "p1", TableNo: "T1"})
		tx.PrependDowntime(domain.DowntimeRecord{ID: "dt1", Hours: 1})
		return nil
	}))

	require.NoError(t, db.WithTx(ctx, func(tx repository.Tx) error {
		assert.True(t, tx.ReplacePlan(domain.LoadingPlanItem{ID: "p1", TableNo: "T9"}))
		assert.False(t, tx.ReplacePlan(domain.LoadingPlanItem{ID: "missing"}))
		assert.True(t, tx.DeleteDowntime("dt1"))
		assert.False(t, tx.DeleteDowntime("dt1"))
		assert.False(t, tx.DeleteOrder("nope"))
		return nil
	}))

	require.NoError(t, db.View(ctx, func(tx repository.Tx) error {
		plan, ok := tx.FindPlan("p1")
		require.True(t, ok)
		assert.Equal(t, "T9", plan.TableNo)
		assert.Empty(t, tx.Downtime())
		return nil
	}))
}

func TestViewRejectsWrites(t *testing.T) {
	db := NewDB()

	assert.Panics(t, func() {
		_ = db.View(context.Background(), func(tx repository.Tx) error {
			tx.PrependOrder(domain.Order{ID: "o1"})
			return nil
		})
	})
}

func TestWithTxHonoursContextWhileBusy(t *testing.T) {
	db := NewDB()
	started := make(chan struct{})
	release := make(chan struct{})

	go func() {
		_ = db.WithTx(context.Background(), func(tx repository.Tx) error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := db.WithTx(ctx, func(tx repository.Tx) error { return nil })
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
}
