package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCounterField(t *testing.T) {
	tests := []struct {
		in   string
		want CounterField
		ok   bool
	}{
		{"printing", FieldPrinting, true},
		{" Rejects ", FieldRejects, true},
		{"DISPATCH", FieldDispatch, true},
		{"timeSlot", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseCounterField(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSumHourly(t *testing.T) {
	rows := []HourlyProduction{
		{TimeSlot: "a", Seating: 1, Printing: 10, Curing: 2, Checking: 3, Packing: 4, Dispatch: 5, Rejects: 1},
		{TimeSlot: "b", Printing: 20, Packing: 6, Rejects: 2},
	}

	total := SumHourly(rows)

	assert.Equal(t, HourlyProduction{Seating: 1, Printing: 30, Curing: 2, Checking: 3, Packing: 10, Dispatch: 5, Rejects: 3}, total)
}

func TestDailyOutputRecordClone(t *testing.T) {
	original := DailyOutputRecord{ID: "r1", HourlyData: []HourlyProduction{{TimeSlot: "a", Printing: 5}}}

	clone := original.Clone()
	clone.HourlyData[0].Printing = 99

	assert.Equal(t, 5, original.HourlyData[0].Printing)
}

func TestParseRoleAndRequireAdmin(t *testing.T) {
	role, ok := ParseRole("Admin")
	require.True(t, ok)
	assert.Equal(t, RoleAdmin, role)

	_, ok = ParseRole("supervisor")
	assert.False(t, ok)

	assert.NoError(t, RequireAdmin(RoleAdmin, "approve"))
	assert.True(t, errors.Is(RequireAdmin(RoleWorker, "approve"), ErrPermissionDenied))
}

func TestParsePlanStatus(t *testing.T) {
	status, ok := ParsePlanStatus("in progress")
	require.True(t, ok)
	assert.Equal(t, PlanInProgress, status)

	_, ok = ParsePlanStatus("shipped")
	assert.False(t, ok)
}

func TestDevelopmentStatusTerminal(t *testing.T) {
	assert.False(t, DevelopmentPending.Terminal())
	assert.True(t, DevelopmentApproved.Terminal())
	assert.True(t, DevelopmentRejected.Terminal())
}

func TestValidationError(t *testing.T) {
	v := &ValidationError{}
	assert.NoError(t, v.OrNil())

	v.Add("customer", "customer is required")
	v.Add("dailyTarget", "must be greater than zero")

	err := v.OrNil()
	require.Error(t, err)

	var target *ValidationError
	require.True(t, errors.As(err, &target))
	assert.True(t, target.Has("customer"))
	assert.False(t, target.Has("style"))
	assert.Equal(t, "validation failed: customer: customer is required; dailyTarget: must be greater than zero", err.Error())
}

func TestIsDowntimeCategory(t *testing.T) {
	assert.Len(t, DowntimeCategories, 8)
	assert.True(t, IsDowntimeCategory("Ink Delay"))
	assert.False(t, IsDowntimeCategory("ink delay"))
}

func TestNewIDIsTimeOrdered(t *testing.T) {
	a := NewID()
	b := NewID()
	assert.NotEqual(t, a, b)
	assert.Less(t, a, b)
}
