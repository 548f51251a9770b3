package advance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestParseDecision(t *testing.T) {
	t.Run("approved", func(t *testing.T) {
		d, err := ParseDecision("approved", nil)
		require.NoError(t, err)
		assert.Equal(t, StatusApproved, d.Status())
		assert.Nil(t, d.PaymentDate())
	})

	t.Run("rejected", func(t *testing.T) {
		d, err := ParseDecision("rejected", nil)
		require.NoError(t, err)
		assert.Equal(t, StatusRejected, d.Status())
		assert.Nil(t, d.PaymentDate())
	})

	t.Run("scheduled with date", func(t *testing.T) {
		d, err := ParseDecision("scheduled", strPtr("2024-04-01"))
		require.NoError(t, err)
		assert.Equal(t, StatusScheduled, d.Status())
		require.NotNil(t, d.PaymentDate())
		assert.Equal(t, "2024-04-01", d.PaymentDate().Format("2006-01-02"))
	})

	t.Run("scheduled without date rejected", func(t *testing.T) {
		_, err := ParseDecision("scheduled", nil)
		assert.Error(t, err)
	})

	t.Run("scheduled with malformed date rejected", func(t *testing.T) {
		_, err := ParseDecision("scheduled", strPtr("next friday"))
		assert.Error(t, err)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		_, err := ParseDecision("paid", nil)
		assert.Error(t, err)
	})
}

func TestApplyDecision(t *testing.T) {
	now := time.Now().UTC()

	t.Run("pending accepts decision", func(t *testing.T) {
		a := Advance{Status: StatusPending, Amount: decimal.NewFromInt(50)}
		err := a.Apply(ApproveDecision(), now)
		require.NoError(t, err)
		assert.Equal(t, StatusApproved, a.Status)
		require.NotNil(t, a.DecidedAt)
	})

	t.Run("schedule carries payment date", func(t *testing.T) {
		payday := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
		a := Advance{Status: StatusPending}
		err := a.Apply(ScheduleDecision(payday), now)
		require.NoError(t, err)
		assert.Equal(t, StatusScheduled, a.Status)
		require.NotNil(t, a.PaymentDate)
		assert.Equal(t, payday, *a.PaymentDate)
	})

	t.Run("second decision conflicts", func(t *testing.T) {
		a := Advance{Status: StatusPending}
		require.NoError(t, a.Apply(RejectDecision(), now))
		err := a.Apply(ApproveDecision(), now)
		assert.ErrorIs(t, err, ErrAdvanceAlreadyDecided)
		// the first decision stands
		assert.Equal(t, StatusRejected, a.Status)
	})
}

func TestDue(t *testing.T) {
	today := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	payday := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	later := time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)

	assert.True(t, Advance{Status: StatusScheduled, PaymentDate: &payday}.Due(today))
	assert.False(t, Advance{Status: StatusScheduled, PaymentDate: &later}.Due(today))
	assert.False(t, Advance{Status: StatusApproved, PaymentDate: &payday}.Due(today))
	assert.False(t, Advance{Status: StatusScheduled}.Due(today))
}
