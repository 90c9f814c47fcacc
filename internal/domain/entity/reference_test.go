package entity

import (
	"errors"
	"testing"

	errs "github.com/amirhossein-jamali/momo-gateway/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentReference_String(t *testing.T) {
	ref, err := NewPaymentReference("enrol_fee", "fee", 13, 4)

	require.NoError(t, err)
	assert.Equal(t, "enrol_fee-fee-13-4", ref.String())
}

func TestNewPaymentReference_Validation(t *testing.T) {
	testCases := []struct {
		name      string
		component string
		area      string
		itemID    uint64
		userID    uint64
	}{
		{"empty component", "", "fee", 1, 1},
		{"delimiter in component", "enrol-fee", "fee", 1, 1},
		{"delimiter in area", "enrol_fee", "f-ee", 1, 1},
		{"zero item", "enrol_fee", "fee", 0, 1},
		{"zero user", "enrol_fee", "fee", 1, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewPaymentReference(tc.component, tc.area, tc.itemID, tc.userID)
			assert.True(t, errors.Is(err, errs.ErrValidation))
		})
	}
}

func TestParsePaymentReference(t *testing.T) {
	t.Run("Echoed note parses back", func(t *testing.T) {
		ref, err := ParsePaymentReference("enrol_fee-fee-13-4")

		require.NoError(t, err)
		assert.Equal(t, PaymentReference{Component: "enrol_fee", Area: "fee", ItemID: 13, UserID: 4}, ref)
	})

	invalid := []string{
		"",
		"enrol_fee-fee-13",
		"enrol_fee-fee-13-4-extra",
		"enrol_fee-fee-x-4",
		"enrol_fee-fee-13-y",
		"--13-4",
	}
	for _, note := range invalid {
		t.Run("Rejects "+note, func(t *testing.T) {
			_, err := ParsePaymentReference(note)
			assert.ErrorIs(t, err, errs.ErrInvalidReference)
		})
	}
}
