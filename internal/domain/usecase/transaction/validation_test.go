package transaction

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/momo-gateway/internal/domain/error"
	"github.com/amirhossein-jamali/momo-gateway/internal/domain/port/usecase"
)

func TestValidateStart(t *testing.T) {
	valid := usecase.StartRequest{
		Component: "enrol_fee",
		Area:      "fee",
		ItemID:    13,
		UserID:    4,
		Phone:     "46733123454",
		Country:   "UG",
	}

	tests := []struct {
		name          string
		mutate        func(r *usecase.StartRequest)
		expectedPhone string
		expectedError error
	}{
		{
			name:          "Valid request",
			mutate:        func(r *usecase.StartRequest) {},
			expectedPhone: "46733123454",
		},
		{
			name:          "Phone formatting is stripped",
			mutate:        func(r *usecase.StartRequest) { r.Phone = "+467 33-123 454" },
			expectedPhone: "46733123454",
		},
		{
			name:          "Lowercase country is accepted",
			mutate:        func(r *usecase.StartRequest) { r.Country = "ug" },
			expectedPhone: "46733123454",
		},
		{
			name:          "Component with delimiter",
			mutate:        func(r *usecase.StartRequest) { r.Component = "enrol-fee" },
			expectedError: errs.ErrValidation,
		},
		{
			name:          "Missing item",
			mutate:        func(r *usecase.StartRequest) { r.ItemID = 0 },
			expectedError: errs.ErrValidation,
		},
		{
			name:          "Missing user",
			mutate:        func(r *usecase.StartRequest) { r.UserID = 0 },
			expectedError: errs.ErrValidation,
		},
		{
			name:          "Letters in phone",
			mutate:        func(r *usecase.StartRequest) { r.Phone = "46733abc454" },
			expectedError: errs.ErrValidation,
		},
		{
			name:          "Phone too short",
			mutate:        func(r *usecase.StartRequest) { r.Phone = "123" },
			expectedError: errs.ErrValidation,
		},
		{
			name:          "Country not alpha-2",
			mutate:        func(r *usecase.StartRequest) { r.Country = "UGA" },
			expectedError: errs.ErrValidation,
		},
	}

	validator := NewTransactionValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			input, err := validator.ValidateStart(req)

			if tt.expectedError != nil {
				assert.True(t, errors.Is(err, tt.expectedError), "got %v", err)
				assert.Nil(t, input)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedPhone, input.Phone)
			assert.Equal(t, "UG", input.Country)
			assert.Equal(t, "enrol_fee-fee-13-4", input.Reference.String())
		})
	}
}

func TestValidateCheck(t *testing.T) {
	validator := NewTransactionValidator()

	assert.NoError(t, validator.ValidateCheck(usecase.CheckRequest{
		Component: "enrol_fee", Area: "fee", ItemID: 13, Reference: "ref-1",
	}))

	for name, req := range map[string]usecase.CheckRequest{
		"Missing reference": {Component: "enrol_fee", Area: "fee", ItemID: 13},
		"Missing component": {Area: "fee", ItemID: 13, Reference: "ref-1"},
		"Missing area":      {Component: "enrol_fee", ItemID: 13, Reference: "ref-1"},
		"Missing item":      {Component: "enrol_fee", Area: "fee", Reference: "ref-1"},
	} {
		t.Run(name, func(t *testing.T) {
			assert.True(t, errs.IsValidationError(validator.ValidateCheck(req)))
		})
	}
}
