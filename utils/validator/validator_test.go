package validatorx_test

import (
	"errors"
	"testing"

	validatorx "github.com/srisatyasai136/review/utils/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email  string `json:"email" validate:"required,email"`
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		in      sample
		wantErr bool
		wantMsg string
	}{
		{
			name: "valid",
			in:   sample{Email: "ann@x.com", Rating: 4},
		},
		{
			name:    "rating too high",
			in:      sample{Email: "ann@x.com", Rating: 6},
			wantErr: true,
			wantMsg: "rating must be 5 or less",
		},
		{
			name:    "missing email",
			in:      sample{Rating: 3},
			wantErr: true,
			wantMsg: "email is a required field",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatorx.ValidateStruct(&tt.in)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, validatorx.Message(err))
		})
	}
}

func TestMessage_NonValidationError(t *testing.T) {
	assert.Equal(t, "", validatorx.Message(nil))
	assert.Equal(t, "boom", validatorx.Message(errors.New("boom")))
}
