package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignUpRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     SignUpRequest
		wantErr bool
	}{
		{
			name: "valid request",
			req:  SignUpRequest{ID: "yohan123", Password: "passw0rd", PasswordCheck: "passw0rd"},
		},
		{
			name:    "uppercase in the id",
			req:     SignUpRequest{ID: "Yohan123", Password: "passw0rd", PasswordCheck: "passw0rd"},
			wantErr: true,
		},
		{
			name:    "symbol in the id",
			req:     SignUpRequest{ID: "yohan_123", Password: "passw0rd", PasswordCheck: "passw0rd"},
			wantErr: true,
		},
		{
			name:    "empty id",
			req:     SignUpRequest{ID: "", Password: "passw0rd", PasswordCheck: "passw0rd"},
			wantErr: true,
		},
		{
			name:    "password too short",
			req:     SignUpRequest{ID: "yohan123", Password: "pass1", PasswordCheck: "pass1"},
			wantErr: true,
		},
		{
			name:    "password without a digit",
			req:     SignUpRequest{ID: "yohan123", Password: "passwordonly", PasswordCheck: "passwordonly"},
			wantErr: true,
		},
		{
			name:    "password without a letter",
			req:     SignUpRequest{ID: "yohan123", Password: "12345678", PasswordCheck: "12345678"},
			wantErr: true,
		},
		{
			name:    "password check mismatch",
			req:     SignUpRequest{ID: "yohan123", Password: "passw0rd", PasswordCheck: "passw0rds"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSignInRequest_Validate(t *testing.T) {
	assert.NoError(t, (&SignInRequest{ID: "yohan123", Password: "passw0rd"}).Validate())
	assert.Error(t, (&SignInRequest{ID: "", Password: "passw0rd"}).Validate())
	assert.Error(t, (&SignInRequest{ID: "yohan123", Password: ""}).Validate())
}
