package request

import (
	"errors"
	"regexp"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
)

// The password pattern needs lookahead, which the standard regexp package
// does not support, hence regexp2.
const passwordRegexPattern = `^(?=.*[A-Za-z])(?=.*\d).{8,}$`

var (
	loginIDExp  = regexp.MustCompile(`^[a-z0-9]+$`)
	passwordExp = regexp2.MustCompile(passwordRegexPattern, regexp2.None)

	errInvalidLoginID          = errors.New("the id may only contain lowercase letters and digits")
	errInvalidPassword         = errors.New("the password must be at least 8 characters and contain 1 letter and 1 number")
	errPasswordCheckMismatch   = errors.New("the password check doesn't match the password")
	errPasswordCheckUnverified = errors.New("the password could not be verified")
)

type SignUpRequest struct {
	ID            string `json:"id"`
	Password      string `json:"password"`
	PasswordCheck string `json:"password_check"`
}

func (req *SignUpRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.ID, validation.Required, validation.Match(loginIDExp).Error(errInvalidLoginID.Error())),
		validation.Field(&req.Password, validation.Required),
		validation.Field(&req.PasswordCheck, validation.Required),
	)
	if err != nil {
		return err
	}

	match, err := passwordExp.MatchString(req.Password)
	if err != nil {
		return errPasswordCheckUnverified
	}
	if !match {
		return errInvalidPassword
	}

	if req.Password != req.PasswordCheck {
		return errPasswordCheckMismatch
	}

	return nil
}

type SignInRequest struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

func (req *SignInRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ID, validation.Required),
		validation.Field(&req.Password, validation.Required),
	)
}
