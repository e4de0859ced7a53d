package ytdomain

import (
	"errors"
	"regexp"
)

var (
	ErrChannelNotFound = errors.New("Unable to resolve channel from authenticated account.")
	ErrMissingUploads  = errors.New("Missing uploads playlist in channel response.")
	ErrNoCredentials   = errors.New("no YouTube credentials could be resolved from the environment")
)

var authErrorPattern = regexp.MustCompile(`(?i)invalid_grant|credentials|oauth|permission|forbidden|unauthorized`)

// IsAuthError indica se a mensagem do erro aponta para falha de autenticação.
func IsAuthError(err error) bool {
	if err == nil {
		return false
	}
	return authErrorPattern.MatchString(err.Error())
}
