package auth

import (
	"errors"
	"time"

	"github.com/ratedir/ratedir/internal/domain/model"
)

// ErrInvalidToken is returned for missing, malformed, expired or
// wrongly signed credentials, and for tokens carrying an unknown role.
var ErrInvalidToken = errors.New("invalid auth token")

// Claims is the identity extracted from a verified credential.
type Claims struct {
	UserID int64
	Role   model.Role
}

// Strategy issues and verifies bearer credentials.
type Strategy interface {
	IssueToken(userID int64, role model.Role) (string, error)
	ParseToken(token string) (*Claims, error)
	Name() string
}

// Options tunes token issuance.
type Options struct {
	TTL time.Duration
}
