package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rohits-web03/postdev/internal/models"
)

type UserStore interface {
	GetOrCreate(ctx context.Context, id int64) (*models.User, error)
	SetUsername(ctx context.Context, id int64, username string) error
}

// IdentityResolver turns an Authorization header into a stored user.
type IdentityResolver struct {
	secret []byte
	users  UserStore
}

func NewIdentityResolver(secret string, users UserStore) *IdentityResolver {
	return &IdentityResolver{secret: []byte(secret), users: users}
}

// Resolve verifies the bearer token and returns the user named by its sub
// claim, creating that user on first sight.
func (r *IdentityResolver) Resolve(ctx context.Context, authorization string) (*models.User, error) {
	if strings.TrimSpace(authorization) == "" {
		return nil, ErrUnauthenticated
	}
	raw := strings.TrimSpace(strings.TrimPrefix(authorization, "Bearer "))

	id, err := r.Subject(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	user, err := r.users.GetOrCreate(ctx, id)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Subject verifies tokenString and returns its numeric sub claim.
func (r *IdentityResolver) Subject(tokenString string) (int64, error) {
	if len(r.secret) == 0 {
		return 0, errors.New("no verification key configured")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return r.secret, nil
	}, jwt.WithJSONNumber())
	if err != nil {
		return 0, err
	}
	if !token.Valid {
		return 0, errors.New("token is not valid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("unexpected claims type")
	}
	return subjectID(claims["sub"])
}

// subjectID accepts sub as a decimal string or a JSON number. Numbers arrive
// as json.Number so ids beyond 2^53 keep every digit.
func subjectID(sub any) (int64, error) {
	var id int64
	switch v := sub.(type) {
	case string:
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("sub %q is not numeric", v)
		}
		id = parsed
	case float64:
		if v != math.Trunc(v) || v >= math.MaxInt64 {
			return 0, fmt.Errorf("sub %v is not an integer", v)
		}
		id = int64(v)
	case json.Number:
		parsed, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("sub %q is not an integer", v)
		}
		id = parsed
	case nil:
		return 0, errors.New("missing sub claim")
	default:
		return 0, fmt.Errorf("unsupported sub claim type %T", sub)
	}
	if id <= 0 {
		return 0, fmt.Errorf("sub %d is not a positive id", id)
	}
	return id, nil
}

// SetUsername stores the caller's chosen username.
func (r *IdentityResolver) SetUsername(ctx context.Context, user *models.User, username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return fmt.Errorf("%w: username is required", ErrBadRequest)
	}
	if err := r.users.SetUsername(ctx, user.ID, username); err != nil {
		return err
	}
	user.Username = username
	return nil
}
