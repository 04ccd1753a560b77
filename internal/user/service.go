package user

import (
	"context"
	"errors"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/thesrcielos/CodingTracker/internal/apperrors"
	"golang.org/x/crypto/bcrypt"
)

var ErrMissingToken = errors.New("no token provided")

// bcrypt only hashes the first 72 bytes and refuses anything longer.
const maxPasswordBytes = 72

type UserService struct {
	repo    UserRepository
	revoker TokenRevoker
	secret  []byte
	cost    int
	now     func() time.Time
}

func NewUserService(repo UserRepository, revoker TokenRevoker, secret string, bcryptCost int) *UserService {
	if revoker == nil {
		revoker = NoopTokenRevoker{}
	}
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{
		repo:    repo,
		revoker: revoker,
		secret:  []byte(secret),
		cost:    bcryptCost,
		now:     time.Now,
	}
}

func (u *UserService) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	if username == "" || email == "" || req.Password == "" {
		return nil, apperrors.BadRequest("username, email and password are required")
	}
	if len(req.Password) > maxPasswordBytes {
		return nil, apperrors.BadRequest("password must be at most 72 bytes")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), u.cost)
	if err != nil {
		return nil, apperrors.Internal("Register failed", err)
	}

	created, err := u.repo.CreateUser(ctx, username, email, string(hashed))
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"user_id": created.ID, "username": created.Username}).Info("user registered")
	return created, nil
}

func (u *UserService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	identifier := strings.TrimSpace(req.Identifier)
	if identifier == "" || req.Password == "" {
		return nil, apperrors.Unauthorized("Invalid credentials", errors.New("missing identifier or password"))
	}

	found, err := u.repo.FindByIdentifier(ctx, identifier)
	if err != nil {
		return nil, apperrors.Internal("Login failed", err)
	}
	if found == nil {
		return nil, apperrors.Unauthorized("Invalid credentials", errors.New("unknown identifier"))
	}
	if err := bcrypt.CompareHashAndPassword([]byte(found.Password), []byte(req.Password)); err != nil {
		return nil, apperrors.Unauthorized("Invalid credentials", err)
	}

	token, errJWT := GenerateJWT(u.secret, found, u.now())
	if errJWT != nil {
		return nil, apperrors.Internal("error creating jwt token", errJWT)
	}
	return &LoginResponse{Token: token, Username: found.Username}, nil
}

// Verify gates every stat endpoint. The returned identity is derived from the
// signed claims only.
func (u *UserService) Verify(ctx context.Context, token string) (*Identity, error) {
	claims, err := u.verifyClaims(ctx, token)
	if err != nil {
		return nil, err
	}
	log.WithField("username", claims.Username).Debug("token verified")
	return &Identity{ID: claims.Id, Username: claims.Username}, nil
}

func (u *UserService) Logout(ctx context.Context, token string) error {
	claims, err := u.verifyClaims(ctx, token)
	if err != nil {
		return err
	}
	ttl := claims.ExpiresAt.Time.Sub(u.now())
	if err := u.revoker.Revoke(ctx, claims.ID, ttl); err != nil {
		return apperrors.Internal("Logout failed", err)
	}
	return nil
}

func (u *UserService) verifyClaims(ctx context.Context, token string) (*JwtCustomClaims, error) {
	if strings.TrimSpace(token) == "" {
		return nil, apperrors.Unauthorized("No token provided", ErrMissingToken)
	}

	claims, err := ParseJWT(u.secret, token, u.now())
	if err != nil {
		return nil, apperrors.Unauthorized("Invalid token", err).Exposed()
	}
	if claims.Id == "" {
		return nil, apperrors.Unauthorized("Invalid token", errors.New("id not found in token claims"))
	}

	if claims.ID != "" {
		revoked, err := u.revoker.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, apperrors.Internal("Token check failed", err)
		}
		if revoked {
			return nil, apperrors.Unauthorized("Invalid token", errors.New("token revoked")).Exposed()
		}
	}
	return claims, nil
}
