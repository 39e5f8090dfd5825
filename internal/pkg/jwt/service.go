package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims identify an HR administrator allowed to approve or reject
// pending skills.
type Claims struct {
	AdminID uuid.UUID `json:"admin_id"`
	Email   string    `json:"email,omitempty"`

	jwtlib.RegisteredClaims
}

type Service interface {
	GenerateToken(adminID uuid.UUID, email string) (string, error)
	ValidateToken(tokenString string) (Claims, error)
}

type HMACService struct {
	secret    []byte
	expiresIn time.Duration

	now func() time.Time
}

func NewHMACService(secret string, expiresIn time.Duration) *HMACService {
	return &HMACService{
		secret:    []byte(secret),
		expiresIn: expiresIn,
		now:       time.Now,
	}
}

func (s *HMACService) GenerateToken(adminID uuid.UUID, email string) (string, error) {
	now := s.now().UTC()
	claims := Claims{
		AdminID: adminID,
		Email:   email,
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(s.expiresIn)),
		},
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *HMACService) ValidateToken(tokenString string) (Claims, error) {
	var claims Claims
	token, err := jwtlib.ParseWithClaims(
		tokenString,
		&claims,
		func(t *jwtlib.Token) (any, error) {
			if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
				return nil, ErrTokenInvalid
			}
			return s.secret, nil
		},
		jwtlib.WithTimeFunc(func() time.Time { return s.now().UTC() }),
	)
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if !token.Valid || claims.AdminID == uuid.Nil {
		return Claims{}, ErrTokenInvalid
	}

	return claims, nil
}
