package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"career-compass/internal/domain/user"
	"career-compass/internal/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func testJWT() jwt.Service {
	return jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
}

func TestAuth_Register_RejectsShortPassword(t *testing.T) {
	uc := NewAuthUsecase(mockUserRepo{}, testJWT())
	_, _, _, err := uc.Register(context.Background(), RegisterInput{Email: "new@example.com", Password: "short"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuth_Register_RejectsTakenEmail(t *testing.T) {
	id := uuid.New()
	uc := NewAuthUsecase(mockUserRepo{users: map[uuid.UUID]user.User{
		id: {ID: id, Email: "taken@example.com"},
	}}, testJWT())

	_, _, _, err := uc.Register(context.Background(), RegisterInput{Email: "Taken@Example.com", Password: "password123"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuth_Register_IssuesTokenPair(t *testing.T) {
	uc := NewAuthUsecase(mockUserRepo{}, testJWT())

	usr, access, refresh, err := uc.Register(context.Background(), RegisterInput{Email: "new@example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if usr.Email != "new@example.com" || usr.ID == uuid.Nil {
		t.Fatalf("unexpected user: %+v", usr)
	}
	if access == "" || refresh == "" {
		t.Fatalf("expected both tokens")
	}
}

func TestAuth_Login_WrongPassword(t *testing.T) {
	id := uuid.New()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	uc := NewAuthUsecase(mockUserRepo{users: map[uuid.UUID]user.User{
		id: {ID: id, Email: "a@example.com", PasswordHash: string(hash)},
	}}, testJWT())

	_, _, _, err := uc.Login(context.Background(), LoginInput{Email: "a@example.com", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuth_Login_UnknownEmailLooksLikeBadCredentials(t *testing.T) {
	uc := NewAuthUsecase(mockUserRepo{}, testJWT())
	_, _, _, err := uc.Login(context.Background(), LoginInput{Email: "ghost@example.com", Password: "password123"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuth_Refresh_RoundTrip(t *testing.T) {
	id := uuid.New()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	svc := testJWT()
	uc := NewAuthUsecase(mockUserRepo{users: map[uuid.UUID]user.User{
		id: {ID: id, Email: "a@example.com", PasswordHash: string(hash)},
	}}, svc)

	_, _, refresh, err := uc.Login(context.Background(), LoginInput{Email: "a@example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	access, next, err := uc.Refresh(context.Background(), refresh)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if access == "" || next == "" {
		t.Fatalf("expected a fresh token pair")
	}

	claims, err := svc.ValidateToken(access)
	if err != nil {
		t.Fatalf("refreshed access token must validate: %v", err)
	}
	if claims.UserID != id || svc.IsRefreshToken(claims) {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuth_Refresh_RejectsAccessToken(t *testing.T) {
	id := uuid.New()
	svc := testJWT()
	access, err := svc.GenerateAccessToken(id, "a@example.com")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	uc := NewAuthUsecase(mockUserRepo{users: map[uuid.UUID]user.User{
		id: {ID: id, Email: "a@example.com"},
	}}, svc)

	_, _, err = uc.Refresh(context.Background(), access)
	if !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}
