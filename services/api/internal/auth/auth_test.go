package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	testSecret = "test-secret"
	testUserID = "6f1c2a3e-8d4b-4c5a-9e7f-0a1b2c3d4e5f"
)

func TestVerifier_Verify(t *testing.T) {
	t.Parallel()

	token, err := Sign(testSecret, testUserID, "Sam", time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	id, err := NewVerifier(testSecret).Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if id.UserID != testUserID || id.Name != "Sam" {
		t.Fatalf("unexpected identity: %+v", id)
	}
}

func TestVerifier_Rejects(t *testing.T) {
	t.Parallel()

	good, _ := Sign(testSecret, testUserID, "", time.Hour)
	expired, _ := Sign(testSecret, testUserID, "", -time.Minute)
	otherKey, _ := Sign("other-secret", testUserID, "", time.Hour)
	notUUID, _ := Sign(testSecret, "alice", "", time.Hour)
	none, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": testUserID}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{name: "empty", token: "", want: ErrMissingToken},
		{name: "garbage", token: "abc.def.ghi", want: ErrInvalidToken},
		{name: "expired", token: expired, want: ErrTokenExpired},
		{name: "wrong key", token: otherKey, want: ErrInvalidToken},
		{name: "subject not uuid", token: notUUID, want: ErrInvalidToken},
		{name: "alg none", token: none, want: ErrInvalidToken},
		{name: "truncated", token: good[:len(good)-4], want: ErrInvalidToken},
	}

	v := NewVerifier(testSecret)
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := v.Verify(tt.token); err != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestBearerToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		header string
		token  string
		err    error
	}{
		{header: "Bearer abc", token: "abc"},
		{header: "bearer abc", token: "abc"},
		{header: "", err: ErrMissingToken},
		{header: "Bearer   ", err: ErrMissingToken},
		{header: "Basic abc", err: ErrInvalidToken},
		{header: "abc", err: ErrInvalidToken},
	}

	for _, tt := range tests {
		got, err := BearerToken(tt.header)
		if err != tt.err || got != tt.token {
			t.Fatalf("header %q: expected (%q, %v), got (%q, %v)", tt.header, tt.token, tt.err, got, err)
		}
	}
}
