package fakeservice

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/coursesqa/courses-api-tests/schema"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	accessTokenType  = "access"
	refreshTokenType = "refresh"
)

type tokenClaims struct {
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

type contextKey struct{}

func userIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}

func (s *Service) issueToken(userID, tokenType string, lifetime time.Duration) (string, error) {
	now := s.now()
	claims := tokenClaims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
			ID:        uuid.NewString(),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", tokenType, err)
	}
	return signed, nil
}

func (s *Service) issueTokens(userID string) (schema.Token, error) {
	access, err := s.issueToken(userID, accessTokenType, s.tokenLifetime)
	if err != nil {
		return schema.Token{}, err
	}
	refresh, err := s.issueToken(userID, refreshTokenType, s.refreshLifetime)
	if err != nil {
		return schema.Token{}, err
	}
	return schema.Token{TokenType: "bearer", AccessToken: access, RefreshToken: refresh}, nil
}

var errWrongTokenType = errors.New("wrong token type")

// parseToken returns the subject of a valid token of the given type.
func (s *Service) parseToken(signed, tokenType string) (string, error) {
	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(
		signed,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", err
	}
	if claims.TokenType != tokenType {
		return "", errWrongTokenType
	}
	return claims.Subject, nil
}

func (s *Service) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeDetail(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		userID, err := s.parseToken(token, accessTokenType)
		if err != nil {
			s.logger.Debug("rejected access token: " + err.Error())
			writeDetail(w, http.StatusUnauthorized, "Invalid access token")
			return
		}
		s.mu.Lock()
		known := s.findUser(userID) != nil
		s.mu.Unlock()
		if !known {
			writeDetail(w, http.StatusUnauthorized, "Invalid access token")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), contextKey{}, userID)))
	})
}

func (s *Service) login(w http.ResponseWriter, r *http.Request) {
	request, ok := decodeBody[schema.LoginRequest](w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	u := s.findUserByEmail(request.Email)
	s.mu.Unlock()
	if u == nil || u.password != request.Password {
		writeDetail(w, http.StatusUnauthorized, "Wrong email or password")
		return
	}
	s.respondWithTokens(w, u.user.ID)
}

func (s *Service) refresh(w http.ResponseWriter, r *http.Request) {
	request, ok := decodeBody[schema.RefreshRequest](w, r)
	if !ok {
		return
	}
	userID, err := s.parseToken(request.RefreshToken, refreshTokenType)
	if err != nil {
		writeDetail(w, http.StatusUnauthorized, "Invalid refresh token")
		return
	}
	s.respondWithTokens(w, userID)
}

func (s *Service) respondWithTokens(w http.ResponseWriter, userID string) {
	token, err := s.issueTokens(userID)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, schema.LoginResponse{Token: token})
}
