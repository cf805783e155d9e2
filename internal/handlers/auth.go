package handlers

import (
	"errors"
	"net/http"
	"time"

	"propertyHub/internal/models"
	"propertyHub/internal/session"

	"github.com/golang-jwt/jwt/v4"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// The token carries no expiry of its own: it is usable while the gate holds
// the session it was issued with.
func issueToken(secret []byte, user models.AdminUser) (string, error) {
	claims := &models.CustomClaims{
		Username:  user.Username,
		Role:      user.Role,
		LoginTime: user.LoginTime,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.UnixMilli(user.LoginTime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func LoginHandler(gate *session.Gate, secret []byte) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, http.StatusBadRequest, "Invalid request body")
			return
		}

		sess, err := gate.Login(r.Context(), req.Username, req.Password)
		if errors.Is(err, session.ErrInvalidCredentials) {
			writeError(w, r, http.StatusUnauthorized, "Invalid username or password")
			return
		}

		if err != nil {
			writeError(w, r, http.StatusInternalServerError, err.Error())
			return
		}

		tokenStr, err := issueToken(secret, *sess.User)
		if err != nil {
			writeError(w, r, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, models.AuthorizationToken{Token: tokenStr, User: *sess.User})
	})
}

func SessionStatusHandler(gate *session.Gate) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, gate.Status(r.Context()))
	})
}

func LogoutHandler(gate *session.Gate) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := gate.Logout(r.Context()); err != nil {
			writeError(w, r, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, messageResponse{Message: "Logged out"})
	})
}

func ExtendSessionHandler(gate *session.Gate) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := gate.ExtendSession(r.Context()); err != nil {
			writeError(w, r, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, gate.Status(r.Context()))
	})
}
