package main

import (
	"encoding/json"
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

// handleLogin verifies the shared dashboard password and returns a JWT token.
func (a *App) handleLogin(w http.ResponseWriter, r *http.Request) {
	if a.cfg.PasswordHash == "" {
		http.Error(w, "auth not configured", http.StatusServiceUnavailable)
		return
	}

	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.Password == "" {
		http.Error(w, "password is required", http.StatusBadRequest)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(a.cfg.PasswordHash), []byte(req.Password)) != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	tok, err := signJWT(a.cfg.JWTSecret)
	if err != nil {
		http.Error(w, "jwt error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, tokenResp{Token: tok})
}
