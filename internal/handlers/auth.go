// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/pquerna/otp/totp"
	qrcode "github.com/skip2/go-qrcode"

	"scholarsite/internal/middleware"
	"scholarsite/internal/session"
	"scholarsite/internal/store"
)

// totpIssuer labels enrolled accounts in authenticator apps.
const totpIssuer = "ScholarSite"

// Auth handles operator login, TOTP enrollment and verification for the
// admin JSON API.
type Auth struct {
	sessions  *session.Store
	operators *store.OperatorStore
}

// NewAuth creates the auth handler group.
func NewAuth(sessions *session.Store, operators *store.OperatorStore) *Auth {
	return &Auth{sessions: sessions, operators: operators}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	DisplayName string `json:"display_name"`
	// TwoFA tells the client what comes next: "setup" for first-time
	// enrollment, "verify" for a code prompt.
	TwoFA string `json:"two_fa"`
}

// Login checks credentials and opens a session with 2FA still pending.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	op, err := a.operators.FindByEmail(req.Email)
	if err != nil {
		slog.Error("login lookup failed", "error", err)
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if op == nil || !a.operators.CheckPassword(op, req.Password) {
		jsonError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	if _, err := a.sessions.Create(r.Context(), w, &session.Data{
		OperatorID:  op.ID,
		Email:       op.Email,
		DisplayName: op.DisplayName,
		TwoFADone:   false,
	}); err != nil {
		slog.Error("session create failed", "error", err)
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp := loginResponse{DisplayName: op.DisplayName, TwoFA: "verify"}
	if !op.TOTPEnabled {
		resp.TwoFA = "setup"
	}
	writeJSON(w, http.StatusOK, resp)
}

type twoFASetupResponse struct {
	Secret     string `json:"secret"`
	OTPAuthURL string `json:"otpauth_url"`
	QRPNG      string `json:"qr_png"` // base64-encoded PNG
}

// TwoFASetup generates a fresh TOTP secret for the logged-in operator and
// returns it alongside a QR code. Refused once TOTP is enabled; the
// operator must reset enrollment first.
func (a *Auth) TwoFASetup(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	op, err := a.operators.FindByID(sess.OperatorID)
	if err != nil || op == nil {
		slog.Error("operator lookup for 2fa setup failed", "error", err)
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if op.TOTPEnabled {
		jsonError(w, http.StatusConflict, "two-factor authentication already enabled")
		return
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: op.Email,
	})
	if err != nil {
		slog.Error("totp generate failed", "error", err)
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if err := a.operators.SetTOTPSecret(op.ID, key.Secret()); err != nil {
		slog.Error("save totp secret failed", "error", err)
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}

	qrPNG, err := qrcode.Encode(key.URL(), qrcode.Medium, 256)
	if err != nil {
		slog.Error("qr code generation failed", "error", err)
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, twoFASetupResponse{
		Secret:     key.Secret(),
		OTPAuthURL: key.URL(),
		QRPNG:      base64.StdEncoding.EncodeToString(qrPNG),
	})
}

type twoFAVerifyRequest struct {
	Code string `json:"code"`
}

// TwoFAVerify validates a TOTP code and completes authentication. The
// first successful verification enables TOTP permanently.
func (a *Auth) TwoFAVerify(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var req twoFAVerifyRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	op, err := a.operators.FindByID(sess.OperatorID)
	if err != nil || op == nil {
		slog.Error("operator lookup for 2fa verify failed", "error", err)
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if op.TOTPSecret == nil {
		jsonError(w, http.StatusConflict, "two-factor authentication not set up")
		return
	}

	if !totp.Validate(req.Code, *op.TOTPSecret) {
		jsonError(w, http.StatusUnauthorized, "invalid code")
		return
	}

	if !op.TOTPEnabled {
		if err := a.operators.EnableTOTP(op.ID); err != nil {
			slog.Error("enable totp failed", "error", err)
			jsonError(w, http.StatusInternalServerError, "internal error")
			return
		}
	}

	sess.TwoFADone = true
	if err := a.sessions.Update(r.Context(), r, sess); err != nil {
		slog.Error("session update failed", "error", err)
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Me returns the current session's operator identity.
func (a *Auth) Me(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"operator_id":  sess.OperatorID,
		"email":        sess.Email,
		"display_name": sess.DisplayName,
		"two_fa_done":  sess.TwoFADone,
	})
}

// Logout destroys the session.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.sessions.Destroy(r.Context(), w, r); err != nil {
		slog.Error("session destroy failed", "error", err)
	}
	w.WriteHeader(http.StatusNoContent)
}
