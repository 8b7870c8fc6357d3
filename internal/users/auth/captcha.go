// Copyright (c) 2026 Anizora. All rights reserved.
// Author: pham.duylong.dev@gmail.com

package auth

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/phamduylong/anizora/internal/platform/constants"
)

// CaptchaVerifier checks a human-verification challenge token.
type CaptchaVerifier interface {
	Verify(ctx context.Context, token string) bool
}

// TurnstileVerifier validates challenge tokens against Cloudflare Turnstile.
//
// Verification fails closed: a network error, a slow upstream, or an
// undecodable reply all count as a failed challenge. There are no retries;
// the client simply solves a fresh challenge.
type TurnstileVerifier struct {
	secret   string
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

func NewTurnstileVerifier(secret, endpoint string, logger *slog.Logger) *TurnstileVerifier {
	return &TurnstileVerifier{
		secret:   secret,
		endpoint: endpoint,
		client:   &http.Client{Timeout: constants.VerifierTimeout},
		logger:   logger,
	}
}

func (verifier *TurnstileVerifier) Verify(ctx context.Context, token string) bool {
	form := url.Values{}
	form.Set("secret", verifier.secret)
	form.Set("response", token)

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, verifier.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		verifier.logger.Error("captcha request build failed", slog.String("error", err.Error()))
		return false
	}
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := verifier.client.Do(request)
	if err != nil {
		verifier.logger.Error("captcha verification failed", slog.String("error", err.Error()))
		return false
	}
	defer response.Body.Close()

	var result struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(response.Body).Decode(&result); err != nil {
		verifier.logger.Error("captcha reply undecodable", slog.String("error", err.Error()))
		return false
	}

	return result.Success
}
