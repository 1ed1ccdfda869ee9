// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/doxa-fi/doxa-cli/pkg/cloud/storage"
	"github.com/doxa-fi/doxa-cli/pkg/launchpad"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// TokenResponse describes a registered token.
type TokenResponse struct {
	Address  string `json:"address"`
	Symbol   string `json:"symbol"`
	Rate     string `json:"rate"`
	Explorer string `json:"explorer"`
}

// QuoteResponse estimates a purchase at the current rate.
type QuoteResponse struct {
	TokenResponse
	Amount  string `json:"amount"`
	Receive string `json:"receive"`
}

// RateResponse is the flagship token's rate.
type RateResponse struct {
	Address string `json:"address"`
	Network string `json:"network"`
	Rate    string `json:"rate"`
}

// ErrorResponse carries the error kind label and message.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	network := s.tokens.Network()
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"network": network.Name,
		"chainId": strconv.FormatInt(network.ChainID, 10),
	})
}

func (s *Server) token(w http.ResponseWriter, r *http.Request) {
	ref, err := s.tokens.LookupToken(r.Context(), chi.URLParam(r, "address"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.tokenResponse(ref))
}

func (s *Server) quote(w http.ResponseWriter, r *http.Request) {
	amount, err := decimal.NewFromString(r.URL.Query().Get("amount"))
	if err != nil || !amount.IsPositive() {
		s.writeError(w, launchpad.ErrInvalidAmount)
		return
	}
	ref, err := s.tokens.LookupToken(r.Context(), chi.URLParam(r, "address"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, QuoteResponse{
		TokenResponse: s.tokenResponse(ref),
		Amount:        amount.String(),
		Receive:       ref.Quote(amount).String(),
	})
}

func (s *Server) flagshipRate(w http.ResponseWriter, r *http.Request) {
	network := s.tokens.Network()
	rate, err := s.tokens.ExchangeRate(r.Context(), network.FlagshipToken)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, RateResponse{
		Address: network.FlagshipToken.Hex(),
		Network: network.Name,
		Rate:    rate.String(),
	})
}

func (s *Server) contentByID(w http.ResponseWriter, r *http.Request) {
	if s.content == nil {
		writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{
			Error:   "no_content_store",
			Message: launchpad.ErrContentStoreMissing.Error(),
		})
		return
	}
	var buf bytes.Buffer
	info, err := s.content.Fetch(r.Context(), chi.URLParam(r, "cid"), &buf)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if info.ContentType != "" {
		w.Header().Set("Content-Type", info.ContentType)
	}
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (s *Server) tokenResponse(ref launchpad.TokenRef) TokenResponse {
	return TokenResponse{
		Address:  ref.Address.Hex(),
		Symbol:   ref.Symbol,
		Rate:     ref.ExchangeRate.String(),
		Explorer: s.tokens.Network().AddressURL(ref.Address),
	}
}

// statusFor maps an error kind to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, launchpad.ErrInvalidAddress), errors.Is(err, launchpad.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, launchpad.ErrNotRegistered), errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, launchpad.ErrQueryFailed), errors.Is(err, launchpad.ErrMetadataFailed):
		return http.StatusBadGateway
	case errors.Is(err, launchpad.ErrBusy):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	label := launchpad.KindLabel(err)
	if errors.Is(err, storage.ErrNotFound) {
		label = "not_found"
	}
	if status >= http.StatusInternalServerError {
		s.log.Warn("request failed", zap.Int("status", status), zap.Error(err))
	}
	writeJSON(w, status, ErrorResponse{Error: label, Message: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
