package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"

	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/account"
	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/model"
	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/repository"
)

// Connect starts the OAuth consent flow for the chat user.
func (uc *implUseCase) Connect(ctx context.Context, sc model.Scope) (account.ConnectOutput, error) {
	// Ensure the user row exists before the callback races it.
	if _, err := uc.repo.GetOrCreateUser(ctx, repository.GetOrCreateUserOptions{
		TelegramID:      sc.UserID,
		DefaultTimezone: uc.defaultTimezone,
	}); err != nil {
		uc.l.Errorf(ctx, "account.usecase.Connect.GetOrCreateUser: %v", err)
		return account.ConnectOutput{}, err
	}

	state, err := uc.states.SignState(sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "account.usecase.Connect.SignState: %v", err)
		return account.ConnectOutput{}, err
	}

	url := uc.oauthCfg.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
	return account.ConnectOutput{AuthURL: url}, nil
}

// CompleteLink finishes the OAuth flow from the redirect callback.
func (uc *implUseCase) CompleteLink(ctx context.Context, input account.CompleteLinkInput) (account.CompleteLinkOutput, error) {
	telegramID, err := uc.states.VerifyState(input.State)
	if err != nil {
		uc.l.Warnf(ctx, "account.usecase.CompleteLink.VerifyState: %v", err)
		return account.CompleteLinkOutput{}, account.ErrInvalidState
	}

	tok, err := uc.oauthCfg.Exchange(ctx, input.Code)
	if err != nil {
		uc.l.Errorf(ctx, "account.usecase.CompleteLink.Exchange: %v", err)
		return account.CompleteLinkOutput{}, account.ErrExchangeFailed
	}

	email, sub := identityFromToken(tok)

	raw, err := json.Marshal(tok)
	if err != nil {
		return account.CompleteLinkOutput{}, fmt.Errorf("failed to serialize token: %w", err)
	}
	sealed, err := uc.enc.Encrypt(string(raw))
	if err != nil {
		uc.l.Errorf(ctx, "account.usecase.CompleteLink.Encrypt: %v", err)
		return account.CompleteLinkOutput{}, account.ErrStoreCredentials
	}

	if err := uc.repo.UpdateUserToken(ctx, repository.UpdateUserTokenOptions{
		TelegramID:      telegramID,
		TokenCiphertext: sealed,
		GoogleSub:       sub,
		Email:           email,
	}); err != nil {
		uc.l.Errorf(ctx, "account.usecase.CompleteLink.UpdateUserToken: %v", err)
		return account.CompleteLinkOutput{}, account.ErrStoreCredentials
	}

	uc.l.Infof(ctx, "account linked for user %s", telegramID)
	return account.CompleteLinkOutput{TelegramID: telegramID, Email: email}, nil
}

// identityFromToken pulls email and subject out of the id_token without
// signature verification; the token came directly from Google's token
// endpoint over TLS.
func identityFromToken(tok *oauth2.Token) (email, sub string) {
	idToken, ok := tok.Extra("id_token").(string)
	if !ok || idToken == "" {
		return "", ""
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(idToken, claims); err != nil {
		return "", ""
	}

	email, _ = claims["email"].(string)
	sub, _ = claims["sub"].(string)
	return email, sub
}
