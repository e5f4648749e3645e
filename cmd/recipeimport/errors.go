package main

import (
	"errors"
	"net/http"

	"github.com/fwojciec/recipeimport"
	openaisdk "github.com/openai/openai-go/v3"
)

// errorText returns the message shown to a user for err. Application
// errors show their message; provider and transport errors are shown as
// they are so that a wrong API key or a rate limit is visible.
func errorText(err error) string {
	if recipeimport.ErrorCode(err) != recipeimport.EINTERNAL {
		return recipeimport.ErrorMessage(err)
	}
	var e *recipeimport.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// upstreamStatus maps a provider or transport error to an HTTP status.
// OpenAI auth failures and rate limits keep their meaning; anything else
// from upstream is a bad gateway.
func upstreamStatus(err error) int {
	var apiErr *openaisdk.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return http.StatusUnauthorized
		case http.StatusTooManyRequests:
			return http.StatusTooManyRequests
		}
	}
	return http.StatusBadGateway
}
