// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used to talk to the remote
// information feed: articles and data-sharing requests from care providers.
//
// The feed backend is a token-gated proxy. Every action first obtains a
// short-lived token from POST /get_token and then calls POST /proxy with
// the token, the action name and the script id. [FeedAdapter] hides that
// handshake from the service layer.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] regardless of transport.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-patient-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/feed_adapter_mock.go -package=mock

// Feed actions understood by the proxy.
const (
	ActionFetchArticles     = "fetchArticles"
	ActionFetchRequests     = "fetchRequests"
	ActionSendRequestedData = "sendRequestedData"
)

// FeedAdapter defines communication with the remote feed.
type FeedAdapter interface {
	// FetchArticles returns the current article list. A response that is
	// neither a list nor an object with an "articles" list yields an empty
	// slice.
	FetchArticles(ctx context.Context) ([]models.Article, error)

	// FetchRequests returns the pending data-sharing requests.
	FetchRequests(ctx context.Context) ([]models.SharingRequest, error)

	// SendRequestResponse reports the patient's decision on a request.
	SendRequestResponse(ctx context.Context, resp models.RequestResponse) error
}
