// Package client is the device-side SDK for the issuance and redemption
// session protocol. It drives the customer flows (request a stamp, redeem a
// reward) and the store-terminal approval queue against the REST API, owning
// the polling, countdown, and state-machine logic the screens render from.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"stamppass/internal/pkg/errs"
)

// Sentinel errors mapped from response status codes. Flows branch on these to
// decide between terminal failure and transient retry.
var (
	ErrNotFound     = errs.New("resource not found")
	ErrConflict     = errs.New("request conflicts with current state")
	ErrGone         = errs.New("resource expired or already consumed")
	ErrForbidden    = errs.New("access denied")
	ErrUnauthorized = errs.New("authentication required")
)

// IssuanceRequest is the poll target for a customer's pending request.
type IssuanceRequest struct {
	ID                uuid.UUID  `json:"id"`
	StoreID           uuid.UUID  `json:"storeId"`
	WalletStampCardID uuid.UUID  `json:"walletStampCardId"`
	Status            string     `json:"status"`
	CurrentStampCount int32      `json:"currentStampCount"`
	RewardsIssued     int32      `json:"rewardsIssued"`
	RemainingSeconds  int32      `json:"remainingSeconds"`
	ResolvedAt        *time.Time `json:"resolvedAt,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
}

// PendingIssuance is one row of the terminal approval queue.
type PendingIssuance struct {
	ID                uuid.UUID `json:"id"`
	WalletStampCardID uuid.UUID `json:"walletStampCardId"`
	CustomerEmail     string    `json:"customerEmail"`
	CurrentStampCount int32     `json:"currentStampCount"`
	GoalCount         int32     `json:"goalCount"`
	RemainingSeconds  int32     `json:"remainingSeconds"`
	CreatedAt         time.Time `json:"createdAt"`
}

type RedeemSession struct {
	SessionID        uuid.UUID `json:"sessionId"`
	RemainingSeconds int32     `json:"remainingSeconds"`
}

type WalletStampCard struct {
	ID          uuid.UUID       `json:"id"`
	StoreID     uuid.UUID       `json:"storeId"`
	StoreName   string          `json:"storeName"`
	DesignID    uuid.UUID       `json:"designId"`
	DesignName  string          `json:"designName"`
	RewardName  string          `json:"rewardName"`
	Design      json.RawMessage `json:"design,omitempty"`
	StampCount  int32           `json:"stampCount"`
	GoalCount   int32           `json:"goalCount"`
	IsCompleted bool            `json:"isCompleted"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type createIssuancePayload struct {
	StoreID           uuid.UUID `json:"storeId"`
	WalletStampCardID uuid.UUID `json:"walletStampCardId"`
	IdempotencyKey    uuid.UUID `json:"idempotencyKey"`
}

type startRedeemPayload struct {
	WalletRewardID uuid.UUID `json:"walletRewardId"`
}

// API is a stateless REST client. All protocol state lives server-side or in
// the flow objects that wrap this client.
type API struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewAPI(baseURL, token string, httpClient *http.Client) *API {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &API{
		baseURL:    baseURL,
		token:      token,
		httpClient: httpClient,
	}
}

func (a *API) CreateIssuanceRequest(ctx context.Context, storeID, walletStampCardID, idempotencyKey uuid.UUID) (*IssuanceRequest, error) {
	var out IssuanceRequest
	payload := createIssuancePayload{
		StoreID:           storeID,
		WalletStampCardID: walletStampCardID,
		IdempotencyKey:    idempotencyKey,
	}
	if err := a.do(ctx, http.MethodPost, "/api/issuance-requests", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) GetIssuanceRequest(ctx context.Context, id uuid.UUID) (*IssuanceRequest, error) {
	var out IssuanceRequest
	if err := a.do(ctx, http.MethodGet, "/api/issuance-requests/"+id.String(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) ListPendingIssuance(ctx context.Context, storeID uuid.UUID) ([]*PendingIssuance, error) {
	var out []*PendingIssuance
	path := fmt.Sprintf("/api/terminal/%s/issuance-requests?status=pending", storeID)
	if err := a.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *API) ApproveIssuance(ctx context.Context, storeID, requestID uuid.UUID) (*IssuanceRequest, error) {
	var out IssuanceRequest
	path := fmt.Sprintf("/api/terminal/%s/issuance-requests/%s/approve", storeID, requestID)
	if err := a.do(ctx, http.MethodPost, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) RejectIssuance(ctx context.Context, storeID, requestID uuid.UUID) (*IssuanceRequest, error) {
	var out IssuanceRequest
	path := fmt.Sprintf("/api/terminal/%s/issuance-requests/%s/reject", storeID, requestID)
	if err := a.do(ctx, http.MethodPost, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) StartRedeemSession(ctx context.Context, walletRewardID uuid.UUID) (*RedeemSession, error) {
	var out RedeemSession
	if err := a.do(ctx, http.MethodPost, "/api/redeem-sessions", startRedeemPayload{WalletRewardID: walletRewardID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) CompleteRedeemSession(ctx context.Context, sessionID uuid.UUID) error {
	return a.do(ctx, http.MethodPost, "/api/redeem-sessions/"+sessionID.String()+"/complete", nil, nil)
}

func (a *API) ListWalletStampCards(ctx context.Context) ([]*WalletStampCard, error) {
	var out []*WalletStampCard
	if err := a.do(ctx, http.MethodGet, "/api/wallet/stamp-cards", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *API) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return errs.Wrap(err, "failed to encode request body")
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, body)
	if err != nil {
		return errs.Wrap(err, "failed to build request")
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return errs.Wrap(err, "request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return statusError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrap(err, "failed to decode response body")
	}
	return nil
}

func statusError(resp *http.Response) error {
	var envelope struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&envelope)
	msg := envelope.Error
	if msg == "" {
		msg = resp.Status
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return errs.Mark(errs.New(msg), ErrUnauthorized)
	case http.StatusForbidden:
		return errs.Mark(errs.New(msg), ErrForbidden)
	case http.StatusNotFound:
		return errs.Mark(errs.New(msg), ErrNotFound)
	case http.StatusConflict:
		return errs.Mark(errs.New(msg), ErrConflict)
	case http.StatusGone:
		return errs.Mark(errs.New(msg), ErrGone)
	default:
		return errs.New(fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, msg))
	}
}
