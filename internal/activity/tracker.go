package activity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

type checkInEvent struct {
	MemberID  string    `json:"member_id"`
	SessionID string    `json:"session_id"`
	At        time.Time `json:"at"`
}

// HTTPTracker отправляет факты чек-ина во внешний сервис активности.
// Пустой URL отключает трекер, ошибки отправки не влияют на чек-ин.
type HTTPTracker struct {
	url      string
	client   *http.Client
	strategy retry.Strategy
	logger   logger.Logger
}

func NewHTTPTracker(url string, logger logger.Logger) *HTTPTracker {
	if url == "" {
		logger.Warn("activity tracker url is empty, check-in tracking disabled")
	}
	return &HTTPTracker{
		url:    url,
		client: &http.Client{Timeout: 5 * time.Second},
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
		logger: logger,
	}
}

func (t *HTTPTracker) TrackCheckIn(ctx context.Context, memberID, sessionID string, at time.Time) {
	if t.url == "" {
		return
	}

	body, err := json.Marshal(checkInEvent{
		MemberID:  memberID,
		SessionID: sessionID,
		At:        at.UTC(),
	})
	if err != nil {
		t.logger.Error("failed to marshal check-in event",
			logger.String("member_id", memberID),
			logger.String("error", err.Error()),
		)
		return
	}

	err = retry.Do(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := t.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("activity service returned %d", resp.StatusCode)
		}
		return nil
	}, t.strategy)
	if err != nil {
		t.logger.Error("failed to track check-in",
			logger.String("member_id", memberID),
			logger.String("session_id", sessionID),
			logger.String("error", err.Error()),
		)
	}
}
