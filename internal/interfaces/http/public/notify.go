package public

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/formgate/formgate-services/api/internal/intake/domain"
)

// notifySubmissionReceipt は受理済み投稿の概要を管理者向けチャンネルへ送信する。
// ベストエフォートであり、失敗しても投稿の Outcome には影響しない。
func (h *Handler) notifySubmissionReceipt(ctx context.Context, submission domain.Submission) {
	endpoint := strings.TrimSpace(h.notifyEndpoint)
	if endpoint == "" {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}

	message := buildReceiptMessage(submission)
	err := h.sendMessengerWithRetry(ctx, h.notifyDestination, submission.ID, message, 3, 200*time.Millisecond)
	if err == nil {
		return
	}

	if h.logger != nil {
		h.logger.Printf("管理者通知の送信に失敗: %v", err)
	}
	h.persistNotificationFailure(ctx, submission, err, 3)
}

func buildReceiptMessage(submission domain.Submission) string {
	var builder strings.Builder
	builder.WriteString("新しいお問い合わせが届きました。\n")
	builder.WriteString(fmt.Sprintf("- 名前: %s\n", submission.Name))
	builder.WriteString(fmt.Sprintf("- メール: %s\n", submission.Email))
	if strings.TrimSpace(submission.Message) != "" {
		builder.WriteString(fmt.Sprintf("- 本文: %s\n", submission.Message))
	}
	builder.WriteString(fmt.Sprintf("- 受付時刻: %s\n", submission.CreatedAt.Format(time.RFC3339)))
	return builder.String()
}

func (h *Handler) sendMessengerWithRetry(ctx context.Context, destination, identifier, text string, attempts int, delay time.Duration) error {
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error
	for i := 0; i < attempts; i++ {
		if err := h.sendMessengerMessage(ctx, destination, identifier, text); err == nil {
			return nil
		} else {
			lastErr = err
		}
		if delay > 0 {
			time.Sleep(delay)
		}
	}
	return lastErr
}

// persistNotificationFailure は通知失敗を failed_notifications コレクションへ記録する。
// 後続のバッチ再送（本サービスの責務外）が拾える形式で残す。
func (h *Handler) persistNotificationFailure(ctx context.Context, submission domain.Submission, cause error, attempts int) {
	if h.failedNotifications == nil || cause == nil {
		return
	}

	doc := bson.M{
		"target": "admin_notification",
		"payload": bson.M{
			"submissionId": submission.ID,
			"name":         submission.Name,
			"email":        submission.Email,
		},
		"error":       cause.Error(),
		"attempts":    attempts,
		"status":      "pending",
		"createdAt":   time.Now().UTC(),
		"lastTriedAt": time.Now().UTC(),
	}
	if _, err := h.failedNotifications.InsertOne(ctx, doc); err != nil && h.logger != nil {
		h.logger.Printf("failed_notifications への保存に失敗: %v", err)
	}
}

func (h *Handler) sendMessengerMessage(ctx context.Context, destination, identifier, bodyText string) error {
	trimmedID := strings.TrimSpace(identifier)
	if trimmedID == "" {
		return errors.New("identifier is required")
	}

	payload := map[string]any{
		"userId": trimmedID,
		"text":   bodyText,
	}
	if dest := strings.TrimSpace(destination); dest != "" {
		payload["destination"] = dest
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("メッセンジャー送信用ペイロードの作成に失敗: %w", err)
	}

	timeout := h.httpClient.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	endpoint := strings.TrimRight(h.notifyEndpoint, "/") + "/messages"
	req, err := http.NewRequestWithContext(ctxWithTimeout, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("メッセンジャー送信リクエストの作成に失敗: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := h.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("メッセンジャー送信リクエストに失敗: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		message, _ := io.ReadAll(io.LimitReader(res.Body, 1<<16))
		return fmt.Errorf("メッセンジャー送信でエラーが発生: status=%d body=%s", res.StatusCode, strings.TrimSpace(string(message)))
	}

	return nil
}
