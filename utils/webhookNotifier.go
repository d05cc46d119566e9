package utils

import (
	"fmt"
	"lms/config"
	"time"

	"github.com/go-resty/resty/v2"
)

// ProgressionEvent is the payload posted to the configured webhook endpoint.
type ProgressionEvent struct {
	Event     string  `json:"event"`
	UserID    uint    `json:"user_id"`
	CourseID  uint    `json:"course_id"`
	ModuleID  uint    `json:"module_id"`
	Score     float64 `json:"score"`
	Timestamp string  `json:"timestamp"`
}

var webhookClient = resty.New().
	SetTimeout(10 * time.Second).
	SetRetryCount(2).
	SetRetryWaitTime(2 * time.Second)

// NotifyProgressionEvent posts a progression event to the configured webhook.
// No-op when PROGRESSION_WEBHOOK_URL is not set. Fire and forget; delivery
// failures are logged, never surfaced to the request.
func NotifyProgressionEvent(event string, userID, courseID, moduleID uint, score float64) {
	url := config.AppConfig.ProgressionWebhookURL
	if url == "" {
		return
	}

	payload := ProgressionEvent{
		Event:     event,
		UserID:    userID,
		CourseID:  courseID,
		ModuleID:  moduleID,
		Score:     score,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	go func() {
		req := webhookClient.R().
			SetHeader("Content-Type", "application/json").
			SetBody(payload)

		if key := config.AppConfig.ProgressionWebhookKey; key != "" {
			req.SetHeader("X-Webhook-Key", key)
		}

		resp, err := req.Post(url)
		if err != nil {
			fmt.Println("Webhook delivery failed:", err)
			return
		}
		if resp.StatusCode() >= 300 {
			fmt.Printf("Webhook returned status %d for event %s\n", resp.StatusCode(), event)
		}
	}()
}
