package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"Airframe/internal/config"
	"Airframe/internal/logger"

	"go.uber.org/zap"
)

const apiBase = "https://api.telegram.org"

type Update struct {
	UpdateID int      `json:"update_id"`
	Message  *Message `json:"message"`
}

type Message struct {
	MessageID int    `json:"message_id"`
	Chat      Chat   `json:"chat"`
	Text      string `json:"text"`
}

type Chat struct {
	ID int64 `json:"id"`
}

type UpdateResponse struct {
	OK          bool     `json:"ok"`
	Description string   `json:"description"`
	Result      []Update `json:"result"`
}

type bot struct {
	token   string
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

func newBot(token string, l *zap.Logger) *bot {
	return &bot{
		token:   token,
		baseURL: apiBase,
		client:  &http.Client{Timeout: 30 * time.Second},
		log:     l,
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.Telegram.Token == "" {
		log.Fatal("TELEGRAM_TOKEN missing")
	}
	l, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer l.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	l.Info("bot started")
	newBot(cfg.Telegram.Token, l).run(ctx, cfg.Telegram.PollInterval)
	l.Info("bot stopped")
}

func (b *bot) run(ctx context.Context, interval time.Duration) {
	offset := 0
	for {
		wait := interval
		next, err := b.poll(ctx, offset)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			b.log.Warn("getUpdates failed", zap.Error(err))
			wait = 2 * time.Second
		}
		offset = next
		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}
	}
}

// poll fetches one batch of updates, answers them and returns the next offset.
func (b *bot) poll(ctx context.Context, offset int) (int, error) {
	updates, err := b.getUpdates(ctx, offset)
	if err != nil {
		return offset, err
	}
	for _, u := range updates {
		offset = u.UpdateID + 1
		if u.Message == nil || u.Message.Text == "" {
			continue
		}
		text := reply(u.Message.Text)
		if err := b.sendMessage(ctx, u.Message.Chat.ID, text); err != nil {
			b.log.Warn("sendMessage failed", zap.Int64("chat_id", u.Message.Chat.ID), zap.Error(err))
		}
	}
	return offset, nil
}

func (b *bot) getUpdates(ctx context.Context, offset int) ([]Update, error) {
	url := fmt.Sprintf("%s/bot%s/getUpdates?timeout=20&offset=%d", b.baseURL, b.token, offset)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	res, err := b.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	var out UpdateResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	if !out.OK {
		return nil, fmt.Errorf("telegram: %s", out.Description)
	}
	return out.Result, nil
}

func (b *bot) sendMessage(ctx context.Context, chatID int64, text string) error {
	url := fmt.Sprintf("%s/bot%s/sendMessage", b.baseURL, b.token)
	payload, err := json.Marshal(map[string]any{"chat_id": chatID, "text": text})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	res, err := b.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram: status %d", res.StatusCode)
	}
	return nil
}
