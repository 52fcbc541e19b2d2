// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package notify sends operator notifications through the Telegram Bot
// API. Notifications are best-effort: a failed send is logged by the
// caller and never blocks the request that triggered it.
package notify

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

	"scholarsite/internal/models"
)

// ErrNotConfigured is returned by Send when the bot token or chat ID is
// missing. Callers treat it as "notifications are off", not a failure.
var ErrNotConfigured = errors.New("telegram notifier not configured")

const defaultAPIBase = "https://api.telegram.org"

// Telegram delivers messages to a single operator chat.
type Telegram struct {
	token   string
	chatID  string
	apiBase string
	client  *http.Client
}

// NewTelegram creates a notifier. Empty token or chatID yields a disabled
// notifier whose Send returns ErrNotConfigured.
func NewTelegram(token, chatID string) *Telegram {
	return &Telegram{
		token:   token,
		chatID:  chatID,
		apiBase: defaultAPIBase,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Enabled reports whether both the bot token and chat ID are set.
func (t *Telegram) Enabled() bool {
	return t.token != "" && t.chatID != ""
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// Send posts an HTML-formatted message to the configured chat. The call
// succeeds only when the API answers 2xx with ok:true.
func (t *Telegram) Send(ctx context.Context, text string) error {
	if !t.Enabled() {
		return ErrNotConfigured
	}

	body, err := json.Marshal(sendMessageRequest{
		ChatID:    t.chatID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return fmt.Errorf("marshal telegram request: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.apiBase, t.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("telegram api status %d", resp.StatusCode)
	}

	var result sendMessageResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&result); err != nil {
		return fmt.Errorf("decode telegram response: %w", err)
	}
	if !result.OK {
		return fmt.Errorf("telegram api rejected message: %s", result.Description)
	}
	return nil
}

// escape makes user-supplied text safe for Telegram's HTML parse mode.
func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}

// ServiceOrderMessage formats a new service order notification.
func ServiceOrderMessage(o *models.ServiceOrder, service *models.Service) string {
	var b strings.Builder
	b.WriteString("🔔 <b>Новая заявка на услугу</b>\n\n")
	fmt.Fprintf(&b, "<b>Услуга:</b> %s\n", escape(service.Title))
	fmt.Fprintf(&b, "<b>Имя:</b> %s\n", escape(o.FullName))
	fmt.Fprintf(&b, "<b>Email:</b> %s\n", escape(o.Email))
	fmt.Fprintf(&b, "<b>Телефон:</b> %s\n", escape(o.Phone))
	if o.Organization != "" {
		fmt.Fprintf(&b, "<b>Организация:</b> %s\n", escape(o.Organization))
	}
	if o.PreferredDate != nil {
		fmt.Fprintf(&b, "<b>Желаемая дата:</b> %s\n", o.PreferredDate.Format("02.01.2006"))
	}
	fmt.Fprintf(&b, "\n<b>Сообщение:</b>\n%s\n", escape(o.Message))
	fmt.Fprintf(&b, "\n<b>Дата заказа:</b> %s", o.CreatedAt.Format("02.01.2006 15:04"))
	fmt.Fprintf(&b, "\n\n<i>ID заказа: #%s</i>", o.ID)
	return b.String()
}

// BookOrderMessage formats a new book order notification.
func BookOrderMessage(o *models.BookOrder, book *models.Book) string {
	var b strings.Builder
	b.WriteString("📚 <b>Новый заказ книги</b>\n\n")
	fmt.Fprintf(&b, "<b>Книга:</b> %s\n", escape(book.Title))
	fmt.Fprintf(&b, "<b>Количество:</b> %d\n", o.Quantity)
	if total := o.TotalPrice(book); total != nil {
		fmt.Fprintf(&b, "<b>Сумма:</b> %.2f\n", *total)
	}
	fmt.Fprintf(&b, "<b>Имя:</b> %s\n", escape(o.FullName))
	fmt.Fprintf(&b, "<b>Email:</b> %s\n", escape(o.Email))
	fmt.Fprintf(&b, "<b>Телефон:</b> %s\n", escape(o.Phone))
	fmt.Fprintf(&b, "<b>Адрес доставки:</b> %s\n", escape(o.Address))
	if o.Message != "" {
		fmt.Fprintf(&b, "\n<b>Комментарий:</b>\n%s\n", escape(o.Message))
	}
	fmt.Fprintf(&b, "\n<b>Дата заказа:</b> %s", o.CreatedAt.Format("02.01.2006 15:04"))
	fmt.Fprintf(&b, "\n\n<i>ID заказа: #%s</i>", o.ID)
	return b.String()
}

// ContactMessageText formats a contact form notification.
func ContactMessageText(m *models.ContactMessage) string {
	var b strings.Builder
	b.WriteString("✉️ <b>Новое сообщение с сайта</b>\n\n")
	fmt.Fprintf(&b, "<b>Имя:</b> %s\n", escape(m.Name))
	fmt.Fprintf(&b, "<b>Email:</b> %s\n", escape(m.Email))
	fmt.Fprintf(&b, "<b>Тема:</b> %s\n", escape(m.Subject))
	fmt.Fprintf(&b, "\n<b>Сообщение:</b>\n%s", escape(m.Message))
	return b.String()
}
