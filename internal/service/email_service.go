package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/resend/resend-go/v2"
)

// EmailService отправляет транзакционные письма
type EmailService interface {
	SendResetInstructions(ctx context.Context, toEmail string) error
}

// NoopEmailService используется, когда провайдер почты не сконфигурирован.
// Демо-режим forgot-password работает именно через него.
type NoopEmailService struct{}

func (s *NoopEmailService) SendResetInstructions(ctx context.Context, toEmail string) error {
	log.Printf("[EmailService] noop send reset instructions to=%s", toEmail)
	return nil
}

// ResendEmailService отправляет письма через Resend REST API
type ResendEmailService struct {
	from   string
	client *resend.Client
}

// NewResendEmailService создает сервис отправки через Resend
func NewResendEmailService(apiKey, from string) (*ResendEmailService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend api key is required")
	}
	if from == "" {
		return nil, fmt.Errorf("email from is required")
	}
	return &ResendEmailService{
		from:   from,
		client: resend.NewClient(apiKey),
	}, nil
}

// SendResetInstructions отправляет письмо с инструкциями по сбросу пароля
func (s *ResendEmailService) SendResetInstructions(ctx context.Context, toEmail string) error {
	if toEmail == "" {
		return fmt.Errorf("toEmail is required")
	}

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{toEmail},
		Subject: "Password reset instructions",
		Text:    "Follow the instructions in your dashboard to reset your password.",
		Html:    "<p>Follow the instructions in your dashboard to reset your password.</p>",
	}

	options := &resend.SendEmailOptions{}

	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		_, err := s.client.Emails.SendWithOptions(ctx, params, options)
		if err == nil {
			return nil
		}
		lastErr = err

		if wait, ok := resendRetryDelay(err, attempt); ok {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
				continue
			}
		}
		return fmt.Errorf("resend send failed: %w", err)
	}
	return fmt.Errorf("resend send failed after retries: %w", lastErr)
}

// resendRetryDelay возвращает паузу перед повтором для rate-limit ошибок
func resendRetryDelay(err error, attempt int) (time.Duration, bool) {
	var rateLimitErr *resend.RateLimitError
	if !errors.As(err, &rateLimitErr) {
		return 0, false
	}
	// Экспоненциальная пауза: 1s, 2s
	return time.Duration(attempt+1) * time.Second, true
}
