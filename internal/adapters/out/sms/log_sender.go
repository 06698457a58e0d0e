// Package sms delivers one-time codes to customers. Only a log-based sender
// exists: codes are written to the application log instead of sent.
package sms

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"
)

var _ ports.OTPSender = (*LogSender)(nil)

// LogSender writes the code to the log.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender creates a LogSender.
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger.With("component", "otp-sender")}
}

// Send implements ports.OTPSender. It never fails.
func (s *LogSender) Send(ctx context.Context, phone kernel.Phone, code string) error {
	s.logger.InfoContext(ctx, "OTP issued", "phone", phone.String(), "code", code)
	return nil
}
