package sms

import (
	"bytes"
	"log/slog"
	"testing"

	"ordering/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogSender_WritesCode(t *testing.T) {
	var buf bytes.Buffer
	sender := NewLogSender(slog.New(slog.NewJSONHandler(&buf, nil)))

	phone, err := kernel.NewPhone("+91 98765-43210")
	require.NoError(t, err)

	require.NoError(t, sender.Send(t.Context(), phone, "042917"))
	assert.Contains(t, buf.String(), `"phone":"+919876543210"`)
	assert.Contains(t, buf.String(), `"code":"042917"`)
	assert.Contains(t, buf.String(), `"component":"otp-sender"`)
}
