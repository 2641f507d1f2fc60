package services

import (
	"strings"
	"testing"

	"sejahtera/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMailConfig() config.MailConfig {
	return config.MailConfig{
		Server:        "smtp.example.com",
		Port:          587,
		UseTLS:        true,
		Username:      "noreply@example.com",
		Password:      "secret",
		DefaultSender: "noreply@example.com",
	}
}

func TestComposeBody(t *testing.T) {
	mailer := NewSMTPMailer(testMailConfig(), "admin@example.com").(*smtpMailer)

	body, err := mailer.composeBody(sampleOrder())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(body), "\n")
	assert.Equal(t, []string{
		"Pesanan baru masuk:",
		"Sekolah: SD Mawar",
		"Kontak: Budi Santoso",
		"Email: budi@mawar.sch.id",
		"Produk: Kursi",
		"Jumlah: 2",
		"Total: Rp 1,000,000",
		"Bukti pembayaran: https://storage.example.com/cv_sejahtera/payments/abc.jpg",
		"Waktu: 17-08-2025 09:30:00",
	}, lines)
}

func TestComposeBody_MissingOptionalFields(t *testing.T) {
	mailer := NewSMTPMailer(testMailConfig(), "admin@example.com").(*smtpMailer)

	order := sampleOrder()
	order.TotalPrice = nil
	order.PaymentProofURL = nil

	body, err := mailer.composeBody(order)
	require.NoError(t, err)
	assert.Contains(t, body, "Total: -")
	assert.Contains(t, body, "Bukti pembayaran: -")
}

func TestReceiptFilename(t *testing.T) {
	assert.Equal(t, "receipt_order_7.pdf", ReceiptFilename(7))
}
