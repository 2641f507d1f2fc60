package services

import (
	"bytes"
	"fmt"
	"io"
	"text/template"

	"sejahtera/internal/common"
	"sejahtera/internal/config"
	"sejahtera/internal/models"

	"gopkg.in/gomail.v2"
)

// Mailer notifies the administrator about a new order, with the rendered
// receipt attached.
type Mailer interface {
	SendOrderNotification(order *models.Order, receipt []byte) error
}

const orderMailBody = `Pesanan baru masuk:
Sekolah: {{.SchoolName}}
Kontak: {{.ContactPerson}}
Email: {{.Email}}
Produk: {{.Product}}
Jumlah: {{.Quantity}}
Total: {{.Total}}
Bukti pembayaran: {{.Proof}}
Waktu: {{.Time}}
`

type orderMailData struct {
	SchoolName    string
	ContactPerson string
	Email         string
	Product       string
	Quantity      int
	Total         string
	Proof         string
	Time          string
}

type smtpMailer struct {
	dialer     *gomail.Dialer
	sender     string
	adminEmail string
	bodyTmpl   *template.Template
}

// NewSMTPMailer builds a Mailer over the configured SMTP transport. The
// dialer connects lazily, so construction never touches the network.
func NewSMTPMailer(cfg config.MailConfig, adminEmail string) Mailer {
	dialer := gomail.NewDialer(cfg.Server, cfg.Port, cfg.Username, cfg.Password)
	// Port 465 is implicit TLS; on other ports gomail negotiates STARTTLS
	// when the server offers it.
	dialer.SSL = cfg.UseTLS && cfg.Port == 465

	return &smtpMailer{
		dialer:     dialer,
		sender:     cfg.DefaultSender,
		adminEmail: adminEmail,
		bodyTmpl:   template.Must(template.New("order_mail").Parse(orderMailBody)),
	}
}

func (m *smtpMailer) SendOrderNotification(order *models.Order, receipt []byte) error {
	body, err := m.composeBody(order)
	if err != nil {
		return fmt.Errorf("compose notification body: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", m.adminEmail)
	msg.SetHeader("Subject", fmt.Sprintf("[CV.Sejahtera] Pesanan Baru dari %s", order.SchoolName))
	msg.SetBody("text/plain", body)
	msg.Attach(ReceiptFilename(order.ID),
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(receipt)
			return err
		}),
		gomail.SetHeader(map[string][]string{"Content-Type": {"application/pdf"}}),
	)

	return m.dialer.DialAndSend(msg)
}

func (m *smtpMailer) composeBody(order *models.Order) (string, error) {
	data := orderMailData{
		SchoolName:    order.SchoolName,
		ContactPerson: order.ContactPerson,
		Email:         order.Email,
		Product:       order.Product,
		Quantity:      order.Quantity,
		Total:         "-",
		Proof:         orDash(order.PaymentProofURL),
		Time:          order.CreatedAt.Format(receiptTimeLayout),
	}
	if order.TotalPrice != nil {
		data.Total = common.Rupiah(*order.TotalPrice)
	}

	var buf bytes.Buffer
	if err := m.bodyTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ReceiptFilename is the attachment and download name for an order's receipt.
func ReceiptFilename(orderID int64) string {
	return fmt.Sprintf("receipt_order_%d.pdf", orderID)
}
