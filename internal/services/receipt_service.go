package services

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"sejahtera/internal/common"
	"sejahtera/internal/models"

	"github.com/jung-kurt/gofpdf"
)

// ErrRenderReceipt is returned when an order is missing the fields a receipt
// needs. Callers should treat it as a server-side defect, not user input.
var ErrRenderReceipt = errors.New("cannot render receipt")

// ReceiptService renders a single-page PDF receipt for an order. Rendering is
// pure: identical orders produce byte-identical documents.
type ReceiptService interface {
	Render(order *models.Order) ([]byte, error)
}

type receiptService struct{}

func NewReceiptService() ReceiptService {
	return &receiptService{}
}

const receiptTimeLayout = "02-01-2006 15:04:05"

func (s *receiptService) Render(order *models.Order) ([]byte, error) {
	if order.CreatedAt.IsZero() {
		return nil, fmt.Errorf("%w: order %d has no creation timestamp", ErrRenderReceipt, order.ID)
	}
	if order.SchoolName == "" || order.ContactPerson == "" || order.Email == "" || order.Product == "" {
		return nil, fmt.Errorf("%w: order %d is missing required fields", ErrRenderReceipt, order.ID)
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	// Pin both Info dates to the order so re-renders are byte-for-byte
	// identical; gofpdf otherwise stamps ModDate with the render time.
	pdf.SetCreationDate(order.CreatedAt.UTC())
	pdf.SetModificationDate(order.CreatedAt.UTC())
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(50, 42, "CV. Sejahtera - Notulensi Pemesanan")

	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(50, 62, fmt.Sprintf("Tanggal: %s", order.CreatedAt.Format(receiptTimeLayout)))
	pdf.Text(50, 82, fmt.Sprintf("Sekolah: %s", order.SchoolName))
	pdf.Text(50, 102, fmt.Sprintf("Kontak person: %s | Email: %s | Telp: %s",
		order.ContactPerson, order.Email, orDash(order.Phone)))
	pdf.Text(50, 122, fmt.Sprintf("Produk: %s", order.Product))
	pdf.Text(50, 142, fmt.Sprintf("Jumlah: %d", order.Quantity))
	if order.TotalPrice != nil && *order.TotalPrice != 0 {
		pdf.Text(50, 162, fmt.Sprintf("Total Harga: %s", common.Rupiah(*order.TotalPrice)))
	}

	pdf.Text(50, 182, "Keterangan:")
	pdf.SetFont("Helvetica", "", 10)
	y := 202.0
	for _, line := range noteLines(order.Notes) {
		pdf.Text(50, y, line)
		y += 12
	}

	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(50, 262, "Bukti Pembayaran (URL):")
	pdf.SetTextColor(0, 0, 255)
	pdf.Text(50, 282, orDash(order.PaymentProofURL))
	pdf.SetTextColor(0, 0, 0)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderReceipt, err)
	}
	return buf.Bytes(), nil
}

// noteLines splits the notes field into the lines printed on the receipt.
// Blank notes collapse to a single dash.
func noteLines(notes *string) []string {
	trimmed := strings.TrimSpace(common.SafeString(notes))
	if trimmed == "" {
		return []string{"-"}
	}
	return strings.Split(strings.ReplaceAll(trimmed, "\r\n", "\n"), "\n")
}

func orDash(p *string) string {
	if p == nil || *p == "" {
		return "-"
	}
	return *p
}
