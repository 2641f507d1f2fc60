package common

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var rupiahPrinter = message.NewPrinter(language.English)

// Rupiah formats an amount the way the paper receipts do: truncated to whole
// rupiah with thousands separators, e.g. "Rp 1,000,000".
func Rupiah(amount float64) string {
	return rupiahPrinter.Sprintf("Rp %d", int64(amount))
}
