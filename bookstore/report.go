package bookstore

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders an integer currency amount with thousands separators.
func FormatAmount(n int64) string {
	return amountPrinter.Sprintf("%d", n)
}

// WriteReport prints every sale joined with member and book details, ordered
// by sale id, one fixed-width block per sale. Monetary values are grouped
// (1100 renders as 1,100).
func (s *Store) WriteReport(w io.Writer) error {
	rows, err := s.SaleRows()
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Fprintln(w, "No sales recorded yet.")
		return nil
	}

	fmt.Fprintln(w, "==================== Sales Report ====================")
	for _, r := range rows {
		fmt.Fprintf(w, "Sale #%d\n", r.ID)
		fmt.Fprintf(w, "Date:   %s\n", r.Date)
		fmt.Fprintf(w, "Member: %s\n", r.Member)
		fmt.Fprintf(w, "Book:   %s\n", r.Title)
		fmt.Fprintln(w, strings.Repeat("-", 54))
		fmt.Fprintf(w, "%-10s %-6s %-10s %s\n", "Price", "Qty", "Discount", "Subtotal")
		fmt.Fprintln(w, strings.Repeat("-", 54))
		fmt.Fprintf(w, "%-10s %-6d %-10s %s\n",
			FormatAmount(r.Price), r.Qty, FormatAmount(r.Discount), FormatAmount(r.Total))
		fmt.Fprintln(w, strings.Repeat("-", 54))
		fmt.Fprintf(w, "Total: %s\n", FormatAmount(r.Total))
		fmt.Fprintln(w, "======================================================")
		fmt.Fprintln(w)
	}
	return nil
}
