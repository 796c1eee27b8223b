package printing

import (
	"fmt"
	"strings"
	"time"

	"github.com/lorenzobigazzi0/cassa/internal/domain/order"
)

const (
	ticketBanner    = "=============================="
	ticketSeparator = "------------------------------"
	ticketTime      = "2006-01-02 15:04:05"
)

// FormatTicket renders the plain text ticket sent to bar printers.
func FormatTicket(view *order.View, now time.Time) string {
	o := view.Order

	lines := []string{
		ticketBanner,
		fmt.Sprintf("COMANDA #%s  TAVOLO %d", o.PublicID(), view.TableNumber),
		"CAMERIERE: " + view.WaiterName,
		fmt.Sprintf("COPERTI: %d  APERICENA: %d", o.Covers(), o.Apericena()),
	}
	if note := o.NoteText(); note != "" {
		lines = append(lines, "NOTE: "+note)
	}
	lines = append(lines, ticketSeparator)

	for _, it := range o.Items() {
		lines = append(lines, itemLine(it))
	}

	lines = append(lines, ticketBanner, now.UTC().Format(ticketTime))

	return strings.Join(lines, "\n") + "\n"
}

// itemLine keeps the empty quantity slot for qty 1 so names stay aligned.
func itemLine(it *order.Item) string {
	chk := "[ ]"
	if it.IsDone() {
		chk = "[x]"
	}
	q := ""
	if it.Qty() > 1 {
		q = fmt.Sprintf("x%d", it.Qty())
	}
	note := ""
	if n := it.NoteText(); n != "" {
		note = " (" + n + ")"
	}
	return chk + " " + q + " " + it.Name() + note
}
