package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/CyberSolo/UDAM/internal/notify"
	domain "github.com/CyberSolo/UDAM/pkg/types"
)

const timeLayout = "2006-01-02 15:04:05"

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printListingsTable(listings []domain.Listing) error {
	return writeListingsTable(os.Stdout, listings)
}

func writeListingsTable(w io.Writer, listings []domain.Listing) error {
	tw := newTabWriter(w)
	tw.writef("ID\tSERVICE\tPRICE\tUNIT\tAVAILABLE\tSTATUS\tSELLER\n")
	for i := range listings {
		l := &listings[i]
		tw.writef("%s\t%s\t%s\t%s\t%d/%d\t%s\t%s\n",
			l.ID,
			truncate(l.ServiceName, 30),
			notify.FormatAmount(l.PricePerUnit),
			truncate(l.UnitDescription, 24),
			l.AvailableUnits,
			l.TotalUnits,
			l.Status,
			l.SellerID,
		)
	}
	return tw.finish()
}

func printListingDetail(l *domain.Listing) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", l.ID)
	tw.writef("Service:\t%s\n", l.ServiceName)
	tw.writef("Seller:\t%s\n", l.SellerID)
	tw.writef("Price:\t%s per %s\n", notify.FormatAmount(l.PricePerUnit), l.UnitDescription)
	if l.EndpointURL != "" {
		tw.writef("Endpoint:\t%s\n", l.EndpointURL)
	}
	tw.writef("Units:\t%d available, %d reserved, %d sold of %d\n",
		l.AvailableUnits, l.ReservedUnits, l.SoldUnits, l.TotalUnits)
	tw.writef("Status:\t%s\n", l.Status)
	return tw.finish()
}

func printOrdersTable(orders []domain.Order) error {
	return writeOrdersTable(os.Stdout, orders)
}

func writeOrdersTable(w io.Writer, orders []domain.Order) error {
	tw := newTabWriter(w)
	tw.writef("ID\tLISTING\tUNITS\tAMOUNT\tSTATE\tBUYER\tSELLER\tCREATED\n")
	for i := range orders {
		o := &orders[i]
		tw.writef("%s\t%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
			o.ID,
			o.ListingID,
			o.Units,
			notify.FormatAmount(o.Amount),
			o.State,
			o.BuyerID,
			o.SellerID,
			o.CreatedAt.Format(timeLayout),
		)
	}
	return tw.finish()
}

func printOrderDetail(o *domain.Order) error {
	return writeOrderDetail(os.Stdout, o)
}

func writeOrderDetail(w io.Writer, o *domain.Order) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", o.ID)
	tw.writef("Listing:\t%s\n", o.ListingID)
	tw.writef("Buyer:\t%s\n", o.BuyerID)
	tw.writef("Seller:\t%s\n", o.SellerID)
	tw.writef("Units:\t%d at %s\n", o.Units, notify.FormatAmount(o.UnitPrice))
	tw.writef("Amount:\t%s\n", notify.FormatAmount(o.Amount))
	tw.writef("State:\t%s\n", o.State)
	if o.DisputeDeadline != nil {
		tw.writef("Dispute by:\t%s\n", formatTime(o.DisputeDeadline))
	}
	if o.CounterDeadline != nil {
		tw.writef("Counter by:\t%s\n", formatTime(o.CounterDeadline))
	}
	if o.Dispute.Reason != "" {
		tw.writef("Dispute:\t%s\n", truncate(o.Dispute.Reason, 60))
	}
	if o.Dispute.CounterReason != "" {
		tw.writef("Counter:\t%s\n", truncate(o.Dispute.CounterReason, 60))
	}
	if o.Resolution != nil {
		tw.writef("Resolved:\t%s (%s) at %s\n",
			o.Resolution.Decision, o.Resolution.Source, o.Resolution.ResolvedAt.Format(timeLayout))
	}
	return tw.finish()
}

func printTokensTable(tokens []domain.EscrowToken) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tORDER\tAMOUNT\tSTATUS\tSETTLED\n")
	for i := range tokens {
		t := &tokens[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			t.ID,
			t.OrderID,
			notify.FormatAmount(t.Amount),
			t.Status,
			formatTime(t.SettledAt),
		)
	}
	return tw.finish()
}

func printRating(r *domain.Rating) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("User:\t%s\n", r.UserID)
	if !r.HasRatings {
		tw.writef("Rating:\tno reviews yet\n")
		return tw.finish()
	}
	tw.writef("Rating:\t%.2f/5 from %d reviews\n", r.Mean, r.Count)
	for i := range r.Recent {
		tw.writef("\t%d/5 %s\n", r.Recent[i].Score, truncate(r.Recent[i].Comment, 60))
	}
	return tw.finish()
}

func printAccountSummary(s *domain.AccountSummary) error {
	return writeAccountSummary(os.Stdout, s)
}

func writeAccountSummary(w io.Writer, s *domain.AccountSummary) error {
	tw := newTabWriter(w)
	tw.writef("User:\t%s\n", s.UserID)
	tw.writef("As buyer\tORDERS\tAMOUNT\n")
	writeTally(tw, "  paid", s.Buyer.Paid)
	writeTally(tw, "  pending", s.Buyer.Pending)
	writeTally(tw, "  refunded", s.Buyer.Refunded)
	tw.writef("As seller\t\t\n")
	writeTally(tw, "  sales", s.Seller.Sales)
	writeTally(tw, "  in escrow", s.Seller.Held)
	writeTally(tw, "  released", s.Seller.Released)
	writeTally(tw, "  refunded", s.Seller.Refunded)
	return tw.finish()
}

func writeTally(tw *tabWriter, label string, t domain.Tally) {
	tw.writef("%s\t%d\t%s\n", label, t.Count, notify.FormatAmount(t.Amount))
}

func printMarketplaceSummary(s *domain.MarketplaceSummary) error {
	return writeMarketplaceSummary(os.Stdout, s)
}

func writeMarketplaceSummary(w io.Writer, s *domain.MarketplaceSummary) error {
	tw := newTabWriter(w)
	t := &s.Totals
	tw.writef("Listings:\t%d (%d active)\n", t.Listings, t.ActiveListings)
	tw.writef("Orders:\t%d (%d paid, %d pending)\n", t.Orders, t.PaidOrders, t.PendingOrders)
	tw.writef("Disputes:\t%d\n", t.Disputes)
	tw.writef("Settled:\t%d released, %d refunded\n", t.Released, t.Refunded)
	tw.writef("GMV:\t%s\n", notify.FormatAmount(t.GMV))
	tw.writef("Last %d days:\t%d orders, %d paid, %s GMV\n",
		s.Window.Days, s.Window.Orders, s.Window.PaidOrders, notify.FormatAmount(s.Window.GMV))
	writeTop(tw, "Top sellers", s.TopSellers)
	writeTop(tw, "Top buyers", s.TopBuyers)
	return tw.finish()
}

func writeTop(tw *tabWriter, heading string, top []domain.TopParticipant) {
	if len(top) == 0 {
		tw.writef("%s:\tnone\n", heading)
		return
	}
	tw.writef("%s:\n", heading)
	for _, p := range top {
		tw.writef("  %s\t%d orders, %s\n", p.UserID, p.Orders, notify.FormatAmount(p.Amount))
	}
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(timeLayout)
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
