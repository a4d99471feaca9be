package booking

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/siam-hossain-cmd/hotel-management-reem-resort-sub000/internal/domain/shared"
)

// InvoiceBreakdown is the deterministic projection of a booking's ledger.
// Every intermediate step of the pipeline is carried so presentation
// layers can render the full breakdown without recomputing (and drifting
// from) the stored totals.
type InvoiceBreakdown struct {
	Nights             int64           `json:"nights"`
	RatePerNight       decimal.Decimal `json:"rate_per_night"`
	OriginalSubtotal   decimal.Decimal `json:"original_subtotal"` // nights * rate, before discount
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	TotalDiscount      decimal.Decimal `json:"total_discount"`
	Subtotal           decimal.Decimal `json:"subtotal"` // room total after discount
	AdditionalCharges  decimal.Decimal `json:"additional_charges"`
	TaxableBase        decimal.Decimal `json:"taxable_base"`
	TaxRate            decimal.Decimal `json:"tax_rate"`
	TaxAmount          decimal.Decimal `json:"tax_amount"`
	GrandTotal         decimal.Decimal `json:"grand_total"`
	PaidAmount         decimal.Decimal `json:"paid_amount"`
	DueBalance         decimal.Decimal `json:"due_balance"`
}

// computeInvoice evaluates the billing pipeline in its fixed order:
// room subtotal, discount, additional charges, tax, payments. The order
// is a contract; reordering (e.g. taxing before discounting) changes the
// total. The computation is pure, so evaluating it twice on the same
// ledger yields identical numbers.
func computeInvoice(nights int64, ratePerNight, discountPct, taxRate decimal.Decimal, charges Charges, payments Payments) InvoiceBreakdown {
	originalSubtotal := ratePerNight.Mul(decimal.NewFromInt(nights))
	totalDiscount := originalSubtotal.Mul(discountPct).Div(hundred)
	subtotal := originalSubtotal.Sub(totalDiscount)
	additionalCharges := charges.Total()
	taxableBase := subtotal.Add(additionalCharges)
	taxAmount := taxableBase.Mul(taxRate).Div(hundred)
	grandTotal := taxableBase.Add(taxAmount)
	paidAmount := payments.Total()
	dueBalance := grandTotal.Sub(paidAmount)

	return InvoiceBreakdown{
		Nights:             nights,
		RatePerNight:       ratePerNight,
		OriginalSubtotal:   originalSubtotal,
		DiscountPercentage: discountPct,
		TotalDiscount:      totalDiscount,
		Subtotal:           subtotal,
		AdditionalCharges:  additionalCharges,
		TaxableBase:        taxableBase,
		TaxRate:            taxRate,
		TaxAmount:          taxAmount,
		GrandTotal:         grandTotal,
		PaidAmount:         paidAmount,
		DueBalance:         dueBalance,
	}
}

// Invoice is a persisted snapshot of a booking's breakdown at issue time,
// with its own numbering metadata. The breakdown itself stays a pure
// projection of the booking ledger; the snapshot exists so issued
// invoices keep their numbers and dates.
type Invoice struct {
	shared.BaseAggregateRoot
	InvoiceNumber string    `gorm:"uniqueIndex;size:50;not null"`
	BookingID     uuid.UUID `gorm:"type:uuid;index;not null"`
	BookingRef    string    `gorm:"size:50"`
	InvoiceDate   time.Time `gorm:"not null"`
	DueDate       time.Time

	Nights             int64           `gorm:"not null"`
	RatePerNight       decimal.Decimal `gorm:"type:decimal(12,2)"`
	OriginalSubtotal   decimal.Decimal `gorm:"type:decimal(12,2)"`
	DiscountPercentage decimal.Decimal `gorm:"type:decimal(5,2)"`
	TotalDiscount      decimal.Decimal `gorm:"type:decimal(12,2)"`
	Subtotal           decimal.Decimal `gorm:"type:decimal(12,2)"`
	AdditionalCharges  decimal.Decimal `gorm:"type:decimal(12,2)"`
	TaxRate            decimal.Decimal `gorm:"type:decimal(5,2)"`
	TaxAmount          decimal.Decimal `gorm:"type:decimal(12,2)"`
	GrandTotal         decimal.Decimal `gorm:"type:decimal(12,2)"`
	PaidAmount         decimal.Decimal `gorm:"type:decimal(12,2)"`
	DueBalance         decimal.Decimal `gorm:"type:decimal(12,2)"`
}

// NewInvoice snapshots the booking's current breakdown under an invoice number
func NewInvoice(invoiceNumber string, b *Booking, invoiceDate, dueDate time.Time) (*Invoice, error) {
	if invoiceNumber == "" {
		return nil, shared.NewDomainError(shared.CodeValidationError, "Invoice number cannot be empty")
	}
	if b == nil {
		return nil, shared.NewDomainError(shared.CodeValidationError, "Booking is required")
	}

	bd := b.ComputeInvoice()
	return &Invoice{
		BaseAggregateRoot:  shared.NewBaseAggregateRoot(),
		InvoiceNumber:      invoiceNumber,
		BookingID:          b.ID,
		BookingRef:         b.Reference,
		InvoiceDate:        invoiceDate,
		DueDate:            dueDate,
		Nights:             bd.Nights,
		RatePerNight:       bd.RatePerNight,
		OriginalSubtotal:   bd.OriginalSubtotal,
		DiscountPercentage: bd.DiscountPercentage,
		TotalDiscount:      bd.TotalDiscount,
		Subtotal:           bd.Subtotal,
		AdditionalCharges:  bd.AdditionalCharges,
		TaxRate:            bd.TaxRate,
		TaxAmount:          bd.TaxAmount,
		GrandTotal:         bd.GrandTotal,
		PaidAmount:         bd.PaidAmount,
		DueBalance:         bd.DueBalance,
	}, nil
}

// Breakdown returns the stored totals as an InvoiceBreakdown
func (i *Invoice) Breakdown() InvoiceBreakdown {
	return InvoiceBreakdown{
		Nights:             i.Nights,
		RatePerNight:       i.RatePerNight,
		OriginalSubtotal:   i.OriginalSubtotal,
		DiscountPercentage: i.DiscountPercentage,
		TotalDiscount:      i.TotalDiscount,
		Subtotal:           i.Subtotal,
		AdditionalCharges:  i.AdditionalCharges,
		TaxableBase:        i.Subtotal.Add(i.AdditionalCharges),
		TaxRate:            i.TaxRate,
		TaxAmount:          i.TaxAmount,
		GrandTotal:         i.GrandTotal,
		PaidAmount:         i.PaidAmount,
		DueBalance:         i.DueBalance,
	}
}
