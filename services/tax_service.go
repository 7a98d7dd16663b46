package services

import (
	"github.com/shopspring/decimal"

	"github.com/bistronome/restaurant-app/models"
	"github.com/bistronome/restaurant-app/utils"
)

// TaxBreakdown is the result of a TTC/HT conversion. Amounts are rounded
// to 2 decimals at this boundary only, never inside intermediate math.
type TaxBreakdown struct {
	AmountWithoutTax decimal.Decimal `json:"amountWithoutTax"`
	TaxAmount        decimal.Decimal `json:"taxAmount"`
	AmountWithTax    decimal.Decimal `json:"amountWithTax"`
	TaxRate          float64         `json:"taxRate"`
}

// TaxCalculationService converts between tax-inclusive (TTC) and net (HT)
// amounts and re-derives order totals. Catalog prices are TTC, so order
// subtotals are always derived by dividing out the tax, never by adding
// tax on top.
type TaxCalculationService struct {
	rate    decimal.Decimal
	rawRate float64
}

func NewTaxCalculationService(vatRate float64) *TaxCalculationService {
	return &TaxCalculationService{
		rate:    decimal.NewFromFloat(vatRate),
		rawRate: vatRate,
	}
}

func (s *TaxCalculationService) TaxRate() float64 {
	return s.rawRate
}

// CalculateTaxFromTTC splits a tax-inclusive amount into net + tax.
func (s *TaxCalculationService) CalculateTaxFromTTC(amountWithTax decimal.Decimal) TaxBreakdown {
	net := amountWithTax.Div(decimal.NewFromInt(1).Add(s.rate))
	tax := amountWithTax.Sub(net)

	return TaxBreakdown{
		AmountWithoutTax: net.Round(2),
		TaxAmount:        tax.Round(2),
		AmountWithTax:    amountWithTax.Round(2),
		TaxRate:          s.rawRate,
	}
}

// CalculateTaxFromHT adds tax on top of a net amount.
func (s *TaxCalculationService) CalculateTaxFromHT(amountWithoutTax decimal.Decimal) TaxBreakdown {
	tax := amountWithoutTax.Mul(s.rate)
	ttc := amountWithoutTax.Add(tax)

	return TaxBreakdown{
		AmountWithoutTax: amountWithoutTax.Round(2),
		TaxAmount:        tax.Round(2),
		AmountWithTax:    ttc.Round(2),
		TaxRate:          s.rawRate,
	}
}

// RecalculateTotals re-derives subtotal, tax, discount and total from the
// order's current items plus a single coupon-or-manual-discount input.
// The stored discount is reset and reapplied on every call, so running it
// twice with the same inputs yields the same stored values.
func (s *TaxCalculationService) RecalculateTotals(order *models.Order, coupon *models.Coupon) {
	itemsTotal := decimal.Zero
	for i := range order.Items {
		line := utils.ParseAmount(order.Items[i].UnitPrice).
			Mul(decimal.NewFromInt(int64(order.Items[i].Quantity)))
		order.Items[i].Total = utils.FormatAmount(line)
		itemsTotal = itemsTotal.Add(line)
	}

	breakdown := s.CalculateTaxFromTTC(itemsTotal)
	preDiscount := itemsTotal.Add(utils.ParseAmount(order.DeliveryFee))

	var discount decimal.Decimal
	if coupon != nil {
		discount = coupon.CalculateDiscount(preDiscount)
	} else {
		// Manual discount path: previous stored value is the input.
		discount = utils.ParseAmount(order.DiscountAmount)
	}
	if discount.IsNegative() {
		discount = decimal.Zero
	}
	if discount.GreaterThan(preDiscount) {
		discount = preDiscount
	}

	order.Subtotal = utils.FormatAmount(breakdown.AmountWithoutTax)
	order.TaxAmount = utils.FormatAmount(breakdown.TaxAmount)
	order.DiscountAmount = utils.FormatAmount(discount)
	order.Total = utils.FormatAmount(preDiscount.Sub(discount).Round(2))
}
