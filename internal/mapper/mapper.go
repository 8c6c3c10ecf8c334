// Package mapper converts a Shopify order into the Bitrix24 deal field set
// and its product rows. The transform is pure and never fails: absent or
// malformed input degrades to defaults instead of erroring, because order
// payloads vary in shape across Shopify API versions and a partial order
// should still produce a usable deal.
package mapper

import (
	"ShopBridge/entity"
	"fmt"
	"strings"
)

const (
	// DefaultCurrency is used when the order carries no currency code.
	DefaultCurrency = "EUR"

	// DiscountTypeMonetary is the Bitrix24 discount type for absolute
	// (non-percentage) discounts.
	DiscountTypeMonetary = 1

	// ProvisionalTaxRate is applied to every product row.
	// TODO: read the rate from the order's tax_lines once the portal's tax
	// setup is finalized; until then every row carries this placeholder.
	ProvisionalTaxRate = 19

	taxIncluded = "Y"
)

const posSourceName = "pos"

// Config carries the lookup tables and static ids the mapping needs.
// It is owned by the caller; the mapper only reads it.
type Config struct {
	// CategoryID is the deal pipeline category. Zero or negative means the
	// portal default, and the field is omitted from the deal.
	CategoryID int64

	// DefaultStageID is used when StageForStatus has no answer.
	DefaultStageID string

	// ShippingProductID is the catalog product used for the shipping row.
	// Zero or negative disables the shipping row.
	ShippingProductID int64

	// ProductIDBySKU resolves a Shopify SKU to a catalog product id.
	// A missing or zero entry drops the line item.
	ProductIDBySKU map[string]int64

	// StageForStatus resolves a Shopify financial status to a pipeline
	// stage id, empty when unknown.
	StageForStatus func(status string) string

	// SourceForName resolves a Shopify source channel to a Bitrix source id.
	SourceForName func(sourceName string) string

	// Warnf receives one diagnostic per dropped line item. Nil disables
	// diagnostics; the transform itself stays side-effect free.
	Warnf func(format string, args ...any)
}

// Result is the mapped deal plus its ordered product rows. SkippedSKUs lists
// line items dropped for lack of a catalog mapping, in input order.
type Result struct {
	Deal        entity.DealFields
	ProductRows []entity.ProductRow
	SkippedSKUs []string
}

// MapOrderToDeal builds the Bitrix24 deal fields and product rows for a
// Shopify order. Rows mirror the line-item order, with an optional trailing
// shipping row. Line items whose SKU has no non-zero catalog mapping are
// dropped, not errored.
func MapOrderToDeal(order *entity.ShopifyOrder, conf Config) Result {
	if order == nil {
		order = &entity.ShopifyOrder{}
	}

	totalPrice := firstAmount(order.CurrentTotalPrice, order.TotalPrice)
	totalDiscount := firstAmount(order.CurrentTotalDiscounts, order.TotalDiscounts)
	totalTax := firstAmount(order.CurrentTotalTax)
	shippingPrice := firstAmount(shippingCandidates(order)...)

	deal := entity.DealFields{
		Title:             orderTitle(order),
		Opportunity:       totalPrice,
		CurrencyID:        defaultString(order.Currency, DefaultCurrency),
		Comments:          orderComment(order),
		CategoryID:        categoryID(conf.CategoryID),
		StageID:           resolveStage(order.FinancialStatus, conf),
		SourceID:          resolveSource(order.SourceName, conf),
		SourceDescription: sourceDescription(order.SourceName),
		ShopifyOrderID:    order.ID.String(),
		CustomerEmail:     customerEmail(order),
		CustomerName:      customerName(order.Customer),
		TotalDiscount:     totalDiscount,
		ShippingPrice:     shippingPrice,
		TotalTax:          totalTax,
	}

	rows, skipped := productRows(order.LineItems, conf)

	if shippingPrice > 0 && conf.ShippingProductID > 0 {
		rows = append(rows, entity.ProductRow{
			ProductID:      conf.ShippingProductID,
			Price:          shippingPrice,
			Quantity:       1,
			DiscountTypeID: DiscountTypeMonetary,
			DiscountSum:    0,
			TaxIncluded:    taxIncluded,
			TaxRate:        ProvisionalTaxRate,
		})
	}

	return Result{
		Deal:        deal,
		ProductRows: rows,
		SkippedSKUs: skipped,
	}
}

func productRows(items []entity.ShopifyLineItem, conf Config) ([]entity.ProductRow, []string) {
	var rows []entity.ProductRow
	var skipped []string

	for _, item := range items {
		productID := conf.ProductIDBySKU[item.SKU]
		if productID == 0 {
			skipped = append(skipped, item.SKU)
			if conf.Warnf != nil {
				conf.Warnf("SKU %q has no catalog mapping, skipping line item", item.SKU)
			}
			continue
		}

		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		discountPerItem := item.TotalDiscount.Float() / float64(quantity)

		rows = append(rows, entity.ProductRow{
			ProductID:      productID,
			Price:          item.Price.Float() - discountPerItem,
			Quantity:       quantity,
			DiscountTypeID: DiscountTypeMonetary,
			DiscountSum:    discountPerItem,
			TaxIncluded:    taxIncluded,
			TaxRate:        ProvisionalTaxRate,
		})
	}

	return rows, skipped
}

// shippingCandidates lists the historical homes of the shipping total in
// preference order. The precedence must not be reordered.
func shippingCandidates(order *entity.ShopifyOrder) []entity.FlexString {
	candidates := []entity.FlexString{
		priceSetAmount(order.CurrentTotalShippingPriceSet),
		priceSetAmount(order.TotalShippingPriceSet),
		order.ShippingPrice,
	}
	if len(order.ShippingLines) > 0 {
		candidates = append(candidates, order.ShippingLines[0].Price)
	}
	return candidates
}

func priceSetAmount(set *entity.PriceSet) entity.FlexString {
	if set == nil {
		return ""
	}
	return set.ShopMoney.Amount
}

func orderTitle(order *entity.ShopifyOrder) string {
	if order.Name != "" {
		return order.Name
	}
	return fmt.Sprintf("Order #%s", order.ID)
}

func orderComment(order *entity.ShopifyOrder) string {
	ref := order.Name
	if ref == "" {
		ref = order.ID.String()
	}
	return fmt.Sprintf("Shopify order %s", ref)
}

func categoryID(id int64) *int64 {
	if id <= 0 {
		return nil
	}
	return &id
}

func resolveStage(status string, conf Config) string {
	if conf.StageForStatus != nil {
		if stage := conf.StageForStatus(status); stage != "" {
			return stage
		}
	}
	return conf.DefaultStageID
}

func resolveSource(sourceName string, conf Config) string {
	if conf.SourceForName == nil {
		return ""
	}
	return conf.SourceForName(sourceName)
}

func sourceDescription(sourceName string) string {
	if sourceName == posSourceName {
		return "offline (pre-order)"
	}
	return "online (stock)"
}

func customerEmail(order *entity.ShopifyOrder) *string {
	if order.Email != "" {
		return &order.Email
	}
	if order.Customer != nil && order.Customer.Email != "" {
		return &order.Customer.Email
	}
	return nil
}

func customerName(customer *entity.ShopifyCustomer) *string {
	if customer == nil {
		return nil
	}
	name := strings.TrimSpace(customer.FirstName + " " + customer.LastName)
	if name == "" {
		return nil
	}
	return &name
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// firstAmount returns the numeric value of the first present candidate,
// 0 when none is present or the winner does not parse. A present "0" wins
// over later candidates; only absence falls through.
func firstAmount(candidates ...entity.FlexString) float64 {
	for _, c := range candidates {
		if !c.IsZero() {
			return c.Float()
		}
	}
	return 0
}
