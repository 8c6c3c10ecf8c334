package entity

// DealFields is the flat field set of a Bitrix24 deal as sent to
// crm.deal.add / crm.deal.update. UF_* fields are the portal's user fields
// carrying the Shopify linkage and reporting aggregates.
type DealFields struct {
	Title             string  `json:"TITLE"`
	Opportunity       float64 `json:"OPPORTUNITY"`
	CurrencyID        string  `json:"CURRENCY_ID"`
	Comments          string  `json:"COMMENTS"`
	CategoryID        *int64  `json:"CATEGORY_ID,omitempty"`
	StageID           string  `json:"STAGE_ID"`
	SourceID          string  `json:"SOURCE_ID"`
	SourceDescription string  `json:"SOURCE_DESCRIPTION"`

	// Key back to the originating Shopify order. Kept as an opaque string,
	// order ids can exceed float64 precision.
	ShopifyOrderID string `json:"UF_SHOPIFY_ORDER_ID"`

	CustomerEmail *string `json:"UF_SHOPIFY_CUSTOMER_EMAIL"`
	CustomerName  *string `json:"UF_SHOPIFY_CUSTOMER_NAME"`

	TotalDiscount float64 `json:"UF_SHOPIFY_TOTAL_DISCOUNT"`
	ShippingPrice float64 `json:"UF_SHOPIFY_SHIPPING_PRICE"`
	TotalTax      float64 `json:"UF_SHOPIFY_TOTAL_TAX"`
}

// ProductRow is one crm.deal.productrows.set entry attached to a deal.
type ProductRow struct {
	ProductID      int64   `json:"PRODUCT_ID"`
	Price          float64 `json:"PRICE"`
	Quantity       int     `json:"QUANTITY"`
	DiscountTypeID int     `json:"DISCOUNT_TYPE_ID"`
	DiscountSum    float64 `json:"DISCOUNT_SUM"`
	TaxIncluded    string  `json:"TAX_INCLUDED"`
	TaxRate        float64 `json:"TAX_RATE"`
}
