package entity

// ShopifyOrder mirrors the Shopify Admin REST order resource, limited to the
// fields the connector reads. Monetary totals exist under several historical
// names across API versions; the mapper resolves them in preference order.
type ShopifyOrder struct {
	ID              FlexString `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Currency        string     `json:"currency"`
	FinancialStatus string     `json:"financial_status"`
	SourceName      string     `json:"source_name"`

	CurrentTotalPrice     FlexString `json:"current_total_price"`
	TotalPrice            FlexString `json:"total_price"`
	CurrentTotalDiscounts FlexString `json:"current_total_discounts"`
	TotalDiscounts        FlexString `json:"total_discounts"`
	CurrentTotalTax       FlexString `json:"current_total_tax"`

	CurrentTotalShippingPriceSet *PriceSet             `json:"current_total_shipping_price_set"`
	TotalShippingPriceSet        *PriceSet             `json:"total_shipping_price_set"`
	ShippingPrice                FlexString            `json:"shipping_price"`
	ShippingLines                []ShopifyShippingLine `json:"shipping_lines"`

	Customer  *ShopifyCustomer  `json:"customer"`
	LineItems []ShopifyLineItem `json:"line_items"`
}

type ShopifyCustomer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type ShopifyLineItem struct {
	SKU           string     `json:"sku"`
	Title         string     `json:"title"`
	Price         FlexString `json:"price"`
	Quantity      int        `json:"quantity"`
	TotalDiscount FlexString `json:"total_discount"`
}

type ShopifyShippingLine struct {
	Title string     `json:"title"`
	Price FlexString `json:"price"`
}

type PriceSet struct {
	ShopMoney        Money `json:"shop_money"`
	PresentmentMoney Money `json:"presentment_money"`
}

type Money struct {
	Amount       FlexString `json:"amount"`
	CurrencyCode string     `json:"currency_code"`
}
