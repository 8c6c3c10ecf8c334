package mapper

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ShopBridge/entity"
)

func testConfig() Config {
	return Config{
		CategoryID:        7,
		DefaultStageID:    "NEW",
		ShippingProductID: 900,
		ProductIDBySKU: map[string]int64{
			"ABC":      42,
			"DEF":      43,
			"UNMAPPED": 0,
		},
		StageForStatus: func(status string) string {
			if status == "paid" {
				return "C1:WON"
			}
			return ""
		},
		SourceForName: func(sourceName string) string {
			if sourceName == "web" {
				return "WEB"
			}
			return "OTHER"
		},
	}
}

func TestMapOrderToDeal_ReferenceOrder(t *testing.T) {
	payload := `{
		"id": 1001,
		"name": "#1001",
		"current_total_price": "59.99",
		"financial_status": "paid",
		"source_name": "web",
		"line_items": [
			{"sku": "ABC", "price": "29.99", "quantity": 2, "total_discount": "10"}
		]
	}`

	var order entity.ShopifyOrder
	require.NoError(t, json.Unmarshal([]byte(payload), &order))

	res := MapOrderToDeal(&order, testConfig())

	assert.Equal(t, "#1001", res.Deal.Title)
	assert.Equal(t, 59.99, res.Deal.Opportunity)
	assert.Equal(t, "C1:WON", res.Deal.StageID)
	assert.Equal(t, "WEB", res.Deal.SourceID)
	assert.Equal(t, "online (stock)", res.Deal.SourceDescription)
	assert.Equal(t, "1001", res.Deal.ShopifyOrderID)
	assert.Equal(t, "EUR", res.Deal.CurrencyID)
	assert.Equal(t, "Shopify order #1001", res.Deal.Comments)

	require.Len(t, res.ProductRows, 1)
	row := res.ProductRows[0]
	assert.Equal(t, int64(42), row.ProductID)
	assert.Equal(t, 24.99, row.Price)
	assert.Equal(t, 2, row.Quantity)
	assert.Equal(t, 5.0, row.DiscountSum)
	assert.Equal(t, DiscountTypeMonetary, row.DiscountTypeID)
	assert.Equal(t, "Y", row.TaxIncluded)
	assert.Equal(t, float64(ProvisionalTaxRate), row.TaxRate)
	assert.Empty(t, res.SkippedSKUs)
}

func TestMapOrderToDeal_OrderIDRoundTrip(t *testing.T) {
	// Order ids can exceed float64 precision and must survive unchanged,
	// whether they arrive as a JSON number or a JSON string.
	for _, payload := range []string{
		`{"id": 987654321098765432}`,
		`{"id": "987654321098765432"}`,
	} {
		var order entity.ShopifyOrder
		require.NoError(t, json.Unmarshal([]byte(payload), &order))

		res := MapOrderToDeal(&order, testConfig())
		assert.Equal(t, "987654321098765432", res.Deal.ShopifyOrderID)
	}
}

func TestMapOrderToDeal_MonetaryPrecedence(t *testing.T) {
	tests := []struct {
		name         string
		order        entity.ShopifyOrder
		wantTotal    float64
		wantDiscount float64
		wantShipping float64
	}{
		{
			name: "current values win over legacy",
			order: entity.ShopifyOrder{
				CurrentTotalPrice:     "10.50",
				TotalPrice:            "99.99",
				CurrentTotalDiscounts: "1.25",
				TotalDiscounts:        "9",
				CurrentTotalShippingPriceSet: &entity.PriceSet{
					ShopMoney: entity.Money{Amount: "4.90"},
				},
				TotalShippingPriceSet: &entity.PriceSet{
					ShopMoney: entity.Money{Amount: "7.00"},
				},
			},
			wantTotal:    10.50,
			wantDiscount: 1.25,
			wantShipping: 4.90,
		},
		{
			name: "legacy values fill in when current absent",
			order: entity.ShopifyOrder{
				TotalPrice:     "99.99",
				TotalDiscounts: "9",
				ShippingPrice:  "3.50",
			},
			wantTotal:    99.99,
			wantDiscount: 9,
			wantShipping: 3.50,
		},
		{
			name: "shipping falls back to the first shipping line",
			order: entity.ShopifyOrder{
				ShippingLines: []entity.ShopifyShippingLine{
					{Price: "2.95"},
					{Price: "8.00"},
				},
			},
			wantShipping: 2.95,
		},
		{
			name: "present zero beats later candidates",
			order: entity.ShopifyOrder{
				CurrentTotalPrice: "0",
				TotalPrice:        "50",
			},
			wantTotal: 0,
		},
		{
			name: "unparseable values normalize to zero",
			order: entity.ShopifyOrder{
				CurrentTotalPrice:     "n/a",
				CurrentTotalDiscounts: "--",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := MapOrderToDeal(&tt.order, testConfig())
			assert.Equal(t, tt.wantTotal, res.Deal.Opportunity)
			assert.Equal(t, tt.wantDiscount, res.Deal.TotalDiscount)
			assert.Equal(t, tt.wantShipping, res.Deal.ShippingPrice)
		})
	}
}

func TestMapOrderToDeal_SkipsUnmappedSKUs(t *testing.T) {
	order := entity.ShopifyOrder{
		LineItems: []entity.ShopifyLineItem{
			{SKU: "ABC", Price: "10", Quantity: 1},
			{SKU: "NOPE", Price: "5", Quantity: 1},
			{SKU: "UNMAPPED", Price: "5", Quantity: 1},
			{SKU: "DEF", Price: "20", Quantity: 1},
		},
	}

	conf := testConfig()
	var warnings []string
	conf.Warnf = func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	res := MapOrderToDeal(&order, conf)

	require.Len(t, res.ProductRows, 2)
	assert.Equal(t, int64(42), res.ProductRows[0].ProductID)
	assert.Equal(t, int64(43), res.ProductRows[1].ProductID)
	assert.Equal(t, []string{"NOPE", "UNMAPPED"}, res.SkippedSKUs)
	assert.Len(t, warnings, 2)
}

func TestMapOrderToDeal_QuantityAndDiscount(t *testing.T) {
	tests := []struct {
		name         string
		item         entity.ShopifyLineItem
		wantPrice    float64
		wantQuantity int
		wantDiscount float64
	}{
		{
			name:         "discount split across quantity",
			item:         entity.ShopifyLineItem{SKU: "ABC", Price: "30", Quantity: 3, TotalDiscount: "9"},
			wantPrice:    27,
			wantQuantity: 3,
			wantDiscount: 3,
		},
		{
			name:         "zero quantity treated as one",
			item:         entity.ShopifyLineItem{SKU: "ABC", Price: "30", Quantity: 0, TotalDiscount: "9"},
			wantPrice:    21,
			wantQuantity: 1,
			wantDiscount: 9,
		},
		{
			name:         "absent discount",
			item:         entity.ShopifyLineItem{SKU: "ABC", Price: "15.50", Quantity: 2},
			wantPrice:    15.50,
			wantQuantity: 2,
			wantDiscount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := entity.ShopifyOrder{LineItems: []entity.ShopifyLineItem{tt.item}}
			res := MapOrderToDeal(&order, testConfig())

			require.Len(t, res.ProductRows, 1)
			assert.Equal(t, tt.wantPrice, res.ProductRows[0].Price)
			assert.Equal(t, tt.wantQuantity, res.ProductRows[0].Quantity)
			assert.Equal(t, tt.wantDiscount, res.ProductRows[0].DiscountSum)
		})
	}
}

func TestMapOrderToDeal_ShippingRow(t *testing.T) {
	tests := []struct {
		name              string
		shippingPrice     entity.FlexString
		shippingProductID int64
		wantRow           bool
	}{
		{"price and product configured", "5.90", 900, true},
		{"no shipping price", "", 900, false},
		{"zero shipping price", "0", 900, false},
		{"no shipping product configured", "5.90", 0, false},
		{"negative shipping product", "5.90", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := entity.ShopifyOrder{ShippingPrice: tt.shippingPrice}
			conf := testConfig()
			conf.ShippingProductID = tt.shippingProductID

			res := MapOrderToDeal(&order, conf)

			if !tt.wantRow {
				assert.Empty(t, res.ProductRows)
				return
			}
			require.Len(t, res.ProductRows, 1)
			row := res.ProductRows[0]
			assert.Equal(t, tt.shippingProductID, row.ProductID)
			assert.Equal(t, 5.90, row.Price)
			assert.Equal(t, 1, row.Quantity)
			assert.Equal(t, 0.0, row.DiscountSum)
			assert.Equal(t, "Y", row.TaxIncluded)
		})
	}
}

func TestMapOrderToDeal_CustomerFields(t *testing.T) {
	tests := []struct {
		name      string
		order     entity.ShopifyOrder
		wantName  *string
		wantEmail *string
	}{
		{
			name: "both names present",
			order: entity.ShopifyOrder{
				Customer: &entity.ShopifyCustomer{FirstName: "Jane", LastName: "Doe"},
			},
			wantName: ptr("Jane Doe"),
		},
		{
			name: "only first name",
			order: entity.ShopifyOrder{
				Customer: &entity.ShopifyCustomer{FirstName: "Jane"},
			},
			wantName: ptr("Jane"),
		},
		{
			name: "empty names compose to nil",
			order: entity.ShopifyOrder{
				Customer: &entity.ShopifyCustomer{},
			},
		},
		{
			name: "no customer record",
		},
		{
			name: "order email preferred over customer email",
			order: entity.ShopifyOrder{
				Email:    "order@example.com",
				Customer: &entity.ShopifyCustomer{Email: "customer@example.com"},
			},
			wantEmail: ptr("order@example.com"),
		},
		{
			name: "customer email as fallback",
			order: entity.ShopifyOrder{
				Customer: &entity.ShopifyCustomer{Email: "customer@example.com"},
			},
			wantEmail: ptr("customer@example.com"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := MapOrderToDeal(&tt.order, testConfig())
			assert.Equal(t, tt.wantName, res.Deal.CustomerName)
			assert.Equal(t, tt.wantEmail, res.Deal.CustomerEmail)
		})
	}
}

func TestMapOrderToDeal_StageAndSource(t *testing.T) {
	conf := testConfig()

	res := MapOrderToDeal(&entity.ShopifyOrder{FinancialStatus: "paid"}, conf)
	assert.Equal(t, "C1:WON", res.Deal.StageID)

	res = MapOrderToDeal(&entity.ShopifyOrder{FinancialStatus: "refunded"}, conf)
	assert.Equal(t, "NEW", res.Deal.StageID)

	res = MapOrderToDeal(&entity.ShopifyOrder{SourceName: "pos"}, conf)
	assert.Equal(t, "offline (pre-order)", res.Deal.SourceDescription)

	res = MapOrderToDeal(&entity.ShopifyOrder{SourceName: "web"}, conf)
	assert.Equal(t, "online (stock)", res.Deal.SourceDescription)

	res = MapOrderToDeal(&entity.ShopifyOrder{SourceName: "shopify_draft_order"}, conf)
	assert.Equal(t, "online (stock)", res.Deal.SourceDescription)
}

func TestMapOrderToDeal_TitleAndCategory(t *testing.T) {
	res := MapOrderToDeal(&entity.ShopifyOrder{ID: "1001"}, testConfig())
	assert.Equal(t, "Order #1001", res.Deal.Title)
	assert.Equal(t, "Shopify order 1001", res.Deal.Comments)
	require.NotNil(t, res.Deal.CategoryID)
	assert.Equal(t, int64(7), *res.Deal.CategoryID)

	conf := testConfig()
	conf.CategoryID = 0
	res = MapOrderToDeal(&entity.ShopifyOrder{}, conf)
	assert.Nil(t, res.Deal.CategoryID)

	// CATEGORY_ID must disappear from the serialized deal entirely.
	data, err := json.Marshal(res.Deal)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "CATEGORY_ID")
}

func TestMapOrderToDeal_EmptyOrder(t *testing.T) {
	res := MapOrderToDeal(&entity.ShopifyOrder{}, testConfig())

	assert.Empty(t, res.ProductRows)
	assert.Empty(t, res.SkippedSKUs)
	assert.Equal(t, 0.0, res.Deal.Opportunity)
	assert.Equal(t, "EUR", res.Deal.CurrencyID)
	assert.Nil(t, res.Deal.CustomerName)
	assert.Nil(t, res.Deal.CustomerEmail)

	res = MapOrderToDeal(nil, testConfig())
	assert.Empty(t, res.ProductRows)
}

func ptr(s string) *string {
	return &s
}
