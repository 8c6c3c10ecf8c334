package bitrix

import (
	"fmt"
	"strconv"
)

// FindDealByOrderID returns the id of the deal carrying the given Shopify
// order id, or 0 when no such deal exists yet.
func (s *Service) FindDealByOrderID(orderId string) (int64, error) {

	payload := map[string]any{
		"filter": map[string]any{
			"=UF_SHOPIFY_ORDER_ID": orderId,
		},
		"select": []string{"ID"},
	}

	var deals []struct {
		ID string `json:"ID"`
	}
	if err := s.call("crm.deal.list", payload, &deals); err != nil {
		return 0, fmt.Errorf("crm.deal.list: %w", err)
	}

	if len(deals) == 0 {
		return 0, nil
	}

	id, err := strconv.ParseInt(deals[0].ID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse deal id %q: %w", deals[0].ID, err)
	}

	return id, nil
}
