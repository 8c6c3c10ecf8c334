package bitrix

import (
	"ShopBridge/entity"
	"fmt"
)

// SetProductRows replaces the product rows of a deal. Passing an empty slice
// clears all rows.
func (s *Service) SetProductRows(dealId int64, rows []entity.ProductRow) error {

	if rows == nil {
		rows = []entity.ProductRow{}
	}

	payload := map[string]any{
		"id":   dealId,
		"rows": rows,
	}

	if err := s.call("crm.deal.productrows.set", payload, nil); err != nil {
		return fmt.Errorf("crm.deal.productrows.set: %w", err)
	}

	return nil
}
