package bitrix

import (
	"ShopBridge/entity"
	"fmt"
)

// UpdateDeal overwrites the fields of an existing deal.
func (s *Service) UpdateDeal(dealId int64, fields *entity.DealFields) error {

	payload := map[string]any{
		"id":     dealId,
		"fields": fields,
	}

	if err := s.call("crm.deal.update", payload, nil); err != nil {
		return fmt.Errorf("crm.deal.update: %w", err)
	}

	return nil
}
