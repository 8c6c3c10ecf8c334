package bitrix

import (
	"ShopBridge/entity"
	"fmt"
)

// CreateDeal adds a new deal and returns its id.
func (s *Service) CreateDeal(fields *entity.DealFields) (int64, error) {

	payload := map[string]any{
		"fields": fields,
	}

	var dealId int64
	if err := s.call("crm.deal.add", payload, &dealId); err != nil {
		return 0, fmt.Errorf("crm.deal.add: %w", err)
	}

	return dealId, nil
}
