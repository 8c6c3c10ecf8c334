package core

import (
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ShopBridge/entity"
	"ShopBridge/internal/config"
)

type fakeRepo struct {
	skus    map[string]int64
	stages  map[string]string
	sources map[string]string
	records []entity.SyncRecord
}

func (f *fakeRepo) CheckApiKey(key string) (string, error) { return "", fmt.Errorf("no such key") }
func (f *fakeRepo) GenerateApiKey(username string) (string, error) { return "key", nil }
func (f *fakeRepo) ProductIDBySKU() (map[string]int64, error) { return f.skus, nil }
func (f *fakeRepo) StageMappings() (map[string]string, error) { return f.stages, nil }
func (f *fakeRepo) SourceMappings() (map[string]string, error) { return f.sources, nil }
func (f *fakeRepo) ListSkuMappings() ([]entity.SkuMapping, error) { return nil, nil }
func (f *fakeRepo) UpsertSkuMapping(*entity.SkuMapping) error    { return nil }
func (f *fakeRepo) DeleteSkuMapping(string) error                { return nil }
func (f *fakeRepo) SaveSyncRecord(r *entity.SyncRecord) error {
	f.records = append(f.records, *r)
	return nil
}
func (f *fakeRepo) ListSyncRecords(int64) ([]entity.SyncRecord, error) { return f.records, nil }

type fakeBitrix struct {
	existingDealID int64
	createdFields  *entity.DealFields
	updatedDealID  int64
	rowsDealID     int64
	rows           []entity.ProductRow
}

func (f *fakeBitrix) FindDealByOrderID(string) (int64, error) { return f.existingDealID, nil }
func (f *fakeBitrix) CreateDeal(fields *entity.DealFields) (int64, error) {
	f.createdFields = fields
	return 555, nil
}
func (f *fakeBitrix) UpdateDeal(dealId int64, _ *entity.DealFields) error {
	f.updatedDealID = dealId
	return nil
}
func (f *fakeBitrix) SetProductRows(dealId int64, rows []entity.ProductRow) error {
	f.rowsDealID = dealId
	f.rows = rows
	return nil
}

func newTestCore(bitrix *fakeBitrix, repo *fakeRepo) *Core {
	conf := &config.Config{}
	conf.Sync.DefaultStageID = "NEW"
	conf.Sync.CategoryID = 3

	c := New(conf, slog.Default())
	c.SetRepository(repo)
	c.SetBitrixService(bitrix)
	return c
}

func testOrder() *entity.ShopifyOrder {
	return &entity.ShopifyOrder{
		ID:                "1001",
		Name:              "#1001",
		CurrentTotalPrice: "59.99",
		FinancialStatus:   "paid",
		SourceName:        "web",
		LineItems: []entity.ShopifyLineItem{
			{SKU: "ABC", Price: "29.99", Quantity: 2, TotalDiscount: "10"},
			{SKU: "GHOST", Price: "5", Quantity: 1},
		},
	}
}

func TestHandleOrderWebhook_CreatesNewDeal(t *testing.T) {
	bitrix := &fakeBitrix{}
	repo := &fakeRepo{
		skus:    map[string]int64{"ABC": 42},
		stages:  map[string]string{"paid": "C1:WON"},
		sources: map[string]string{"web": "WEB"},
	}
	c := newTestCore(bitrix, repo)

	record, err := c.HandleOrderWebhook(testOrder())
	require.NoError(t, err)

	assert.Equal(t, int64(555), record.DealID)
	assert.True(t, record.Created)
	assert.Equal(t, "1001", record.OrderID)
	assert.Equal(t, []string{"GHOST"}, record.SkippedSKUs)

	require.NotNil(t, bitrix.createdFields)
	assert.Equal(t, "C1:WON", bitrix.createdFields.StageID)
	assert.Equal(t, "WEB", bitrix.createdFields.SourceID)
	assert.Equal(t, int64(555), bitrix.rowsDealID)
	require.Len(t, bitrix.rows, 1)
	assert.Equal(t, int64(42), bitrix.rows[0].ProductID)

	require.Len(t, repo.records, 1)
	assert.Equal(t, "1001", repo.records[0].OrderID)
}

func TestHandleOrderWebhook_UpdatesExistingDeal(t *testing.T) {
	bitrix := &fakeBitrix{existingDealID: 777}
	repo := &fakeRepo{skus: map[string]int64{"ABC": 42}}
	c := newTestCore(bitrix, repo)

	record, err := c.HandleOrderWebhook(testOrder())
	require.NoError(t, err)

	assert.Equal(t, int64(777), record.DealID)
	assert.False(t, record.Created)
	assert.Equal(t, int64(777), bitrix.updatedDealID)
	assert.Nil(t, bitrix.createdFields)
}

func TestMapperConfig_UnknownStatusFallsBack(t *testing.T) {
	c := newTestCore(&fakeBitrix{}, &fakeRepo{stages: map[string]string{"paid": "C1:WON"}})

	conf := c.MapperConfig()
	assert.Equal(t, "C1:WON", conf.StageForStatus("paid"))
	assert.Equal(t, "", conf.StageForStatus("refunded"))
	assert.Equal(t, "NEW", conf.DefaultStageID)
	assert.Equal(t, int64(3), conf.CategoryID)
}

func TestPreviewOrder_DoesNotTouchBitrix(t *testing.T) {
	bitrix := &fakeBitrix{}
	repo := &fakeRepo{skus: map[string]int64{"ABC": 42}}
	c := newTestCore(bitrix, repo)

	preview, err := c.PreviewOrder(testOrder())
	require.NoError(t, err)

	assert.Equal(t, 59.99, preview.Deal.Opportunity)
	require.Len(t, preview.ProductRows, 1)
	assert.Equal(t, []string{"GHOST"}, preview.SkippedSKUs)
	assert.Nil(t, bitrix.createdFields)
	assert.Zero(t, bitrix.rowsDealID)
	assert.Empty(t, repo.records)
}
