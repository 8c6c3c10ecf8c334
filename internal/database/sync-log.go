package repository

import (
	"ShopBridge/entity"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SaveSyncRecord journals a completed order sync, one document per order.
func (m *MongoDB) SaveSyncRecord(record *entity.SyncRecord) error {
	connection, err := m.connect()
	if err != nil {
		return err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(syncLogCollection)
	filter := bson.D{{Key: "order_id", Value: record.OrderID}}
	update := bson.D{{Key: "$set", Value: record}}

	_, err = collection.UpdateOne(m.ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongodb upsert error: %w", err)
	}
	return nil
}

// ListSyncRecords returns the most recent sync records, newest first.
func (m *MongoDB) ListSyncRecords(limit int64) ([]entity.SyncRecord, error) {
	connection, err := m.connect()
	if err != nil {
		return nil, err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(syncLogCollection)
	opts := options.Find().
		SetSort(bson.D{{Key: "synced_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := collection.Find(m.ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("mongodb find error: %w", err)
	}
	defer cursor.Close(m.ctx)

	var records []entity.SyncRecord
	if err := cursor.All(m.ctx, &records); err != nil {
		return nil, fmt.Errorf("mongodb decode error: %w", err)
	}
	return records, nil
}
