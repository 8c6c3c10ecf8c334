package repository

import (
	"ShopBridge/entity"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProductIDBySKU loads the full SKU to catalog product id table.
func (m *MongoDB) ProductIDBySKU() (map[string]int64, error) {
	connection, err := m.connect()
	if err != nil {
		return nil, err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(skuMappingsCollection)
	cursor, err := collection.Find(m.ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("mongodb find error: %w", err)
	}
	defer cursor.Close(m.ctx)

	var mappings []entity.SkuMapping
	if err := cursor.All(m.ctx, &mappings); err != nil {
		return nil, fmt.Errorf("mongodb decode error: %w", err)
	}

	table := make(map[string]int64, len(mappings))
	for _, mapping := range mappings {
		table[mapping.SKU] = mapping.ProductID
	}
	return table, nil
}

func (m *MongoDB) ListSkuMappings() ([]entity.SkuMapping, error) {
	connection, err := m.connect()
	if err != nil {
		return nil, err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(skuMappingsCollection)
	cursor, err := collection.Find(m.ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("mongodb find error: %w", err)
	}
	defer cursor.Close(m.ctx)

	var mappings []entity.SkuMapping
	if err := cursor.All(m.ctx, &mappings); err != nil {
		return nil, fmt.Errorf("mongodb decode error: %w", err)
	}
	return mappings, nil
}

func (m *MongoDB) UpsertSkuMapping(mapping *entity.SkuMapping) error {
	connection, err := m.connect()
	if err != nil {
		return err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(skuMappingsCollection)
	filter := bson.D{{Key: "sku", Value: mapping.SKU}}
	update := bson.D{{Key: "$set", Value: mapping}}

	_, err = collection.UpdateOne(m.ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongodb upsert error: %w", err)
	}
	return nil
}

func (m *MongoDB) DeleteSkuMapping(sku string) error {
	connection, err := m.connect()
	if err != nil {
		return err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(skuMappingsCollection)
	_, err = collection.DeleteOne(m.ctx, bson.D{{Key: "sku", Value: sku}})
	if err != nil {
		return fmt.Errorf("mongodb delete error: %w", err)
	}
	return nil
}

// StageMappings loads the financial status to pipeline stage table.
func (m *MongoDB) StageMappings() (map[string]string, error) {
	connection, err := m.connect()
	if err != nil {
		return nil, err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(stageMappingsCollection)
	cursor, err := collection.Find(m.ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("mongodb find error: %w", err)
	}
	defer cursor.Close(m.ctx)

	var mappings []entity.StageMapping
	if err := cursor.All(m.ctx, &mappings); err != nil {
		return nil, fmt.Errorf("mongodb decode error: %w", err)
	}

	table := make(map[string]string, len(mappings))
	for _, mapping := range mappings {
		table[mapping.FinancialStatus] = mapping.StageID
	}
	return table, nil
}

// SourceMappings loads the source channel to Bitrix source id table.
func (m *MongoDB) SourceMappings() (map[string]string, error) {
	connection, err := m.connect()
	if err != nil {
		return nil, err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(sourceMappingsCollection)
	cursor, err := collection.Find(m.ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("mongodb find error: %w", err)
	}
	defer cursor.Close(m.ctx)

	var mappings []entity.SourceMapping
	if err := cursor.All(m.ctx, &mappings); err != nil {
		return nil, fmt.Errorf("mongodb decode error: %w", err)
	}

	table := make(map[string]string, len(mappings))
	for _, mapping := range mappings {
		table[mapping.SourceName] = mapping.SourceID
	}
	return table, nil
}
