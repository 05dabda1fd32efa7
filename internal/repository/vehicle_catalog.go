package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/load-planner/internal/domain/model"
)

// VehicleCatalogConfig is one stored version of the vehicle catalog.
// Exactly one version is active at a time.
type VehicleCatalogConfig struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Classes   []model.VehicleClass `bson:"classes" json:"classes"`
	Active    bool                 `bson:"active" json:"active"`
	Version   int                  `bson:"version" json:"version"`
	CreatedAt time.Time            `bson:"created_at" json:"created_at"`
	CreatedBy string               `bson:"created_by,omitempty" json:"created_by,omitempty"`
	Note      string               `bson:"note,omitempty" json:"note,omitempty"`
}

// VehicleCatalogRepository stores vehicle catalog versions.
type VehicleCatalogRepository struct {
	collection *mongo.Collection
}

// NewVehicleCatalogRepository creates a new vehicle catalog repository.
func NewVehicleCatalogRepository(db *MongoDB) *VehicleCatalogRepository {
	return &VehicleCatalogRepository{collection: db.VehicleCatalogs}
}

// GetActive returns the active catalog, or nil when none has been stored.
func (r *VehicleCatalogRepository) GetActive(ctx context.Context) (*VehicleCatalogConfig, error) {
	var cfg VehicleCatalogConfig
	err := r.collection.FindOne(ctx, bson.M{"active": true},
		options.FindOne().SetSort(bson.D{{Key: "version", Value: -1}})).Decode(&cfg)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Create stores classes as the next catalog version and makes it the active one.
func (r *VehicleCatalogRepository) Create(ctx context.Context, classes []model.VehicleClass, createdBy, note string) (*VehicleCatalogConfig, error) {
	version, err := r.latestVersion(ctx)
	if err != nil {
		return nil, err
	}

	cfg := VehicleCatalogConfig{
		ID:        primitive.NewObjectID(),
		Classes:   classes,
		Active:    true,
		Version:   version + 1,
		CreatedAt: time.Now().UTC(),
		CreatedBy: createdBy,
		Note:      note,
	}
	if _, err := r.collection.InsertOne(ctx, cfg); err != nil {
		return nil, err
	}

	_, err = r.collection.UpdateMany(ctx,
		bson.M{"active": true, "_id": bson.M{"$ne": cfg.ID}},
		bson.M{"$set": bson.M{"active": false}},
	)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *VehicleCatalogRepository) latestVersion(ctx context.Context) (int, error) {
	var latest VehicleCatalogConfig
	err := r.collection.FindOne(ctx, bson.M{},
		options.FindOne().SetSort(bson.D{{Key: "version", Value: -1}}).SetProjection(bson.M{"version": 1}),
	).Decode(&latest)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	return latest.Version, err
}

// List returns catalog versions, newest first.
func (r *VehicleCatalogRepository) List(ctx context.Context, limit int) ([]VehicleCatalogConfig, error) {
	opts := options.Find().SetSort(bson.D{{Key: "version", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	configs := make([]VehicleCatalogConfig, 0)
	if err := cursor.All(ctx, &configs); err != nil {
		return nil, err
	}
	return configs, nil
}
