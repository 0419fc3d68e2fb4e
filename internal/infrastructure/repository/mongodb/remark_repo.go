package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikiasgoitom/Remarks/internal/domain/contract"
	"github.com/mikiasgoitom/Remarks/internal/domain/entity"
)

const remarksCollection = "remarks_remarks"

// RemarkRepository represents the MongoDB implementation of the IRemarkRepository interface.
type RemarkRepository struct {
	collection *mongo.Collection
	ids        contract.IUUIDGenerator
}

// NewRemarkRepository creates and returns a new RemarkRepository instance.
func NewRemarkRepository(db *mongo.Database, ids contract.IUUIDGenerator) *RemarkRepository {
	return &RemarkRepository{
		collection: db.Collection(remarksCollection),
		ids:        ids,
	}
}

var _ contract.IRemarkRepository = (*RemarkRepository)(nil)

// EnsureIndexes creates the unique (subject, actor) index and the lookup indexes.
func (r *RemarkRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "subject.id", Value: 1},
				{Key: "subject.type", Value: 1},
				{Key: "actor.id", Value: 1},
				{Key: "actor.type", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("idx_remarks_pair"),
		},
		{
			Keys:    bson.D{{Key: "actor.type", Value: 1}, {Key: "actor.id", Value: 1}},
			Options: options.Index().SetName("idx_remarks_actor"),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create remark indexes: %w", err)
	}
	return nil
}

// FindOne retrieves the first remark matching the filter.
func (r *RemarkRepository) FindOne(ctx context.Context, filter entity.RemarkFilter) (*entity.Remark, error) {
	var remark entity.Remark
	err := r.collection.FindOne(ctx, toBSON(filter)).Decode(&remark)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrRemarkNotFound
		}
		return nil, fmt.Errorf("failed to retrieve remark: %w", err)
	}
	return &remark, nil
}

func (r *RemarkRepository) Exists(ctx context.Context, filter entity.RemarkFilter) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, toBSON(filter), options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check remark: %w", err)
	}
	return count > 0, nil
}

// Create inserts a new remark document.
func (r *RemarkRepository) Create(ctx context.Context, remark *entity.Remark) error {
	doc := *remark
	doc.ID = r.ids.NewUUID()
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return entity.ErrRemarkConflict
		}
		return fmt.Errorf("failed to create remark record: %w", err)
	}
	remark.ID = doc.ID
	return nil
}

// Replace deletes the old document and inserts the new one. Standalone servers do not
// support transactions, so a failure in between leaves the pair without a remark.
func (r *RemarkRepository) Replace(ctx context.Context, oldID string, remark *entity.Remark) error {
	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": oldID}); err != nil {
		return fmt.Errorf("failed to delete remark %s: %w", oldID, err)
	}
	return r.Create(ctx, remark)
}

func (r *RemarkRepository) DeleteMany(ctx context.Context, filter entity.RemarkFilter) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, toBSON(filter))
	if err != nil {
		return 0, fmt.Errorf("failed to delete remarks: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *RemarkRepository) Count(ctx context.Context, filter entity.RemarkFilter) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, toBSON(filter))
	if err != nil {
		return 0, fmt.Errorf("failed to count remarks: %w", err)
	}
	return count, nil
}

// SubjectIDs lists the ids of the subjects carrying a remark that matches the filter.
// It is the document-store counterpart of gormrepo.WhereRemarkedBy.
func (r *RemarkRepository) SubjectIDs(ctx context.Context, filter entity.RemarkFilter) ([]string, error) {
	values, err := r.collection.Distinct(ctx, "subject.id", toBSON(filter))
	if err != nil {
		return nil, fmt.Errorf("failed to list remarked subjects: %w", err)
	}
	ids := make([]string, 0, len(values))
	for _, v := range values {
		if id, ok := v.(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func toBSON(filter entity.RemarkFilter) bson.M {
	m := bson.M{}
	if filter.Subject.Type != "" {
		m["subject.type"] = filter.Subject.Type
	}
	if filter.Subject.ID != "" {
		m["subject.id"] = filter.Subject.ID
	}
	if filter.Actor.Type != "" {
		m["actor.type"] = filter.Actor.Type
	}
	if filter.Actor.ID != "" {
		m["actor.id"] = filter.Actor.ID
	}
	if filter.Kind != entity.RemarkKindAll {
		m["kind"] = filter.Kind
	}
	return m
}
