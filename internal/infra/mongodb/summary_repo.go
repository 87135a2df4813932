package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/legallens/backend/internal/domain/analysis"
	"github.com/legallens/backend/internal/domain/results"
)

const summariesCollection = "summaries"

// SummaryRepository mirrors per-user analysis summaries to a document
// database for retrieval outside the report-generation flow. Writes are
// best-effort; the caller logs failures and proceeds.
type SummaryRepository struct {
	client *mongo.Client
	coll   *mongo.Collection
}

func NewSummaryRepository(ctx context.Context, uri, database string) (*SummaryRepository, error) {
	ctx2, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx2, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx2, nil); err != nil {
		return nil, err
	}
	return &SummaryRepository{
		client: client,
		coll:   client.Database(database).Collection(summariesCollection),
	}, nil
}

func (r *SummaryRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func (r *SummaryRepository) Save(ctx context.Context, sa *results.StoredAnalysis, title string) error {
	doc := bson.M{
		"user_email":       sa.UserEmail,
		"storage_key":      sa.Key(),
		"document_title":   title,
		"document_summary": sa.Record.DocumentSummary,
		"terms_count":      len(sa.Record.LegalTerms),
		"laws_count":       len(sa.Record.ApplicableLaws),
		"created_at":       sa.CreatedAt,
	}
	if dt, ok := sa.Record.Metadata[analysis.MetaDocumentType]; ok {
		doc["document_type"] = dt
	}
	_, err := r.coll.InsertOne(ctx, doc)
	return err
}

// LatestByUser returns the newest mirrored summary for a user, or nil.
func (r *SummaryRepository) LatestByUser(ctx context.Context, userEmail string) (map[string]any, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})
	var doc bson.M
	err := r.coll.FindOne(ctx, bson.M{"user_email": userEmail}, opts).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	delete(doc, "_id")
	return doc, nil
}
