package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"schoolpress/internal/httperr"
	"schoolpress/internal/models"
)

// ArticleRepository persists article records.
type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	FindAll(ctx context.Context) ([]models.Article, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Article, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Article, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type mongoArticleRepository struct {
	collection *mongo.Collection
}

func NewArticleRepository(database *mongo.Database) ArticleRepository {
	return &mongoArticleRepository{collection: database.Collection("articles")}
}

// Create inserts the article. Name uniqueness comes from the unique index,
// so at most one of two racing creates with the same name can succeed.
func (r *mongoArticleRepository) Create(ctx context.Context, article *models.Article) error {
	_, err := r.collection.InsertOne(ctx, article)
	if mongo.IsDuplicateKeyError(err) {
		return httperr.ErrArticleExists
	}
	return err
}

func (r *mongoArticleRepository) FindAll(ctx context.Context) ([]models.Article, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	articles := []models.Article{}
	if err := cursor.All(ctx, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *mongoArticleRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Article, error) {
	var article models.Article
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&article)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, httperr.ErrArticleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// UpdateFields applies a merge-patch: only the given fields are written,
// everything else on the document is left untouched. The updated document
// is returned, and a missing id surfaces before anything is sent to the
// caller.
func (r *mongoArticleRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Article, error) {
	var article models.Article
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&article)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, httperr.ErrArticleNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return nil, httperr.ErrArticleExists
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *mongoArticleRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return httperr.ErrArticleNotFound
	}
	return nil
}
