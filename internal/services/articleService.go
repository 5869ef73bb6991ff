package services

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"schoolpress/internal/httperr"
	"schoolpress/internal/models"
	"schoolpress/internal/repository"
)

// updatableFields is the set of article fields a client may write. Anything
// outside it is silently dropped from a patch.
var updatableFields = map[string]struct{}{
	"name": {}, "type": {}, "category": {}, "nationality": {}, "about": {},
	"born": {}, "died": {}, "known_for": {}, "designed_by": {}, "medium": {},
	"dimensions": {}, "location": {}, "developer": {}, "notable_work": {},
	"year": {},
}

// ArticleInput carries the writable fields of a create request.
type ArticleInput struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Nationality string `json:"nationality"`
	About       string `json:"about"`
	Born        string `json:"born"`
	Died        string `json:"died"`
	KnownFor    string `json:"known_for"`
	DesignedBy  string `json:"designed_by"`
	Medium      string `json:"medium"`
	Dimensions  string `json:"dimensions"`
	Location    string `json:"location"`
	Developer   string `json:"developer"`
	NotableWork string `json:"notable_work"`
	Year        string `json:"year"`
}

// ArticleService implements article CRUD.
type ArticleService struct {
	articles repository.ArticleRepository
}

func NewArticleService(articles repository.ArticleRepository) *ArticleService {
	return &ArticleService{articles: articles}
}

// Create persists a new article. Name is the only required field; empty
// optional fields are never written. A name collision, including one lost
// to a concurrent create, surfaces as ErrArticleExists.
func (s *ArticleService) Create(ctx context.Context, input ArticleInput) (*models.Article, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, httperr.ErrMissingFields
	}

	article := &models.Article{
		ID:          primitive.NewObjectID(),
		Name:        input.Name,
		Type:        input.Type,
		Category:    input.Category,
		Nationality: input.Nationality,
		About:       input.About,
		Born:        input.Born,
		Died:        input.Died,
		KnownFor:    input.KnownFor,
		DesignedBy:  input.DesignedBy,
		Medium:      input.Medium,
		Dimensions:  input.Dimensions,
		Location:    input.Location,
		Developer:   input.Developer,
		NotableWork: input.NotableWork,
		Year:        input.Year,
		CreatedAt:   time.Now(),
	}
	if err := s.articles.Create(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

// List returns every article in storage order.
func (s *ArticleService) List(ctx context.Context) ([]models.Article, error) {
	return s.articles.FindAll(ctx)
}

// Get returns a single article by id.
func (s *ArticleService) Get(ctx context.Context, id string) (*models.Article, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, httperr.ErrInvalidID
	}
	return s.articles.FindByID(ctx, objID)
}

// Update applies a merge-patch: only fields present in the request body are
// written, the rest of the document is left untouched.
func (s *ArticleService) Update(ctx context.Context, id string, patch map[string]interface{}) (*models.Article, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, httperr.ErrInvalidID
	}

	fields := bson.M{}
	for key, value := range patch {
		if _, ok := updatableFields[key]; ok {
			fields[key] = value
		}
	}
	if len(fields) == 0 {
		return nil, httperr.ErrMissingFields
	}
	fields["updated_at"] = time.Now()

	return s.articles.UpdateFields(ctx, objID, fields)
}

// Delete removes an article. Existence is established from the delete
// result, so a missing id is reported instead of a blind success.
func (s *ArticleService) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return httperr.ErrInvalidID
	}
	return s.articles.Delete(ctx, objID)
}
