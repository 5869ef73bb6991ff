package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"schoolpress/internal/httperr"
	"schoolpress/internal/models"
)

// MockArticleRepository is a mock implementation of repository.ArticleRepository.
type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) Create(ctx context.Context, article *models.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockArticleRepository) FindAll(ctx context.Context) ([]models.Article, error) {
	args := m.Called(ctx)
	if articles := args.Get(0); articles != nil {
		return articles.([]models.Article), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockArticleRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Article, error) {
	args := m.Called(ctx, id)
	if article := args.Get(0); article != nil {
		return article.(*models.Article), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockArticleRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Article, error) {
	args := m.Called(ctx, id, fields)
	if article := args.Get(0); article != nil {
		return article.(*models.Article), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockArticleRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCreateRequiresName(t *testing.T) {
	repo := new(MockArticleRepository)
	svc := NewArticleService(repo)

	_, err := svc.Create(context.Background(), ArticleInput{Category: "Math"})
	assert.ErrorIs(t, err, httperr.ErrMissingFields)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateDuplicateName(t *testing.T) {
	repo := new(MockArticleRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Article")).
		Return(httperr.ErrArticleExists)
	svc := NewArticleService(repo)

	_, err := svc.Create(context.Background(), ArticleInput{Name: "Euler"})
	assert.ErrorIs(t, err, httperr.ErrArticleExists)
}

func TestCreatePersistsProvidedFields(t *testing.T) {
	repo := new(MockArticleRepository)
	svc := NewArticleService(repo)

	var created *models.Article
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Article")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*models.Article)
		}).
		Return(nil)

	article, err := svc.Create(context.Background(), ArticleInput{Name: "Euler", Category: "Math"})
	require.NoError(t, err)

	assert.Equal(t, "Euler", created.Name)
	assert.Equal(t, "Math", created.Category)
	assert.Empty(t, created.About)
	assert.False(t, article.CreatedAt.IsZero())
}

func TestUpdateBuildsMergePatch(t *testing.T) {
	id := primitive.NewObjectID()
	updated := &models.Article{ID: id, Name: "Euler", Category: "Math"}

	repo := new(MockArticleRepository)
	repo.On("UpdateFields", mock.Anything, id, mock.MatchedBy(func(fields bson.M) bool {
		_, hasCategory := fields["category"]
		_, hasBogus := fields["bogus"]
		_, hasID := fields["_id"]
		_, hasUpdatedAt := fields["updated_at"]
		return hasCategory && hasUpdatedAt && !hasBogus && !hasID
	})).Return(updated, nil)
	svc := NewArticleService(repo)

	patch := map[string]interface{}{"category": "Math", "bogus": "x", "_id": "y"}
	article, err := svc.Update(context.Background(), id.Hex(), patch)
	require.NoError(t, err)
	assert.Equal(t, "Math", article.Category)
	repo.AssertExpectations(t)
}

func TestUpdateInvalidID(t *testing.T) {
	repo := new(MockArticleRepository)
	svc := NewArticleService(repo)

	_, err := svc.Update(context.Background(), "nope", map[string]interface{}{"category": "Math"})
	assert.ErrorIs(t, err, httperr.ErrInvalidID)
}

func TestUpdateNotFound(t *testing.T) {
	id := primitive.NewObjectID()

	repo := new(MockArticleRepository)
	repo.On("UpdateFields", mock.Anything, id, mock.Anything).
		Return(nil, httperr.ErrArticleNotFound)
	svc := NewArticleService(repo)

	_, err := svc.Update(context.Background(), id.Hex(), map[string]interface{}{"category": "Math"})
	assert.ErrorIs(t, err, httperr.ErrArticleNotFound)
}

func TestGetInvalidID(t *testing.T) {
	repo := new(MockArticleRepository)
	svc := NewArticleService(repo)

	_, err := svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, httperr.ErrInvalidID)
}

func TestDeleteNotFound(t *testing.T) {
	id := primitive.NewObjectID()

	repo := new(MockArticleRepository)
	repo.On("Delete", mock.Anything, id).Return(httperr.ErrArticleNotFound)
	svc := NewArticleService(repo)

	err := svc.Delete(context.Background(), id.Hex())
	assert.ErrorIs(t, err, httperr.ErrArticleNotFound)
}

func TestAttachmentDownloadWithoutAttachment(t *testing.T) {
	id := primitive.NewObjectID()
	stored := &models.Article{ID: id, Name: "Euler"}

	repo := new(MockArticleRepository)
	repo.On("FindByID", mock.Anything, id).Return(stored, nil)
	svc := NewAttachmentService(repo, nil)

	_, err := svc.DownloadURL(context.Background(), id.Hex())
	assert.ErrorIs(t, err, httperr.ErrNoAttachment)
}
