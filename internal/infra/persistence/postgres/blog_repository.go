package postgres

import (
	"context"

	"quill/internal/domain/entity"
	"quill/internal/domain/repository"
	"quill/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// blogRepository implements the repository.BlogRepository interface using GORM.
type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository is the constructor for blogRepository.
func NewBlogRepository(db *gorm.DB) repository.BlogRepository {
	return &blogRepository{db: db}
}

// Create persists a new blog and backfills generated fields.
func (repo *blogRepository) Create(ctx context.Context, blog *entity.Blog) error {
	blogM := fromBlogDomain(blog)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(blogM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(err, "blog author does not exist")
		}

		return errors.Wrap(err, "failed to create blog")
	}

	blog.ID = blogM.ID
	blog.CreatedAt = blogM.CreatedAt
	blog.UpdatedAt = blogM.UpdatedAt

	return nil
}

// FindByID retrieves a single blog with its author populated.
func (repo *blogRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Blog, error) {
	var blogM model.BlogModel

	if err := repo.db.WithContext(ctx).
		Preload("Author").
		Where("id = ?", id).
		First(&blogM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBlogNotFound
		}

		return nil, errors.Wrap(err, "failed to find blog by id")
	}

	return toBlogDomain(&blogM), nil
}

// Update saves the blog's mutable columns. The author reference is
// never rewritten here.
func (repo *blogRepository) Update(ctx context.Context, blog *entity.Blog) error {
	blogM := fromBlogDomain(blog)

	if err := repo.db.WithContext(ctx).
		Model(&model.BlogModel{}).
		Where("id = ?", blogM.ID).
		Updates(map[string]any{
			"title":        blogM.Title,
			"description":  blogM.Description,
			"tags":         blogM.Tags,
			"body":         blogM.Body,
			"state":        blogM.State,
			"reading_time": blogM.ReadingTime,
		}).Error; err != nil {
		return errors.Wrap(err, "failed to update blog")
	}

	return nil
}

// Delete removes a blog record.
func (repo *blogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BlogModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete blog")
	}

	return nil
}

// UpdateReadCount stores a new counter value. Deliberately a plain
// column write, not an atomic increment: the public fetch reads the
// counter and writes it back, and concurrent readers may undercount.
func (repo *blogRepository) UpdateReadCount(ctx context.Context, id uuid.UUID, readCount int) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.BlogModel{}).
		Where("id = ?", id).
		UpdateColumn("read_count", readCount).Error; err != nil {
		return errors.Wrap(err, "failed to update read count")
	}

	return nil
}

// ListPublished returns every published blog matching the filter,
// sorted descending, authors populated. Pagination happens in the use
// case after its in-process author filter.
func (repo *blogRepository) ListPublished(ctx context.Context, filter repository.PublishedFilter) ([]*entity.Blog, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.BlogModel{}).
		Preload("Author").
		Where("state = ?", string(entity.StatePublished))

	if filter.Title != "" {
		query = query.Where("title ILIKE ?", "%"+filter.Title+"%")
	}
	if len(filter.Tags) > 0 {
		query = query.Where("tags && ?", pq.StringArray(filter.Tags))
	}

	var blogModels []*model.BlogModel
	if err := query.
		Order(clause.OrderByColumn{
			Column: clause.Column{Name: orderColumn(filter.OrderBy)},
			Desc:   true,
		}).
		Find(&blogModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list published blogs")
	}

	return toBlogDomainSlice(blogModels), nil
}

// ListByAuthor returns one page of an author's blogs, newest first.
func (repo *blogRepository) ListByAuthor(ctx context.Context, page repository.OwnedPage) ([]*entity.Blog, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.BlogModel{}).
		Where("author_id = ?", page.AuthorID)

	if page.State != nil {
		query = query.Where("state = ?", string(*page.State))
	}

	var blogModels []*model.BlogModel
	if err := query.
		Order("created_at DESC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&blogModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list blogs by author")
	}

	return toBlogDomainSlice(blogModels), nil
}

// CountByAuthor counts an author's blogs, optionally by state.
func (repo *blogRepository) CountByAuthor(ctx context.Context, authorID uuid.UUID, state *entity.BlogState) (int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.BlogModel{}).
		Where("author_id = ?", authorID)

	if state != nil {
		query = query.Where("state = ?", string(*state))
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count blogs by author")
	}

	return count, nil
}

// orderColumn maps a caller-supplied sort field onto an allow-listed
// column. Anything unknown falls back to the creation timestamp.
func orderColumn(orderBy string) string {
	switch orderBy {
	case "read_count":
		return "read_count"
	case "reading_time":
		return "reading_time"
	case "title":
		return "title"
	default:
		// Includes "", "timestamp" and "created_at".
		return "created_at"
	}
}

// --- Mapper Functions ---

// toBlogDomain converts a GORM BlogModel to a domain Blog entity.
func toBlogDomain(data *model.BlogModel) *entity.Blog {
	if data == nil {
		return nil
	}

	return &entity.Blog{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Tags:        []string(data.Tags),
		Body:        data.Body,
		AuthorID:    data.AuthorID,
		Author:      toUserDomain(data.Author),
		State:       entity.BlogState(data.State),
		ReadingTime: data.ReadingTime,
		ReadCount:   data.ReadCount,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toBlogDomainSlice(data []*model.BlogModel) []*entity.Blog {
	blogs := make([]*entity.Blog, 0, len(data))
	for _, blogM := range data {
		blogs = append(blogs, toBlogDomain(blogM))
	}

	return blogs
}

// fromBlogDomain converts a domain Blog entity to a GORM BlogModel for persistence.
func fromBlogDomain(data *entity.Blog) *model.BlogModel {
	if data == nil {
		return nil
	}

	return &model.BlogModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Tags:        pq.StringArray(data.Tags),
		Body:        data.Body,
		AuthorID:    data.AuthorID,
		State:       string(data.State),
		ReadingTime: data.ReadingTime,
		ReadCount:   data.ReadCount,
	}
}
