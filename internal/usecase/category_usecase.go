package usecase

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type CategoryUsecase struct {
	categoryRepo repo.CategoryRepository
	productRepo  repo.ProductRepository
}

func NewCategoryUsecase(categoryRepo repo.CategoryRepository, productRepo repo.ProductRepository) *CategoryUsecase {
	return &CategoryUsecase{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

type CategoryInput struct {
	Name        string
	Slug        string
	Description string
}

func (u *CategoryUsecase) List(ctx context.Context) ([]model.Category, error) {
	cs, err := u.categoryRepo.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return cs, nil
}

func (u *CategoryUsecase) AdminCreate(ctx context.Context, in CategoryInput) (model.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "name required")
	}

	// slug省略時はnameから生成
	slug := strings.TrimSpace(in.Slug)
	if slug == "" {
		slug = slugify(name)
	}
	if !slugPattern.MatchString(slug) {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "invalid slug")
	}

	// slug重複チェック
	if _, err := u.categoryRepo.FindBySlug(ctx, slug); err == nil {
		return model.Category{}, NewHTTPError(http.StatusConflict, "slug already exists")
	} else if err != repo.ErrNotFound {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	c, err := u.categoryRepo.Create(ctx, model.Category{
		Name:        name,
		Slug:        slug,
		Description: strings.TrimSpace(in.Description),
	})
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

func (u *CategoryUsecase) AdminUpdate(ctx context.Context, categoryID int64, in CategoryInput) (model.Category, error) {
	if categoryID <= 0 {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "name required")
	}

	c, err := u.categoryRepo.FindByID(ctx, categoryID)
	if err == repo.ErrNotFound {
		return model.Category{}, NewHTTPError(http.StatusNotFound, "category not found")
	}
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	slug := strings.TrimSpace(in.Slug)
	if slug == "" {
		slug = c.Slug
	}
	if !slugPattern.MatchString(slug) {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "invalid slug")
	}

	// 別カテゴリが同じslugを使っていないか
	if slug != c.Slug {
		if other, err := u.categoryRepo.FindBySlug(ctx, slug); err == nil && other.ID != categoryID {
			return model.Category{}, NewHTTPError(http.StatusConflict, "slug already exists")
		} else if err != nil && err != repo.ErrNotFound {
			return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}

	c.Name = name
	c.Slug = slug
	c.Description = strings.TrimSpace(in.Description)

	if err := u.categoryRepo.Update(ctx, c); err != nil {
		if err == repo.ErrNotFound {
			return model.Category{}, NewHTTPError(http.StatusNotFound, "category not found")
		}
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

// 商品がぶら下がっているカテゴリは消せない
func (u *CategoryUsecase) AdminDelete(ctx context.Context, categoryID int64) error {
	if categoryID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if _, err := u.categoryRepo.FindByID(ctx, categoryID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "category not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// 非公開の商品もcategory_idを参照しているので、is_activeを問わず数える
	total, err := u.productRepo.CountByCategoryID(ctx, categoryID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if total > 0 {
		return NewHTTPError(http.StatusConflict, "category has products")
	}

	if err := u.categoryRepo.Delete(ctx, categoryID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "category not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = nonSlugChars.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
