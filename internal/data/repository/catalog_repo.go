package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"museumpass/internal/data/entity"

	"go.uber.org/zap"
)

type CatalogRepository interface {
	FindAll(ctx context.Context) ([]*entity.Museum, error)
	FindByTitle(ctx context.Context, title string) (*entity.Museum, error)
	Titles(ctx context.Context) []string
}

type catalogRepository struct {
	museums []*entity.Museum
	byTitle map[string]*entity.Museum
	log     *zap.Logger
}

// LoadCatalog reads a JSON array of museums from path.
func LoadCatalog(path string, log *zap.Logger) (CatalogRepository, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var museums []*entity.Museum
	if err := json.Unmarshal(raw, &museums); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}

	repo := NewCatalogRepository(museums, log)
	log.Info("Catalog loaded", zap.String("path", path), zap.Int("museums", len(museums)))
	return repo, nil
}

func NewCatalogRepository(museums []*entity.Museum, log *zap.Logger) CatalogRepository {
	byTitle := make(map[string]*entity.Museum, len(museums))
	for _, m := range museums {
		key := strings.ToLower(m.Title)
		if _, dup := byTitle[key]; dup {
			log.Warn("Duplicate museum title in catalog", zap.String("title", m.Title))
			continue
		}
		byTitle[key] = m
	}

	return &catalogRepository{
		museums: museums,
		byTitle: byTitle,
		log:     log.With(zap.String("repository", "catalog")),
	}
}

func (r *catalogRepository) FindAll(ctx context.Context) ([]*entity.Museum, error) {
	return r.museums, nil
}

// FindByTitle returns nil, nil when no museum has that title.
func (r *catalogRepository) FindByTitle(ctx context.Context, title string) (*entity.Museum, error) {
	return r.byTitle[strings.ToLower(strings.TrimSpace(title))], nil
}

// Titles lists the titles in catalog order.
func (r *catalogRepository) Titles(ctx context.Context) []string {
	titles := make([]string, len(r.museums))
	for i, m := range r.museums {
		titles[i] = m.Title
	}
	return titles
}
