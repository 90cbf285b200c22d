package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"vibe-shop/internal/apperr"
	"vibe-shop/internal/logx"
)

var slugRe = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// Slug lowercases name and joins its alphanumeric runs with dashes.
func Slug(name string) string {
	return strings.ToLower(strings.Trim(slugRe.ReplaceAllString(name, "-"), "-"))
}

// AdminProduct is the admin view of a catalog entry.
type AdminProduct struct {
	Index       int             `json:"index"`
	ID          int64           `json:"id"`
	Name        json.RawMessage `json:"name"`
	Price       json.RawMessage `json:"price"`
	Description json.RawMessage `json:"description"`
	Images      []string        `json:"images"`
}

// ProductPatch holds editable product fields; nil fields are left as is.
type ProductPatch struct {
	Name        json.RawMessage
	Price       json.RawMessage
	Description json.RawMessage
}

// Service serves the product catalog and its images.
type Service struct {
	store  *FileStore
	images *ImageDir
	logger logx.Logger
}

// NewService creates a catalog Service.
func NewService(store *FileStore, images *ImageDir, logger logx.Logger) *Service {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{store: store, images: images, logger: logger}
}

func sortedIDs(groups map[int64][]string) []int64 {
	ids := make([]int64, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Products returns the storefront catalog. Complete image galleries are
// matched to products by position in ascending group id order.
func (s *Service) Products(_ context.Context) ([]Record, error) {
	recs, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	groups, err := s.images.Groups()
	if err != nil {
		s.logger.Warn("scan images failed", logx.Err(err))
		groups = nil
	}
	galleries := make(map[int64][]string, len(groups))
	for id, names := range groups {
		if picked, ok := PickGallery(names); ok {
			galleries[id] = s.images.urls(picked)
		}
	}
	ids := sortedIDs(galleries)

	out := make([]Record, 0, len(recs))
	for i, rec := range recs {
		item := rec.clone()
		if i < len(ids) {
			imgs := galleries[ids[i]]
			item.set("id", ids[i])
			item.set("images", imgs)
			item.set("image", imgs[0])
		} else {
			if _, ok := item["id"]; !ok {
				item.set("id", i)
			}
			if imgs := item.Images(); len(imgs) > 0 {
				item.set("image", imgs[0])
			}
		}
		if name := item.Str("name"); name != "" {
			item.set("slug", Slug(name))
		}
		out = append(out, item)
	}
	return out, nil
}

// AdminProducts lists products with every image of their group.
func (s *Service) AdminProducts(_ context.Context) ([]AdminProduct, error) {
	recs, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	groups, err := s.images.Groups()
	if err != nil {
		return nil, err
	}
	ids := sortedIDs(groups)

	out := make([]AdminProduct, 0, len(recs))
	for i, rec := range recs {
		p := AdminProduct{
			Index:       i,
			ID:          int64(i),
			Name:        rec.Raw("name"),
			Price:       rec.Raw("price"),
			Description: rec.Raw("description"),
		}
		if i < len(ids) {
			p.ID = ids[i]
			p.Images = s.images.urls(groups[ids[i]])
		} else {
			p.Images = rec.Images()
		}
		if p.Images == nil {
			p.Images = []string{}
		}
		out = append(out, p)
	}
	return out, nil
}

// UpdateProduct applies patch to the product at index.
func (s *Service) UpdateProduct(_ context.Context, index int, patch ProductPatch) error {
	ok, err := s.store.Update(index, func(r Record) {
		if patch.Name != nil {
			r["name"] = patch.Name
		}
		if patch.Price != nil {
			r["price"] = patch.Price
		}
		if patch.Description != nil {
			r["description"] = patch.Description
		}
	})
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: product index out of range", apperr.ErrNotFound)
	}
	s.logger.Info("product updated", logx.Int("index", index))
	return nil
}

// SaveImages stores uploaded images of product pid and returns their URLs.
func (s *Service) SaveImages(_ context.Context, pid int64, files []Upload, replace bool) ([]string, error) {
	saved, err := s.images.Save(pid, files, replace)
	if err != nil {
		return nil, err
	}
	s.logger.Info("product images saved",
		logx.Int64("pid", pid),
		logx.Int("count", len(saved)),
		logx.Bool("replace", replace),
	)
	return saved, nil
}

// DeleteImages removes all images of pid.
func (s *Service) DeleteImages(_ context.Context, pid int64) (int, error) {
	return s.images.DeleteAll(pid)
}

// DeleteImage removes one image of pid.
func (s *Service) DeleteImage(_ context.Context, pid int64, filename string) error {
	return s.images.Delete(pid, filename)
}

// SyncImages seeds an empty image directory from src.
func (s *Service) SyncImages(src string) error {
	n, err := s.images.SyncFrom(src)
	if err != nil {
		return err
	}
	if n > 0 {
		s.logger.Info("images synced", logx.String("from", src), logx.Int("count", n))
	}
	return nil
}
