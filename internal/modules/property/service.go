package property

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"

	"gorm.io/gorm"

	"propertyhub/internal/domain"
	"propertyhub/internal/pkg/validator"
)

const featuredImageCount = 4

type Service struct {
	properties PropertyRepositoryInterface
	gallery    GalleryCleaner
	store      ImageStore
}

func NewService(properties PropertyRepositoryInterface, gallery GalleryCleaner, store ImageStore) *Service {
	return &Service{properties: properties, gallery: gallery, store: store}
}

func (s *Service) List(ctx context.Context) ([]domain.Property, error) {
	return s.properties.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	p, err := s.properties.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) Create(ctx context.Context, form Form) (*domain.Property, error) {
	form.Features = filterBlank(form.Features)
	if errs := validator.Validate(form); errs != nil {
		return nil, ErrInvalidRequest
	}

	urls, err := s.saveImages(form.Images)
	if err != nil {
		return nil, err
	}

	p := &domain.Property{
		Name:        form.Name,
		Nickname:    form.Nickname,
		Description: form.Description,
		Address:     form.Address,
		RefNo:       form.RefNo,
		Price:       form.Price,
		Longitude:   form.Longitude,
		Latitude:    form.Latitude,
		CleaningFee: form.CleaningFee,
		Pets:        form.Pets,
		PetsFee:     form.PetsFee,
		Bedrooms:    form.Bedrooms,
		Bathrooms:   form.Bathrooms,
		Guests:      form.Guests,
		Status:      statusOrDefault(form.Status),
		Features:    form.Features,
		Images:      urls,
	}

	if err := s.properties.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update overwrites the scalar fields and features; newly uploaded
// images are appended after the existing ones so display order is kept.
func (s *Service) Update(ctx context.Context, id string, form Form) (*domain.Property, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	form.Features = filterBlank(form.Features)
	if errs := validator.Validate(form); errs != nil {
		return nil, ErrInvalidRequest
	}

	urls, err := s.saveImages(form.Images)
	if err != nil {
		return nil, err
	}

	p.Name = form.Name
	p.Nickname = form.Nickname
	p.Description = form.Description
	p.Address = form.Address
	p.RefNo = form.RefNo
	p.Price = form.Price
	p.Longitude = form.Longitude
	p.Latitude = form.Latitude
	p.CleaningFee = form.CleaningFee
	p.Pets = form.Pets
	p.PetsFee = form.PetsFee
	p.Bedrooms = form.Bedrooms
	p.Bathrooms = form.Bathrooms
	p.Guests = form.Guests
	p.Status = statusOrDefault(form.Status)
	p.Features = form.Features
	p.Images = append(p.Images, urls...)

	if err := s.properties.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.gallery.DeleteByProperty(ctx, id); err != nil {
		return err
	}
	return s.properties.Delete(ctx, id)
}

// ReplaceFeaturedImages swaps the full featured set. The dashboard
// card layout needs exactly four images.
func (s *Service) ReplaceFeaturedImages(ctx context.Context, id string, form Form) (*domain.Property, error) {
	if len(form.Images) != featuredImageCount {
		return nil, ErrWrongImageCount
	}

	p, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	urls, err := s.saveImages(form.Images)
	if err != nil {
		return nil, err
	}

	p.Images = urls
	if err := s.properties.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) RemoveFeaturedImage(ctx context.Context, id, url string) (*domain.Property, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	kept := make([]string, 0, len(p.Images))
	found := false
	for _, img := range p.Images {
		if img == url {
			found = true
			continue
		}
		kept = append(kept, img)
	}
	if !found {
		return nil, ErrImageNotListed
	}

	p.Images = kept
	if err := s.properties.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) saveImages(files []*multipart.FileHeader) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, fh := range files {
		url, err := s.store.SaveImage(fh, "properties")
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func filterBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

func statusOrDefault(status string) domain.PropertyStatus {
	if status == "" {
		return domain.PropertyActive
	}
	return domain.PropertyStatus(status)
}
