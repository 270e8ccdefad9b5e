package client

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

// PropertyForm carries the multipart fields of a create or update
// request. Blank features are filtered before encoding.
type PropertyForm struct {
	Name        string
	Nickname    string
	Description string
	Address     string
	RefNo       string
	Price       float64
	Longitude   float64
	Latitude    float64
	CleaningFee string
	Pets        string
	PetsFee     string
	Bedrooms    string
	Bathrooms   string
	Guests      string
	Status      string
	Features    []string
	Images      []Upload
}

func (c *Client) ListProperties(ctx context.Context) ([]Property, error) {
	var out []Property
	if err := c.doJSON(ctx, http.MethodGet, "/properties", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProperty(ctx context.Context, id string) (*Property, error) {
	var out Property
	if err := c.doJSON(ctx, http.MethodGet, "/properties/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateProperty(ctx context.Context, form PropertyForm) (*Property, error) {
	var out Property
	err := c.doMultipart(ctx, http.MethodPost, "/properties", func(w *multipart.Writer) error {
		return writePropertyForm(w, form)
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProperty(ctx context.Context, id string, form PropertyForm) (*Property, error) {
	var out Property
	err := c.doMultipart(ctx, http.MethodPut, "/properties/"+id, func(w *multipart.Writer) error {
		return writePropertyForm(w, form)
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProperty(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/properties/"+id, nil, nil)
}

// UploadFeaturedImages replaces the full featured set. The dashboard
// card layout needs exactly four images, checked before any network
// call.
func (c *Client) UploadFeaturedImages(ctx context.Context, id string, images []Upload) (*Property, error) {
	if len(images) != 4 {
		return nil, validationErr("exactly 4 featured images required")
	}

	var out Property
	err := c.doMultipart(ctx, http.MethodPost, "/properties/update-featured-images/"+id, func(w *multipart.Writer) error {
		return writeFiles(w, "images", images)
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteFeaturedImage removes one featured image by its stored URL.
func (c *Client) DeleteFeaturedImage(ctx context.Context, id, url string) (*Property, error) {
	var out Property
	body := map[string]string{"url": url}
	if err := c.doJSON(ctx, http.MethodPost, "/properties/featured-gallery/"+id, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func writePropertyForm(w *multipart.Writer, form PropertyForm) error {
	fields := map[string]string{
		"name":         form.Name,
		"nickname":     form.Nickname,
		"description":  form.Description,
		"address":      form.Address,
		"refNo":        form.RefNo,
		"price":        fmt.Sprintf("%g", form.Price),
		"longitude":    fmt.Sprintf("%g", form.Longitude),
		"latitude":     fmt.Sprintf("%g", form.Latitude),
		"cleaning_fee": form.CleaningFee,
		"pets":         form.Pets,
		"pets_fee":     form.PetsFee,
		"bedrooms":     form.Bedrooms,
		"bathrooms":    form.Bathrooms,
		"guests":       form.Guests,
		"status":       form.Status,
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return err
		}
	}

	for _, feature := range form.Features {
		if strings.TrimSpace(feature) == "" {
			continue
		}
		if err := w.WriteField("features[]", feature); err != nil {
			return err
		}
	}

	return writeFiles(w, "images[]", form.Images)
}

func writeFiles(w *multipart.Writer, field string, files []Upload) error {
	for _, f := range files {
		part, err := w.CreateFormFile(field, f.Name)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, f.Reader); err != nil {
			return err
		}
	}
	return nil
}
