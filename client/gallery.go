package client

import (
	"context"
	"mime/multipart"
	"net/http"
	"net/url"
)

func (c *Client) ListGallery(ctx context.Context, propertyID, tag string) ([]GalleryImage, error) {
	path := "/properties/" + propertyID + "/gallery"
	if tag != "" {
		path += "?tag=" + url.QueryEscape(tag)
	}

	var out []GalleryImage
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UploadGalleryImages pairs tags[i] with images[i]; a missing tag
// defaults server-side.
func (c *Client) UploadGalleryImages(ctx context.Context, propertyID string, images []Upload, tags []string) ([]GalleryImage, error) {
	if len(images) == 0 {
		return nil, validationErr("no image files to upload")
	}

	var out []GalleryImage
	err := c.doMultipart(ctx, http.MethodPost, "/properties/"+propertyID+"/gallery", func(w *multipart.Writer) error {
		for _, tag := range tags {
			if err := w.WriteField("tags[]", tag); err != nil {
				return err
			}
		}
		return writeFiles(w, "images[]", images)
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateGalleryTag(ctx context.Context, imageID, tag string) (*GalleryImage, error) {
	var out GalleryImage
	body := map[string]string{"tag": tag}
	if err := c.doJSON(ctx, http.MethodPatch, "/properties/gallery/"+imageID, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteGalleryImage(ctx context.Context, imageID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/properties/gallery/"+imageID, nil, nil)
}
