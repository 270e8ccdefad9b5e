package ops

import (
	"context"

	"propertyhub/async"
	"propertyhub/client"
)

type ListGalleryArgs struct {
	PropertyID string
	Tag        string
}

func ListGallery(c *client.Client) *async.Op[ListGalleryArgs, []client.GalleryImage] {
	return async.New(func(ctx context.Context, args ListGalleryArgs) ([]client.GalleryImage, error) {
		return c.ListGallery(ctx, args.PropertyID, args.Tag)
	}, []client.GalleryImage{})
}

type UploadGalleryArgs struct {
	PropertyID string
	Images     []client.Upload
	Tags       []string
}

func UploadGalleryImages(c *client.Client) *async.Op[UploadGalleryArgs, []client.GalleryImage] {
	return async.New(func(ctx context.Context, args UploadGalleryArgs) ([]client.GalleryImage, error) {
		return c.UploadGalleryImages(ctx, args.PropertyID, args.Images, args.Tags)
	}, []client.GalleryImage{})
}

type UpdateGalleryTagArgs struct {
	ImageID string
	Tag     string
}

func UpdateGalleryTag(c *client.Client) *async.Op[UpdateGalleryTagArgs, *client.GalleryImage] {
	return async.New(func(ctx context.Context, args UpdateGalleryTagArgs) (*client.GalleryImage, error) {
		return c.UpdateGalleryTag(ctx, args.ImageID, args.Tag)
	}, nil)
}

func DeleteGalleryImage(c *client.Client) *async.Op[string, bool] {
	return async.New(func(ctx context.Context, imageID string) (bool, error) {
		if err := c.DeleteGalleryImage(ctx, imageID); err != nil {
			return false, err
		}
		return true, nil
	}, false)
}

type UploadFeaturedArgs struct {
	PropertyID string
	Images     []client.Upload
}

func UploadFeaturedImages(c *client.Client) *async.Op[UploadFeaturedArgs, *client.Property] {
	return async.New(func(ctx context.Context, args UploadFeaturedArgs) (*client.Property, error) {
		return c.UploadFeaturedImages(ctx, args.PropertyID, args.Images)
	}, nil)
}

type DeleteFeaturedArgs struct {
	PropertyID string
	URL        string
}

func DeleteFeaturedImage(c *client.Client) *async.Op[DeleteFeaturedArgs, *client.Property] {
	return async.New(func(ctx context.Context, args DeleteFeaturedArgs) (*client.Property, error) {
		return c.DeleteFeaturedImage(ctx, args.PropertyID, args.URL)
	}, nil)
}
