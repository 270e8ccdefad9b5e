package ops

import (
	"context"

	"propertyhub/async"
	"propertyhub/client"
)

func ListProperties(c *client.Client) *async.Op[async.None, []client.Property] {
	return async.New(func(ctx context.Context, _ async.None) ([]client.Property, error) {
		return c.ListProperties(ctx)
	}, []client.Property{})
}

func GetProperty(c *client.Client) *async.Op[string, *client.Property] {
	return async.New(func(ctx context.Context, id string) (*client.Property, error) {
		return c.GetProperty(ctx, id)
	}, nil)
}

func CreateProperty(c *client.Client) *async.Op[client.PropertyForm, *client.Property] {
	return async.New(func(ctx context.Context, form client.PropertyForm) (*client.Property, error) {
		return c.CreateProperty(ctx, form)
	}, nil)
}

type UpdatePropertyArgs struct {
	ID   string
	Form client.PropertyForm
}

func UpdateProperty(c *client.Client) *async.Op[UpdatePropertyArgs, *client.Property] {
	return async.New(func(ctx context.Context, args UpdatePropertyArgs) (*client.Property, error) {
		return c.UpdateProperty(ctx, args.ID, args.Form)
	}, nil)
}

func DeleteProperty(c *client.Client) *async.Op[string, bool] {
	return async.New(func(ctx context.Context, id string) (bool, error) {
		if err := c.DeleteProperty(ctx, id); err != nil {
			return false, err
		}
		return true, nil
	}, false)
}
