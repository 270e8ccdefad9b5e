package ops

import (
	"context"

	"propertyhub/async"
	"propertyhub/client"
)

func ListVisitors(c *client.Client) *async.Op[async.None, []client.Visitor] {
	return async.New(func(ctx context.Context, _ async.None) ([]client.Visitor, error) {
		return c.ListVisitors(ctx)
	}, []client.Visitor{})
}

func GetVisitor(c *client.Client) *async.Op[string, *client.Visitor] {
	return async.New(func(ctx context.Context, id string) (*client.Visitor, error) {
		return c.GetVisitor(ctx, id)
	}, nil)
}

func CreateVisitor(c *client.Client) *async.Op[client.CreateVisitorRequest, *client.Visitor] {
	return async.New(func(ctx context.Context, req client.CreateVisitorRequest) (*client.Visitor, error) {
		return c.CreateVisitor(ctx, req)
	}, nil)
}

type UpdateVisitorArgs struct {
	ID  string
	Req client.UpdateVisitorRequest
}

func UpdateVisitor(c *client.Client) *async.Op[UpdateVisitorArgs, *client.Visitor] {
	return async.New(func(ctx context.Context, args UpdateVisitorArgs) (*client.Visitor, error) {
		return c.UpdateVisitor(ctx, args.ID, args.Req)
	}, nil)
}

func DeleteVisitor(c *client.Client) *async.Op[string, bool] {
	return async.New(func(ctx context.Context, id string) (bool, error) {
		if err := c.DeleteVisitor(ctx, id); err != nil {
			return false, err
		}
		return true, nil
	}, false)
}
