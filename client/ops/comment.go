package ops

import (
	"context"

	"propertyhub/async"
	"propertyhub/client"
)

func ListComments(c *client.Client) *async.Op[client.CommentFilter, []client.Comment] {
	return async.New(func(ctx context.Context, f client.CommentFilter) ([]client.Comment, error) {
		return c.ListComments(ctx, f)
	}, []client.Comment{})
}

func CreateComment(c *client.Client) *async.Op[client.CreateCommentRequest, *client.Comment] {
	return async.New(func(ctx context.Context, req client.CreateCommentRequest) (*client.Comment, error) {
		return c.CreateComment(ctx, req)
	}, nil)
}

func ApproveComment(c *client.Client) *async.Op[string, *client.Comment] {
	return async.New(func(ctx context.Context, id string) (*client.Comment, error) {
		return c.ApproveComment(ctx, id)
	}, nil)
}

func RejectComment(c *client.Client) *async.Op[string, *client.Comment] {
	return async.New(func(ctx context.Context, id string) (*client.Comment, error) {
		return c.RejectComment(ctx, id)
	}, nil)
}

type ReplyArgs struct {
	CommentID string
	Reply     string
}

func ReplyToComment(c *client.Client) *async.Op[ReplyArgs, *client.Comment] {
	return async.New(func(ctx context.Context, args ReplyArgs) (*client.Comment, error) {
		return c.ReplyToComment(ctx, args.CommentID, args.Reply)
	}, nil)
}

func DeleteComment(c *client.Client) *async.Op[string, bool] {
	return async.New(func(ctx context.Context, id string) (bool, error) {
		if err := c.DeleteComment(ctx, id); err != nil {
			return false, err
		}
		return true, nil
	}, false)
}
