package ops

import (
	"context"

	"propertyhub/async"
	"propertyhub/client"
)

func ListEnquiryBookings(c *client.Client) *async.Op[client.EnquiryFilter, []client.EnquiryBooking] {
	return async.New(func(ctx context.Context, f client.EnquiryFilter) ([]client.EnquiryBooking, error) {
		return c.ListEnquiryBookings(ctx, f)
	}, []client.EnquiryBooking{})
}

func GetEnquiryBooking(c *client.Client) *async.Op[string, *client.EnquiryBooking] {
	return async.New(func(ctx context.Context, id string) (*client.EnquiryBooking, error) {
		return c.GetEnquiryBooking(ctx, id)
	}, nil)
}

func CountEnquiryBookings(c *client.Client) *async.Op[async.None, int64] {
	return async.New(func(ctx context.Context, _ async.None) (int64, error) {
		return c.CountEnquiryBookings(ctx)
	}, 0)
}

func CreateEnquiryBooking(c *client.Client) *async.Op[client.CreateEnquiryRequest, *client.EnquiryBooking] {
	return async.New(func(ctx context.Context, req client.CreateEnquiryRequest) (*client.EnquiryBooking, error) {
		return c.CreateEnquiryBooking(ctx, req)
	}, nil)
}

type UpdateEnquiryArgs struct {
	ID  string
	Req client.UpdateEnquiryRequest
}

func UpdateEnquiryBooking(c *client.Client) *async.Op[UpdateEnquiryArgs, *client.EnquiryBooking] {
	return async.New(func(ctx context.Context, args UpdateEnquiryArgs) (*client.EnquiryBooking, error) {
		return c.UpdateEnquiryBooking(ctx, args.ID, args.Req)
	}, nil)
}

func ConfirmEnquiryBooking(c *client.Client) *async.Op[string, *client.EnquiryBooking] {
	return async.New(func(ctx context.Context, id string) (*client.EnquiryBooking, error) {
		return c.ConfirmEnquiryBooking(ctx, id)
	}, nil)
}

func CancelEnquiryBooking(c *client.Client) *async.Op[string, *client.EnquiryBooking] {
	return async.New(func(ctx context.Context, id string) (*client.EnquiryBooking, error) {
		return c.CancelEnquiryBooking(ctx, id)
	}, nil)
}

func DeleteEnquiryBooking(c *client.Client) *async.Op[string, bool] {
	return async.New(func(ctx context.Context, id string) (bool, error) {
		if err := c.DeleteEnquiryBooking(ctx, id); err != nil {
			return false, err
		}
		return true, nil
	}, false)
}
