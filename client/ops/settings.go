package ops

import (
	"context"

	"propertyhub/async"
	"propertyhub/client"
)

func ListSettings(c *client.Client) *async.Op[string, []client.Setting] {
	return async.New(func(ctx context.Context, category string) ([]client.Setting, error) {
		return c.ListSettings(ctx, category)
	}, []client.Setting{})
}

func GetSetting(c *client.Client) *async.Op[string, *client.Setting] {
	return async.New(func(ctx context.Context, key string) (*client.Setting, error) {
		return c.GetSetting(ctx, key)
	}, nil)
}

func UpdateSettings(c *client.Client) *async.Op[[]client.SettingInput, []client.Setting] {
	return async.New(func(ctx context.Context, settings []client.SettingInput) ([]client.Setting, error) {
		return c.UpdateSettings(ctx, settings)
	}, []client.Setting{})
}

type UpdateSettingArgs struct {
	Key string
	Req client.UpdateSettingRequest
}

func UpdateSetting(c *client.Client) *async.Op[UpdateSettingArgs, *client.Setting] {
	return async.New(func(ctx context.Context, args UpdateSettingArgs) (*client.Setting, error) {
		return c.UpdateSetting(ctx, args.Key, args.Req)
	}, nil)
}
