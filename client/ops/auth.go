package ops

import (
	"context"

	"propertyhub/async"
	"propertyhub/client"
)

func Register(c *client.Client) *async.Op[client.RegisterRequest, *client.AuthResponse] {
	return async.New(func(ctx context.Context, req client.RegisterRequest) (*client.AuthResponse, error) {
		return c.Register(ctx, req)
	}, nil)
}

func Login(c *client.Client) *async.Op[client.LoginRequest, *client.AuthResponse] {
	return async.New(func(ctx context.Context, req client.LoginRequest) (*client.AuthResponse, error) {
		return c.Login(ctx, req)
	}, nil)
}

// Logout clears the session token; no network call is made.
func Logout(c *client.Client) *async.Op[async.None, bool] {
	return async.New(func(ctx context.Context, _ async.None) (bool, error) {
		c.Logout()
		return true, nil
	}, false)
}

func RequestPasswordReset(c *client.Client) *async.Op[string, bool] {
	return async.New(func(ctx context.Context, email string) (bool, error) {
		if err := c.RequestPasswordReset(ctx, email); err != nil {
			return false, err
		}
		return true, nil
	}, false)
}

type VerifyResetCodeArgs struct {
	Email string
	Code  string
}

func VerifyResetCode(c *client.Client) *async.Op[VerifyResetCodeArgs, bool] {
	return async.New(func(ctx context.Context, args VerifyResetCodeArgs) (bool, error) {
		return c.VerifyResetCode(ctx, args.Email, args.Code)
	}, false)
}

type ResetPasswordArgs struct {
	Email       string
	Code        string
	NewPassword string
}

func ResetPassword(c *client.Client) *async.Op[ResetPasswordArgs, bool] {
	return async.New(func(ctx context.Context, args ResetPasswordArgs) (bool, error) {
		if err := c.ResetPassword(ctx, args.Email, args.Code, args.NewPassword); err != nil {
			return false, err
		}
		return true, nil
	}, false)
}

func Profile(c *client.Client) *async.Op[async.None, *client.User] {
	return async.New(func(ctx context.Context, _ async.None) (*client.User, error) {
		return c.Profile(ctx)
	}, nil)
}

func UpdateProfile(c *client.Client) *async.Op[client.UpdateProfileRequest, *client.User] {
	return async.New(func(ctx context.Context, req client.UpdateProfileRequest) (*client.User, error) {
		return c.UpdateProfile(ctx, req)
	}, nil)
}

type ChangePasswordArgs struct {
	CurrentPassword string
	NewPassword     string
}

func ChangePassword(c *client.Client) *async.Op[ChangePasswordArgs, bool] {
	return async.New(func(ctx context.Context, args ChangePasswordArgs) (bool, error) {
		if err := c.ChangePassword(ctx, args.CurrentPassword, args.NewPassword); err != nil {
			return false, err
		}
		return true, nil
	}, false)
}

func UploadAvatar(c *client.Client) *async.Op[client.Upload, string] {
	return async.New(func(ctx context.Context, avatar client.Upload) (string, error) {
		return c.UploadAvatar(ctx, avatar)
	}, "")
}
