package config

import (
	"github.com/go-core-fx/fiberfx"
	"github.com/venuebook/venuebook/internal/auth"
	"github.com/venuebook/venuebook/internal/notify"
	"github.com/venuebook/venuebook/pkg/badgerfx"
	"github.com/venuebook/venuebook/pkg/openapifx"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"config",
		fx.Provide(New),
		fx.Provide(func(cfg Config) fiberfx.Config {
			return fiberfx.Config{
				Address:     cfg.HTTP.Address,
				ProxyHeader: cfg.HTTP.ProxyHeader,
				Proxies:     cfg.HTTP.Proxies,
			}
		}),
		fx.Provide(func(cfg Config) badgerfx.Config {
			return badgerfx.Config{
				Dir: cfg.Storage.DataDir,
			}
		}),
		fx.Provide(func(cfg Config) auth.Config {
			return auth.Config{
				SecretKey: []byte(cfg.Auth.Secret),
				Issuer:    cfg.Auth.Issuer,
				TokenTTL:  cfg.Auth.TokenTTL,
			}
		}),
		fx.Provide(func(cfg Config) notify.Config {
			return notify.Config{
				Host:      cfg.Mail.Host,
				Port:      cfg.Mail.Port,
				Username:  cfg.Mail.Username,
				Password:  cfg.Mail.Password,
				FromName:  cfg.Mail.FromName,
				FromEmail: cfg.Mail.FromEmail,
			}
		}),
		fx.Provide(func(cfg Config) openapifx.Config {
			return openapifx.Config{
				Enabled:    cfg.HTTP.OpenAPI.Enabled,
				PublicHost: cfg.HTTP.OpenAPI.PublicHost,
				PublicPath: cfg.HTTP.OpenAPI.PublicPath,
			}
		}),
	)
}
