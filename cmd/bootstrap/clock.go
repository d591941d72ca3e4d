package bootstrap

import (
	"washbook/internal/pkg/clock"
	"washbook/internal/pkg/config"

	"go.uber.org/fx"
)

var ClockModule = fx.Module("clock",
	fx.Provide(
		clock.NewRealClock,
		NewShopClock,
	),
)

func NewShopClock(c clock.Clock, cfg config.Config) (*clock.ShopClock, error) {
	return clock.NewShopClock(c, cfg.Shop.TimeZone)
}
