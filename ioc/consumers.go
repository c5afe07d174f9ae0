package ioc

import (
	"github.com/nird-project/nird/internal/gamification"
)

func initConsumers(gam *gamification.Module) []Consumer {
	return []Consumer{
		gam.C,
	}
}
