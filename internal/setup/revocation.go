package setup

import (
	"github.com/The127/ioc"
	"github.com/tokengate-project/tokengate/internal/config"
	"github.com/tokengate-project/tokengate/internal/services/clock"
	"github.com/tokengate-project/tokengate/internal/services/kv"
	"github.com/tokengate-project/tokengate/internal/services/revocation"
)

func Revocation(dc *ioc.DependencyCollection, c config.RevocationConfig) {
	ioc.RegisterSingleton(dc, func(dp *ioc.DependencyProvider) revocation.Service {
		return revocation.NewService(
			ioc.GetDependency[kv.Store](dp),
			ioc.GetDependency[clock.Service](dp),
			c.Ttl,
		)
	})
}
