package setup

import (
	"github.com/The127/ioc"
	"github.com/The127/mediatr"
	"github.com/tokengate-project/tokengate/internal/commands"
	"github.com/tokengate-project/tokengate/internal/queries"
)

func Mediator(dc *ioc.DependencyCollection) {
	mediator := mediatr.NewMediator()

	mediatr.RegisterHandler(mediator, queries.HandleAuthenticateToken)
	mediatr.RegisterHandler(mediator, queries.HandleGetAccount)

	mediatr.RegisterHandler(mediator, commands.HandleRevokeToken)

	ioc.RegisterSingleton(dc, func(_ *ioc.DependencyProvider) mediatr.Mediator {
		return mediator
	})
}
