package setup

import (
	"context"
	"fmt"
	"time"

	"github.com/The127/ioc"
	"github.com/avast/retry-go"
	"github.com/tokengate-project/tokengate/internal/config"
	"github.com/tokengate-project/tokengate/internal/logging"
	"github.com/tokengate-project/tokengate/internal/services/verifier"
)

func Verifier(dc *ioc.DependencyCollection, c config.VerifierConfig) {
	switch c.Mode {
	case config.VerifierModeOidc:
		service := newOidcServiceOrPanic(c)
		ioc.RegisterSingleton(dc, func(_ *ioc.DependencyProvider) verifier.Service {
			return service
		})

	case config.VerifierModeJwt:
		ioc.RegisterSingleton(dc, func(_ *ioc.DependencyProvider) verifier.Service {
			return verifier.NewJwtService(c)
		})

	default:
		panic(fmt.Errorf("unsupported verifier mode: %s", c.Mode))
	}
}

// newOidcServiceOrPanic retries discovery because the issuer may still be
// starting up alongside this service.
func newOidcServiceOrPanic(c config.VerifierConfig) verifier.Service {
	var service verifier.Service

	err := retry.Do(
		func() error {
			var err error
			service, err = verifier.NewOidcService(context.Background(), c)
			return err
		},
		retry.Attempts(5),
		retry.Delay(time.Second*5),
		retry.DelayType(retry.FixedDelay),
		retry.OnRetry(func(n uint, err error) {
			logging.Logger.Warnf("failed to discover oidc issuer: %s, retrying in 5 seconds", err)
		}),
	)
	if err != nil {
		panic(fmt.Errorf("failed to create oidc verifier: %w", err))
	}

	return service
}
