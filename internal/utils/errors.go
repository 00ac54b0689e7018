package utils

import (
	"fmt"

	"github.com/tokengate-project/tokengate/internal/logging"
)

func PanicOnError(f func() error, message string) {
	err := f()
	if err != nil {
		logging.Logger.Panic(fmt.Errorf("%s: %w", message, err))
	}
}
