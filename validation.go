package logcontent

import (
	"path/filepath"
	"sync"

	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/types"
	"github.com/go-playground/validator/v10"
)

var configValidator = sync.OnceValue(func() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
})

// validateConfig checks the struct tags of cfg and that the log directory
// stays under the working dir.
func validateConfig(cfg *types.LoggingConfig) error {
	const op errors.Op = "logcontent.validateConfig"
	switch {
	case cfg == nil:
		return errors.New(op).Msg(errMsgNilConfig)
	case filepath.IsAbs(cfg.RelLogFileDir):
		return errors.New(op).Msg(errMsgAbsLogDir)
	}
	if err := configValidator().Struct(cfg); err != nil {
		return errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}
	return nil
}
