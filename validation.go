package runlog

import (
	stderrs "errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Station-Manager/errors"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate
var once sync.Once

const runNameRules = "required,excludesall=/\\"

func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// normalize fills defaults and lowercases the enumerated options.
func (o Options) normalize() Options {
	o.Level = strings.ToLower(strings.TrimSpace(o.Level))
	if o.Level == emptyString {
		o.Level = "info"
	}
	o.Format = strings.ToLower(strings.TrimSpace(o.Format))
	if o.Format == emptyString {
		o.Format = FormatText
	}
	if o.LogDir == emptyString {
		o.LogDir = DefaultLogDirName
	}
	o.LogDir = filepath.Clean(o.LogDir)
	return o
}

func validateOptions(runName string, opts *Options) error {
	const op errors.Op = "runlog.validateOptions"

	if err := getValidator().Var(runName, runNameRules); err != nil {
		return &ConfigurationError{
			Field: "RunName",
			Value: runName,
			Err:   errors.New(op).Err(err).Msg(errMsgConfigInvalid),
		}
	}

	if err := getValidator().Struct(opts); err != nil {
		cfgErr := &ConfigurationError{Err: errors.New(op).Err(err).Msg(errMsgConfigInvalid)}
		var verrs validator.ValidationErrors
		if stderrs.As(err, &verrs) && len(verrs) > 0 {
			cfgErr.Field = verrs[0].Field()
			cfgErr.Value = fmt.Sprint(verrs[0].Value())
		}
		return cfgErr
	}

	// The validator tag and the level table must agree.
	if _, ok := Levels[opts.Level]; !ok {
		return &ConfigurationError{
			Field: "Level",
			Value: opts.Level,
			Err:   errors.New(op).Msg(errMsgConfigInvalid),
		}
	}

	return nil
}
