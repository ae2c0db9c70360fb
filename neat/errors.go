package neat

import "github.com/pkg/errors"

func errNeat(format string, args ...interface{}) error {
	return errors.Errorf(format, args...)
}
