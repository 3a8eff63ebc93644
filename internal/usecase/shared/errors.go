package shared

import (
	"errors"

	"gorm.io/gorm"
)

// Translate maps storage errors onto domain errors. A nil target leaves the
// corresponding storage error untouched.
func Translate(err, notFound, duplicate error) error {
	switch {
	case err == nil:
		return nil
	case notFound != nil && errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case duplicate != nil && errors.Is(err, gorm.ErrDuplicatedKey):
		return duplicate
	}
	return err
}

// Exists reports whether a lookup found a row, passing through real query errors.
func Exists(err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return false, nil
	}
	return false, err
}
