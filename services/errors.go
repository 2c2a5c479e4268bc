package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

type ErrorKind int

const (
	KindNotFound ErrorKind = iota + 1
	KindConflict
	KindValidation
	KindUnauthorized
)

// ServiceError is a business failure the caller can act on. Any other error is a storage failure.
type ServiceError struct {
	Kind    ErrorKind
	Message string
}

func (e ServiceError) Error() string {
	return e.Message
}

func ErrNotFound(msg string) error {
	return ServiceError{Kind: KindNotFound, Message: msg}
}

func ErrConflict(msg string) error {
	return ServiceError{Kind: KindConflict, Message: msg}
}

func ErrValidation(msg string) error {
	return ServiceError{Kind: KindValidation, Message: msg}
}

func ErrUnauthorized(msg string) error {
	return ServiceError{Kind: KindUnauthorized, Message: msg}
}

// KindOf returns the kind of a ServiceError anywhere in err's chain, or 0.
func KindOf(err error) ErrorKind {
	var serr ServiceError
	if errors.As(err, &serr) {
		return serr.Kind
	}
	return 0
}

func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// translate maps driver level failures onto service errors.
func translate(err error, entity string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound(entity + " not found")
	}
	if KindOf(err) != 0 {
		return err
	}

	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		switch merr.Number {
		case 1062:
			return ErrConflict(entity + " already exists")
		case 1451:
			return ErrConflict(entity + " is still referenced by other records")
		case 1452:
			return ErrValidation(entity + " references a record that does not exist")
		}
	}
	lower := strings.ToLower(err.Error())
	if strings.Contains(lower, "unique constraint failed") || strings.Contains(lower, "duplicate entry") {
		return ErrConflict(entity + " already exists")
	}
	return fmt.Errorf("%s: %w", entity, err)
}
