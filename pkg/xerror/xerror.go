package xerror

import (
	stderrors "errors"
	"fmt"

	"github.com/pkg/errors"
)

type ErrorCategory interface {
	Name() string
}

var (
	Normal   = newErrorCategory("normal")
	Chain    = newErrorCategory("chain")    // The error is raised while building or walking a handler chain.
	Observer = newErrorCategory("observer") // The error is raised by an observer during notification.
)

type xErrorCategory struct {
	name string
}

func (e xErrorCategory) Name() string {
	return e.name
}

func newErrorCategory(name string) ErrorCategory {
	return &xErrorCategory{
		name: name,
	}
}

type errType int

const (
	xrecoverable errType = iota
	xpanic
)

func (e errType) String() string {
	switch e {
	case xrecoverable:
		return "Recoverable"
	case xpanic:
		return "Panic"
	default:
		panic("unknown error level")
	}
}

// a wrapped error with error type, the stack is kept outside by pkg/errors
type XError struct {
	category ErrorCategory
	errType  errType
	err      error
}

func (e *XError) Category() ErrorCategory {
	return e.category
}

// return the innerest xerror message
func (e *XError) Error() string {
	var inner *XError
	if stderrors.As(e.err, &inner) {
		return inner.Error()
	}

	return fmt.Sprintf("[%s] %s", e.category.Name(), e.err.Error())
}

func (e *XError) Unwrap() error {
	return e.err
}

func (e *XError) IsRecoverable() bool {
	return e.errType == xrecoverable
}

func (e *XError) IsPanic() bool {
	return e.errType == xpanic
}

func NewWithoutStack(errCategory ErrorCategory, message string) *XError {
	return &XError{
		category: errCategory,
		errType:  xrecoverable,
		err:      stderrors.New(message),
	}
}

func New(errCategory ErrorCategory, message string) error {
	return errors.WithStack(NewWithoutStack(errCategory, message))
}

func PanicWithoutStack(errCategory ErrorCategory, message string) *XError {
	return &XError{
		category: errCategory,
		errType:  xpanic,
		err:      stderrors.New(message),
	}
}

func Panic(errCategory ErrorCategory, message string) error {
	return errors.WithStack(PanicWithoutStack(errCategory, message))
}

func errorf(errCategory ErrorCategory, errtype errType, format string, args ...interface{}) *XError {
	return &XError{
		category: errCategory,
		errType:  errtype,
		err:      fmt.Errorf(format, args...),
	}
}

func Errorf(errCategory ErrorCategory, format string, args ...interface{}) error {
	return errors.WithStack(errorf(errCategory, xrecoverable, format, args...))
}

func Panicf(errCategory ErrorCategory, format string, args ...interface{}) error {
	return errors.WithStack(errorf(errCategory, xpanic, format, args...))
}

func wrap(err error, errCategory ErrorCategory, errLevel errType, message string) error {
	if err == nil {
		return nil
	}

	err = &XError{
		category: errCategory,
		errType:  errLevel,
		err:      err,
	}
	return errors.WithStack(errors.WithMessage(err, message))
}

func Wrap(err error, errCategory ErrorCategory, message string) error {
	return wrap(err, errCategory, xrecoverable, message)
}

func PanicWrap(err error, errCategory ErrorCategory, message string) error {
	return wrap(err, errCategory, xpanic, message)
}

func Wrapf(err error, errCategory ErrorCategory, format string, args ...interface{}) error {
	return wrap(err, errCategory, xrecoverable, fmt.Sprintf(format, args...))
}

func XWrapf(xerr *XError, format string, args ...interface{}) error {
	return wrap(xerr, xerr.category, xrecoverable, fmt.Sprintf(format, args...))
}

func PanicWrapf(err error, errCategory ErrorCategory, format string, args ...interface{}) error {
	return wrap(err, errCategory, xpanic, fmt.Sprintf(format, args...))
}

func WithStack(err error) error {
	if err == nil {
		return nil
	}

	return errors.WithStack(&XError{
		category: Normal,
		errType:  xrecoverable,
		err:      err,
	})
}

// As returns the outermost XError in the chain of err, or nil.
func As(err error) *XError {
	var xerr *XError
	if stderrors.As(err, &xerr) {
		return xerr
	}
	return nil
}
