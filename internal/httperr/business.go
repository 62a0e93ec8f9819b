package httperr

import "errors"

// BusinessError carries a rule-violation code (admission rejections,
// missing records) up from the domain so handlers can map it to a
// status and user-facing message.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
