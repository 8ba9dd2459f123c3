package checkout

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/therajusah/Ecommerce-app/internal/domain"
)

var (
	errIncompleteAddress = &ValidationError{
		Title:   "Incomplete Information",
		Message: "Please fill in all address fields to continue",
	}
	errInvalidPhone = &ValidationError{
		Title:   "Invalid Phone Number",
		Message: "Please enter a valid 10-digit phone number",
	}
	errInvalidPincode = &ValidationError{
		Title:   "Invalid Pincode",
		Message: "Please enter a valid 6-digit pincode",
	}
)

// validateAddress checks presence first, then phone, then pincode, and
// reports only the first problem.
func validateAddress(v *validator.Validate, addr domain.Address) error {
	err := v.Struct(addr)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	failed := make(map[string]bool, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return errIncompleteAddress
		}
		failed[fe.StructField()] = true
	}
	if failed["Phone"] {
		return errInvalidPhone
	}
	if failed["Pincode"] {
		return errInvalidPincode
	}
	return err
}
