package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(fieldName)
}

// fieldName reports a field by its config or json key so messages match what
// the user wrote.
func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"mapstructure", "json"} {
		name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return fld.Name
}

func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	errMsgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msg := fmt.Sprintf("Field: %s, Tag: %s", fe.Namespace(), fe.Tag())
		if fe.Param() != "" {
			msg += ", Param: " + fe.Param()
		}
		errMsgs = append(errMsgs, msg)
	}
	return fmt.Errorf("validation failed: %s", strings.Join(errMsgs, "; "))
}
