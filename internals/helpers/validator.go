// file: internals/helpers/validator.go
package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Instance validator dipakai bersama (thread-safe)
var Validate = validator.New()

// ValidationErrorsToMap mengubah error validator jadi map field → pesan
// untuk dikirim via JsonValidationError (422).
func ValidationErrorsToMap(err error) map[string][]string {
	out := map[string][]string{}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "wajib diisi"
		case "email":
			msg = "format email tidak valid"
		case "min":
			msg = "minimal " + fe.Param() + " karakter"
		case "max":
			msg = "maksimal " + fe.Param() + " karakter"
		case "oneof":
			msg = "harus salah satu dari: " + fe.Param()
		case "uuid4", "uuid":
			msg = "harus UUID yang valid"
		case "gte":
			msg = "minimal " + fe.Param()
		case "lte":
			msg = "maksimal " + fe.Param()
		default:
			msg = "format tidak valid"
		}
		out[field] = append(out[field], msg)
	}
	return out
}
