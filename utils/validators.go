package utils

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IsValidID reports whether s is a syntactically valid document
// identifier (24-char hex ObjectID). Existence is not checked.
func IsValidID(s string) bool {
	_, err := primitive.ObjectIDFromHex(s)
	return err == nil
}

// InitValidator registers custom rules with Gin's binding engine so
// request structs can carry an `objectid` binding tag.
func InitValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
			return IsValidID(fl.Field().String())
		})
	}
}
