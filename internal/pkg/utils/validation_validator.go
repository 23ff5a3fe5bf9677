package utils

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("object_id", validateObjectID)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validateObjectID accepts 24-char hex identifiers, the format every
// member and entity id in this service uses.
func validateObjectID(fl validator.FieldLevel) bool {
	_, err := primitive.ObjectIDFromHex(fl.Field().String())
	return err == nil
}
