package models

import "github.com/go-playground/validator/v10"

// Shared validator instance for the request shapes in this package. The
// struct tags carry the same field constraints the persistent columns do.
var validate = validator.New()
