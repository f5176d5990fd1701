package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// fieldMessages maps field name -> validation tag -> user-facing message.
// These are the exact texts the frontend forms show, so server-side rejection
// reads identically to client-side rejection.
var fieldMessages = map[string]map[string]string{
	"title": {
		"required": "Job title is required",
		"min":      "Title must be at least 3 characters",
	},
	"category": {
		"required": "Category is required",
		"oneof":    "Please select a valid category",
	},
	"location": {
		"required": "Location is required",
		"min":      "Location is required",
	},
	"type": {
		"required": "Job type is required",
		"oneof":    "Please select a valid job type",
	},
	"experience": {
		"required": "Experience requirement is required",
		"min":      "Experience requirement is required",
	},
	"description": {
		"required": "Job description is required",
		"min":      "Description must be at least 20 characters",
	},
	"requirements": {
		"required": "At least one requirement is needed",
		"min":      "At least one requirement is needed",
	},
	"name": {
		"required": "Name is required",
		"min":      "Name must be at least 2 characters",
	},
	"email": {
		"required": "Email is required",
		"email":    "Please enter a valid email address",
	},
	"password": {
		"required": "Password is required",
	},
	"phone": {
		"phone_chars": "Please enter a valid phone number",
	},
	"coverLetter": {
		"max": "Cover letter must be less than 2000 characters",
	},
	"jobPostId": {
		"required": "Job post ID is required",
	},
	"status": {
		"required": "Status is required",
		"oneof":    "Please select a valid status",
	},
}

// Check validates a schema struct and returns a map of field name to message,
// or nil when the value is valid. The validator evaluates every field, so the
// map reports ALL violations in one pass. Only the first message per field is
// kept, matching what the forms display.
func Check(v *validator.Validate, s interface{}) map[string]string {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}

	errors := make(map[string]string)
	for _, e := range validationErrors {
		field := topLevelField(e)
		if _, seen := errors[field]; !seen {
			errors[field] = messageFor(field, e)
		}
	}
	return errors
}

// topLevelField collapses nested namespaces (requirements[2]) onto the
// top-level field name so the error map stays keyed by the request's fields.
func topLevelField(e validator.FieldError) string {
	ns := e.Namespace()
	// Drop the struct name prefix.
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	// Keep only the first segment and strip any index.
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[:i]
	}
	if i := strings.Index(ns, "["); i >= 0 {
		ns = ns[:i]
	}
	return ns
}

func messageFor(field string, e validator.FieldError) string {
	if byTag, ok := fieldMessages[field]; ok {
		if msg, ok := byTag[e.Tag()]; ok {
			return msg
		}
	}
	return genericMessage(field, e)
}

// genericMessage is the fallback for fields without a curated text.
func genericMessage(field string, e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", field, e.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be less than %s characters", field, e.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(strings.Split(e.Param(), " "), ", "))
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
