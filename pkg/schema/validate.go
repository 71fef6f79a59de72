package schema

// Schema is a map of field names to their expected types.
// Example: {"message": String(), "delaySeconds": NonNegativeInt()}
type Schema map[string]Type

// ValidatePatch checks a partial update against the schema. Every provided
// field must be defined in the schema and match its type; fields the patch
// omits are untouched and therefore not required.
//
// Returns an AggregateError carrying one ValidationError per offending field.
func ValidatePatch(schema Schema, patch map[string]any) error {
	var errs []error

	for fieldName, value := range patch {
		fieldType, exists := schema[fieldName]
		if !exists {
			errs = append(errs, &ValidationError{
				Key:    fieldName,
				Reason: "not defined in schema",
				Value:  value,
			})
			continue
		}

		if err := fieldType.Validate(value); err != nil {
			errs = append(errs, &ValidationError{
				Key:    fieldName,
				Reason: err.Error(),
				Value:  value,
			})
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}
