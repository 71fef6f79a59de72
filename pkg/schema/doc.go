// Package schema defines the field-level typing used by the node config
// binding contract.
//
// Each node kind exposes a Schema: a map of editable field names to type
// validators. A partial patch is checked against the selected kind's schema
// before it is merged, so an edit can never write a field outside the kind
// it targets.
//
//	sch := schema.Schema{
//	    "delaySeconds": schema.NonNegativeInt(),
//	}
//	err := schema.ValidatePatch(sch, map[string]any{"delaySeconds": 30})
//
// Validation failures are reported per field (ValidationError) and
// aggregated (AggregateError) so a form surface can annotate every offending
// input at once.
package schema
