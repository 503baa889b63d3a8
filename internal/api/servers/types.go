// Package servers holds the HTTP contract of the menu API: request and response
// types, the ServerInterface implemented by the HTTP adapter, parameter
// binding and the embedded OpenAPI document.
//
// The package is maintained by hand. openapi.json is the source of truth for
// the wire format; the Go types and RegisterHandlers must be kept in step with
// it when either changes.
package servers

import (
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for NewOrderVariant.
const (
	NewOrderVariantDefault           NewOrderVariant = "default"
	NewOrderVariantCommonConstructor NewOrderVariant = "common-constructor"
	NewOrderVariantUrgentConstructor NewOrderVariant = "urgent-constructor"
	NewOrderVariantUrgentFactory     NewOrderVariant = "urgent-factory"
	NewOrderVariantCommonFactory     NewOrderVariant = "common-factory"
)

// Error defines model for Error.
type Error struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

// NewNutritionFacts defines model for NewNutritionFacts.
type NewNutritionFacts struct {
	Calories    *int `json:"calories,omitempty"`
	Fat         *int `json:"fat,omitempty"`
	ServingSize int  `json:"servingSize"`
	Servings    int  `json:"servings"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	Flag      *bool           `json:"flag,omitempty"`
	Reference string          `json:"reference"`
	Variant   NewOrderVariant `json:"variant"`
}

// NewOrderVariant defines model for NewOrder.Variant.
type NewOrderVariant string

// NutritionFacts defines model for NutritionFacts.
type NutritionFacts struct {
	Calories    int                `json:"calories"`
	Fat         int                `json:"fat"`
	LabelId     openapi_types.UUID `json:"labelId"`
	ServingSize int                `json:"servingSize"`
	Servings    int                `json:"servings"`
}

// NutritionLabel defines model for NutritionLabel.
type NutritionLabel struct {
	LabelId openapi_types.UUID `json:"labelId"`
}

// Order defines model for Order.
type Order struct {
	Common    bool   `json:"common"`
	Reference string `json:"reference"`
	Urgent    bool   `json:"urgent"`
}

// Values defines model for Values.
type Values struct {
	Values []string `json:"values"`
}

// GetOrdersParams defines parameters for GetOrders.
type GetOrdersParams struct {
	// Urgent Only return urgent orders
	Urgent *bool `form:"urgent,omitempty" json:"urgent,omitempty"`
}

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// CreateNutritionFactsJSONRequestBody defines body for CreateNutritionFacts for application/json ContentType.
type CreateNutritionFactsJSONRequestBody = NewNutritionFacts

// SortByLengthJSONRequestBody defines body for SortByLength for application/json ContentType.
type SortByLengthJSONRequestBody = Values
