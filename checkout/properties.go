// Package checkout turns a priced selection into the line item properties
// attached to a cart entry.
package checkout

import (
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"tailor-storefront/models"
	"tailor-storefront/utils"
)

// Property keys
const (
	KeyMode              = "Mode"
	KeyFabric            = "Fabric"
	KeyFabricCode        = "Fabric_Code"
	KeyFabricColor       = "Fabric_Color"
	KeySize              = "Size"
	KeyPrice             = "Price"
	stylePrefix          = "Style_"
	codeSuffix           = "_Code"
	measurementKeyPrefix = "Measurement_"
)

// StyleKey returns the property key holding a category's style name
func StyleKey(category string) string {
	return stylePrefix + category
}

// StyleCodeKey returns the property key holding a category's style id
func StyleCodeKey(category string) string {
	return stylePrefix + category + codeSuffix
}

// MeasurementKey returns the property key holding a measurement value
func MeasurementKey(name string) string {
	return measurementKeyPrefix + name
}

// BuildLineItemProperties flattens a selection and its price into string
// properties. Fields absent from the selection produce no keys.
func BuildLineItemProperties(sel models.Selection, price decimal.Decimal) map[string]string {
	props := map[string]string{
		KeyMode: string(sel.Mode()),
	}

	if sel.Fabric != nil {
		props[KeyFabric] = sel.Fabric.Name
		props[KeyFabricCode] = sel.Fabric.ID
		props[KeyFabricColor] = sel.Fabric.Color
	}

	for category, option := range sel.Styles {
		props[StyleKey(category)] = option.Name
		props[StyleCodeKey(category)] = option.ID
	}

	if size := sel.Size(); size != nil {
		props[KeySize] = size.Name
	}
	for name, value := range sel.Measurements() {
		props[MeasurementKey(name)] = strconv.FormatFloat(value, 'f', -1, 64)
	}

	props[KeyPrice] = utils.FormatAmount(price)
	return props
}

// SortedKeys returns the property keys in lexical order
func SortedKeys(props map[string]string) []string {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ToAttributes converts properties into a key-ordered attribute list
func ToAttributes(props map[string]string) []models.LineItemAttribute {
	attrs := make([]models.LineItemAttribute, 0, len(props))
	for _, k := range SortedKeys(props) {
		attrs = append(attrs, models.LineItemAttribute{Key: k, Value: props[k]})
	}
	return attrs
}
