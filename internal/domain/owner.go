package domain

import "strings"

// OwnerKind classifies who is responsible for a tracking item, derived from
// the free-form owner unit string.
type OwnerKind string

const (
	OwnerClient     OwnerKind = "Client"
	OwnerDepartment OwnerKind = "Department"
	OwnerInternal   OwnerKind = "Internal"
)

// clientMarker flags an owner unit as customer-side.
const clientMarker = "客戶"

// Owner is the classified form of an owner unit string.
type Owner struct {
	Kind      OwnerKind
	Primary   string
	Secondary string
}

// ClassifyOwner splits a raw owner unit string into a tagged Owner value.
// Units containing the client marker are client-owned; units with a slash
// name a primary and secondary department; everything else is internal.
// An empty unit yields the zero Owner.
func ClassifyOwner(unit string) Owner {
	unit = strings.TrimSpace(unit)
	if unit == "" {
		return Owner{}
	}
	if strings.Contains(unit, clientMarker) {
		return Owner{Kind: OwnerClient, Primary: unit}
	}
	if strings.Contains(unit, "/") {
		parts := strings.SplitN(unit, "/", 2)
		o := Owner{Kind: OwnerDepartment, Primary: strings.TrimSpace(parts[0])}
		if len(parts) > 1 {
			o.Secondary = strings.TrimSpace(parts[1])
		}
		return o
	}
	return Owner{Kind: OwnerInternal, Primary: unit}
}
