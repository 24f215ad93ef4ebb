package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// Section identifies an area of the application a user may access
type Section string

const (
	SectionDashboard       Section = "dashboard"
	SectionProductEntry    Section = "product-entry"
	SectionAddProduct      Section = "add-product"
	SectionProductExit     Section = "product-exit"
	SectionDebtSupplier    Section = "debt-supplier"
	SectionDebtCustomer    Section = "debt-customer"
	SectionSupplier        Section = "supplier"
	SectionCustomer        Section = "customer"
	SectionTransactions    Section = "transactions"
	SectionEmployeePayment Section = "employee-payment"
	SectionShippingCost    Section = "shipping-cost"
	SectionExpenses        Section = "expenses"
	SectionReports         Section = "reports"
)

func (s Section) String() string {
	return string(s)
}

// Role represents a user role
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

func (r Role) String() string {
	return string(r)
}

// IsValid reports whether the role is one of the known values
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleStaff
}

func (r Role) Value() (driver.Value, error) {
	return string(r), nil
}

func (r *Role) Scan(value interface{}) error {
	if value == nil {
		*r = RoleStaff
		return nil
	}
	switch v := value.(type) {
	case string:
		*r = Role(v)
	case []byte:
		*r = Role(string(v))
	}
	return nil
}

func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(r))
}

func (r *Role) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*r = Role(str)
	return nil
}

// CapabilitySet is the set of sections a role may access
type CapabilitySet map[Section]struct{}

// Can reports whether the set grants access to a section
func (c CapabilitySet) Can(section Section) bool {
	_, ok := c[section]
	return ok
}

// Sections returns the granted sections in declaration order
func (c CapabilitySet) Sections() []Section {
	result := make([]Section, 0, len(c))
	for _, s := range allSections {
		if c.Can(s) {
			result = append(result, s)
		}
	}
	return result
}

// Strings returns the granted section names in declaration order
func (c CapabilitySet) Strings() []string {
	sections := c.Sections()
	result := make([]string, 0, len(sections))
	for _, s := range sections {
		result = append(result, s.String())
	}
	return result
}

var allSections = []Section{
	SectionDashboard,
	SectionProductEntry,
	SectionAddProduct,
	SectionProductExit,
	SectionDebtSupplier,
	SectionDebtCustomer,
	SectionSupplier,
	SectionCustomer,
	SectionTransactions,
	SectionEmployeePayment,
	SectionShippingCost,
	SectionExpenses,
	SectionReports,
}

var roleCapabilities = map[Role]CapabilitySet{
	RoleAdmin: newCapabilitySet(allSections...),
	RoleStaff: newCapabilitySet(
		SectionDashboard,
		SectionProductEntry,
		SectionProductExit,
		SectionCustomer,
		SectionReports,
	),
}

func newCapabilitySet(sections ...Section) CapabilitySet {
	set := make(CapabilitySet, len(sections))
	for _, s := range sections {
		set[s] = struct{}{}
	}
	return set
}

// CapabilitiesFor returns the capability set for a role. Unknown roles
// get an empty set.
func CapabilitiesFor(role Role) CapabilitySet {
	if set, ok := roleCapabilities[role]; ok {
		return set
	}
	return CapabilitySet{}
}
