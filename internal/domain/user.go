package domain

import "time"

// Role discriminates the two kinds of users in the rental domain.
type Role string

const (
	// RoleLocator marks a user as a property owner (landlord).
	RoleLocator Role = "LOCATOR"
	// RoleTenant marks a user as a renter.
	RoleTenant Role = "TENANT"
)

// User holds the identity fields shared by owners and tenants. The role is
// assigned at creation and never reassigned afterwards.
type User struct {
	ID        string
	Name      string
	Email     string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Owner is a user who rents out properties.
type Owner struct {
	User
}

// Tenant is a user who rents a property under a contract.
type Tenant struct {
	User
}

// NewOwner creates an owner with the LOCATOR role.
func NewOwner(id, name, email string) Owner {
	now := time.Now().UTC()
	return Owner{User: User{
		ID:        id,
		Name:      name,
		Email:     email,
		Role:      RoleLocator,
		CreatedAt: now,
		UpdatedAt: now,
	}}
}

// NewTenant creates a tenant with the TENANT role.
func NewTenant(id, name, email string) Tenant {
	now := time.Now().UTC()
	return Tenant{User: User{
		ID:        id,
		Name:      name,
		Email:     email,
		Role:      RoleTenant,
		CreatedAt: now,
		UpdatedAt: now,
	}}
}
