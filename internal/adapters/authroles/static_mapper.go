package authroles

import (
	domainauth "github.com/kwakyosong/platform-ui/internal/domain/auth"
)

// StaticRoleMapper maps provider groups to roles by string membership.
// Group names are configurable so different IdPs can be wired without code
// changes. Super admin wins over company admin when a user is in both.
type StaticRoleMapper struct {
	SuperAdminGroup   string
	CompanyAdminGroup string
}

func (m StaticRoleMapper) Map(groups []string) domainauth.Role {
	for _, g := range groups {
		if m.SuperAdminGroup != "" && g == m.SuperAdminGroup {
			return domainauth.RoleSuperAdmin
		}
	}
	for _, g := range groups {
		if m.CompanyAdminGroup != "" && g == m.CompanyAdminGroup {
			return domainauth.RoleCompanyAdmin
		}
	}
	// Any group carrying a literal role name also counts; the mock provider
	// emits groups this way.
	for _, g := range groups {
		if r := domainauth.Role(g); r.Valid() {
			return r
		}
	}
	return domainauth.RoleUser
}
