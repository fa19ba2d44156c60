package authroles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domainauth "github.com/kwakyosong/platform-ui/internal/domain/auth"
)

func TestStaticRoleMapper(t *testing.T) {
	m := StaticRoleMapper{
		SuperAdminGroup:   "platform-admins",
		CompanyAdminGroup: "company-admins",
	}

	tests := []struct {
		name   string
		groups []string
		want   domainauth.Role
	}{
		{"super admin group", []string{"platform-admins"}, domainauth.RoleSuperAdmin},
		{"company admin group", []string{"company-admins"}, domainauth.RoleCompanyAdmin},
		{"super admin wins over company admin", []string{"company-admins", "platform-admins"}, domainauth.RoleSuperAdmin},
		{"literal role name", []string{"company_admin"}, domainauth.RoleCompanyAdmin},
		{"no match", []string{"engineering"}, domainauth.RoleUser},
		{"empty groups", nil, domainauth.RoleUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Map(tt.groups))
		})
	}
}

func TestStaticRoleMapperUnconfiguredGroups(t *testing.T) {
	m := StaticRoleMapper{}
	// Empty group names must not match empty strings in the group list.
	assert.Equal(t, domainauth.RoleUser, m.Map([]string{""}))
}
