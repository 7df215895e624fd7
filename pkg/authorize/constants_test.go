package authorize

import (
	"testing"
)

func TestIsValidDomain(t *testing.T) {
	tests := []struct {
		name     string
		domain   Domain
		expected bool
	}{
		// Valid domains
		{"sys domain", DomainSys, true},
		{"wildcard domain", WildcardDomain, true},
		{"valid clinic domain", Domain("clinic:550e8400-e29b-41d4-a716-446655440000"), true},

		// Invalid domains
		{"empty domain", Domain(""), false},
		{"random string", Domain("random"), false},
		{"clinic without uuid", Domain("clinic:"), false},
		{"clinic with invalid uuid", Domain("clinic:invalid-uuid"), false},
		{"unknown prefix", Domain("tenant:550e8400-e29b-41d4-a716-446655440000"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidDomain(tt.domain)
			if result != tt.expected {
				t.Errorf("IsValidDomain(%q) = %v, want %v", tt.domain, result, tt.expected)
			}
		})
	}
}

func TestClinicDomain(t *testing.T) {
	clinicID := "550e8400-e29b-41d4-a716-446655440000"
	expected := Domain("clinic:550e8400-e29b-41d4-a716-446655440000")

	result := ClinicDomain(clinicID)
	if result != expected {
		t.Errorf("ClinicDomain(%q) = %q, want %q", clinicID, result, expected)
	}
}

func TestClinicMemberRoleMapping(t *testing.T) {
	tests := []struct {
		dbRole string
		want   Role
	}{
		{ClinicMemberRoleAdmin, RoleClinicAdmin},
		{ClinicMemberRoleManager, RoleClinicManager},
		{ClinicMemberRoleDoctor, RoleClinicDoctor},
		{ClinicMemberRoleReceptionist, RoleClinicReceptionist},
	}

	for _, tt := range tests {
		t.Run(tt.dbRole, func(t *testing.T) {
			got, ok := ClinicMemberRoleToRBACRole[tt.dbRole]
			if !ok {
				t.Fatalf("no RBAC role mapped for db role %q", tt.dbRole)
			}
			if got != tt.want {
				t.Errorf("ClinicMemberRoleToRBACRole[%q] = %q, want %q", tt.dbRole, got, tt.want)
			}
			if _, known := KnownRoles[got]; !known {
				t.Errorf("mapped role %q is not in KnownRoles", got)
			}
		})
	}
}

func TestKnownResourcesCoverSchedulingSurface(t *testing.T) {
	for _, r := range []Resource{
		ResourceClinic, ResourceClinicMember, ResourcePatient,
		ResourceAvailabilityPattern, ResourceSchedule, ResourceVisit,
		ResourceSystem, ResourceAudit, ResourceRBAC,
	} {
		if _, ok := KnownResources[r]; !ok {
			t.Errorf("resource %q missing from KnownResources", r)
		}
	}
}
