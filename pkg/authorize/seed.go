package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the system.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	// System-level policies (domain: sys)
	sysPolicies := []PermissionPolicy{
		// SuperAdmin: god mode
		{RoleSysSuperAdmin, DomainSys, WildcardResource, WildcardAction, EffectAllow},
	}

	// Clinic-level policies (domain: clinic:*)
	clinicPolicies := []PermissionPolicy{
		// ClinicAdmin: full control inside the clinic
		{RoleClinicAdmin, WildcardDomain, ResourceClinic, ActionManage, EffectAllow},
		{RoleClinicAdmin, WildcardDomain, ResourceClinicMember, ActionManage, EffectAllow},
		{RoleClinicAdmin, WildcardDomain, ResourcePatient, ActionManage, EffectAllow},
		{RoleClinicAdmin, WildcardDomain, ResourceAvailabilityPattern, ActionManage, EffectAllow},
		{RoleClinicAdmin, WildcardDomain, ResourceSchedule, ActionRead, EffectAllow},
		{RoleClinicAdmin, WildcardDomain, ResourceVisit, ActionManage, EffectAllow},
		{RoleClinicAdmin, WildcardDomain, ResourceVisit, ActionExecute, EffectAllow},
		{RoleClinicAdmin, WildcardDomain, ResourceRBAC, ActionGrant, EffectAllow},
		{RoleClinicAdmin, WildcardDomain, ResourceRBAC, ActionRevoke, EffectAllow},

		// ClinicManager: operational control, no RBAC
		{RoleClinicManager, WildcardDomain, ResourceClinicMember, ActionList, EffectAllow},
		{RoleClinicManager, WildcardDomain, ResourceClinicMember, ActionRead, EffectAllow},
		{RoleClinicManager, WildcardDomain, ResourcePatient, ActionManage, EffectAllow},
		{RoleClinicManager, WildcardDomain, ResourceAvailabilityPattern, ActionManage, EffectAllow},
		{RoleClinicManager, WildcardDomain, ResourceSchedule, ActionRead, EffectAllow},
		{RoleClinicManager, WildcardDomain, ResourceVisit, ActionManage, EffectAllow},
		{RoleClinicManager, WildcardDomain, ResourceVisit, ActionExecute, EffectAllow},

		// ClinicDoctor: own schedule and visits
		{RoleClinicDoctor, WildcardDomain, ResourcePatient, ActionRead, EffectAllow},
		{RoleClinicDoctor, WildcardDomain, ResourcePatient, ActionList, EffectAllow},
		{RoleClinicDoctor, WildcardDomain, ResourceAvailabilityPattern, ActionManage, EffectAllow},
		{RoleClinicDoctor, WildcardDomain, ResourceSchedule, ActionRead, EffectAllow},
		{RoleClinicDoctor, WildcardDomain, ResourceVisit, ActionRead, EffectAllow},
		{RoleClinicDoctor, WildcardDomain, ResourceVisit, ActionList, EffectAllow},
		{RoleClinicDoctor, WildcardDomain, ResourceVisit, ActionExecute, EffectAllow},

		// ClinicReceptionist: front-desk booking and patient intake
		{RoleClinicReceptionist, WildcardDomain, ResourcePatient, ActionCreate, EffectAllow},
		{RoleClinicReceptionist, WildcardDomain, ResourcePatient, ActionRead, EffectAllow},
		{RoleClinicReceptionist, WildcardDomain, ResourcePatient, ActionList, EffectAllow},
		{RoleClinicReceptionist, WildcardDomain, ResourcePatient, ActionUpdate, EffectAllow},
		{RoleClinicReceptionist, WildcardDomain, ResourceAvailabilityPattern, ActionList, EffectAllow},
		{RoleClinicReceptionist, WildcardDomain, ResourceAvailabilityPattern, ActionRead, EffectAllow},
		{RoleClinicReceptionist, WildcardDomain, ResourceSchedule, ActionRead, EffectAllow},
		{RoleClinicReceptionist, WildcardDomain, ResourceVisit, ActionCreate, EffectAllow},
		{RoleClinicReceptionist, WildcardDomain, ResourceVisit, ActionRead, EffectAllow},
		{RoleClinicReceptionist, WildcardDomain, ResourceVisit, ActionList, EffectAllow},
		{RoleClinicReceptionist, WildcardDomain, ResourceVisit, ActionUpdate, EffectAllow},
		{RoleClinicReceptionist, WildcardDomain, ResourceVisit, ActionExecute, EffectAllow},
	}

	allPolicies := append(sysPolicies, clinicPolicies...)

	for _, p := range allPolicies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(allPolicies))
	return nil
}

// AssignClinicRole assigns a clinic role to a user inside a clinic domain.
// Call this when adding a member to a clinic.
func AssignClinicRole(ctx context.Context, auth IAuthorization, userID, clinicID string, role Role) error {
	switch role {
	case RoleClinicAdmin, RoleClinicManager, RoleClinicDoctor, RoleClinicReceptionist:
		// valid clinic roles
	default:
		return ErrInvalidArgs
	}

	domain := ClinicDomain(clinicID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, role, domain)
	return err
}

// RemoveClinicRole removes a clinic role from a user for a specific clinic.
func RemoveClinicRole(ctx context.Context, auth IAuthorization, userID, clinicID string, role Role) error {
	domain := ClinicDomain(clinicID)
	subject := GroupSubject(userID)

	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, role, domain)
	return err
}

// GetClinicRoles returns all roles a user has in a specific clinic.
func GetClinicRoles(ctx context.Context, auth IAuthorization, userID, clinicID string) ([]Role, error) {
	domain := ClinicDomain(clinicID)
	subject := GroupSubject(userID)

	return auth.GetRolesForUserInDomain(ctx, subject, domain)
}

// AssignSuperAdmin grants the platform superadmin role in the sys domain.
// Should only be called from operator tooling.
func AssignSuperAdmin(ctx context.Context, auth IAuthorization, userID string) error {
	subject := GroupSubject(userID)
	_, err := auth.AddRoleForUserInDomain(ctx, subject, RoleSysSuperAdmin, DomainSys)
	return err
}
