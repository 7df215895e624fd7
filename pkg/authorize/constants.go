package authorize

import (
	"fmt"
	"regexp"
)

type Action string
type Resource string
type Role string
type Domain string

// ----------------------------
// Actions
// ----------------------------

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"

	// Power actions
	ActionManage  Action = "manage"  // CRUD + list
	ActionExecute Action = "execute" // book, start, complete, cancel

	// RBAC-specific actions
	ActionGrant  Action = "grant"
	ActionRevoke Action = "revoke"
)

const (
	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
	ActionManage: {}, ActionExecute: {},
	ActionGrant: {}, ActionRevoke: {},
}

// ----------------------------
// Resources
// ----------------------------

const (
	WildcardResource Resource = "*"

	// Clinic (tenant management)
	ResourceClinic       Resource = "clinic"
	ResourceClinicMember Resource = "clinic_member"

	// Patient directory
	ResourcePatient Resource = "patient"

	// Scheduling
	ResourceAvailabilityPattern Resource = "availability_pattern"
	ResourceSchedule            Resource = "schedule"
	ResourceVisit               Resource = "visit"

	// System / platform admin
	ResourceSystem Resource = "system"
	ResourceAudit  Resource = "audit"
	ResourceRBAC   Resource = "rbac"
)

var KnownResources = map[Resource]struct{}{
	ResourceClinic: {}, ResourceClinicMember: {},
	ResourcePatient: {},
	ResourceAvailabilityPattern: {}, ResourceSchedule: {}, ResourceVisit: {},
	ResourceSystem: {}, ResourceAudit: {}, ResourceRBAC: {},
}

// ----------------------------
// Roles
// ----------------------------
//
// These are the "policy subjects" we assign to users via grouping policies.

const (
	WildcardRole Role = "*"

	// Platform role (domain = sys)
	RoleSysSuperAdmin Role = "role:sys:superadmin"

	// Clinic roles (domain = clinic:<uuid>)
	RoleClinicAdmin        Role = "role:clinic:admin"
	RoleClinicManager      Role = "role:clinic:manager"
	RoleClinicDoctor       Role = "role:clinic:doctor"
	RoleClinicReceptionist Role = "role:clinic:receptionist"
)

var KnownRoles = map[Role]struct{}{
	RoleSysSuperAdmin:      {},
	RoleClinicAdmin:        {},
	RoleClinicManager:      {},
	RoleClinicDoctor:       {},
	RoleClinicReceptionist: {},
}

// Clinic member role strings (stored in DB clinic_members.role column)
const (
	ClinicMemberRoleAdmin        = "admin"
	ClinicMemberRoleManager      = "manager"
	ClinicMemberRoleDoctor       = "doctor"
	ClinicMemberRoleReceptionist = "receptionist"
)

// ClinicMemberRoleToRBACRole maps DB role values to Casbin roles
var ClinicMemberRoleToRBACRole = map[string]Role{
	ClinicMemberRoleAdmin:        RoleClinicAdmin,
	ClinicMemberRoleManager:      RoleClinicManager,
	ClinicMemberRoleDoctor:       RoleClinicDoctor,
	ClinicMemberRoleReceptionist: RoleClinicReceptionist,
}

// ----------------------------
// Domains
// ----------------------------

const (
	DomainSys Domain = "sys"
)

// Domain prefix for the per-clinic tenant domains we generate.
const (
	DomainPrefixClinic Domain = "clinic:"
)

const (
	WildcardDomain Domain = "*"
)

var (
	reUUID = regexp.MustCompile(`^[0-9a-fA-F-]{36}$`)
)

// ClinicDomain builds the tenant domain for a clinic id.
func ClinicDomain(clinicID string) Domain {
	return Domain(fmt.Sprintf("%s%s", DomainPrefixClinic, clinicID))
}

// IsValidDomain checks whether d is a recognised domain string.
func IsValidDomain(d Domain) bool {
	if d == DomainSys || d == WildcardDomain {
		return true
	}

	s := string(d)
	if len(s) > len(DomainPrefixClinic) && s[:len(DomainPrefixClinic)] == string(DomainPrefixClinic) {
		return reUUID.MatchString(s[len(DomainPrefixClinic):])
	}
	return false
}

// ----------------------------
// Casbin tuple helpers
// ----------------------------

type PolicyEffect string

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)

// PolicySubject is the p.sub in Casbin: either a role (preferred) or a user/service id.
type PolicySubject string

// GroupSubject is the g.sub in Casbin: a concrete principal id (user_id or service_id).
type GroupSubject string

// Grouping rows: g, user_id, role, domain
type GroupingPolicy struct {
	Subject GroupSubject
	Role    Role
	Domain  Domain
}

// Permission rows: p, role, domain, resource, action, eft
type PermissionPolicy struct {
	Subject Role
	Domain  Domain
	Object  Resource
	Action  Action
	Effect  PolicyEffect
}
