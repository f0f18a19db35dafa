package rbac

// Default policy for the portal's two working roles plus admin.
var RolePermissions = map[string][]string{
	"faculty": {
		"submission:create",
		"submission:view-own",
		"evidence:upload",
		"evidence:view",
		"user:change_password",
	},
	"hod": {
		"submission:view-own",
		"submission:view-all",
		"submission:review",
		"evidence:view",
		"users:list",
		"users:bulk_upsert",
		"user:change_password",
	},
	"admin": {
		"*", // everything
	},
}
