package handler

type ContextKey string

var (
	RoleCtxKey                ContextKey = "role"
	SubCtxKey                 ContextKey = "sub"
	MyInfoCtx                 ContextKey = "myInfo"
	StaffAccountCtx           ContextKey = "staffAccount"
	RequirementTemplateCtx    ContextKey = "requirementTemplate"
	SchedulePlanCtx           ContextKey = "schedulePlan"
)
