package domain

type CtxKey string

const (
	KeyAdminID    CtxKey = "AdminID"
	KeyAdminEmail CtxKey = "AdminEmail"
)
