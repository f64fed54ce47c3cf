package domain

type CtxKey string

const (
	KeyPrincipal CtxKey = "Principal"
	KeyUserEmail CtxKey = "Email"
)
