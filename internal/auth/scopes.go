package auth

const (
	ScopePaymentsWrite = "payments:write"
	ScopeAccountsRead  = "accounts:read"
)
