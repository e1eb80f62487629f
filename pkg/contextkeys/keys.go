package contextkeys

type contextKey string

const (
	UserIDKey   contextKey = "UserID"
	UserTypeKey contextKey = "UserType"
)
