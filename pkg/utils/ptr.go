package utils

func StringPtr(s string) *string {
	return &s
}

func IntPtr(n int) *int {
	return &n
}
