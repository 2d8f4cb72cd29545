package dari

// Pointer helpers for populating optional request fields at the call site.

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to i.
func Int(i int) *int { return &i }

// String returns a pointer to s.
func String(s string) *string { return &s }
