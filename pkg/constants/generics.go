package constants

// RFC 3339 date-time format string.
// Use this format for all date-time serialization and communication with external systems.
const RFC3339DateTimeFormat = "2006-01-02T15:04:05Z07:00"

// WaitlistTable is the table both waitlist stores write to unless overridden.
const WaitlistTable = "waitlist"
