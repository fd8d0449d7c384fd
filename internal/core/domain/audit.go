package domain

import "time"

// AuditAction enumerates the credential-lifecycle actions worth recording.
type AuditAction string

const (
	AuditRegistered    AuditAction = "registered"
	AuditLoginOK       AuditAction = "login_succeeded"
	AuditLoginRejected AuditAction = "login_rejected"
)

// AuditEvent is one entry in the security audit trail. AccountID is empty for
// rejected logins against unknown emails.
type AuditEvent struct {
	Email     string
	AccountID string
	Action    AuditAction
	At        time.Time
}
