package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/velora/identity-service/internal/core/domain"
)

const auditCollection = "auth_audit"

// AuditRepository appends credential-lifecycle events to the audit trail
// collection. Entries are immutable once written.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type auditDoc struct {
	Email     string `bson:"email"`
	AccountID string `bson:"account_id,omitempty"`
	Action    string `bson:"action"`
	At        int64  `bson:"at"`
}

func (r *AuditRepository) Record(ctx context.Context, event domain.AuditEvent) error {
	doc := auditDoc{
		Email:     event.Email,
		AccountID: event.AccountID,
		Action:    string(event.Action),
		At:        event.At.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
