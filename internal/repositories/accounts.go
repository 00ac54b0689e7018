package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tokengate-project/tokengate/internal/utils/pointer"
)

// Account is the local record for a token subject. Accounts are created
// lazily the first time a verified token for their subject is seen.
type Account struct {
	BaseModel

	subject string

	displayName *string
	email       *string
	lastSeenAt  time.Time
}

func NewAccount(subject string) *Account {
	return &Account{
		BaseModel:   NewBaseModel(),
		subject:     subject,
		displayName: nil,
		email:       nil,
		lastSeenAt:  time.Now(),
	}
}

func NewAccountFromDB(subject string, displayName *string, email *string, lastSeenAt time.Time, base BaseModel) *Account {
	return &Account{
		BaseModel:   base,
		subject:     subject,
		displayName: displayName,
		email:       email,
		lastSeenAt:  lastSeenAt,
	}
}

func (a *Account) GetSubject() string {
	return a.subject
}

func (a *Account) GetDisplayName() *string {
	return a.displayName
}

func (a *Account) SetDisplayName(displayName *string) {
	if a.displayName == displayName {
		return
	}

	a.displayName = displayName
	a.touch()
}

func (a *Account) GetEmail() *string {
	return a.email
}

func (a *Account) SetEmail(email *string) {
	if a.email == email {
		return
	}

	a.email = email
	a.touch()
}

func (a *Account) GetLastSeenAt() time.Time {
	return a.lastSeenAt
}

func (a *Account) SetLastSeenAt(lastSeenAt time.Time) {
	a.lastSeenAt = lastSeenAt
	a.touch()
}

type AccountFilter struct {
	id      *uuid.UUID
	subject *string
}

func NewAccountFilter() *AccountFilter {
	return &AccountFilter{}
}

func (f *AccountFilter) clone() *AccountFilter {
	cloned := *f
	return &cloned
}

func (f *AccountFilter) ById(id uuid.UUID) *AccountFilter {
	cloned := f.clone()
	cloned.id = &id
	return cloned
}

func (f *AccountFilter) HasId() bool {
	return f.id != nil
}

func (f *AccountFilter) GetId() uuid.UUID {
	return pointer.DerefOrZero(f.id)
}

func (f *AccountFilter) BySubject(subject string) *AccountFilter {
	cloned := f.clone()
	cloned.subject = &subject
	return cloned
}

func (f *AccountFilter) HasSubject() bool {
	return f.subject != nil
}

func (f *AccountFilter) GetSubject() string {
	return pointer.DerefOrZero(f.subject)
}

type AccountRepository interface {
	Single(ctx context.Context, filter *AccountFilter) (*Account, error)
	First(ctx context.Context, filter *AccountFilter) (*Account, error)
	List(ctx context.Context, filter *AccountFilter) ([]*Account, int, error)
	Insert(ctx context.Context, account *Account) error
	Update(ctx context.Context, account *Account) error
	Delete(ctx context.Context, id uuid.UUID) error
}
