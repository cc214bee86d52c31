package stubserver

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fahim1105/seu-matrimony/models"
	"github.com/google/uuid"
)

// Biodata is a match candidate as the browse routes list it.
type Biodata struct {
	BiodataID string `json:"biodataId"`
	ObjectID  string `json:"_id"`
	Email     string `json:"contactEmail"`
	Name      string `json:"name"`
}

// StoredRequest is a connection request held by the backend.
type StoredRequest struct {
	ID            string               `json:"_id"`
	SenderEmail   string               `json:"senderEmail"`
	ReceiverEmail string               `json:"receiverEmail"`
	Status        models.RequestStatus `json:"status"`
	SentAt        time.Time            `json:"sentAt"`
}

// Backend is the in-memory state of the stub.
type Backend struct {
	mu       sync.RWMutex
	domain   string
	users    map[string]models.UserStatus
	requests map[string]StoredRequest
	biodata  []Biodata
	now      func() time.Time
}

// NewBackend returns an empty backend that lets emails of domain register.
func NewBackend(domain string) *Backend {
	return &Backend{
		domain:   strings.ToLower(strings.TrimPrefix(domain, "@")),
		users:    make(map[string]models.UserStatus),
		requests: make(map[string]StoredRequest),
		now:      time.Now,
	}
}

// SeedBiodata adds match candidates.
func (b *Backend) SeedBiodata(items ...Biodata) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, item := range items {
		item.Email = models.NormalizeEmail(item.Email)
		b.biodata = append(b.biodata, item)
	}
}

// SeedUser stores a user record as is.
func (b *Backend) SeedUser(user models.UserStatus) {
	b.mu.Lock()
	defer b.mu.Unlock()

	user.Email = models.NormalizeEmail(user.Email)
	b.users[user.Email] = user
}

// Requests returns a snapshot of every stored request.
func (b *Backend) Requests() []StoredRequest {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]StoredRequest, 0, len(b.requests))
	for _, r := range b.requests {
		out = append(out, r)
	}
	slices.SortFunc(out, func(a, c StoredRequest) int { return a.SentAt.Compare(c.SentAt) })
	return out
}

// SendRequest stores a pending request from sender to receiver. A second
// request for the same pair fails with ErrRequestExists.
func (b *Backend) SendRequest(in models.PendingRequestInput) (StoredRequest, error) {
	sender := models.NormalizeEmail(in.SenderEmail)
	receiver := models.NormalizeEmail(in.ReceiverEmail)
	if sender == "" || receiver == "" || sender == receiver {
		return StoredRequest{}, ErrInvalidData
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.findLocked(sender, receiver); ok {
		return StoredRequest{}, ErrRequestExists
	}

	sentAt := in.SentAt
	if sentAt.IsZero() {
		sentAt = b.now()
	}

	stored := StoredRequest{
		ID:            uuid.NewString(),
		SenderEmail:   sender,
		ReceiverEmail: receiver,
		Status:        models.RequestStatusPending,
		SentAt:        sentAt,
	}
	b.requests[stored.ID] = stored
	return stored, nil
}

// ResolveBiodata returns the contact email of a biodata id.
func (b *Backend) ResolveBiodata(biodataID string) (string, error) {
	return b.resolve(func(item Biodata) bool { return item.BiodataID == biodataID })
}

// ResolveObjectID returns the contact email of a biodata document id.
func (b *Backend) ResolveObjectID(objectID string) (string, error) {
	return b.resolve(func(item Biodata) bool { return item.ObjectID == objectID })
}

func (b *Backend) resolve(match func(Biodata) bool) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	i := slices.IndexFunc(b.biodata, match)
	if i < 0 {
		return "", ErrBiodataNotFound
	}
	return b.biodata[i].Email, nil
}

// RequestStatus looks up a request between the two users in either
// direction.
func (b *Backend) RequestStatus(sender, receiver string) models.ServerStatusResponse {
	sender = models.NormalizeEmail(sender)
	receiver = models.NormalizeEmail(receiver)

	b.mu.RLock()
	defer b.mu.RUnlock()

	if r, ok := b.findLocked(sender, receiver); ok {
		status := r.Status
		return models.ServerStatusResponse{HasRequest: true, Status: &status, IsInitiator: true, RequestID: r.ID}
	}
	if r, ok := b.findLocked(receiver, sender); ok {
		status := r.Status
		return models.ServerStatusResponse{HasRequest: true, Status: &status, IsInitiator: false, RequestID: r.ID}
	}
	return models.ServerStatusResponse{}
}

func (b *Backend) findLocked(sender, receiver string) (StoredRequest, bool) {
	for _, r := range b.requests {
		if r.SenderEmail == sender && r.ReceiverEmail == receiver {
			return r, true
		}
	}
	return StoredRequest{}, false
}

// CancelRequest deletes a stored request.
func (b *Backend) CancelRequest(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.requests[id]; !ok {
		return ErrRequestNotFound
	}
	delete(b.requests, id)
	return nil
}

// User returns the record of email.
func (b *Backend) User(email string) (models.UserStatus, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	user, ok := b.users[models.NormalizeEmail(email)]
	if !ok {
		return models.UserStatus{}, ErrUserNotFound
	}
	return user, nil
}

// Matches lists every biodata not owned by email.
func (b *Backend) Matches(email string) []json.RawMessage {
	email = models.NormalizeEmail(email)

	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]json.RawMessage, 0, len(b.biodata))
	for _, item := range b.biodata {
		if item.Email == email {
			continue
		}
		raw, err := json.Marshal(item)
		if err != nil {
			continue
		}
		out = append(out, raw)
	}
	return out
}

// Register creates a user. Emails outside the institutional domain fail
// with ErrDomainRestricted.
func (b *Backend) Register(in models.RegistrationInput) (models.UserStatus, error) {
	email := models.NormalizeEmail(in.Email)
	if email == "" || !strings.Contains(email, "@") {
		return models.UserStatus{}, ErrInvalidData
	}
	if b.domain != "" && !strings.HasSuffix(email, "@"+b.domain) {
		return models.UserStatus{}, ErrDomainRestricted
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.users[email]; ok {
		return models.UserStatus{}, ErrUserExists
	}

	user := models.UserStatus{
		Email:           email,
		IsEmailVerified: in.IsGoogleUser,
		IsActive:        true,
		Role:            models.RoleUser,
		IsGoogleUser:    in.IsGoogleUser,
		Timestamp:       b.now(),
	}
	b.users[email] = user
	return user, nil
}

// CompleteRegistration marks the user's email as verified.
func (b *Backend) CompleteRegistration(in models.RegistrationInput) error {
	email := models.NormalizeEmail(in.Email)

	b.mu.Lock()
	defer b.mu.Unlock()

	user, ok := b.users[email]
	if !ok {
		return fmt.Errorf("%w: %w", ErrInvalidData, ErrUserNotFound)
	}
	user.IsEmailVerified = true
	b.users[email] = user
	return nil
}
