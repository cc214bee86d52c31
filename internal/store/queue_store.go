package store

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/fahim1105/seu-matrimony/internal/logger"
	"github.com/fahim1105/seu-matrimony/internal/utils"
	"github.com/fahim1105/seu-matrimony/models"
)

// Medium keys of the persisted tables.
const (
	KeyPendingRequests   = "pendingRequests"
	KeyRequestStatus     = "requestStatus"
	KeyUserStatus        = "userStatus"
	KeyEmailVerification = "emailVerification"
)

type (
	requestStatusTable     map[string]models.RequestStatusEntry
	userStatusTable        map[string]models.UserStatus
	emailVerificationTable map[string]models.VerificationRecord
)

type queueStore struct {
	medium Medium
	ids    *utils.UUIDGenerator
	now    func() time.Time
	logger *logger.Logger

	// mu serializes every read-modify-write on the medium.
	mu sync.Mutex
}

// NewQueueStore returns a [QueueStore] persisting to medium.
func NewQueueStore(medium Medium, logger *logger.Logger) QueueStore {
	return newQueueStore(medium, utils.NewUUIDGenerator(), time.Now, logger)
}

func newQueueStore(medium Medium, ids *utils.UUIDGenerator, now func() time.Time, logger *logger.Logger) *queueStore {
	return &queueStore{medium: medium, ids: ids, now: now, logger: logger}
}

// ── pending requests ──────────────────────────────────────────────────────────

func (q *queueStore) SaveRequest(in models.PendingRequestInput) (models.PendingRequest, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	request := q.newRequest(in)
	requests := append(q.readRequests(), request)

	return request, q.write("SaveRequest", KeyPendingRequests, requests)
}

// SaveRequestWithStatus queues in and records its pending status entry in
// one atomic medium write. Either both land or neither does.
func (q *queueStore) SaveRequestWithStatus(in models.PendingRequestInput) (models.PendingRequest, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	request := q.newRequest(in)
	requests := append(q.readRequests(), request)

	statuses := q.readRequestStatus()
	status := models.RequestStatusPending
	statuses[models.NewRequestKey(request.SenderEmail, request.ReceiverEmail).String()] = models.RequestStatusEntry{
		HasRequest: true,
		Status:     &status,
		Timestamp:  request.Timestamp,
		Synced:     false,
	}

	return request, q.writeMany("SaveRequestWithStatus", map[string]any{
		KeyPendingRequests: requests,
		KeyRequestStatus:   statuses,
	})
}

// newRequest builds a fresh queue record. Times are kept in UTC without a
// monotonic reading so the returned record equals the one read back.
func (q *queueStore) newRequest(in models.PendingRequestInput) models.PendingRequest {
	now := q.now().UTC()
	sentAt := in.SentAt.UTC()
	if sentAt.IsZero() {
		sentAt = now
	}

	return models.PendingRequest{
		ID:                q.ids.LocalID(),
		SenderEmail:       models.NormalizeEmail(in.SenderEmail),
		ReceiverEmail:     models.NormalizeEmail(in.ReceiverEmail),
		ReceiverBiodataID: in.ReceiverBiodataID,
		ReceiverObjectID:  in.ReceiverObjectID,
		Status:            models.RequestStatusPending,
		SentAt:            sentAt,
		Timestamp:         now,
		Synced:            false,
	}
}

func (q *queueStore) GetRequests() []models.PendingRequest {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.readRequests()
}

// RemoveRequest reports whether the rewritten table was persisted, whether
// or not id was present.
func (q *queueStore) RemoveRequest(id string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	requests := withoutRequest(q.readRequests(), id)
	return q.write("RemoveRequest", KeyPendingRequests, requests)
}

// RemoveRequestWithStatus removes the request and its status entry in one
// atomic medium write.
func (q *queueStore) RemoveRequestWithStatus(id, sender, receiver string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	requests := withoutRequest(q.readRequests(), id)
	statuses := q.readRequestStatus()
	delete(statuses, models.NewRequestKey(sender, receiver).String())

	return q.writeMany("RemoveRequestWithStatus", map[string]any{
		KeyPendingRequests: requests,
		KeyRequestStatus:   statuses,
	})
}

// MarkRequestAsSynced flags the request and its status entry as synced in
// one write. serverID, when known, is kept so the delivered request can be
// addressed on the backend later.
func (q *queueStore) MarkRequestAsSynced(id, serverID string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	requests := q.readRequests()
	var marked *models.PendingRequest
	for i := range requests {
		if requests[i].ID == id {
			requests[i].Synced = true
			if serverID != "" {
				requests[i].ServerID = serverID
			}
			marked = &requests[i]
		}
	}
	if marked == nil {
		return false
	}

	statuses := q.readRequestStatus()
	key := models.NewRequestKey(marked.SenderEmail, marked.ReceiverEmail).String()
	if entry, ok := statuses[key]; ok {
		entry.Synced = true
		statuses[key] = entry
	}

	return q.writeMany("MarkRequestAsSynced", map[string]any{
		KeyPendingRequests: requests,
		KeyRequestStatus:   statuses,
	})
}

// FindRequest returns the queued request with id.
func (q *queueStore) FindRequest(id string) (models.PendingRequest, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, r := range q.readRequests() {
		if r.ID == id {
			return r, true
		}
	}
	return models.PendingRequest{}, false
}

// GetUnsyncedRequests returns unsynced requests in insertion order.
func (q *queueStore) GetUnsyncedRequests() []models.PendingRequest {
	q.mu.Lock()
	defer q.mu.Unlock()

	requests := q.readRequests()
	unsynced := make([]models.PendingRequest, 0, len(requests))
	for _, r := range requests {
		if !r.Synced {
			unsynced = append(unsynced, r)
		}
	}
	return unsynced
}

func (q *queueStore) CountUnsynced() int {
	return len(q.GetUnsyncedRequests())
}

// ── request status ────────────────────────────────────────────────────────────

func (q *queueStore) SaveRequestStatus(sender, receiver string, status models.RequestStatus) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	statuses := q.readRequestStatus()
	statuses[models.NewRequestKey(sender, receiver).String()] = models.RequestStatusEntry{
		HasRequest: true,
		Status:     &status,
		Timestamp:  q.now().UTC(),
		Synced:     false,
	}

	return q.write("SaveRequestStatus", KeyRequestStatus, statuses)
}

func (q *queueStore) GetRequestStatus(sender, receiver string) models.RequestStatusEntry {
	q.mu.Lock()
	defer q.mu.Unlock()

	entry, ok := q.readRequestStatus()[models.NewRequestKey(sender, receiver).String()]
	if !ok {
		return models.NoRequestStatus()
	}
	return entry
}

func (q *queueStore) RemoveRequestStatus(sender, receiver string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	statuses := q.readRequestStatus()
	delete(statuses, models.NewRequestKey(sender, receiver).String())

	return q.write("RemoveRequestStatus", KeyRequestStatus, statuses)
}

// ── user status ───────────────────────────────────────────────────────────────

func (q *queueStore) SaveUserStatus(email string, status models.UserStatus) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	email = models.NormalizeEmail(email)
	if status.Email == "" {
		status.Email = email
	}
	status.Timestamp = q.now().UTC()

	users := q.readUserStatus()
	users[email] = status

	return q.write("SaveUserStatus", KeyUserStatus, users)
}

func (q *queueStore) GetUserStatus(email string) (models.UserStatus, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	status, ok := q.readUserStatus()[models.NormalizeEmail(email)]
	return status, ok
}

// ── email verification ────────────────────────────────────────────────────────

func (q *queueStore) SaveEmailVerification(email string, verified bool, source models.VerificationSource) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	email = models.NormalizeEmail(email)
	records := q.readEmailVerification()
	records[email] = models.VerificationRecord{
		Email:     email,
		Verified:  verified,
		Source:    source,
		Timestamp: q.now().UTC(),
	}

	return q.write("SaveEmailVerification", KeyEmailVerification, records)
}

func (q *queueStore) GetEmailVerification(email string) (models.VerificationRecord, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	record, ok := q.readEmailVerification()[models.NormalizeEmail(email)]
	return record, ok
}

// ── cleanup ───────────────────────────────────────────────────────────────────

func (q *queueStore) ClearAll() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.writeMany("ClearAll", map[string]any{
		KeyPendingRequests:   []models.PendingRequest{},
		KeyRequestStatus:     requestStatusTable{},
		KeyUserStatus:        userStatusTable{},
		KeyEmailVerification: emailVerificationTable{},
	})
}

// ClearUserData removes everything tied to email and leaves other users'
// records untouched. Status-index entries are matched on the participants of
// the key, not on a substring of the serialized form.
func (q *queueStore) ClearUserData(email string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	email = models.NormalizeEmail(email)

	requests := q.readRequests()
	kept := make([]models.PendingRequest, 0, len(requests))
	for _, r := range requests {
		if models.NormalizeEmail(r.SenderEmail) != email {
			kept = append(kept, r)
		}
	}

	statuses := q.readRequestStatus()
	for _, r := range requests {
		key := models.NewRequestKey(r.SenderEmail, r.ReceiverEmail)
		if key.Involves(email) {
			delete(statuses, key.String())
		}
	}
	for k := range statuses {
		if statusKeyInvolves(k, email) {
			delete(statuses, k)
		}
	}

	users := q.readUserStatus()
	delete(users, email)

	records := q.readEmailVerification()
	delete(records, email)

	return q.writeMany("ClearUserData", map[string]any{
		KeyPendingRequests:   kept,
		KeyRequestStatus:     statuses,
		KeyUserStatus:        users,
		KeyEmailVerification: records,
	})
}

// statusKeyInvolves reports whether a serialized status key has email as its
// sender or receiver. It checks both ends of the key rather than splitting
// on the delimiter, which may also occur inside an address.
func statusKeyInvolves(key, email string) bool {
	return strings.HasPrefix(key, email+models.RequestKeyDelimiter) ||
		strings.HasSuffix(key, models.RequestKeyDelimiter+email)
}

// ── medium access ─────────────────────────────────────────────────────────────

func (q *queueStore) readRequests() []models.PendingRequest {
	var requests []models.PendingRequest
	if !q.read(KeyPendingRequests, &requests) || requests == nil {
		return []models.PendingRequest{}
	}
	return requests
}

func (q *queueStore) readRequestStatus() requestStatusTable {
	statuses := requestStatusTable{}
	if !q.read(KeyRequestStatus, &statuses) || statuses == nil {
		return requestStatusTable{}
	}
	return statuses
}

func (q *queueStore) readUserStatus() userStatusTable {
	users := userStatusTable{}
	if !q.read(KeyUserStatus, &users) || users == nil {
		return userStatusTable{}
	}
	return users
}

func (q *queueStore) readEmailVerification() emailVerificationTable {
	records := emailVerificationTable{}
	if !q.read(KeyEmailVerification, &records) || records == nil {
		return emailVerificationTable{}
	}
	return records
}

// read decodes the table under key into dst. It returns false when the
// table is missing, unreadable or corrupt.
func (q *queueStore) read(key string, dst any) bool {
	raw, found, err := q.medium.Get(key)
	if err != nil {
		q.logger.Err(err).Str("func", "queueStore.read").Str("key", key).Msg("error reading table, using empty default")
		return false
	}
	if !found || raw == "" {
		return false
	}

	if err = json.Unmarshal([]byte(raw), dst); err != nil {
		q.logger.Warn().Err(err).Str("func", "queueStore.read").Str("key", key).Msg("corrupt table, using empty default")
		return false
	}
	return true
}

func (q *queueStore) write(op, key string, value any) bool {
	return q.writeMany(op, map[string]any{key: value})
}

func (q *queueStore) writeMany(op string, tables map[string]any) bool {
	values := make(map[string]string, len(tables))
	for key, table := range tables {
		raw, err := json.Marshal(table)
		if err != nil {
			q.logger.Err(err).Str("func", "queueStore."+op).Str("key", key).Msg("error encoding table")
			return false
		}
		values[key] = string(raw)
	}

	if err := q.medium.SetMany(values); err != nil {
		q.logger.Err(err).Str("func", "queueStore."+op).Msg("error persisting tables, write dropped")
		return false
	}
	return true
}

func withoutRequest(requests []models.PendingRequest, id string) []models.PendingRequest {
	kept := make([]models.PendingRequest, 0, len(requests))
	for _, r := range requests {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	return kept
}
