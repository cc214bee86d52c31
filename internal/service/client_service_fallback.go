package service

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/fahim1105/seu-matrimony/internal/adapter"
	"github.com/fahim1105/seu-matrimony/internal/i18n"
	"github.com/fahim1105/seu-matrimony/internal/logger"
	"github.com/fahim1105/seu-matrimony/internal/store"
	"github.com/fahim1105/seu-matrimony/models"
)

type fallbackClient struct {
	queue   store.QueueStore
	adapter adapter.ServerAdapter
	tr      *i18n.Translator

	// institutionalDomain is the email domain granted provisional trust
	// while the backend is unreachable.
	institutionalDomain string

	now    func() time.Time
	logger *logger.Logger
}

// NewFallbackClient returns a [FallbackClient] over serverAdapter that
// substitutes results from queue.
func NewFallbackClient(queue store.QueueStore, serverAdapter adapter.ServerAdapter, tr *i18n.Translator, institutionalDomain string, logger *logger.Logger) FallbackClient {
	return &fallbackClient{
		queue:               queue,
		adapter:             serverAdapter,
		tr:                  tr,
		institutionalDomain: strings.ToLower(strings.TrimPrefix(strings.TrimSpace(institutionalDomain), "@")),
		now:                 time.Now,
		logger:              logger,
	}
}

// ── connection requests ───────────────────────────────────────────────────────

func (f *fallbackClient) SendRequest(ctx context.Context, req models.PendingRequestInput) (models.SendResult, error) {
	resp, err := f.adapter.SendRequest(ctx, req)
	if err == nil {
		return models.SendResult{
			Envelope:   models.Envelope{Success: true, Message: resp.Message},
			InsertedID: resp.InsertedID,
		}, nil
	}

	if !isOffline(err) {
		return models.SendResult{}, mapAdapterError(err, f.tr)
	}

	f.logger.Info().Err(err).Str("func", "fallbackClient.SendRequest").Msg("backend unavailable, queueing request locally")
	return f.queueRequest(req)
}

func (f *fallbackClient) queueRequest(req models.PendingRequestInput) (models.SendResult, error) {
	if strings.TrimSpace(req.ReceiverEmail) == "" {
		return models.SendResult{}, newDisplayError(ErrReceiverUnresolved, f.tr.T(i18n.ErrorReceiverUnresolved), nil)
	}

	queued, ok := f.queue.SaveRequestWithStatus(req)
	if !ok {
		f.logger.Warn().Str("func", "fallbackClient.queueRequest").Msg("request could not be queued")
		return models.SendResult{}, newDisplayError(ErrUnavailable, f.tr.T(i18n.ErrorQueueFailed), nil)
	}

	return models.SendResult{
		Envelope:   models.Envelope{Success: true, Message: f.tr.T(i18n.OfflineRequestQueued), Offline: true},
		InsertedID: queued.ID,
	}, nil
}

func (f *fallbackClient) SendRequestByBiodata(ctx context.Context, req models.PendingRequestInput) (models.SendResult, error) {
	return f.sendByID(ctx, req, f.adapter.SendRequestByBiodata)
}

func (f *fallbackClient) SendRequestByObjectID(ctx context.Context, req models.PendingRequestInput) (models.SendResult, error) {
	return f.sendByID(ctx, req, f.adapter.SendRequestByObjectID)
}

type sendFunc func(ctx context.Context, req models.PendingRequestInput) (models.ServerSendResponse, error)

func (f *fallbackClient) sendByID(ctx context.Context, req models.PendingRequestInput, send sendFunc) (models.SendResult, error) {
	resp, err := send(ctx, req)
	if err == nil {
		return models.SendResult{
			Envelope:   models.Envelope{Success: true, Message: resp.Message},
			InsertedID: resp.InsertedID,
		}, nil
	}

	if !isOffline(err) {
		return models.SendResult{}, mapAdapterError(err, f.tr)
	}

	if strings.TrimSpace(req.ReceiverEmail) == "" {
		return models.SendResult{}, newDisplayError(ErrReceiverUnresolved, f.tr.T(i18n.ErrorReceiverUnresolved), err)
	}

	return f.SendRequest(ctx, req)
}

func (f *fallbackClient) CheckRequestStatus(ctx context.Context, sender, receiver string) (models.StatusResult, error) {
	resp, err := f.adapter.CheckRequestStatus(ctx, sender, receiver)
	if err == nil {
		return models.StatusResult{
			Envelope:    models.Envelope{Success: true},
			HasRequest:  resp.HasRequest,
			Status:      resp.Status,
			IsInitiator: resp.IsInitiator,
			RequestID:   resp.RequestID,
		}, nil
	}

	if !isOffline(err) {
		return models.StatusResult{}, mapAdapterError(err, f.tr)
	}

	entry := f.queue.GetRequestStatus(sender, receiver)

	// local entries are always created by this user
	return models.StatusResult{
		Envelope:    models.Envelope{Success: true, Message: f.tr.T(i18n.OfflineStatusLocal), Offline: true},
		HasRequest:  entry.HasRequest,
		Status:      entry.Status,
		IsInitiator: true,
		RequestID:   f.localRequestID(sender, receiver),
	}, nil
}

// localRequestID returns the id of the newest queued request for the pair.
func (f *fallbackClient) localRequestID(sender, receiver string) string {
	key := models.NewRequestKey(sender, receiver)

	var id string
	for _, r := range f.queue.GetRequests() {
		if models.NewRequestKey(r.SenderEmail, r.ReceiverEmail) == key {
			id = r.ID
		}
	}
	return id
}

// CancelRequest cancels id. A queued request that was already delivered is
// cancelled on the backend under its backend id and is never dropped locally
// while the backend is unavailable.
func (f *fallbackClient) CancelRequest(ctx context.Context, id, sender, receiver string) (models.Envelope, error) {
	remoteID, delivered, err := f.remoteRequestID(ctx, id, sender, receiver)
	if err != nil {
		return models.Envelope{}, err
	}

	resp, err := f.adapter.CancelRequest(ctx, remoteID)
	if err == nil {
		if !f.queue.RemoveRequestWithStatus(id, sender, receiver) {
			f.logger.Warn().Str("func", "fallbackClient.CancelRequest").Str("id", id).Msg("cancelled on backend, local copies kept")
		}
		return models.Envelope{Success: true, Message: resp.Message}, nil
	}

	if !isOffline(err) {
		return models.Envelope{}, mapAdapterError(err, f.tr)
	}

	if delivered {
		return models.Envelope{Success: false, Message: f.tr.T(i18n.ErrorCancelNeedsServer), Offline: true}, nil
	}

	if !f.queue.RemoveRequestWithStatus(id, sender, receiver) {
		return models.Envelope{Success: false, Message: f.tr.T(i18n.ErrorQueueFailed), Offline: true}, nil
	}

	return models.Envelope{Success: true, Message: f.tr.T(i18n.OfflineRequestCancelled), Offline: true}, nil
}

// remoteRequestID maps a queued id to the id the backend knows. Ids that
// are not queued, or not yet delivered, are passed through. A delivered
// duplicate carries no backend id, so it is looked up by participants.
func (f *fallbackClient) remoteRequestID(ctx context.Context, id, sender, receiver string) (string, bool, error) {
	queued, ok := f.queue.FindRequest(id)
	if !ok || !queued.Synced {
		return id, false, nil
	}
	if queued.ServerID != "" {
		return queued.ServerID, true, nil
	}

	resp, err := f.adapter.CheckRequestStatus(ctx, sender, receiver)
	if err == nil && resp.HasRequest && resp.RequestID != "" {
		return resp.RequestID, true, nil
	}
	if err != nil && isOffline(err) {
		return "", true, newDisplayError(ErrUnavailable, f.tr.T(i18n.ErrorCancelNeedsServer), err)
	}

	f.logger.Warn().Err(err).Str("func", "fallbackClient.remoteRequestID").Str("id", id).Msg("delivered request has no backend id")
	return "", true, newDisplayError(ErrRequestUnresolved, f.tr.T(i18n.ErrorCancelUnresolved), err)
}

// ── users ─────────────────────────────────────────────────────────────────────

func (f *fallbackClient) GetUserInfo(ctx context.Context, email string) (models.UserInfoResult, error) {
	user, err := f.adapter.GetUserInfo(ctx, email)
	if err == nil {
		f.queue.SaveUserStatus(email, user)
		if user.IsEmailVerified {
			f.queue.SaveEmailVerification(email, true, models.VerificationSourceServer)
		}
		return models.UserInfoResult{Envelope: models.Envelope{Success: true}, Found: true, User: user}, nil
	}

	switch {
	case isNotFound(err):
		cached, ok := f.queue.GetUserStatus(email)
		if !ok {
			return f.userNotFound(), nil
		}
		if record, ok := f.queue.GetEmailVerification(email); ok && record.Verified {
			cached.IsEmailVerified = true
		}
		return f.cachedUser(cached), nil

	case isUnreachable(err):
		if cached, ok := f.queue.GetUserStatus(email); ok {
			return f.cachedUser(cached), nil
		}
		if !f.isInstitutional(email) {
			return f.userNotFound(), nil
		}

		provisional := models.ProvisionalUserStatus(models.NormalizeEmail(email), f.now())
		f.queue.SaveUserStatus(email, provisional)
		f.logger.Info().Str("func", "fallbackClient.GetUserInfo").Msg("granted provisional institutional status")

		return models.UserInfoResult{
			Envelope: models.Envelope{Success: true, Message: f.tr.T(i18n.OfflineUserProvisional), Offline: true},
			Found:    true,
			User:     provisional,
		}, nil

	default:
		return models.UserInfoResult{}, mapAdapterError(err, f.tr)
	}
}

func (f *fallbackClient) cachedUser(user models.UserStatus) models.UserInfoResult {
	return models.UserInfoResult{
		Envelope: models.Envelope{Success: true, Message: f.tr.T(i18n.OfflineUserCached), Offline: true},
		Found:    true,
		User:     user,
	}
}

func (f *fallbackClient) userNotFound() models.UserInfoResult {
	return models.UserInfoResult{
		Envelope: models.Envelope{Success: false, Message: f.tr.T(i18n.UserNotFound)},
		Found:    false,
	}
}

func (f *fallbackClient) isInstitutional(email string) bool {
	if f.institutionalDomain == "" {
		return false
	}
	return strings.HasSuffix(models.NormalizeEmail(email), "@"+f.institutionalDomain)
}

// ── listings ──────────────────────────────────────────────────────────────────

func (f *fallbackClient) BrowseMatches(ctx context.Context, email string) (models.MatchesResult, error) {
	matches, err := f.adapter.BrowseMatches(ctx, email)
	if isNotFound(err) {
		matches, err = f.adapter.BrowseMatchesLegacy(ctx, email)
	}
	if err != nil {
		return models.MatchesResult{}, mapAdapterError(err, f.tr)
	}

	return models.MatchesResult{Envelope: models.Envelope{Success: true}, Matches: matches}, nil
}

// ── registration ──────────────────────────────────────────────────────────────

func (f *fallbackClient) SendVerificationEmail(ctx context.Context, email string) (models.Envelope, error) {
	resp, err := f.adapter.SendVerificationEmail(ctx, email)
	if err == nil {
		return models.Envelope{Success: true, Message: resp.Message}, nil
	}

	if isNotFound(err) {
		return models.Envelope{Success: true, Warning: f.tr.T(i18n.VerificationEmailSkipped), Offline: true}, nil
	}

	return models.Envelope{}, mapAdapterError(err, f.tr)
}

func (f *fallbackClient) RegisterUser(ctx context.Context, user models.RegistrationInput) (models.RegisterResult, error) {
	resp, err := f.adapter.RegisterUser(ctx, user)
	if err == nil {
		return models.RegisterResult{Envelope: models.Envelope{Success: true, Message: resp.Message}}, nil
	}

	if isNotFound(err) {
		if user.IsGoogleUser {
			return models.RegisterResult{
				Envelope:    models.Envelope{Success: true, Message: f.tr.T(i18n.RegistrationSyncPending), Offline: true},
				PendingSync: true,
			}, nil
		}
		return models.RegisterResult{
			Envelope:            models.Envelope{Success: true, Message: f.tr.T(i18n.RegistrationVerifyLater), Offline: true},
			PendingVerification: true,
		}, nil
	}

	if e, ok := adapter.AsError(err); ok && e.Status == http.StatusForbidden {
		return models.RegisterResult{}, newDisplayError(ErrDomainRestricted, f.tr.T(i18n.ErrorDomainRestricted), err)
	}

	return models.RegisterResult{}, mapAdapterError(err, f.tr)
}

func (f *fallbackClient) CompleteRegistration(ctx context.Context, user models.RegistrationInput) (models.RegisterResult, error) {
	resp, err := f.adapter.CompleteRegistration(ctx, user)
	if err == nil {
		return models.RegisterResult{Envelope: models.Envelope{Success: true, Message: resp.Message}}, nil
	}

	if isNotFound(err) {
		return models.RegisterResult{
			Envelope: models.Envelope{Success: true, Message: f.tr.T(i18n.RegistrationCompleted), Offline: true},
		}, nil
	}

	return models.RegisterResult{}, mapAdapterError(err, f.tr)
}
