// Package i18n holds the user-facing copy of the sync client in Bengali and
// English.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Key identifies a message in the catalog.
type Key string

const (
	OfflineRequestQueued    Key = "offline.request_queued"
	OfflineRequestCancelled Key = "offline.request_cancelled"
	OfflineStatusLocal      Key = "offline.status_local"
	OfflineUserCached       Key = "offline.user_cached"
	OfflineUserProvisional  Key = "offline.user_provisional"
	UserNotFound            Key = "user.not_found"

	VerificationEmailSkipped Key = "verification.skipped"
	RegistrationSyncPending  Key = "registration.sync_pending"
	RegistrationVerifyLater  Key = "registration.verification_pending"
	RegistrationCompleted    Key = "registration.completed_offline"

	ErrorGeneric            Key = "error.generic"
	ErrorBadRequest         Key = "error.bad_request"
	ErrorUnauthorized       Key = "error.unauthorized"
	ErrorForbidden          Key = "error.forbidden"
	ErrorDomainRestricted   Key = "error.domain_restricted"
	ErrorUnavailable        Key = "error.unavailable"
	ErrorReceiverUnresolved Key = "error.receiver_unresolved"
	ErrorQueueFailed        Key = "error.queue_failed"
	ErrorCancelUnresolved   Key = "error.cancel_unresolved"
	ErrorCancelNeedsServer  Key = "error.cancel_needs_server"

	SyncAlreadyRunning Key = "sync.already_running"
	SyncLoading        Key = "sync.loading"
	SyncDelivered      Key = "sync.delivered"
	SyncUpToDate       Key = "sync.up_to_date"
	SyncUnreachable    Key = "sync.unreachable"
	SyncPartialFailure Key = "sync.partial_failure"
)

var (
	bengali = language.Bengali
	english = language.English

	supported = []language.Tag{bengali, english}
	matcher   = language.NewMatcher(supported)
)

var messages = map[Key][2]string{
	// key: {bn, en}
	OfflineRequestQueued:    {"অফলাইন মোড: অনুরোধটি সংরক্ষিত হয়েছে, সার্ভার পাওয়া গেলে পাঠানো হবে", "Offline mode: the request was saved and will be sent when the server is reachable"},
	OfflineRequestCancelled: {"অফলাইন মোড: অনুরোধটি বাতিল করা হয়েছে", "Offline mode: the request was cancelled on this device"},
	OfflineStatusLocal:      {"অফলাইন মোড: স্থানীয় তথ্য দেখানো হচ্ছে", "Offline mode: showing the status saved on this device"},
	OfflineUserCached:       {"অফলাইন মোড: সংরক্ষিত প্রোফাইল দেখানো হচ্ছে", "Offline mode: showing the saved profile"},
	OfflineUserProvisional:  {"অফলাইন মোড: প্রাতিষ্ঠানিক অ্যাকাউন্ট সাময়িকভাবে যাচাইকৃত", "Offline mode: institutional account provisionally verified"},
	UserNotFound:            {"ব্যবহারকারী পাওয়া যায়নি", "User not found"},

	VerificationEmailSkipped: {"যাচাইকরণ ইমেইল এখন পাঠানো যায়নি, পরে আবার চেষ্টা করুন", "The verification email could not be sent right now, please try again later"},
	RegistrationSyncPending:  {"নিবন্ধন সম্পন্ন, সার্ভারের সাথে সিঙ্ক বাকি আছে", "Registered, server sync pending"},
	RegistrationVerifyLater:  {"নিবন্ধন সম্পন্ন, ইমেইল যাচাই বাকি আছে", "Registered, email verification pending"},
	RegistrationCompleted:    {"নিবন্ধন সম্পন্ন হয়েছে", "Registration completed"},

	ErrorGeneric:            {"কিছু একটা সমস্যা হয়েছে, আবার চেষ্টা করুন", "Something went wrong, please try again"},
	ErrorBadRequest:         {"অনুরোধটি গ্রহণযোগ্য নয়", "The request was rejected"},
	ErrorUnauthorized:       {"অনুগ্রহ করে আবার লগইন করুন", "Please sign in again"},
	ErrorForbidden:          {"এই কাজের অনুমতি নেই", "You are not allowed to do this"},
	ErrorDomainRestricted:   {"শুধুমাত্র প্রাতিষ্ঠানিক ইমেইল দিয়ে নিবন্ধন করা যাবে", "Only institutional email addresses can register"},
	ErrorUnavailable:        {"সার্ভার এখন পাওয়া যাচ্ছে না", "The server is not reachable right now"},
	ErrorReceiverUnresolved: {"প্রাপকের ইমেইল পাওয়া যায়নি", "The receiver's email could not be resolved"},
	ErrorQueueFailed:        {"অনুরোধটি এই ডিভাইসে সংরক্ষণ করা যায়নি", "The request could not be saved on this device"},
	ErrorCancelUnresolved:   {"সার্ভারে অনুরোধটি খুঁজে পাওয়া যায়নি", "The delivered request could not be found on the server"},
	ErrorCancelNeedsServer:  {"পাঠানো অনুরোধ বাতিল করতে সার্ভার সংযোগ প্রয়োজন", "A delivered request can only be cancelled while the server is reachable"},

	SyncAlreadyRunning: {"সিঙ্ক ইতিমধ্যে চলছে", "Sync already running"},
	SyncLoading:        {"সিঙ্ক হচ্ছে...", "Syncing..."},
	SyncDelivered:      {"%d টি অনুরোধ সার্ভারে পাঠানো হয়েছে", "%d request(s) delivered to the server"},
	SyncUpToDate:       {"সবকিছু সিঙ্ক করা আছে", "Everything is in sync"},
	SyncUnreachable:    {"সার্ভার পাওয়া যায়নি, পরে আবার চেষ্টা করা হবে", "Server unreachable, will retry later"},
	SyncPartialFailure: {"%d টি অনুরোধ পাঠানো যায়নি", "%d request(s) could not be delivered"},
}

var messageCatalog = buildCatalog()

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(bengali))
	for key, texts := range messages {
		_ = b.SetString(bengali, string(key), texts[0])
		_ = b.SetString(english, string(key), texts[1])
	}
	return b
}

// Translator renders catalog messages for one locale. It is safe for
// concurrent use.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a Translator for the best supported match of locale. Unknown
// or empty locales get Bengali.
func New(locale string) *Translator {
	tag := bengali
	if locale != "" {
		if parsed, err := language.Parse(locale); err == nil {
			_, idx, confidence := matcher.Match(parsed)
			if confidence != language.No {
				tag = supported[idx]
			}
		}
	}

	return &Translator{tag: tag, printer: message.NewPrinter(tag, message.Catalog(messageCatalog))}
}

// Language returns the matched locale.
func (t *Translator) Language() language.Tag {
	return t.tag
}

// T renders key with optional format arguments.
func (t *Translator) T(key Key, args ...any) string {
	return t.printer.Sprintf(string(key), args...)
}
