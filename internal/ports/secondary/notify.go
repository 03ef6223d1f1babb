package secondary

import "context"

// PermissionState describes the notification permission as last observed.
type PermissionState string

const (
	// PermissionGranted means system notifications may be delivered.
	PermissionGranted PermissionState = "granted"
	// PermissionDenied means the user refused system notifications.
	PermissionDenied PermissionState = "denied"
	// PermissionUndetermined means the user has not been asked yet.
	PermissionUndetermined PermissionState = "undetermined"
	// PermissionUnavailable means the platform has no notification channel.
	PermissionUnavailable PermissionState = "unavailable"
)

// Notification is a single notification request. Tag is a stable dedup key:
// delivering a notification with a tag already on screen replaces it rather
// than stacking a new one.
type Notification struct {
	Title string
	Body  string
	Tag   string
}

// Notifier defines the secondary port for the platform notification channel.
type Notifier interface {
	// Permission reports the current permission state without prompting.
	Permission() PermissionState

	// RequestPermission prompts the user if the state is undetermined and
	// returns the resolved state. Must be safe to call at any time; it never
	// downgrades an already-granted permission.
	RequestPermission(ctx context.Context) (PermissionState, error)

	// Deliver sends a notification. Any error means the notification did not
	// reach the user and the caller must fall back to another channel.
	Deliver(ctx context.Context, n Notification) error
}

// PromptSink defines the secondary port for the in-app reminder prompt, the
// fallback channel used when system notifications are unavailable, denied,
// or fail to deliver.
type PromptSink interface {
	// Show surfaces the prompt to the user. Implementations must not fail in
	// a way that leaves the user unreachable; an error here is logged only.
	Show(ctx context.Context, n Notification) error
}
