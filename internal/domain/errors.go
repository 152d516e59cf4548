package domain

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrPackageNotFound      = errors.New("package not found")
	ErrProjectNotFound      = errors.New("project not found")
	ErrStoryNotFound        = errors.New("story not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrContactNotFound      = errors.New("contact message not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrPostNotFound         = errors.New("blog post not found")
	ErrNotificationNotFound = errors.New("notification not found")

	ErrPackageInactive = errors.New("package is not open for orders")

	ErrUnknownAddon    = errors.New("unknown add-on id")
	ErrUnknownTemplate = errors.New("unknown design template id")
	ErrTotalMismatch   = errors.New("submitted total does not match computed total")

	ErrInvalidTransition = errors.New("illegal order status transition")

	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrEmailExists       = errors.New("email already registered")
	ErrAlreadySubscribed = errors.New("email already subscribed")
	ErrSlugExists        = errors.New("slug already in use")

	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds the size limit")

	ErrBackupNotFound   = errors.New("backup file not found")
	ErrInvalidBackup    = errors.New("backup document is malformed")
	ErrBackupInProgress = errors.New("another backup or restore is running")
)
