package domain

import "time"

// Snapshot is one full-database backup document: every table keyed by name
// plus the moment it was taken. Restore replaces the entire database with
// its contents, so the document is validated as a whole before any row is
// touched.
type Snapshot struct {
	Users              []User              `json:"users"`
	ServicePackages    []ServicePackage    `json:"service_packages"`
	Projects           []Project           `json:"projects"`
	Stories            []Story             `json:"stories"`
	Orders             []Order             `json:"orders"`
	Subscriptions      []Subscription      `json:"subscriptions"`
	Contacts           []Contact           `json:"contacts"`
	BlogPosts          []BlogPost          `json:"blog_posts"`
	AdminNotifications []AdminNotification `json:"admin_notifications"`
	Timestamp          time.Time           `json:"timestamp"`
}

type BackupFile struct {
	Name      string    `json:"name"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}
