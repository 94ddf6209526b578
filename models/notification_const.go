package models

// NotificationType is the visual severity shown in the candidate feed.
type NotificationType string

const (
	NotificationTypeSuccess NotificationType = "success"
	NotificationTypeError   NotificationType = "error"
	NotificationTypeWarning NotificationType = "warning"
	NotificationTypeInfo    NotificationType = "info"
)

type NotificationCategory string

const (
	CategoryStageProgression   NotificationCategory = "stage_progression"
	CategoryTestInvitation     NotificationCategory = "test_invitation"
	CategoryInterviewScheduled NotificationCategory = "interview_scheduled"
	CategoryApplicationUpdate  NotificationCategory = "application_update"
	CategorySystem             NotificationCategory = "system"
)

// TemplateKind selects the email template rendered by the dispatcher.
type TemplateKind string

const (
	TplApplicationStatusChange TemplateKind = "application_status_change"
	TplInterviewScheduled      TemplateKind = "interview_scheduled"
	TplWelcome                 TemplateKind = "welcome"
)
