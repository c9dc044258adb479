package application

// Status is the state of an application to join a project.
type Status string

// Application status values as stored by the platform.
const (
	StatusPending   Status = "Pending"
	StatusAccepted  Status = "Accepted"
	StatusRejected  Status = "Rejected"
	StatusWithdrawn Status = "Withdrawn"
)

// IsEngaged reports whether an application in this status counts as engagement.
func (s Status) IsEngaged() bool {
	return s == StatusPending || s == StatusAccepted
}

// Application is a user's request to join a project.
type Application struct {
	id          string
	applicantID string
	projectID   string
	status      Status
}

// Reconstruct creates an Application from storage without validation.
func Reconstruct(id, applicantID, projectID string, status Status) Application {
	return Application{id: id, applicantID: applicantID, projectID: projectID, status: status}
}

// ID returns the application identifier.
func (a *Application) ID() string { return a.id }

// ApplicantID returns the applying user.
func (a *Application) ApplicantID() string { return a.applicantID }

// ProjectID returns the target project.
func (a *Application) ProjectID() string { return a.projectID }

// Status returns the application state.
func (a *Application) Status() Status { return a.status }
