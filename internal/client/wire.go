package client

// Wire models mirror the backend's REST payloads exactly. Field renaming
// between this schema and the domain model happens in one place, the mapper
// in internal/domain; nothing else translates field names.

// User is the wire shape of a user profile.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Credentials is the wire shape of a successful login response.
type Credentials struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// LoginRequest is the wire shape of POST /auth/login. The backend
// authenticates on username, which the client fills with the email address.
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the wire shape of POST /auth/register.
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// Project is the wire shape of a project resource.
type Project struct {
	ID      int64           `json:"id"`
	Name    string          `json:"name"`
	Records []ProjectRecord `json:"records"`
}

// ProjectRecord is the per-record digest nested in a project resource. The
// backend serializes the derived duration as "HH:MM:SS".
type ProjectRecord struct {
	ID       int64  `json:"id"`
	Duration string `json:"duration"`
}

// NewProject is the wire shape of POST /projects/ and PUT /projects/{id}/.
type NewProject struct {
	Name string `json:"name"`
}

// TimeRecord is the wire shape of a time record resource. Timestamps are
// ISO-8601 strings.
type TimeRecord struct {
	ID          int64  `json:"id"`
	Project     int64  `json:"project"`
	ProjectName string `json:"project_name"`
	Description string `json:"description"`
	TimeStarted string `json:"time_started"`
	TimeEnded   string `json:"time_ended"`
}

// NewTimeRecord is the wire shape of POST /time_records/.
type NewTimeRecord struct {
	Project     int64  `json:"project"`
	Description string `json:"description"`
	TimeStarted string `json:"time_started"`
	TimeEnded   string `json:"time_ended"`
}

// RecordPatch carries only the wire fields being changed by a
// PATCH /time_records/{id}/ request.
type RecordPatch map[string]interface{}
