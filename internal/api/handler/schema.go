package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Requests ---

// identityRequest is the validated part of the free-form POST /jwt and
// POST /users bodies. Every other field is passed through untouched.
type identityRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type reviewRequest struct {
	RoomID string `json:"roomId" validate:"required"`
}

type reviewQuery struct {
	RoomID string `query:"roomId" validate:"required"`
}

type searchQuery struct {
	Search string `query:"search" validate:"max=100"`
	Page   int    `query:"page"   validate:"omitempty,min=1,max=1000000"`
}

// --- Responses ---

type tokenResponse struct {
	Token string `json:"token"`
}

type insertResponse struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

type updateResponse struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedCount int64 `json:"upsertedCount"`
	UpsertedID    *any  `json:"upsertedId"`
}

type deleteResponse struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

type adminCheckResponse struct {
	Admin bool `json:"admin"`
}

type moderatorCheckResponse struct {
	Moderator bool `json:"moderator"`
}

// document is a stored record rendered as a flat JSON object: the fields the
// API interprets plus every pass-through field.
type document map[string]any
