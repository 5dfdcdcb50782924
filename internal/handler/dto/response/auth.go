package response

import "github.com/google/uuid"

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	SubjectID   uuid.UUID `json:"subject_id"`
	Role        string    `json:"role"`
}
