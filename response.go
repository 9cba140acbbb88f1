package gamenight

import "gamenight/internal/models"

// Profile is the display data for a user: the user row plus the games they own.
type Profile struct {
	User  models.User   `json:"user"`
	Games []models.Game `json:"games"`
}

// EventView is the JSON body of GET /event/:id.
type EventView struct {
	ID      int64         `json:"id"`
	Profile Profile       `json:"profile"`
	Posts   []models.Post `json:"posts"`
}

// Thread is the posts of one game with their comments attached.
type Thread struct {
	ID    int64         `json:"id"`
	Posts []models.Post `json:"posts"`
}
